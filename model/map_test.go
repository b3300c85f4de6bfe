// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmpbf/model"
)

func TestMapZeroValueIsUsable(t *testing.T) {
	var m model.Map

	assert.Nil(t, m.BBox)
	assert.Empty(t, m.Nodes)
	assert.Empty(t, m.Ways)
}

func TestNodeTagsAreParallelSlices(t *testing.T) {
	n := model.Node{
		ID:   213352011,
		Lat:  40925193000,
		Lon:  -73133857000,
		Keys: []string{"highway", "name"},
		Vals: []string{"traffic_signals", "Main St"},
	}

	assert.Equal(t, len(n.Keys), len(n.Vals))
	assert.Equal(t, "traffic_signals", n.Vals[0])
}

func TestWayRefsAbsolute(t *testing.T) {
	w := model.Way{
		ID:   20175414,
		Refs: []int64{1, 3, 6},
		Keys: []string{"highway", "surface"},
		Vals: []string{"service", "asphalt"},
	}

	assert.Len(t, w.Refs, 3)
	assert.Equal(t, int64(6), w.Refs[2])
}
