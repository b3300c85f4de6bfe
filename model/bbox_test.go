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

// Nanodegree bounds taken from the spec's sbu.pbf bounding-box scenario:
// min_lon -73.138730000, max_lon -73.107490000, max_lat 40.928950000,
// min_lat 40.904040000, each times 1e9.
func sbuBBox() *model.BBox {
	return &model.BBox{
		MinLon: -73138730000,
		MaxLon: -73107490000,
		MaxLat: 40928950000,
		MinLat: 40904040000,
	}
}

func TestBBoxContains(t *testing.T) {
	bbox := sbuBBox()

	tests := []struct {
		name string
		lat  int64
		lon  int64
		want bool
	}{
		{"min corner", bbox.MinLat, bbox.MinLon, true},
		{"max corner", bbox.MaxLat, bbox.MaxLon, true},
		{"center", 40915000000, -73120000000, true},
		{"south of range", bbox.MinLat - 1, bbox.MinLon, false},
		{"west of range", bbox.MinLat, bbox.MinLon - 1, false},
		{"north of range", bbox.MaxLat + 1, bbox.MaxLon, false},
		{"east of range", bbox.MaxLat, bbox.MaxLon + 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bbox.Contains(tc.lat, tc.lon))
		})
	}
}

func TestBBoxString(t *testing.T) {
	bbox := sbuBBox()

	s := bbox.String()
	assert.Contains(t, s, "40°")
	assert.Contains(t, s, "-73°")
}
