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

package decoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeFullStream builds a synthetic two-blob PBF stream (an
// OSMHeader blob with a bounding box, followed by a zlib-compressed
// OSMData blob containing DenseNodes and a tagged Way) and decodes it
// end-to-end through Decode, the same entry point a real caller uses.
func TestDecodeFullStream(t *testing.T) {
	bboxMsg := append(zigzagField(1, -73138730000), zigzagField(2, -73107490000)...)
	bboxMsg = append(bboxMsg, zigzagField(3, 40928950000)...)
	bboxMsg = append(bboxMsg, zigzagField(4, 40904040000)...)

	headerBlock := append(lenField(headerFieldBBox, bboxMsg), lenField(headerFieldWritingProgram, []byte("osmium/1.14"))...)
	headerFrame := blobFrame("OSMHeader", headerBlock)

	strtable := append(lenField(stringTableFieldS, []byte("")), lenField(stringTableFieldS, []byte("highway"))...)
	strtable = append(strtable, lenField(stringTableFieldS, []byte("residential"))...)

	dense := denseNodesGroup([]int64{1, 1, 1}, []int64{407500000 / defaultGranularity, 1, 1}, []int64{-739900000 / defaultGranularity, 1, 1})
	way := lenField(groupFieldWays, wayBytes(99, []uint64{1}, []uint64{2}, []int64{1, 1}))

	dataBlock := lenField(primitiveBlockFieldStringTable, strtable)
	dataBlock = append(dataBlock, lenField(primitiveBlockFieldGroup, append(dense, way...))...)

	dataFrame := zlibBlobFrame("OSMData", dataBlock)

	var stream bytes.Buffer
	stream.Write(headerFrame)
	stream.Write(dataFrame)

	m, err := Decode(bytes.NewReader(stream.Bytes()), 0)
	require.NoError(t, err)
	require.NotNil(t, m.BBox)

	assert.Equal(t, int64(-73138730000), m.BBox.MinLon)
	assert.Equal(t, "osmium/1.14", m.Header.WritingProgram)

	require.Len(t, m.Nodes, 3)
	assert.Equal(t, int64(1), m.Nodes[0].ID)
	assert.Equal(t, int64(3), m.Nodes[2].ID)

	require.Len(t, m.Ways, 1)
	assert.Equal(t, int64(99), m.Ways[0].ID)
	assert.Equal(t, []int64{1, 2}, m.Ways[0].Refs)
	assert.Equal(t, []string{"highway"}, m.Ways[0].Keys)
	assert.Equal(t, []string{"residential"}, m.Ways[0].Vals)
}
