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
	"fmt"
	"time"

	"m4o.io/osmpbf/internal/wire"
	"m4o.io/osmpbf/model"
)

// HeaderBlock field numbers, per fileformat.proto.
const (
	headerFieldBBox                     = 1
	headerFieldRequiredFeatures          = 4
	headerFieldOptionalFeatures          = 5
	headerFieldWritingProgram            = 16
	headerFieldSource                    = 17
	headerFieldOsmosisReplicationTime    = 32
	headerFieldOsmosisReplicationSeqNum  = 33
	headerFieldOsmosisReplicationBaseURL = 34
)

// HeaderBBox field numbers: min_lon, max_lon, max_lat, min_lat, all
// zigzag-encoded VARINT nanodegrees.
const (
	bboxFieldMinLon = 1
	bboxFieldMaxLon = 2
	bboxFieldMaxLat = 3
	bboxFieldMinLat = 4
)

// decodeHeaderBlock decodes an OSMHeader blob's unpacked bytes into a
// bounding box (if present) and the ambient header metadata. A bounding
// box missing any of its four fields is treated as absent, not an error.
func decodeHeaderBlock(buf []byte) (*model.BBox, *model.Header, error) {
	msg, err := wire.ReadMessage(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding HeaderBlock: %w", err)
	}

	bbox := decodeBBox(msg)
	hdr := decodeHeaderMeta(msg)

	return bbox, hdr, nil
}

func decodeBBox(msg *wire.Message) *model.BBox {
	bboxField, ok := msg.GetField(headerFieldBBox, wire.Len)
	if !ok {
		return nil
	}

	sub, err := wire.ReadEmbeddedMessage(bboxField)
	if err != nil {
		return nil
	}

	minLon, ok1 := sub.GetField(bboxFieldMinLon, wire.Varint)
	maxLon, ok2 := sub.GetField(bboxFieldMaxLon, wire.Varint)
	maxLat, ok3 := sub.GetField(bboxFieldMaxLat, wire.Varint)
	minLat, ok4 := sub.GetField(bboxFieldMinLat, wire.Varint)

	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	return &model.BBox{
		MinLon: minLon.ZigZag(),
		MaxLon: maxLon.ZigZag(),
		MaxLat: maxLat.ZigZag(),
		MinLat: minLat.ZigZag(),
	}
}

func decodeHeaderMeta(msg *wire.Message) *model.Header {
	hdr := &model.Header{}

	for _, f := range msg.GetFields(headerFieldRequiredFeatures, wire.Len) {
		hdr.RequiredFeatures = append(hdr.RequiredFeatures, string(f.Value.Bytes))
	}

	for _, f := range msg.GetFields(headerFieldOptionalFeatures, wire.Len) {
		hdr.OptionalFeatures = append(hdr.OptionalFeatures, string(f.Value.Bytes))
	}

	if f, ok := msg.GetField(headerFieldWritingProgram, wire.Len); ok {
		hdr.WritingProgram = string(f.Value.Bytes)
	}

	if f, ok := msg.GetField(headerFieldSource, wire.Len); ok {
		hdr.Source = string(f.Value.Bytes)
	}

	if f, ok := msg.GetField(headerFieldOsmosisReplicationTime, wire.Varint); ok {
		hdr.OsmosisReplicationTimestamp = time.Unix(f.Int64(), 0).UTC()
	}

	if f, ok := msg.GetField(headerFieldOsmosisReplicationSeqNum, wire.Varint); ok {
		hdr.OsmosisReplicationSequenceNumber = f.Int64()
	}

	if f, ok := msg.GetField(headerFieldOsmosisReplicationBaseURL, wire.Len); ok {
		hdr.OsmosisReplicationBaseURL = string(f.Value.Bytes)
	}

	return hdr
}
