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
	"log/slog"

	"m4o.io/osmpbf/internal/wire"
	"m4o.io/osmpbf/model"
)

// PrimitiveBlock field numbers, per osmformat.proto. Granularity and the
// lat/lon offsets (fields 17, 19, 20) are deliberately not read: this
// decoder assumes their default values, per SPEC_FULL.md's Non-goals.
const (
	primitiveBlockFieldStringTable = 1
	primitiveBlockFieldGroup       = 2
)

// defaultGranularity is the nanodegrees-per-unit scale factor assumed for
// every coordinate, since non-default granularity is out of scope.
const defaultGranularity = 100

// StringTable field number.
const stringTableFieldS = 1

// PrimitiveGroup field numbers.
const (
	groupFieldNodes     = 1
	groupFieldDense     = 2
	groupFieldWays      = 3
	groupFieldRelations = 4
	groupFieldChangeSet = 5
)

// DenseNodes field numbers.
const (
	denseFieldID  = 1
	denseFieldLat = 8
	denseFieldLon = 9
)

// Way field numbers.
const (
	wayFieldID   = 1
	wayFieldKeys = 2
	wayFieldVals = 3
	wayFieldRefs = 8
)

// decodePrimitiveBlock decodes every PrimitiveGroup in an OSMData blob's
// unpacked bytes into nodes and ways, in encounter order. Node,
// Relation, and ChangeSet group kinds are recognized and skipped: they
// are out of scope (non-dense nodes aren't used by any real-world PBF
// extract this reader targets, and Relations are an explicit Non-goal).
func decodePrimitiveBlock(buf []byte) ([]model.Node, []model.Way, error) {
	msg, err := wire.ReadMessage(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding PrimitiveBlock: %w", err)
	}

	strings, err := decodeStringTable(msg)
	if err != nil {
		return nil, nil, err
	}

	var nodes []model.Node
	var ways []model.Way

	for _, groupField := range msg.GetFields(primitiveBlockFieldGroup, wire.Len) {
		group, err := wire.ReadEmbeddedMessage(groupField)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding PrimitiveGroup: %w", err)
		}

		if denseField, ok := group.GetField(groupFieldDense, wire.Len); ok {
			dense, err := wire.ReadEmbeddedMessage(denseField)
			if err != nil {
				return nil, nil, fmt.Errorf("decoding DenseNodes: %w", err)
			}

			n, err := decodeDenseNodes(dense)
			if err != nil {
				return nil, nil, err
			}

			nodes = append(nodes, n...)
		}

		for _, wayField := range group.GetFields(groupFieldWays, wire.Len) {
			wayMsg, err := wire.ReadEmbeddedMessage(wayField)
			if err != nil {
				return nil, nil, fmt.Errorf("decoding Way: %w", err)
			}

			w, err := decodeWay(wayMsg, strings)
			if err != nil {
				return nil, nil, err
			}

			ways = append(ways, w)
		}

		if fields := group.GetFields(groupFieldNodes, wire.Len); len(fields) > 0 {
			slog.Warn("skipping non-dense Node group", "count", len(fields))
		}

		if fields := group.GetFields(groupFieldRelations, wire.Len); len(fields) > 0 {
			slog.Warn("skipping Relation group", "count", len(fields))
		}

		if fields := group.GetFields(groupFieldChangeSet, wire.Len); len(fields) > 0 {
			slog.Warn("skipping ChangeSet group", "count", len(fields))
		}
	}

	return nodes, ways, nil
}

// decodeStringTable decodes the PrimitiveBlock-local StringTable. Index 0
// conventionally holds an empty string; out-of-range lookups elsewhere in
// this package resolve to "" rather than failing.
func decodeStringTable(msg *wire.Message) ([]string, error) {
	tableField, ok := msg.GetField(primitiveBlockFieldStringTable, wire.Len)
	if !ok {
		return nil, nil
	}

	table, err := wire.ReadEmbeddedMessage(tableField)
	if err != nil {
		return nil, fmt.Errorf("decoding StringTable: %w", err)
	}

	entries := table.GetFields(stringTableFieldS, wire.Len)
	strings := make([]string, len(entries))

	for i, e := range entries {
		strings[i] = string(e.Value.Bytes)
	}

	return strings, nil
}

func lookupString(strings []string, idx uint64) string {
	if idx >= uint64(len(strings)) {
		return ""
	}

	return strings[idx]
}

// decodeDenseNodes expands the three packed parallel VARINT sequences
// (id, lat, lon) and iterates them by index in lockstep, maintaining
// running sums. This is a deliberate departure from the source's
// &&-chained PB_next_field traversal, which silently truncates to the
// shortest list if the three differ in length; here a length mismatch is
// ErrMalformed.
func decodeDenseNodes(dense *wire.Message) ([]model.Node, error) {
	ids, err := wire.ExpandPacked(dense, denseFieldID)
	if err != nil {
		return nil, fmt.Errorf("expanding DenseNodes id: %w", err)
	}

	lats, err := wire.ExpandPacked(dense, denseFieldLat)
	if err != nil {
		return nil, fmt.Errorf("expanding DenseNodes lat: %w", err)
	}

	lons, err := wire.ExpandPacked(dense, denseFieldLon)
	if err != nil {
		return nil, fmt.Errorf("expanding DenseNodes lon: %w", err)
	}

	if len(ids) != len(lats) || len(ids) != len(lons) {
		return nil, fmt.Errorf("%w: DenseNodes id/lat/lon length mismatch (%d/%d/%d)",
			ErrMalformed, len(ids), len(lats), len(lons))
	}

	nodes := make([]model.Node, len(ids))

	var id, lat, lon int64
	for i := range ids {
		id += wire.DecodeZigZag(ids[i])
		lat += wire.DecodeZigZag(lats[i])
		lon += wire.DecodeZigZag(lons[i])

		nodes[i] = model.Node{
			ID:  id,
			Lat: lat * defaultGranularity,
			Lon: lon * defaultGranularity,
		}
	}

	return nodes, nil
}

func decodeWay(wayMsg *wire.Message, strings []string) (model.Way, error) {
	idField, ok := wayMsg.GetField(wayFieldID, wire.Varint)
	if !ok {
		return model.Way{}, fmt.Errorf("%w: Way missing id", ErrMalformed)
	}

	keys, err := wire.ExpandPacked(wayMsg, wayFieldKeys)
	if err != nil {
		return model.Way{}, fmt.Errorf("expanding Way keys: %w", err)
	}

	vals, err := wire.ExpandPacked(wayMsg, wayFieldVals)
	if err != nil {
		return model.Way{}, fmt.Errorf("expanding Way vals: %w", err)
	}

	if len(keys) != len(vals) {
		return model.Way{}, fmt.Errorf("%w: Way keys/vals length mismatch (%d/%d)", ErrMalformed, len(keys), len(vals))
	}

	keyStrs := make([]string, len(keys))
	valStrs := make([]string, len(vals))

	for i := range keys {
		keyStrs[i] = lookupString(strings, keys[i])
		valStrs[i] = lookupString(strings, vals[i])
	}

	refDeltas, err := wire.ExpandPacked(wayMsg, wayFieldRefs)
	if err != nil {
		return model.Way{}, fmt.Errorf("expanding Way refs: %w", err)
	}

	refs := make([]int64, len(refDeltas))

	var ref int64
	for i, d := range refDeltas {
		ref += wire.DecodeZigZag(d)
		refs[i] = ref
	}

	return model.Way{
		ID:   idField.Int64(),
		Refs: refs,
		Keys: keyStrs,
		Vals: valStrs,
	}, nil
}
