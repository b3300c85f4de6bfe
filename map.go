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

package osmpbf

import (
	"io"

	"m4o.io/osmpbf/internal/decoder"
	"m4o.io/osmpbf/model"
)

// Map is the in-memory result of decoding an OSM PBF stream. It embeds
// model.Map, so its BBox, Header, Nodes, and Ways fields are directly
// accessible; the methods below add bounds-checked, O(1) accessors that
// return a zero/absent sentinel on an out-of-range index rather than
// panicking.
type Map struct {
	*model.Map
}

// ReadMap decodes a complete OSM PBF stream from r into a Map. It is the
// library's sole entry point; callers configure scratch-buffer sizing
// with ReadOption values such as WithBufferSize.
func ReadMap(r io.Reader, opts ...ReadOption) (*Map, error) {
	o := defaultReadOptions
	for _, opt := range opts {
		opt(&o)
	}

	m, err := decoder.Decode(r, o.bufferSize)
	if err != nil {
		return nil, err
	}

	return &Map{Map: m}, nil
}

// NodeCount returns the number of nodes in the Map.
func (m *Map) NodeCount() int {
	return len(m.Nodes)
}

// WayCount returns the number of ways in the Map.
func (m *Map) WayCount() int {
	return len(m.Ways)
}

// NodeAt returns the node at index i, or the zero Node and false if i is
// out of range.
func (m *Map) NodeAt(i int) (model.Node, bool) {
	if i < 0 || i >= len(m.Nodes) {
		return model.Node{}, false
	}

	return m.Nodes[i], true
}

// WayAt returns the way at index i, or the zero Way and false if i is
// out of range.
func (m *Map) WayAt(i int) (model.Way, bool) {
	if i < 0 || i >= len(m.Ways) {
		return model.Way{}, false
	}

	return m.Ways[i], true
}

// NodeID returns the id of the node at index i, or 0 if i is out of
// range.
func (m *Map) NodeID(i int) int64 {
	n, _ := m.NodeAt(i)

	return n.ID
}

// NodeLat returns the latitude, in nanodegrees, of the node at index i,
// or 0 if i is out of range.
func (m *Map) NodeLat(i int) int64 {
	n, _ := m.NodeAt(i)

	return n.Lat
}

// NodeLon returns the longitude, in nanodegrees, of the node at index i,
// or 0 if i is out of range.
func (m *Map) NodeLon(i int) int64 {
	n, _ := m.NodeAt(i)

	return n.Lon
}

// NodeKeyAt returns the key of the node at index i, tag index j, or ""
// if either index is out of range.
func (m *Map) NodeKeyAt(i, j int) string {
	n, ok := m.NodeAt(i)
	if !ok || j < 0 || j >= len(n.Keys) {
		return ""
	}

	return n.Keys[j]
}

// NodeValAt returns the value of the node at index i, tag index j, or ""
// if either index is out of range.
func (m *Map) NodeValAt(i, j int) string {
	n, ok := m.NodeAt(i)
	if !ok || j < 0 || j >= len(n.Vals) {
		return ""
	}

	return n.Vals[j]
}

// WayID returns the id of the way at index i, or 0 if i is out of
// range.
func (m *Map) WayID(i int) int64 {
	w, _ := m.WayAt(i)

	return w.ID
}

// WayRefCount returns the number of node references the way at index i
// holds, or 0 if i is out of range.
func (m *Map) WayRefCount(i int) int {
	w, _ := m.WayAt(i)

	return len(w.Refs)
}

// WayRefAt returns the j'th node reference of the way at index i, or 0
// if either index is out of range.
func (m *Map) WayRefAt(i, j int) int64 {
	w, ok := m.WayAt(i)
	if !ok || j < 0 || j >= len(w.Refs) {
		return 0
	}

	return w.Refs[j]
}

// WayKeyAt returns the key of the way at index i, tag index j, or "" if
// either index is out of range.
func (m *Map) WayKeyAt(i, j int) string {
	w, ok := m.WayAt(i)
	if !ok || j < 0 || j >= len(w.Keys) {
		return ""
	}

	return w.Keys[j]
}

// WayValAt returns the value of the way at index i, tag index j, or ""
// if either index is out of range.
func (m *Map) WayValAt(i, j int) string {
	w, ok := m.WayAt(i)
	if !ok || j < 0 || j >= len(w.Vals) {
		return ""
	}

	return w.Vals[j]
}
