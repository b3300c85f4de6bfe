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

// Package osmpbf reads OpenStreetMap PBF files into an in-memory Map.
//
// The package reads the subset of the format needed to answer bounding
// box, node, and way queries: BlobHeader/Blob framing, zlib blob
// compression, HeaderBlock bounding boxes, and PrimitiveBlock
// DenseNodes and Way groups. It does not write PBF, and it does not
// decode Relations or non-dense Nodes.
//
// Call ReadMap to decode an entire byte source into a Map, then use
// the Map's accessor methods to query it.
package osmpbf
