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

package model

// Node represents a specific point on the earth's surface. Lat and Lon are
// signed 64-bit nanodegrees. Keys and Vals are parallel slices rather than
// a map so that tags retain wire order and are addressable by index, as
// the map accessor surface requires.
type Node struct {
	ID   int64
	Lat  int64
	Lon  int64
	Keys []string
	Vals []string
}
