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

import "fmt"

// BBox is a geographic bounding box, stored exactly as the wire format
// stores it: signed 64-bit nanodegrees. At most one BBox exists per Map.
type BBox struct {
	MinLon int64
	MaxLon int64
	MaxLat int64
	MinLat int64
}

// Contains reports whether the lat/lon point, given in nanodegrees, falls
// within the bounding box.
func (b *BBox) Contains(lat, lon int64) bool {
	return b.MinLon <= lon && lon <= b.MaxLon && b.MinLat <= lat && lat <= b.MaxLat
}

func (b *BBox) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		NanodegreesToDegrees(b.MaxLat), NanodegreesToDegrees(b.MinLon),
		NanodegreesToDegrees(b.MinLat), NanodegreesToDegrees(b.MaxLon))
}
