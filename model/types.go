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

// Package model holds the in-memory representation of a decoded OSM PBF
// file: a bounding box plus the nodes and ways it contains. Coordinates
// are stored the way the wire format stores them, as nanodegree integers,
// with Degrees provided only as a display/comparison convenience.
package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s1"
)

// nanodegreesPerDegree is the scale factor the wire format stores BBox,
// Node, and Way coordinates at: a signed 64-bit nanodegree integer is
// exactly this many units per decimal degree.
const nanodegreesPerDegree = 1e9

// Degrees is the decimal degree representation of a longitude or latitude.
type Degrees float64

// Angle represents a 1D angle in radians.
type Angle s1.Angle

// Epsilon is a comparison precision, expressed as a fraction of a degree,
// for EqualWithin.
type Epsilon float64

const (
	Degree           Degrees = 1
	radiansPerPi             = 180
	Radian                   = (radiansPerPi / math.Pi) * Degree
	minutesPerDegree         = 60
	secondsPerDegree         = 3600

	// E5 through E7 are precisions for EqualWithin: E5 for general
	// closeness checks, E7 matching the wire format's native sub-degree
	// resolution.
	E5 Epsilon = 1e-5
	E6 Epsilon = 1e-6
	E7 Epsilon = 1e-7

	roundingBias = 0.5
)

// NanodegreesToDegrees converts a raw signed nanodegree coordinate, as
// stored on BBox/Node/Way, to its decimal-degree value.
func NanodegreesToDegrees(n int64) Degrees {
	return Degrees(float64(n) / nanodegreesPerDegree)
}

// Angle returns the equivalent s1.Angle.
func (d Degrees) Angle() Angle { return Angle(float64(d) * float64(s1.Degree)) }

// String renders d in degrees/minutes/seconds notation, with seconds
// rounded to hundredths, e.g. `40° 55' 44.22"`.
func (d Degrees) String() string {
	sign := ""
	if d < 0 {
		sign = "-"
	}

	deg, mins, secs := splitDMS(math.Abs(float64(d)))

	return fmt.Sprintf("%s%d° %d' %s\"", sign, deg, mins, trimmedFloat(math.Round(secs*100)/100))
}

// splitDMS decomposes a non-negative decimal-degree value into whole
// degrees, whole minutes, and a fractional seconds remainder.
func splitDMS(val float64) (deg, mins int, secs float64) {
	deg = int(math.Floor(val))
	mins = int(math.Floor(minutesPerDegree * (val - float64(deg))))
	secs = secondsPerDegree * (val - float64(deg) - float64(mins)/minutesPerDegree)

	return deg, mins, secs
}

// MarshalJSON renders d as a bare decimal-degree number.
func (d Degrees) MarshalJSON() ([]byte, error) {
	return []byte(trimmedFloat(float64(d))), nil
}

// EqualWithin reports whether d and o round to the same multiple of eps.
func (d Degrees) EqualWithin(o Degrees, eps Epsilon) bool {
	return equalWithin(float64(d), float64(o), eps)
}

// EqualWithin reports whether d and o round to the same multiple of eps.
func (d Angle) EqualWithin(o Angle, eps Epsilon) bool {
	return equalWithin(float64(d), float64(o), eps)
}

// equalWithin compares two values by the integer multiple of eps each
// rounds to, rather than by raw difference, so that EqualWithin is
// transitive-ish across a chain of closely spaced values.
func equalWithin(a, b float64, eps Epsilon) bool {
	return quantize(a, eps) == quantize(b, eps)
}

// quantize rounds val/eps to the nearest integer, ties away from zero.
// Exact x.5 inputs therefore round differently than IEEE round-half-to-even
// would, which is acceptable here since eps is always a power of ten and
// real coordinates essentially never land on an exact half-unit boundary.
func quantize(val float64, eps Epsilon) int32 {
	scaled := val / float64(eps)
	if scaled < 0 {
		return int32(scaled - roundingBias)
	}

	return int32(scaled + roundingBias)
}

// ParseDegrees parses a plain decimal-degree string, e.g. "53.123450".
func ParseDegrees(s string) (Degrees, error) {
	u, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return Degrees(u), nil
}

// trimmedFloat formats a float with the minimal number of digits that
// round-trips, with no exponent notation.
func trimmedFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
