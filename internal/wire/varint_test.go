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

package wire

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  uint64
	}{
		{"zero", 0},
		{"one", 1},
		{"onebyteMax", 0x7f},
		{"twobyteMin", 0x80},
		{"uint32max", 0xffffffff},
		{"uint64max", 0xffffffffffffffff},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := AppendVarint(nil, tc.val)
			got, n, err := ReadVarint(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.val, got)
			assert.Equal(t, len(buf), n)
		})
	}
}

func TestVarintRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		val := r.Uint64()

		buf := AppendVarint(nil, val)
		got, n, err := ReadVarint(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, val, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestReadVarintTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80}

	_, _, err := ReadVarint(buf, 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadVarintTooLong(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}

	_, _, err := ReadVarint(buf, 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadTagVarintRejectsSixBytes(t *testing.T) {
	// A 6-byte tag encoding is within the general 10-byte varint cap but
	// exceeds the 5-byte cap tags are held to.
	buf := []byte{0x88, 0x80, 0x80, 0x80, 0x80, 0x00}

	_, _, err := readTagVarint(buf, 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadTagVarintAcceptsFiveBytes(t *testing.T) {
	buf := []byte{0x88, 0x80, 0x80, 0x80, 0x00}

	v, n, err := readTagVarint(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), v)
	assert.Equal(t, 5, n)
}

func TestVarintCanonicalLength(t *testing.T) {
	// AppendVarint never writes more than maxVarintLen bytes, and
	// ReadVarint consumes exactly the bytes it wrote.
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40, 1 << 63} {
		buf := AppendVarint(nil, v)
		assert.LessOrEqual(t, len(buf), maxVarintLen)

		_, n, err := ReadVarint(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	tests := []int64{0, -1, 1, -2, 2, 1 << 40, -(1 << 40), -9223372036854775808, 9223372036854775807}

	for _, v := range tests {
		got := DecodeZigZag(EncodeZigZag(v))
		assert.Equal(t, v, got)
	}
}

func TestZigZagSmallValuesStaySmall(t *testing.T) {
	// The point of zigzag is that small-magnitude negatives don't blow up
	// to near-uint64-max.
	assert.Equal(t, uint64(0), EncodeZigZag(0))
	assert.Equal(t, uint64(1), EncodeZigZag(-1))
	assert.Equal(t, uint64(2), EncodeZigZag(1))
	assert.Equal(t, uint64(3), EncodeZigZag(-2))
	assert.Equal(t, uint64(4), EncodeZigZag(2))
}
