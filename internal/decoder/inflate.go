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
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// inflate decompresses zlib-compressed blob data into buf, which is grown
// to fit rawSize if necessary, and verifies the inflated length matches
// rawSize exactly.
func inflate(data []byte, rawSize int, buf *bytes.Buffer) ([]byte, error) {
	rdr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer rdr.Close()

	buf.Reset()

	if rawSize+bytes.MinRead > buf.Cap() {
		buf.Grow(rawSize + bytes.MinRead)
	}

	n, err := buf.ReadFrom(rdr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}

	if int(n) != rawSize {
		return nil, fmt.Errorf("%w: inflated %d bytes but blob declared raw_size %d", ErrDecompress, n, rawSize)
	}

	return buf.Bytes(), nil
}
