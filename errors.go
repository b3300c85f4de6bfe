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

import "m4o.io/osmpbf/internal/decoder"

// Sentinel errors returned by ReadMap, matchable with errors.Is.
var (
	// ErrIO reports that the underlying io.Reader failed, or ended before
	// delivering all the bytes a length-framed BlobHeader or Blob had
	// already promised.
	ErrIO = decoder.ErrIO

	// ErrMalformed reports a wire-format violation: a bad varint, an
	// out-of-range wire type, a length overrun, a mismatched embedded
	// message length, or a required field missing.
	ErrMalformed = decoder.ErrMalformed

	// ErrDecompress reports that zlib failed to inflate a blob's
	// compressed payload, or the inflated length didn't match the
	// blob's declared raw_size.
	ErrDecompress = decoder.ErrDecompress

	// ErrUnsupportedCompression reports a blob compressed with
	// anything other than zlib (lzma, bzip2, lz4, zstd).
	ErrUnsupportedCompression = decoder.ErrUnsupportedCompression
)
