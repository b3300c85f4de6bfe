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

// Package decoder implements the blob-framing, decompression, and
// domain-decoding layers of the OSM PBF reader, built on top of the
// generic internal/wire codec.
package decoder

import "errors"

var (
	// ErrIO indicates the underlying byte source failed, or ended before
	// a length-framed section it had already committed to (a BlobHeader
	// or Blob whose declared size promised more bytes than the source
	// delivered) could be read in full. Distinct from ErrMalformed, which
	// is reserved for a source that delivered all its bytes but whose
	// content violates the wire format.
	ErrIO = errors.New("decoder: i/o error reading PBF stream")

	// ErrMalformed indicates the blob stream or a decoded message violates
	// the expected structure.
	ErrMalformed = errors.New("decoder: malformed PBF stream")

	// ErrDecompress indicates a zlib payload failed to inflate, or
	// inflated to a size other than the declared raw_size.
	ErrDecompress = errors.New("decoder: decompression failed")

	// ErrUnsupportedCompression indicates a Blob declared a compression
	// scheme other than zlib (lzma, bzip2, lz4, zstd). Only zlib is
	// supported; see SPEC_FULL.md's Non-goals.
	ErrUnsupportedCompression = errors.New("decoder: unsupported compression scheme")
)
