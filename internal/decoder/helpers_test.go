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
	"compress/zlib"
	"encoding/binary"

	"m4o.io/osmpbf/internal/wire"
)

// The functions below build synthetic wire-format byte sequences for
// tests. There is no production PBF encoder in this module (writing PBF
// is out of scope); this is test-only scaffolding.

func tagBytes(fnum int, typ wire.Type) []byte {
	return wire.AppendVarint(nil, uint64(fnum)<<3|uint64(typ))
}

func varintField(fnum int, v uint64) []byte {
	return append(tagBytes(fnum, wire.Varint), wire.AppendVarint(nil, v)...)
}

func zigzagField(fnum int, v int64) []byte {
	return varintField(fnum, wire.EncodeZigZag(v))
}

func lenField(fnum int, payload []byte) []byte {
	buf := tagBytes(fnum, wire.Len)
	buf = wire.AppendVarint(buf, uint64(len(payload)))
	return append(buf, payload...)
}

func packedVarints(vals ...uint64) []byte {
	var buf []byte
	for _, v := range vals {
		buf = wire.AppendVarint(buf, v)
	}

	return buf
}

func packedZigZags(vals ...int64) []byte {
	var buf []byte
	for _, v := range vals {
		buf = wire.AppendVarint(buf, wire.EncodeZigZag(v))
	}

	return buf
}

func blobHeaderBytes(blobType string, datasize int) []byte {
	buf := lenField(1, []byte(blobType))
	buf = append(buf, varintField(3, uint64(datasize))...)

	return buf
}

// blobFrame builds one complete (length, BlobHeader, Blob) frame holding
// raw (uncompressed) payload.
func blobFrame(blobType string, payload []byte) []byte {
	blob := lenField(1, payload)
	header := blobHeaderBytes(blobType, len(blob))

	var out bytes.Buffer

	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(header)))
	out.Write(sizeBuf[:])
	out.Write(header)
	out.Write(blob)

	return out.Bytes()
}

// zlibBlobFrame builds one complete frame holding zlib-compressed payload.
func zlibBlobFrame(blobType string, payload []byte) []byte {
	var compressed bytes.Buffer

	w := zlib.NewWriter(&compressed)
	_, _ = w.Write(payload)
	_ = w.Close()

	blob := lenField(3, compressed.Bytes())
	blob = append(blob, varintField(2, uint64(len(payload)))...)

	header := blobHeaderBytes(blobType, len(blob))

	var out bytes.Buffer

	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(header)))
	out.Write(sizeBuf[:])
	out.Write(header)
	out.Write(blob)

	return out.Bytes()
}
