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
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"m4o.io/osmpbf/internal/wire"
	"m4o.io/osmpbf/model"
)

// BlobHeader field numbers, per fileformat.proto.
const (
	blobHeaderFieldType     = 1
	blobHeaderFieldDatasize = 3
)

// Blob field numbers, per fileformat.proto. Fields 4 (lzma), 5
// (obsolete bzip2), 6 (lz4), and 7 (zstd) are recognized only so they can
// be rejected with ErrUnsupportedCompression rather than silently
// ignored.
const (
	blobFieldRaw       = 1
	blobFieldRawSize   = 2
	blobFieldZlibData  = 3
	blobFieldLzmaData  = 4
	blobFieldBzip2Data = 5
	blobFieldLz4Data   = 6
	blobFieldZstdData  = 7
)

// Decode reads a complete OSM PBF stream from r: a sequence of
// length-framed (BlobHeader, Blob) pairs, terminated by a clean EOF at a
// blob boundary. It decodes the single expected OSMHeader blob into a
// bounding box (and opportunistic Header metadata), and every OSMData
// blob into nodes and ways, appended in the order they are encountered.
//
// bufferSize seeds the initial capacity of the per-blob scratch buffers
// (header bytes, blob bytes, inflated bytes); it is a performance hint,
// not a limit, and 0 is a valid fallback to Go's default growth.
func Decode(r io.Reader, bufferSize int) (*model.Map, error) {
	m := &model.Map{}

	zlibBuf := bytes.NewBuffer(make([]byte, 0, bufferSize))
	protoBuf := bytes.NewBuffer(make([]byte, 0, bufferSize))

	for {
		size, ok, err := readUint32BE(r)
		if err != nil {
			return nil, err
		}

		if !ok {
			return m, nil
		}

		protoBuf.Reset()
		if _, err := io.CopyN(protoBuf, r, int64(size)); err != nil {
			return nil, fmt.Errorf("%w: reading blob header: %v", ErrIO, err)
		}

		headerMsg, err := wire.ReadMessage(protoBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("reading blob header: %w", err)
		}

		blobType, datasize, err := parseBlobHeader(headerMsg)
		if err != nil {
			return nil, err
		}

		protoBuf.Reset()
		if _, err := io.CopyN(protoBuf, r, int64(datasize)); err != nil {
			return nil, fmt.Errorf("%w: reading blob: %v", ErrIO, err)
		}

		if datasize == 0 {
			slog.Debug("skipping zero-length blob", "type", blobType)
			continue
		}

		blobMsg, err := wire.ReadMessage(protoBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("reading blob: %w", err)
		}

		buf, err := unpackBlob(blobMsg, zlibBuf)
		if err != nil {
			return nil, err
		}

		switch blobType {
		case "OSMHeader":
			bbox, hdr, err := decodeHeaderBlock(buf)
			if err != nil {
				return nil, err
			}

			m.BBox = bbox
			m.Header = hdr

		case "OSMData":
			nodes, ways, err := decodePrimitiveBlock(buf)
			if err != nil {
				return nil, err
			}

			m.Nodes = append(m.Nodes, nodes...)
			m.Ways = append(m.Ways, ways...)

		default:
			slog.Warn("skipping unknown blob type", "type", blobType)
		}
	}
}

// readUint32BE reads a 4-byte big-endian length prefix. A clean EOF before
// any byte is read is reported as ok=false, err=nil; a stream that ends
// after 1-3 bytes is malformed; any other read failure is ErrIO.
func readUint32BE(r io.Reader) (uint32, bool, error) {
	var buf [4]byte

	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 && err == io.EOF {
			return 0, false, nil
		}

		if err != io.ErrUnexpectedEOF {
			return 0, false, fmt.Errorf("%w: reading blob length: %v", ErrIO, err)
		}

		return 0, false, fmt.Errorf("%w: reading blob length: %v", ErrMalformed, err)
	}

	return binary.BigEndian.Uint32(buf[:]), true, nil
}

func parseBlobHeader(msg *wire.Message) (blobType string, datasize uint32, err error) {
	typeField, ok := msg.GetField(blobHeaderFieldType, wire.Len)
	if !ok {
		return "", 0, fmt.Errorf("%w: BlobHeader missing type", ErrMalformed)
	}

	sizeField, ok := msg.GetField(blobHeaderFieldDatasize, wire.Varint)
	if !ok {
		return "", 0, fmt.Errorf("%w: BlobHeader missing datasize", ErrMalformed)
	}

	return string(typeField.Value.Bytes), uint32(sizeField.Value.Varint), nil
}

// unpackBlob returns the raw (possibly decompressed) protobuf bytes for a
// Blob message.
func unpackBlob(msg *wire.Message, zlibBuf *bytes.Buffer) ([]byte, error) {
	if raw, ok := msg.GetField(blobFieldRaw, wire.Len); ok {
		return raw.Value.Bytes, nil
	}

	if zlibData, ok := msg.GetField(blobFieldZlibData, wire.Len); ok {
		rawSize := 0
		if f, ok := msg.GetField(blobFieldRawSize, wire.Varint); ok {
			rawSize = int(f.Value.Varint)
		}

		return inflate(zlibData.Value.Bytes, rawSize, zlibBuf)
	}

	for _, fnum := range []int32{blobFieldLzmaData, blobFieldBzip2Data, blobFieldLz4Data, blobFieldZstdData} {
		if _, ok := msg.GetField(fnum, wire.Len); ok {
			return nil, fmt.Errorf("%w: blob field %d", ErrUnsupportedCompression, fnum)
		}
	}

	return nil, fmt.Errorf("%w: blob has neither raw nor zlib_data", ErrMalformed)
}
