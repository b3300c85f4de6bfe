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
	"encoding/binary"
	"fmt"
)

// ReadMessage decodes buf as a sequence of fields, stopping only once
// exactly len(buf) bytes have been consumed. A field whose value would
// read past the end of buf is ErrMalformed: unlike the source
// implementation this performs no misalignment resync (skipping a stray
// 0x07/0xFF byte and retrying) — a short or misaligned message is simply
// rejected.
func ReadMessage(buf []byte) (*Message, error) {
	msg := &Message{}

	offset := 0
	for offset < len(buf) {
		field, next, err := readField(buf, offset)
		if err != nil {
			return nil, err
		}

		msg.Fields = append(msg.Fields, field)
		offset = next
	}

	return msg, nil
}

// ReadEmbeddedMessage decodes a LEN-typed field's payload as a nested
// Message. The source's analogous function special-cases a literal
// 9-byte "OSMHeader" payload to mean "not a message"; that special case is
// not reproduced here.
func ReadEmbeddedMessage(f Field) (*Message, error) {
	if f.Type != Len {
		return nil, fmt.Errorf("%w: field %d is not length-delimited", ErrMalformed, f.Number)
	}

	return ReadMessage(f.Value.Bytes)
}

// readField reads one tag and its associated value starting at offset,
// returning the decoded Field and the offset just past it.
func readField(buf []byte, offset int) (Field, int, error) {
	tag, offset, err := readTagVarint(buf, offset)
	if err != nil {
		return Field{}, 0, fmt.Errorf("reading field tag: %w", err)
	}

	fnum := int32(tag >> 3)
	typ := Type(tag & 0x7)

	if fnum < 1 {
		return Field{}, 0, fmt.Errorf("%w: invalid field number %d", ErrMalformed, fnum)
	}

	if typ > I32 {
		return Field{}, 0, fmt.Errorf("%w: wire type %d greater than 5", ErrMalformed, typ)
	}

	value, offset, err := readValue(buf, offset, typ)
	if err != nil {
		return Field{}, 0, fmt.Errorf("reading field %d value: %w", fnum, err)
	}

	return Field{Number: fnum, Type: typ, Value: value}, offset, nil
}

// readValue reads a single value of the given wire type starting at
// offset. All four payload-bearing wire types are implemented, including
// I64 and I32 — fields the source's PB_read_value omits entirely.
func readValue(buf []byte, offset int, typ Type) (Value, int, error) {
	switch typ {
	case Varint:
		v, next, err := ReadVarint(buf, offset)
		if err != nil {
			return Value{}, 0, err
		}

		return Value{Varint: v}, next, nil

	case I64:
		if offset+8 > len(buf) {
			return Value{}, 0, fmt.Errorf("%w: truncated I64", ErrMalformed)
		}

		return Value{Varint: binary.LittleEndian.Uint64(buf[offset : offset+8])}, offset + 8, nil

	case I32:
		if offset+4 > len(buf) {
			return Value{}, 0, fmt.Errorf("%w: truncated I32", ErrMalformed)
		}

		return Value{Varint: uint64(binary.LittleEndian.Uint32(buf[offset : offset+4]))}, offset + 4, nil

	case Len:
		length, next, err := ReadVarint(buf, offset)
		if err != nil {
			return Value{}, 0, fmt.Errorf("reading LEN length: %w", err)
		}

		end := next + int(length)
		if length > (1<<31) || end < next || end > len(buf) {
			return Value{}, 0, fmt.Errorf("%w: LEN field runs past end of message", ErrMalformed)
		}

		return Value{Bytes: buf[next:end]}, end, nil

	case SGroup, EGroup:
		// Deprecated group markers carry no payload of their own.
		return Value{}, offset, nil

	default:
		return Value{}, 0, fmt.Errorf("%w: unknown wire type %d", ErrMalformed, typ)
	}
}
