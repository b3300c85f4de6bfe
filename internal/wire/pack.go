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

import "fmt"

// ExpandPacked decodes every LEN field numbered fnum in m as a
// packed-repeated sequence of varints, concatenating the results in field
// order. It is the replacement for the source's PB_expand_packed_fields,
// which spliced the unpacked values into the message's linked list in
// place of the original LEN field; here the caller simply gets the decoded
// values back, since the owning Message is never mutated.
//
// Expansion is all-or-nothing: if any byte of any matching field's payload
// fails to parse as a complete sequence of varints, the whole call fails
// with ErrMalformed and no partial result is returned.
func ExpandPacked(m *Message, fnum int32) ([]uint64, error) {
	var values []uint64

	for _, f := range m.GetFields(fnum, Len) {
		offset := 0
		for offset < len(f.Value.Bytes) {
			v, next, err := ReadVarint(f.Value.Bytes, offset)
			if err != nil {
				return nil, fmt.Errorf("expanding packed field %d: %w", fnum, err)
			}

			values = append(values, v)
			offset = next
		}
	}

	return values, nil
}
