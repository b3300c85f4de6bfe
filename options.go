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

// DefaultBufferSize is the default initial capacity, in bytes, of the
// per-blob scratch buffers ReadMap uses while decoding.
const DefaultBufferSize = 1024 * 1024

// readOptions holds the configuration ReadMap uses.
type readOptions struct {
	bufferSize int
}

// ReadOption configures ReadMap.
type ReadOption func(*readOptions)

// WithBufferSize sets the initial capacity of ReadMap's per-blob scratch
// buffers. It is a performance hint only; ReadMap grows buffers as
// needed regardless of this setting.
func WithBufferSize(n int) ReadOption {
	return func(o *readOptions) {
		o.bufferSize = n
	}
}

var defaultReadOptions = readOptions{
	bufferSize: DefaultBufferSize,
}
