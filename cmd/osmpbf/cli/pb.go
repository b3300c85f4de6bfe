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

package cli

import (
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressBar is an io.ReadCloser wrapping a file with an associated
// ProgressBar. Closing it closes the underlying file and clears the
// terminal line of progress output.
type progressBar struct {
	r      io.ReadCloser
	bar    *pb.ProgressBar
	stderr io.Writer
}

// WrapInputFile wraps f with a byte-progress bar written to stderr,
// tracking bytes read relative to the file's size.
func WrapInputFile(f *os.File, stderr io.Writer) (io.ReadCloser, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New(int(fi.Size())).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = stderr
	bar.Start()

	return progressBar{
		r:      bar.NewProxyReader(f),
		bar:    bar,
		stderr: stderr,
	}, nil
}

func (p progressBar) Read(buf []byte) (int, error) {
	return p.r.Read(buf)
}

func (p progressBar) Close() error {
	p.bar.Output = nil
	p.bar.NotPrint = true
	p.bar.Finish()

	fmt.Fprint(p.stderr, "\033[2K\r")

	return p.r.Close()
}
