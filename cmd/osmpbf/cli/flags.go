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
	"github.com/spf13/pflag"
)

// The flags below are registered on rootCmd purely so cobra's generated
// usage text documents the grammar; actual parsing happens by hand in
// parseArgs (see the package doc) because rootCmd.DisableFlagParsing is
// set and -w's variable-arity trailing keys don't fit pflag's model.
func init() {
	flags := rootCmd.Flags()
	flags.StringP("f", "f", "", "input file (default: standard input)")
	flags.BoolP("s", "s", false, "print node and way counts")
	flags.BoolP("b", "b", false, "print the bounding box")
	flags.Int64P("n", "n", 0, "look up a node by id")
	flags.VarP(newWayFlag(), "w", "w", "look up a way by id, optionally filtered by tag keys")
	flags.BoolP("extended", "e", false, "print counts with thousands separators")
}

// wayFlag accepts pflag registration for -w even though parseArgs never
// consults it; it exists only to give -w an entry in generated help.
type wayFlag struct {
	id string
}

func newWayFlag() *wayFlag {
	return &wayFlag{}
}

func (w *wayFlag) String() string {
	return w.id
}

func (w *wayFlag) Set(s string) error {
	w.id = s

	return nil
}

func (w *wayFlag) Type() string {
	return "ID [KEY...]"
}

var _ pflag.Value = (*wayFlag)(nil)
