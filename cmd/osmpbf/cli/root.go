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

// Package cli implements the osmpbf command-line tool's argument
// grammar. The grammar mixes plain boolean flags (-s, -b), a
// single-valued flag (-f PATH, -n ID), and a flag that consumes a
// variable number of trailing positional arguments (-w ID [KEY...]),
// which does not fit pflag's getopt-style model. Arguments are walked
// by hand, the same way the original C tool's process_args does, with
// cobra supplying only the command's usage text.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmpbf"
)

const maxWayKeys = 10

var rootCmd = &cobra.Command{
	Use:   "osmpbf",
	Short: "Query summary, bounding box, node, and way information from an OSM PBF file",
	Long: "osmpbf reads an OpenStreetMap PBF file and answers summary, bounding box,\n" +
		"node, and way queries against it.",
	DisableFlagParsing: true,
}

// Run parses args (as os.Args[1:]) and executes the requested query,
// writing results to stdout and diagnostics to stderr. It returns the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	q, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			rootCmd.SetOut(stdout)
			_ = rootCmd.Usage()

			return 0
		}

		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		rootCmd.SetOut(stderr)
		_ = rootCmd.Usage()

		return 1
	}

	if err := q.execute(stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)

		return 1
	}

	return 0
}

var errHelpRequested = errors.New("help requested")

// query holds the parsed command-line request.
type query struct {
	inputFile   string
	summary     bool
	boundingBox bool
	extended    bool
	nodeID      int64
	nodeIDSet   bool
	wayID       int64
	wayIDSet    bool
	wayKeys     []string
}

// parseArgs walks args the way the original tool's process_args walks
// argv: a single forward scan, each flag consuming the tokens it owns.
func parseArgs(args []string) (*query, error) {
	if len(args) == 0 {
		return nil, errors.New("no arguments given")
	}

	if args[0] == "-h" {
		return nil, errHelpRequested
	}

	q := &query{}

	fSpecified := false

	i := 0
	for i < len(args) {
		switch args[i] {
		case "-f":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, errors.New("-f requires a filename")
			}

			if fSpecified {
				return nil, errors.New("multiple -f options specified")
			}

			q.inputFile = args[i+1]
			fSpecified = true
			i += 2

		case "-s":
			q.summary = true
			i++

		case "-b":
			q.boundingBox = true
			i++

		case "-e", "--extended":
			q.extended = true
			i++

		case "-n":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, errors.New("-n requires a node ID")
			}

			id, err := strconv.ParseInt(args[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("-n requires a numeric node ID: %w", err)
			}

			q.nodeID = id
			q.nodeIDSet = true
			i += 2

		case "-w":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, errors.New("-w requires a way ID")
			}

			id, err := strconv.ParseInt(args[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("-w requires a numeric way ID: %w", err)
			}

			q.wayID = id
			q.wayIDSet = true
			i += 2

			for i < len(args) && !strings.HasPrefix(args[i], "-") {
				if len(q.wayKeys) >= maxWayKeys {
					return nil, fmt.Errorf("too many keys for -w (max %d allowed)", maxWayKeys)
				}

				q.wayKeys = append(q.wayKeys, args[i])
				i++
			}

		default:
			return nil, fmt.Errorf("unknown argument: %s", args[i])
		}
	}

	return q, nil
}

// execute opens the input (or stdin), decodes it, and renders whichever
// queries were requested, in the order the original tool emits them:
// summary, bounding box, node, way.
func (q *query) execute(stdout, stderr io.Writer) error {
	in, closeFn, err := q.open(stderr)
	if err != nil {
		return err
	}
	defer closeFn()

	m, err := osmpbf.ReadMap(in)
	if err != nil {
		return err
	}

	if q.summary {
		fmt.Fprintf(stdout, "nodes: %d, ways: %d\n", m.NodeCount(), m.WayCount())

		if q.extended {
			fmt.Fprintf(stdout, "nodes: %s, ways: %s\n", humanize.Comma(int64(m.NodeCount())), humanize.Comma(int64(m.WayCount())))
		}
	}

	if q.boundingBox && m.BBox != nil {
		fmt.Fprintf(stdout, "min_lon: %.9f, max_lon: %.9f, max_lat: %.9f, min_lat: %.9f\n",
			degrees(m.BBox.MinLon), degrees(m.BBox.MaxLon),
			degrees(m.BBox.MaxLat), degrees(m.BBox.MinLat))
	}

	if q.nodeIDSet {
		q.printNode(stdout, m)
	}

	if q.wayIDSet {
		q.printWay(stdout, m)
	}

	return nil
}

func (q *query) printNode(stdout io.Writer, m *osmpbf.Map) {
	for i := 0; i < m.NodeCount(); i++ {
		if m.NodeID(i) != q.nodeID {
			continue
		}

		fmt.Fprintf(stdout, "%d\t%.7f %.7f\n", q.nodeID, degrees(m.NodeLat(i)), degrees(m.NodeLon(i)))

		return
	}

	fmt.Fprintf(stdout, "Node %d not found.\n", q.nodeID)
}

func (q *query) printWay(stdout io.Writer, m *osmpbf.Map) {
	for i := 0; i < m.WayCount(); i++ {
		if m.WayID(i) != q.wayID {
			continue
		}

		if len(q.wayKeys) > 0 {
			q.printWayTags(stdout, m, i)
		} else {
			q.printWayRefs(stdout, m, i)
		}

		return
	}
}

// printWayTags mirrors the original tool's behavior exactly, including
// its quirk of printing a second tab (after the way-id tab already
// printed) when none of the requested keys matched.
func (q *query) printWayTags(stdout io.Writer, m *osmpbf.Map, i int) {
	fmt.Fprintf(stdout, "%d\t", q.wayID)

	w, _ := m.WayAt(i)

	found := false

	for _, key := range q.wayKeys {
		for j, k := range w.Keys {
			if k != key {
				continue
			}

			if found {
				fmt.Fprint(stdout, " ")
			}

			fmt.Fprint(stdout, w.Vals[j])

			found = true
		}
	}

	if !found {
		fmt.Fprint(stdout, "\t")
	}

	fmt.Fprint(stdout, "\n")
}

func (q *query) printWayRefs(stdout io.Writer, m *osmpbf.Map, i int) {
	fmt.Fprintf(stdout, "%d\t", q.wayID)

	for j := 0; j < m.WayRefCount(i); j++ {
		fmt.Fprintf(stdout, "%d ", m.WayRefAt(i, j))
	}

	fmt.Fprint(stdout, "\n")
}

// degrees converts a nanodegree coordinate to a plain degree value for
// display.
func degrees(nanodegrees int64) float64 {
	return float64(nanodegrees) / 1e9
}

func (q *query) open(stderr io.Writer) (r io.Reader, closeFn func(), err error) {
	if q.inputFile == "" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(q.inputFile)
	if err != nil {
		return nil, nil, err
	}

	wrapped, err := WrapInputFile(f, stderr)
	if err != nil {
		_ = f.Close()

		return nil, nil, err
	}

	return wrapped, func() { _ = wrapped.Close() }, nil
}
