// ssb-implementation - a renderer for the SSB subtitle format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the geometry and the computed coverage of all test
// cases to testdata/spans.json, for comparison with other implementations
// of the rasterizer.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	render "github.com/Doko-Demo-Doa/ssb-implementation"
	"github.com/Doko-Demo-Doa/ssb-implementation/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/spans.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  uint16        `json:"width"`
	Height uint16        `json:"height"`
	Path   []jsonSegment `json:"path"`
	Rows   []jsonRow     `json:"rows"`
}

// jsonSegment is a segment of the flattened path, in device coordinates.
type jsonSegment struct {
	Cmd string       `json:"cmd"`
	Pts [][2]float32 `json:"pts,omitempty"`
}

type jsonRow struct {
	Y     uint16      `json:"y"`
	Spans [][2]uint16 `json:"spans"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	flat := tc.Flat()

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(flat),
	}
	for y, spans := range tc.Spans().All() {
		row := jsonRow{Y: y}
		for _, s := range spans {
			row.Spans = append(row.Spans, [2]uint16{s.Start, s.End})
		}
		jtc.Rows = append(jtc.Rows, row)
	}
	return jtc
}

func pathToJSON(p *render.FlatPath) []jsonSegment {
	var segs []jsonSegment
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case render.MoveTo:
			segs = append(segs, jsonSegment{Cmd: "M", Pts: [][2]float32{{s.Point.X, s.Point.Y}}})
		case render.LineTo:
			segs = append(segs, jsonSegment{Cmd: "L", Pts: [][2]float32{{s.Point.X, s.Point.Y}}})
		case render.Close:
			segs = append(segs, jsonSegment{Cmd: "Z"})
		}
	}
	return segs
}
