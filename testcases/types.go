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

package testcases

import (
	"seehuhn.de/go/geom/matrix"

	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Path   *render.RawPath // the geometry to rasterize
	Width  uint16          // viewport width in pixels
	Height uint16          // viewport height in pixels
	CTM    matrix.Matrix   // applied after flattening (zero-value means no transform)

	// Want is the expected span map, or nil if the test case has no
	// fixed expectation.
	Want render.Spans
}

// Spans flattens, transforms and rasterizes the test case path.
// Flat returns the flattened path in device coordinates.
func (tc TestCase) Flat() *render.FlatPath {
	if tc.CTM == (matrix.Matrix{}) {
		return render.Flatten(tc.Path)
	}
	return render.FlattenTransformed(tc.Path, tc.CTM)
}

func (tc TestCase) Spans() render.Spans {
	return render.Scanlines(tc.Flat(), tc.Width, tc.Height)
}

// pt is a helper to create a render.Point from x, y coordinates.
func pt(x, y float32) render.Point {
	return render.Point{X: x, Y: y}
}

// rows builds a span map where each of the given rows has the same spans.
func rows(first, last uint16, spans ...render.Span) render.Spans {
	res := render.Spans{}
	for y := first; y <= last; y++ {
		res[y] = spans
	}
	return res
}

// merge combines span maps with disjoint rows.
func merge(maps ...render.Spans) render.Spans {
	res := render.Spans{}
	for _, m := range maps {
		for y, spans := range m {
			res[y] = spans
		}
	}
	return res
}
