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
	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

// largeCases use a full 512×512 frame, to exercise the code paths which
// handle many rows and long spans.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Want:   rows(50, 461, render.Span{Start: 50, End: 462}),
	},
	{
		Name:   "large_concentric",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Want: merge(
			rows(56, 155, render.Span{Start: 56, End: 456}),
			rows(156, 355, render.Span{Start: 56, End: 156}, render.Span{Start: 356, End: 456}),
			rows(356, 455, render.Span{Start: 56, End: 456}),
		),
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Want:   rectangleGridSpans(8, 8, 64, 4),
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Want:   rows(100, 399, render.Span{Start: 0, End: 512}),
	},
}

func concentricRectangles(cx, cy, outer, inner float32) *render.RawPath {
	p := rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	return appendRectangle(p, cx-inner, cy-inner, cx+inner, cy+inner)
}

func diamond(cx, cy, r float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

func rectangleGrid(rows, cols, width, height int, gap float32) *render.RawPath {
	cellW := float32(width) / float32(cols)
	cellH := float32(height) / float32(rows)

	p := &render.RawPath{}
	for row := range rows {
		for col := range cols {
			x1 := float32(col)*cellW + gap
			y1 := float32(row)*cellH + gap
			x2 := float32(col+1)*cellW - gap
			y2 := float32(row+1)*cellH - gap
			appendRectangle(p, x1, y1, x2, y2)
		}
	}
	return p
}

// rectangleGridSpans gives the coverage of a grid of square cells with
// integer cell size and gap.
func rectangleGridSpans(nRows, nCols int, cell, gap uint16) render.Spans {
	line := make([]render.Span, nCols)
	for col := range nCols {
		x := uint16(col) * cell
		line[col] = render.Span{Start: x + gap, End: x + cell - gap}
	}

	res := render.Spans{}
	for row := range nRows {
		y := uint16(row) * cell
		for r := y + gap; r < y+cell-gap; r++ {
			res[r] = line
		}
	}
	return res
}
