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

var precisionCases = []TestCase{
	{
		// a vertex at y=1.7 lies between the row centers 1.5 and 2.5
		Name: "subpixels",
		Path: (&render.RawPath{}).
			MoveTo(pt(1, 1)).
			LineTo(pt(4.5, 1)).
			LineTo(pt(6, 1.7)).
			LineTo(pt(8, 1)).
			LineTo(pt(9.5, 1)).
			LineTo(pt(9.5, 7)).
			LineTo(pt(2, 7)).
			Close(),
		Width:  10,
		Height: 10,
		Want: merge(
			render.Spans{1: {{Start: 1, End: 6}, {Start: 7, End: 10}}},
			rows(2, 3, render.Span{Start: 1, End: 10}),
			rows(4, 6, render.Span{Start: 2, End: 10}),
		),
	},
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Want:   rows(20, 43, render.Span{Start: 20, End: 44}),
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Want:   rows(20, 43, render.Span{Start: 20, End: 44}),
	},
	{
		// pixel centers on the boundary are inside on the right,
		// but outside at the bottom
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Want:   rows(20, 43, render.Span{Start: 20, End: 45}),
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Want:   rows(21, 44, render.Span{Start: 21, End: 45}),
	},
	{
		Name:   "thin_sliver",
		Path:   rectangle(5, 10.2, 59, 10.4),
		Width:  64,
		Height: 64,
		Want:   render.Spans{},
	},
	{
		Name:   "large_coordinates",
		Path:   rectangle(-10000, -10000, 10000, 10000),
		Width:  64,
		Height: 64,
		Want:   rows(0, 63, render.Span{Start: 0, End: 64}),
	},
}

// offsetRectangle builds a w×h rectangle at (x+offset, y+offset).
func offsetRectangle(x, y, w, h, offset float32) *render.RawPath {
	return rectangle(x+offset, y+offset, x+w+offset, y+h+offset)
}
