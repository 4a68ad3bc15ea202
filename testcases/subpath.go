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

var subpathCases = []TestCase{
	{
		Name: "hole",
		Path: (&render.RawPath{}).
			MoveTo(pt(0, 0)).
			LineTo(pt(9, 0)).
			LineTo(pt(9, 10)).
			LineTo(pt(0, 10)).
			Close().
			MoveTo(pt(2, 2)).
			LineTo(pt(2, 5)).
			LineTo(pt(7, 5)).
			LineTo(pt(7, 2)).
			Close(),
		Width:  10,
		Height: 10,
		Want: merge(
			rows(0, 1, render.Span{Start: 0, End: 9}),
			rows(2, 4, render.Span{Start: 0, End: 2}, render.Span{Start: 7, End: 9}),
			rows(5, 9, render.Span{Start: 0, End: 9}),
		),
	},
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Want: merge(
			rows(10, 23, render.Span{Start: 10, End: 40}),
			rows(24, 39, render.Span{Start: 10, End: 24}, render.Span{Start: 40, End: 54}),
			rows(40, 53, render.Span{Start: 24, End: 54}),
		),
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Want: merge(
			rows(7, 19, render.Span{Start: 7, End: 57}),
			rows(20, 43, render.Span{Start: 7, End: 20}, render.Span{Start: 44, End: 57}),
			rows(44, 56, render.Span{Start: 7, End: 57}),
		),
	},
	{
		Name:   "ring_round",
		Path:   roundRing(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
	{
		// without a MoveTo, the path starts at the origin
		Name: "close_without_move",
		Path: (&render.RawPath{}).
			LineTo(pt(4, 0)).
			LineTo(pt(4, 4)).
			LineTo(pt(0, 4)).
			Close(),
		Width:  6,
		Height: 6,
		Want:   rows(0, 3, render.Span{Start: 0, End: 4}),
	},
}

func twoTriangles(cx1, cy1, cx2, cy2, size float32) *render.RawPath {
	p := &render.RawPath{}
	for _, c := range []render.Point{pt(cx1, cy1), pt(cx2, cy2)} {
		p.MoveTo(pt(c.X, c.Y-size)).
			LineTo(pt(c.X+size, c.Y+size)).
			LineTo(pt(c.X-size, c.Y+size)).
			Close()
	}
	return p
}

func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float32) *render.RawPath {
	p := rectangle(x1a, y1a, x2a, y2a)
	return appendRectangle(p, x1b, y1b, x2b, y2b)
}

// ringShape draws two concentric squares with the same orientation.
// The inner square becomes a hole under the even-odd rule.
func ringShape(cx, cy, outer, inner float32) *render.RawPath {
	p := rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	return appendRectangle(p, cx-inner, cy-inner, cx+inner, cy+inner)
}

func roundRing(cx, cy, outer, inner float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(cx+outer, cy)).
		ArcBy(pt(cx, cy), 360).
		Close().
		MoveTo(pt(cx+inner, cy)).
		ArcBy(pt(cx, cy), -360).
		Close()
}

func multipleRings(cx, cy float32) *render.RawPath {
	rings := []struct{ cx, cy, outer, inner float32 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &render.RawPath{}
	for _, r := range rings {
		appendRectangle(p, r.cx-r.outer, r.cy-r.outer, r.cx+r.outer, r.cy+r.outer)
		appendRectangle(p, r.cx-r.inner, r.cy-r.inner, r.cx+r.inner, r.cy+r.inner)
	}
	return p
}

func manySmallShapes(rows, cols int) *render.RawPath {
	const size = 5
	const spacing = 14

	p := &render.RawPath{}
	for row := range rows {
		for col := range cols {
			cx := 10 + float32(col)*spacing
			cy := 10 + float32(row)*spacing
			p.MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}

func appendRectangle(p *render.RawPath, x1, y1, x2, y2 float32) *render.RawPath {
	return p.MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
