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

package render

import (
	"iter"
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Span is a half-open range [Start, End) of pixels within one row.
type Span struct {
	Start, End uint16
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return int(s.End) - int(s.Start)
}

// Spans describes the pixels covered by a shape.  The map key is the row
// index and the value lists the covered pixel ranges of that row, ordered
// by increasing x.  Rows without coverage are absent and no span is empty.
//
// The map itself has no defined order.  Use [Spans.All] or [Spans.Rows] to
// visit the rows from top to bottom.
type Spans map[uint16][]Span

// Rows returns the covered row indices in increasing order.
func (s Spans) Rows() []uint16 {
	return slices.Sorted(maps.Keys(s))
}

// All iterates over the covered rows in increasing order.
func (s Spans) All() iter.Seq2[uint16, []Span] {
	return func(yield func(uint16, []Span) bool) {
		for _, row := range s.Rows() {
			if !yield(row, s[row]) {
				return
			}
		}
	}
}

// Area returns the total number of covered pixels.
func (s Spans) Area() int {
	total := 0
	for _, spans := range s {
		for _, span := range spans {
			total += span.Len()
		}
	}
	return total
}

// Bounds returns the smallest rectangle, in pixel coordinates, which
// contains all covered pixels.  For an empty map, the zero rectangle is
// returned.
func (s Spans) Bounds() rect.Rect {
	var r rect.Rect
	first := true
	for row, spans := range s {
		y0, y1 := float64(row), float64(row)+1
		x0, x1 := float64(spans[0].Start), float64(spans[len(spans)-1].End)
		if first {
			r = rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
			first = false
			continue
		}
		r.LLx = min(r.LLx, x0)
		r.LLy = min(r.LLy, y0)
		r.URx = max(r.URx, x1)
		r.URy = max(r.URy, y1)
	}
	return r
}

// Scanlines determines which pixels of a width×height image lie inside
// the path p, using the even-odd rule.  A pixel is inside if its center is.
//
// Subpaths are closed implicitly only by Close segments.  An open subpath
// leaves unpaired crossings, which contribute no coverage.
//
// The result is newly allocated and holds no references to p.
// All coordinates of p must be finite.
func Scanlines(p *FlatPath, width, height uint16) Spans {
	return pairStops(collectStops(p, height), width)
}

// collectStops walks the path and records, for every row, the x positions
// where an edge crosses the row center.
func collectStops(p *FlatPath, height uint16) map[uint16][]float32 {
	stops := make(map[uint16][]float32)
	h := float32(height)

	addEdge := func(a, b Point) {
		// Skip horizontal edges and edges outside the image
		if a.Y == b.Y {
			return
		}
		if a.Y < 0 && b.Y < 0 {
			return
		}
		if a.Y >= h && b.Y >= h {
			return
		}

		// Row centers covered by the edge
		cur := max(roundHalfDown(min(a.Y, b.Y))+0.5, 0.5)
		last := min(roundHalfDown(max(a.Y, b.Y))-0.5, h-0.5)

		if a.X == b.X {
			for ; cur <= last; cur++ {
				row := uint16(math.Floor(float64(cur)))
				stops[row] = append(stops[row], a.X)
			}
			return
		}

		dxdy := (b.X - a.X) / (b.Y - a.Y)
		for ; cur <= last; cur++ {
			row := uint16(math.Floor(float64(cur)))
			// the conversion prevents a fused multiply-add, which
			// would make the result platform dependent
			x := a.X + float32((cur-a.Y)*dxdy)
			stops[row] = append(stops[row], x)
		}
	}

	current, subpath := Origin, Origin
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case MoveTo:
			subpath = s.Point
			current = subpath
		case LineTo:
			addEdge(current, s.Point)
			current = s.Point
		case Close:
			if current != subpath {
				addEdge(current, subpath)
			}
			current, subpath = Origin, Origin
		}
	}

	return stops
}

// pairStops sorts the stops of every row and turns consecutive pairs into
// spans.  Spans are clipped to [0, width]; empty spans and rows are
// dropped.  A trailing unpaired stop is ignored.
func pairStops(stops map[uint16][]float32, width uint16) Spans {
	w := float32(width)

	res := make(Spans, len(stops))
	for row, xs := range stops {
		slices.Sort(xs)

		var spans []Span
		for i := 0; i+1 < len(xs); i += 2 {
			span := Span{
				Start: clampPixel(roundHalfDown(xs[i]), w),
				End:   clampPixel(round32(xs[i+1]), w),
			}
			if span.Start < span.End {
				spans = append(spans, span)
			}
		}
		if len(spans) > 0 {
			res[row] = spans
		}
	}
	return res
}

// roundHalfDown rounds x to an integer.  Values with a fractional part of
// at most 0.5 are rounded down, others up.  The fractional part carries
// the sign of x, so negative values are always rounded down.
func roundHalfDown(x float32) float32 {
	f := float64(x)
	if f-math.Trunc(f) <= 0.5 {
		return float32(math.Floor(f))
	}
	return float32(math.Ceil(f))
}

// round32 rounds x to the nearest integer, rounding half away from zero.
func round32(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// clampPixel clamps an integer valued x to [0, w] and converts it to a
// pixel index.
func clampPixel(x, w float32) uint16 {
	if x < 0 {
		return 0
	}
	if x > w {
		return uint16(w)
	}
	return uint16(x)
}
