package testcases

import (
	"math"

	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

var fillCases = []TestCase{
	{
		Name:   "quad_trimmed",
		Path:   rectangle(1, 1, 6, 4),
		Width:  5,
		Height: 5,
		Want:   rows(1, 3, render.Span{Start: 1, End: 5}),
	},
	{
		Name: "unclosed",
		Path: (&render.RawPath{}).
			MoveTo(pt(1, 0)).
			LineTo(pt(1, 3)).
			LineTo(pt(4, 3)),
		Width:  4,
		Height: 3,
		Want:   render.Spans{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Want:   rows(10, 43, render.Span{Start: 10, End: 44}),
	},
	{
		Name:   "rectangle_clipped",
		Path:   rectangle(-5, -5, 8, 8),
		Width:  4,
		Height: 4,
		Want:   rows(0, 3, render.Span{Start: 0, End: 4}),
	},
	{
		Name:   "rectangle_outside",
		Path:   rectangle(-10, -10, -2, -2),
		Width:  16,
		Height: 16,
		Want:   render.Spans{},
	},
	{
		Name:   "empty_viewport",
		Path:   rectangle(1, 1, 4, 4),
		Width:  0,
		Height: 0,
		Want:   render.Spans{},
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
// With the even-odd rule, the central pentagon is left empty.
func fivePointStar(cx, cy, r float64) *render.RawPath {
	pts := make([]render.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(float32(cx+r*math.Cos(angle)), float32(cy+r*math.Sin(angle)))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&render.RawPath{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p.LineTo(pts[i])
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
