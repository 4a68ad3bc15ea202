package testcases

import (
	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

var arcCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 2.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_large",
		Path:   circle(128, 128, 120),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "circle_clockwise",
		Path:   (&render.RawPath{}).MoveTo(pt(57, 32)).ArcBy(pt(32, 32), -360).Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pie_quarter",
		Path:   pie(32, 32, 25, 90),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pie_three_quarters",
		Path:   pie(32, 32, 25, -270),
		Width:  64,
		Height: 64,
	},
	{
		Name: "arc_zero_angle",
		Path: (&render.RawPath{}).
			MoveTo(pt(1, 1)).
			ArcBy(pt(3, 3), 0).
			LineTo(pt(6, 1)).
			LineTo(pt(6, 4)).
			LineTo(pt(1, 4)).
			Close(),
		Width:  5,
		Height: 5,
		Want:   rows(1, 3, render.Span{Start: 1, End: 5}),
	},
	{
		Name: "arc_around_current_point",
		Path: (&render.RawPath{}).
			MoveTo(pt(1, 1)).
			ArcBy(pt(1, 1), 90).
			LineTo(pt(6, 1)).
			LineTo(pt(6, 4)).
			LineTo(pt(1, 4)).
			Close(),
		Width:  5,
		Height: 5,
		Want:   rows(1, 3, render.Span{Start: 1, End: 5}),
	},
}

// circle builds a full circle from a single arc segment.
func circle(cx, cy, r float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(cx+r, cy)).
		ArcBy(pt(cx, cy), 360).
		Close()
}

// pie builds a circular sector which starts at angle 0 and sweeps by the
// given number of degrees.
func pie(cx, cy, r float32, sweep float64) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy)).
		ArcBy(pt(cx, cy), sweep).
		Close()
}
