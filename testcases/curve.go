package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

var curveCases = []TestCase{
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_shallow",
		Path:   cubicCurve(10, 32, 20, 28, 44, 28, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_deep",
		Path:   cubicCurve(10, 60, 10, 0, 54, 0, 54, 60),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(10, 32, 25, 0, 39, 64, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 50, 60, 0, 4, 0, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubicCurve(10, 32, 25, 32.5, 39, 31.5, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Want:   render.Spans{},
	},
	{
		// a straight cubic side needs no subdivision
		Name: "cubic_collinear_side",
		Path: (&render.RawPath{}).
			MoveTo(pt(2, 2)).
			CurveTo(pt(2, 4), pt(2, 6), pt(2, 8)).
			LineTo(pt(8, 8)).
			LineTo(pt(8, 2)).
			Close(),
		Width:  10,
		Height: 10,
		Want:   rows(2, 7, render.Span{Start: 2, End: 8}),
	},
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   quadraticSShape(),
		Width:  64,
		Height: 64,
	},
}

// cubicCurve builds a closed path with one cubic Bézier segment,
// closed by a straight line.
func cubicCurve(x0, y0, x1, y1, x2, y2, x3, y3 float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(x0, y0)).
		CurveTo(pt(x1, y1), pt(x2, y2), pt(x3, y3)).
		Close()
}

// quadraticCurve builds a closed path with one quadratic Bézier segment.
// Quadratic segments only occur in imported geometry, so the path is
// built as a geom path and converted.
func quadraticCurve(x0, y0, x1, y1, x2, y2 float64) *render.RawPath {
	return render.RawPathFromGeom(func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdClose, nil)
	})
}

// quadraticSShape builds an S-shaped outline from two quadratic segments.
func quadraticSShape() *render.RawPath {
	return render.RawPathFromGeom(func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 32}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: 21, Y: 10}, {X: 32, Y: 32}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: 43, Y: 54}, {X: 54, Y: 32}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 54, Y: 60}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 10, Y: 60}}) {
			return
		}
		yield(path.CmdClose, nil)
	})
}
