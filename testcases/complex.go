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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	render "github.com/Doko-Demo-Doa/ssb-implementation"
)

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   render.RawPathFromGeom(mixedLinesCurves()),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "mixed_lines_arcs",
		Path:   roundedRectangle(8, 16, 56, 48, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral_closed",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_band",
		Path:   zigzagBand(10, 32, 54, 20, 6),
		Width:  64,
		Height: 64,
	},
}

// mixedLinesCurves is given in the geom path representation, to cover the
// conversion of quadratic segments.
func mixedLinesCurves() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 50}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 20, Y: 30}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: 32, Y: 10}, {X: 44, Y: 30}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 54, Y: 50}}) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{{X: 48, Y: 60}, {X: 16, Y: 60}, {X: 10, Y: 50}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// roundedRectangle is the usual shape of a subtitle box.
func roundedRectangle(x1, y1, x2, y2, r float32) *render.RawPath {
	return (&render.RawPath{}).
		MoveTo(pt(x1+r, y1)).
		LineTo(pt(x2-r, y1)).
		ArcBy(pt(x2-r, y1+r), 90).
		LineTo(pt(x2, y2-r)).
		ArcBy(pt(x2-r, y2-r), 90).
		LineTo(pt(x1+r, y2)).
		ArcBy(pt(x1+r, y2-r), 90).
		LineTo(pt(x1, y1+r)).
		ArcBy(pt(x1+r, y1+r), 90).
		Close()
}

// glyphLikeShape resembles a lower case "d": a bowl with a counter and a
// stem, drawn as a single subpath.
func glyphLikeShape() *render.RawPath {
	const kappa = 0.5522847498307936

	var cx, cy float32 = 32, 38
	var r float32 = 18
	k := r * kappa

	p := (&render.RawPath{}).
		MoveTo(pt(cx+r, cy)).
		CurveTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CurveTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CurveTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CurveTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	// the counter, in reverse direction
	var ir float32 = 8
	ik := ir * kappa
	return p.LineTo(pt(cx+ir, cy)).
		CurveTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CurveTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CurveTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CurveTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// spiralPath draws a spiral from the inside out and closes it with a
// straight line, giving a shape with many self-intersections.
func spiralPath(cx, cy, rMin, rMax, turns float64) *render.RawPath {
	steps := max(int(turns*32), 8)

	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&render.RawPath{}).MoveTo(pt(float32(cx+rMin), float32(cy)))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p.LineTo(pt(float32(cx+r*math.Cos(angle)), float32(cy+r*math.Sin(angle))))
	}
	return p.Close()
}

// figureEight consists of two circles which touch at (cx, cy), traced as
// a single closed subpath.
func figureEight(cx, cy, size float32) *render.RawPath {
	r := size / 2
	return (&render.RawPath{}).
		MoveTo(pt(cx, cy)).
		ArcBy(pt(cx, cy-r), 360).
		ArcBy(pt(cx, cy+r), -360).
		Close()
}

func zigzagBand(x1, cy, x2, amplitude, thickness float32) *render.RawPath {
	const segments = 5
	segWidth := (x2 - x1) / segments

	peak := func(i int) float32 {
		switch {
		case i == 0 || i == segments:
			return cy
		case i%2 == 1:
			return cy - amplitude
		default:
			return cy + amplitude
		}
	}

	p := (&render.RawPath{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		p.LineTo(pt(x1+float32(i)*segWidth, peak(i)))
	}
	for i := segments; i >= 0; i-- {
		p.LineTo(pt(x1+float32(i)*segWidth, peak(i)+thickness))
	}
	return p.Close()
}
