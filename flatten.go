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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Flattening tolerances.  Changing these values changes the rendered
// output, so they are part of the reproducibility contract of the package.
const (
	// CurveDeviation is the flatness threshold for cubic Bézier curves, in
	// device pixels.  A curve piece is replaced by its chord once the
	// length of its control polygon exceeds the chord length by less than
	// this amount.
	CurveDeviation float32 = 0.25

	// ArcLineLength bounds the length of the line segments used to
	// approximate circular arcs, in device pixels.
	ArcLineLength = 0.75
)

// Safety limits for pathological input.
const (
	// maxCurveSplits limits the subdivision depth of a single curve, so
	// that at most 2^maxCurveSplits line segments are generated.
	maxCurveSplits = 16

	// maxArcSteps limits the number of line segments used for one arc.
	maxArcSteps = 1 << 16
)

// Flatten replaces all curves and arcs in p by straight line segments.
// MoveTo, LineTo and Close segments are copied unchanged, so that
// flattening an already flat path is the identity.
//
// After a Close segment the current point is the origin, consistent with
// the way [Scanlines] interprets flattened paths.
func Flatten(p *RawPath) *FlatPath {
	res := &FlatPath{segs: make([]FlatSegment, 0, len(p.segs))}

	current := Origin
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case MoveTo:
			res.MoveTo(s.Point)
			current = s.Point
		case LineTo:
			res.LineTo(s.Point)
			current = s.Point
		case CurveTo:
			for _, pt := range FlattenCurve(current, s.Control1, s.Control2, s.Point)[1:] {
				res.LineTo(pt)
			}
			current = s.Point
		case ArcBy:
			pts := FlattenArc(current, s.Center, s.Angle)
			for _, pt := range pts[1:] {
				res.LineTo(pt)
			}
			current = pts[len(pts)-1]
		case Close:
			res.Close()
			current = Origin
		}
	}
	return res
}

// FlattenTransformed flattens p and maps the result through m.
//
// The tolerances [CurveDeviation] and [ArcLineLength] apply to the
// transformed path, so that curves and arcs stay smooth when m enlarges
// the geometry.  Curves are flattened after transforming their control
// points.  Arcs are divided in the untransformed coordinates, with the
// step count scaled by the largest stretch factor of m.
func FlattenTransformed(p *RawPath, m matrix.Matrix) *FlatPath {
	if m == matrix.Identity {
		return Flatten(p)
	}

	stretch := maxStretch(m)
	res := &FlatPath{segs: make([]FlatSegment, 0, len(p.segs))}

	current := Origin
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case MoveTo:
			res.MoveTo(transformPoint(m, s.Point))
			current = s.Point
		case LineTo:
			res.LineTo(transformPoint(m, s.Point))
			current = s.Point
		case CurveTo:
			pts := FlattenCurve(
				transformPoint(m, current),
				transformPoint(m, s.Control1),
				transformPoint(m, s.Control2),
				transformPoint(m, s.Point))
			for _, pt := range pts[1:] {
				res.LineTo(pt)
			}
			current = s.Point
		case ArcBy:
			pts := flattenArc(current, s.Center, s.Angle, stretch)
			for _, pt := range pts[1:] {
				res.LineTo(transformPoint(m, pt))
			}
			current = pts[len(pts)-1]
		case Close:
			res.Close()
			current = Origin
		}
	}
	return res
}

// maxStretch returns the largest factor by which the linear part of m
// changes the length of a vector, i.e. its largest singular value.
func maxStretch(m matrix.Matrix) float64 {
	a, b, c, d := m[0], m[1], m[2], m[3]
	s := (a*a + b*b + c*c + d*d) / 2
	det := a*d - b*c
	return math.Sqrt(s + math.Sqrt(max(s*s-det*det, 0)))
}

// FlattenCurve approximates a cubic Bézier curve by a polyline.
// The result starts with start and ends with end, exactly.
//
// The curve is split at the parameter midpoint until every piece is flat
// to within [CurveDeviation].  An explicit stack is used instead of
// recursion.
func FlattenCurve(start, c1, c2, end Point) []Point {
	type piece struct {
		p     [4]Point
		depth int
	}

	points := []Point{start}
	stack := []piece{{p: [4]Point{start, c1, c2, end}}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.depth >= maxCurveSplits || isCurveFlat(&c.p) {
			points = append(points, c.p[3])
			continue
		}

		// push the second half first, so that the first half is
		// processed next
		left, right := splitCurveMid(&c.p)
		stack = append(stack,
			piece{p: right, depth: c.depth + 1},
			piece{p: left, depth: c.depth + 1})
	}
	return points
}

// isCurveFlat reports whether the control polygon of the curve is less
// than CurveDeviation longer than its chord.
func isCurveFlat(p *[4]Point) bool {
	l1, l2, l3 := p[1].Sub(p[0]), p[2].Sub(p[1]), p[3].Sub(p[2])

	// The Manhattan length bounds the Euclidean length from above, so a
	// control polygon which is short in this metric is always flat.
	if l1.GridLen()+l2.GridLen()+l3.GridLen() < CurveDeviation {
		return true
	}

	return l1.Len()+l2.Len()+l3.Len() < p[3].Sub(p[0]).Len()+CurveDeviation
}

// splitCurveMid splits a cubic Bézier curve at t=0.5, using de Casteljau's
// construction.
func splitCurveMid(p *[4]Point) (left, right [4]Point) {
	const t = 0.5

	p01 := p[0].Add(p[1].Sub(p[0]).Mul(t))
	p12 := p[1].Add(p[2].Sub(p[1]).Mul(t))
	p23 := p[2].Add(p[3].Sub(p[2]).Mul(t))

	p012 := p01.Add(p12.Sub(p01).Mul(t))
	p123 := p12.Add(p23.Sub(p12).Mul(t))

	mid := p012.Add(p123.Sub(p012).Mul(t))

	left = [4]Point{p[0], p01, p012, mid}
	right = [4]Point{mid, p123, p23, p[3]}
	return left, right
}

// FlattenArc approximates a circular arc by a polyline.  The arc starts at
// start and turns by angle degrees around center.
//
// If start equals center, or if angle is zero, the result is just start.
// Otherwise the arc is divided into ceil(|angle| * radius / ArcLineLength)
// steps of equal angle.  The result starts with start and ends with the
// rotated end point, computed directly from the full angle.
//
// Intermediate points are obtained by repeated rotation.  The rotation is
// accumulated in double precision, and only the emitted points are rounded
// to single precision.
func FlattenArc(start, center Point, angle float64) []Point {
	return flattenArc(start, center, angle, 1)
}

// flattenArc implements FlattenArc.  The segment length is measured after
// scaling by stretch.
func flattenArc(start, center Point, angle, stretch float64) []Point {
	if start == center || angle == 0 {
		return []Point{start}
	}

	radius := start.Sub(center)
	rad := angle * (math.Pi / 180)

	n := math.Ceil(math.Abs(rad) * float64(radius.Len()) * stretch / ArcLineLength)
	steps := int(min(max(n, 1), maxArcSteps))

	points := make([]Point, 0, steps+1)
	points = append(points, start)

	c := center.Wide()
	v := radius.Wide()

	sin, cos := math.Sincos(rad / float64(steps))
	part := v
	for range steps - 1 {
		part = rotate(part, sin, cos)
		points = append(points, narrow(c.Add(part)))
	}

	sin, cos = math.Sincos(rad)
	points = append(points, narrow(c.Add(rotate(v, sin, cos))))

	return points
}

// rotate applies the rotation with the given sine and cosine to v.
func rotate(v vec.Vec2, sin, cos float64) vec.Vec2 {
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
