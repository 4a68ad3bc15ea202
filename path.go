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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RawSegment is a single drawing instruction of a [RawPath].
// The implementations are [MoveTo], [LineTo], [CurveTo], [ArcBy] and [Close].
type RawSegment interface {
	isRawSegment()
}

// FlatSegment is a drawing instruction which may appear in a [FlatPath].
// Only [MoveTo], [LineTo] and [Close] implement this interface.
type FlatSegment interface {
	RawSegment
	isFlatSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight line from the current point to Point.
type LineTo struct {
	Point Point
}

// CurveTo draws a cubic Bézier curve from the current point to Point.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// ArcBy draws a circular arc around Center, starting at the current point.
// Angle is the signed sweep in degrees.  The end point is implied: it is
// the current point rotated by Angle about Center.
type ArcBy struct {
	Center Point
	Angle  float64
}

// Close marks the end of a subpath.  It does not add a line by itself;
// the rasterizer closes the gap to the subpath start.
type Close struct{}

func (MoveTo) isRawSegment()  {}
func (LineTo) isRawSegment()  {}
func (CurveTo) isRawSegment() {}
func (ArcBy) isRawSegment()   {}
func (Close) isRawSegment()   {}

func (MoveTo) isFlatSegment() {}
func (LineTo) isFlatSegment() {}
func (Close) isFlatSegment()  {}

// RawPath is a sequence of drawing instructions which may contain curves
// and arcs.  The order of the segments is significant.
//
// The builder methods append to the path and return the path itself, so
// that calls can be chained.  Once a path has been handed to [Flatten] it
// must not be modified any more.
type RawPath struct {
	segs []RawSegment
}

// MoveTo appends a [MoveTo] segment.
func (p *RawPath) MoveTo(pt Point) *RawPath {
	p.segs = append(p.segs, MoveTo{Point: pt})
	return p
}

// LineTo appends a [LineTo] segment.
func (p *RawPath) LineTo(pt Point) *RawPath {
	p.segs = append(p.segs, LineTo{Point: pt})
	return p
}

// CurveTo appends a [CurveTo] segment.
func (p *RawPath) CurveTo(c1, c2, end Point) *RawPath {
	p.segs = append(p.segs, CurveTo{Control1: c1, Control2: c2, Point: end})
	return p
}

// ArcBy appends an [ArcBy] segment.  The angle is given in degrees.
func (p *RawPath) ArcBy(center Point, angle float64) *RawPath {
	p.segs = append(p.segs, ArcBy{Center: center, Angle: angle})
	return p
}

// Close appends a [Close] segment.
func (p *RawPath) Close() *RawPath {
	p.segs = append(p.segs, Close{})
	return p
}

// Segments returns the segments of the path, in drawing order.
// The returned slice must not be modified.
func (p *RawPath) Segments() []RawSegment {
	return p.segs
}

// Len returns the number of segments in the path.
func (p *RawPath) Len() int {
	return len(p.segs)
}

// Validate checks that all coordinates and angles of the path are finite.
// The flattening and rasterization code assumes this without checking.
func (p *RawPath) Validate() error {
	for i, seg := range p.segs {
		ok := true
		switch s := seg.(type) {
		case MoveTo:
			ok = s.Point.IsFinite()
		case LineTo:
			ok = s.Point.IsFinite()
		case CurveTo:
			ok = s.Control1.IsFinite() && s.Control2.IsFinite() && s.Point.IsFinite()
		case ArcBy:
			ok = s.Center.IsFinite() && !math.IsNaN(s.Angle) && !math.IsInf(s.Angle, 0)
		}
		if !ok {
			return fmt.Errorf("segment %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// RawPathFromGeom converts a geom path into a RawPath.
// Quadratic Bézier segments are converted to cubic ones.
//
// In geom paths a segment following ClosePath continues at the start of
// the closed subpath.  The conversion inserts the corresponding MoveTo,
// since RawPath continues at the origin instead.
func RawPathFromGeom(gp path.Path) *RawPath {
	res := &RawPath{}

	var current, subpath vec.Vec2
	closed := false
	for cmd, pts := range gp {
		if closed && cmd != path.CmdMoveTo && cmd != path.CmdClose {
			res.MoveTo(narrow(subpath))
		}
		closed = false

		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
			res.MoveTo(narrow(current))
		case path.CmdLineTo:
			current = pts[0]
			res.LineTo(narrow(current))
		case path.CmdQuadTo:
			// degree elevation: the cubic control points lie 2/3 of the
			// way from the end points towards the quadratic control point
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			current = pts[1]
			res.CurveTo(narrow(c1), narrow(c2), narrow(current))
		case path.CmdCubeTo:
			current = pts[2]
			res.CurveTo(narrow(pts[0]), narrow(pts[1]), narrow(current))
		case path.CmdClose:
			res.Close()
			current = subpath
			closed = true
		}
	}
	return res
}

// FlatPath is a path which consists of straight line segments only.
// It is produced by [Flatten] and consumed by [Scanlines].
type FlatPath struct {
	segs []FlatSegment
}

// MoveTo appends a [MoveTo] segment.
func (p *FlatPath) MoveTo(pt Point) *FlatPath {
	p.segs = append(p.segs, MoveTo{Point: pt})
	return p
}

// LineTo appends a [LineTo] segment.
func (p *FlatPath) LineTo(pt Point) *FlatPath {
	p.segs = append(p.segs, LineTo{Point: pt})
	return p
}

// Close appends a [Close] segment.
func (p *FlatPath) Close() *FlatPath {
	p.segs = append(p.segs, Close{})
	return p
}

// Segments returns the segments of the path, in drawing order.
// The returned slice must not be modified.
func (p *FlatPath) Segments() []FlatSegment {
	return p.segs
}

// Len returns the number of segments in the path.
func (p *FlatPath) Len() int {
	return len(p.segs)
}

// Transform returns a new path with every point mapped through m.
// The receiver is not modified.
//
// The flattening tolerances are not adjusted, so a path which is enlarged
// by m may show its line segments.  Use [FlattenTransformed] instead to
// flatten and transform in one step.
func (p *FlatPath) Transform(m matrix.Matrix) *FlatPath {
	res := &FlatPath{segs: make([]FlatSegment, 0, len(p.segs))}
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case MoveTo:
			res.MoveTo(transformPoint(m, s.Point))
		case LineTo:
			res.LineTo(transformPoint(m, s.Point))
		case Close:
			res.Close()
		}
	}
	return res
}

// transformPoint maps pt through m, computing in double precision.
func transformPoint(m matrix.Matrix, pt Point) Point {
	x, y := float64(pt.X), float64(pt.Y)
	return Point{
		X: float32(m[0]*x + m[2]*y + m[4]),
		Y: float32(m[1]*x + m[3]*y + m[5]),
	}
}

// Data converts the path into a geom path.
//
// A FlatPath implicitly starts at the origin, and continues at the origin
// after every Close.  Explicit MoveTo commands are inserted where needed
// to keep this behaviour in the geom representation.
func (p *FlatPath) Data() *path.Data {
	res := &path.Data{}
	needMove := true
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case MoveTo:
			res.MoveTo(s.Point.Wide())
			needMove = false
		case LineTo:
			if needMove {
				res.MoveTo(Origin.Wide())
				needMove = false
			}
			res.LineTo(s.Point.Wide())
		case Close:
			if !needMove {
				res.Close()
			}
			needMove = true
		}
	}
	return res
}
