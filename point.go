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

	"seehuhn.de/go/geom/vec"
)

// Point is a position or displacement in device space.
// Coordinates are stored in single precision, matching the precision of
// parsed script geometry.
type Point struct {
	X, Y float32
}

// Origin is the current point of a path before any MoveTo.
var Origin = Point{}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float32) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the Euclidean length of p.
func (p Point) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// GridLen returns the Manhattan length |x|+|y| of p.
// It is never smaller than Len, which makes it a cheap upper bound.
func (p Point) GridLen() float32 {
	return abs32(p.X) + abs32(p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return isFinite32(p.X) && isFinite32(p.Y)
}

// Wide converts p to double precision.
func (p Point) Wide() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// narrow rounds a double precision vector to a Point.
func narrow(v vec.Vec2) Point {
	return Point{X: float32(v.X), Y: float32(v.Y)}
}

// abs32 returns the absolute value of a float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func isFinite32(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
