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
	"errors"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestRawPathBuilder(t *testing.T) {
	p := (&RawPath{}).
		MoveTo(Point{X: 1, Y: 2}).
		LineTo(Point{X: 3, Y: 4}).
		CurveTo(Point{X: 5, Y: 6}, Point{X: 7, Y: 8}, Point{X: 9, Y: 10}).
		ArcBy(Point{X: 0, Y: 0}, 45).
		Close()

	want := []RawSegment{
		MoveTo{Point: Point{X: 1, Y: 2}},
		LineTo{Point: Point{X: 3, Y: 4}},
		CurveTo{Control1: Point{X: 5, Y: 6}, Control2: Point{X: 7, Y: 8}, Point: Point{X: 9, Y: 10}},
		ArcBy{Center: Point{X: 0, Y: 0}, Angle: 45},
		Close{},
	}
	if !slices.Equal(p.Segments(), want) {
		t.Errorf("got %v, want %v", p.Segments(), want)
	}
	if p.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", p.Len(), len(want))
	}
}

func TestRawPathValidate(t *testing.T) {
	nan := float32(math.NaN())

	cases := []struct {
		name string
		p    *RawPath
		ok   bool
	}{
		{"empty", &RawPath{}, true},
		{"finite", (&RawPath{}).MoveTo(Point{X: 1, Y: 1}).ArcBy(Point{}, 720).Close(), true},
		{"nan_move", (&RawPath{}).MoveTo(Point{X: nan}), false},
		{"nan_control", (&RawPath{}).CurveTo(Point{}, Point{Y: nan}, Point{}), false},
		{"inf_angle", (&RawPath{}).ArcBy(Point{}, math.Inf(-1)), false},
		{"nan_angle", (&RawPath{}).ArcBy(Point{}, math.NaN()), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrNonFinite) {
				t.Errorf("got %v, want ErrNonFinite", err)
			}
		})
	}
}

func TestRawPathFromGeom(t *testing.T) {
	gp := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 3, Y: 3}, {X: 6, Y: 0}}) &&
			yield(path.CmdClose, nil) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 5}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	}

	got := RawPathFromGeom(gp).Segments()
	want := []RawSegment{
		MoveTo{Point: Point{X: 0, Y: 0}},
		CurveTo{Control1: Point{X: 2, Y: 2}, Control2: Point{X: 4, Y: 2}, Point: Point{X: 6, Y: 0}},
		Close{},
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 0, Y: 5}},
		CurveTo{Control1: Point{X: 1, Y: 1}, Control2: Point{X: 2, Y: 2}, Point: Point{X: 3, Y: 3}},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestFlatPathTransform(t *testing.T) {
	p := (&FlatPath{}).
		MoveTo(Point{X: 1, Y: 2}).
		LineTo(Point{X: 3, Y: 2}).
		Close()

	got := p.Transform(matrix.Matrix{2, 0, 0, 3, 10, 20})

	want := []FlatSegment{
		MoveTo{Point: Point{X: 12, Y: 26}},
		LineTo{Point: Point{X: 16, Y: 26}},
		Close{},
	}
	if !slices.Equal(got.Segments(), want) {
		t.Errorf("got %v, want %v", got.Segments(), want)
	}

	orig := []FlatSegment{
		MoveTo{Point: Point{X: 1, Y: 2}},
		LineTo{Point: Point{X: 3, Y: 2}},
		Close{},
	}
	if !slices.Equal(p.Segments(), orig) {
		t.Errorf("receiver was modified: %v", p.Segments())
	}
}

func TestFlatPathData(t *testing.T) {
	p := (&FlatPath{}).
		LineTo(Point{X: 4, Y: 0}).
		LineTo(Point{X: 4, Y: 4}).
		Close().
		Close().
		MoveTo(Point{X: 1, Y: 1}).
		LineTo(Point{X: 2, Y: 1})

	d := p.Data()

	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}
	wantCoords := []vec.Vec2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4},
		{X: 1, Y: 1}, {X: 2, Y: 1},
	}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("commands: got %v, want %v", d.Cmds, wantCmds)
	}
	if !slices.Equal(d.Coords, wantCoords) {
		t.Errorf("coordinates: got %v, want %v", d.Coords, wantCoords)
	}
}
