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
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func rectPath(x1, y1, x2, y2 float32) *RawPath {
	return (&RawPath{}).
		MoveTo(Point{X: x1, Y: y1}).
		LineTo(Point{X: x2, Y: y1}).
		LineTo(Point{X: x2, Y: y2}).
		LineTo(Point{X: x1, Y: y2}).
		Close()
}

func newRGBFrame(w, h uint16) *Frame {
	stride := 3 * int(w)
	return &Frame{
		Width:     w,
		Height:    h,
		Stride:    stride,
		ColorType: RGB24,
		Planes:    [][]byte{make([]byte, stride*int(h))},
	}
}

// covered returns the pixels of an RGB24 frame which are not black.
func covered(f *Frame) Spans {
	res := Spans{}
	for y := range f.Height {
		var spans []Span
		for x := range f.Width {
			i := int(y)*f.Stride + 3*int(x)
			if f.Planes[0][i] == 0 && f.Planes[0][i+1] == 0 && f.Planes[0][i+2] == 0 {
				continue
			}
			if n := len(spans); n > 0 && spans[n-1].End == x {
				spans[n-1].End++
			} else {
				spans = append(spans, Span{Start: x, End: x + 1})
			}
		}
		if spans != nil {
			res[y] = spans
		}
	}
	return res
}

func TestRender(t *testing.T) {
	r := NewRenderer([]Event{
		{
			Trigger: TriggerTime{Start: 0, End: 1000},
			Objects: []Object{
				Color{R: 255, G: 0, B: 0},
				Shape{Path: rectPath(1, 1, 4, 3)},
			},
		},
		{
			Trigger: TriggerTime{Start: 1000, End: 2000},
			Objects: []Object{Shape{Path: rectPath(0, 0, 10, 10)}},
		},
	})

	f := newRGBFrame(10, 10)
	if err := r.Render(context.Background(), f, RenderTime(500)); err != nil {
		t.Fatal(err)
	}

	want := Spans{
		1: {{Start: 1, End: 4}},
		2: {{Start: 1, End: 4}},
	}
	if got := covered(f); !slices.Equal(got.Rows(), want.Rows()) || !slices.Equal(got[1], want[1]) || !slices.Equal(got[2], want[2]) {
		t.Errorf("covered %v, want %v", got, want)
	}

	i := 1*f.Stride + 3*1
	if px := f.Planes[0][i : i+3]; !slices.Equal(px, []byte{255, 0, 0}) {
		t.Errorf("pixel (1,1) = %v, want red", px)
	}
}

func TestRenderRGBA32(t *testing.T) {
	p := rectPath(10, 10, 44, 44)
	r := NewRenderer([]Event{
		{
			Trigger: TriggerID("box"),
			Objects: []Object{Color{R: 1, G: 2, B: 3}, Alpha(4), Shape{Path: p}},
		},
	})

	const size = 64
	f := &Frame{Width: size, Height: size, Stride: 4 * size, ColorType: RGBA32,
		Planes: [][]byte{make([]byte, 4*size*size)}}
	if err := r.Render(context.Background(), f, RenderID("box")); err != nil {
		t.Fatal(err)
	}

	spans := Scanlines(Flatten(p), size, size)
	inside := func(x, y uint16) bool {
		for _, s := range spans[y] {
			if s.Start <= x && x < s.End {
				return true
			}
		}
		return false
	}

	for y := range uint16(size) {
		for x := range uint16(size) {
			i := int(y)*f.Stride + 4*int(x)
			px := f.Planes[0][i : i+4]
			want := []byte{0, 0, 0, 0}
			if inside(x, y) {
				want = []byte{1, 2, 3, 4}
			}
			if !slices.Equal(px, want) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, px, want)
			}
		}
	}
}

func TestRenderNoActiveEvents(t *testing.T) {
	r := NewRenderer([]Event{
		{Trigger: TriggerID("title"), Objects: []Object{Shape{Path: rectPath(0, 0, 4, 4)}}},
	})

	f := newRGBFrame(4, 4)
	if err := r.Render(context.Background(), f, RenderID("credits")); err != nil {
		t.Fatal(err)
	}
	if got := covered(f); len(got) != 0 {
		t.Errorf("covered %v, want nothing", got)
	}
}

// TestRenderTransformOrder checks that the transformation given last is
// applied first.
func TestRenderTransformOrder(t *testing.T) {
	r := NewRenderer([]Event{
		{
			Trigger: TriggerTime{Start: 0, End: 10},
			Objects: []Object{
				Translate{X: 2, Y: 0},
				Scale{X: 2, Y: 2},
				Shape{Path: rectPath(0, 0, 1, 1)},
			},
		},
	})

	f := newRGBFrame(8, 4)
	if err := r.Render(context.Background(), f, RenderTime(0)); err != nil {
		t.Fatal(err)
	}

	got := covered(f)
	if !slices.Equal(got.Rows(), []uint16{0, 1}) {
		t.Fatalf("covered rows %v, want [0 1]", got.Rows())
	}
	for _, row := range got.Rows() {
		if want := []Span{{Start: 2, End: 4}}; !slices.Equal(got[row], want) {
			t.Errorf("row %d: %v, want %v", row, got[row], want)
		}
	}
}

func TestRenderNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	r := NewRenderer([]Event{
		{
			Trigger: TriggerTime{Start: 0, End: 10},
			Objects: []Object{
				Shape{Path: rectPath(0, 0, 4, 4)},
				Shape{Path: rectPath(0, 0, nan, 4)},
			},
		},
	})

	f := newRGBFrame(4, 4)
	err := r.Render(context.Background(), f, RenderTime(0))
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got %v, want ErrNonFinite", err)
	}
	if got := covered(f); len(got) != 0 {
		t.Errorf("frame was modified: %v", got)
	}
}

func TestRenderInvalidFrame(t *testing.T) {
	r := NewRenderer(nil)
	f := &Frame{Width: 4, Height: 4, Stride: 1, ColorType: RGB24, Planes: [][]byte{make([]byte, 4)}}
	if err := r.Render(context.Background(), f, RenderTime(0)); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("got %v, want ErrInvalidFrame", err)
	}
}

func TestRenderCanceled(t *testing.T) {
	r := NewRenderer([]Event{
		{Trigger: TriggerTime{Start: 0, End: 10}, Objects: []Object{Shape{Path: rectPath(0, 0, 4, 4)}}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newRGBFrame(4, 4)
	if err := r.Render(ctx, f, RenderTime(0)); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

// TestRenderWorkers checks that the result does not depend on the number
// of concurrent workers.
func TestRenderWorkers(t *testing.T) {
	var events []Event
	for i := range 50 {
		x := float32(i % 10 * 6)
		y := float32(i / 10 * 6)
		events = append(events, Event{
			Trigger: TriggerTime{Start: 0, End: 100},
			Objects: []Object{
				Color{R: uint8(5 * i), G: 100, B: 200},
				Shape{Path: (&RawPath{}).
					MoveTo(Point{X: x + 8, Y: y + 4}).
					ArcBy(Point{X: x + 4, Y: y + 4}, 360).
					Close()},
			},
		})
	}

	var frames [][]byte
	for _, workers := range []int{1, 4, 0} {
		r := NewRenderer(events)
		r.Workers = workers

		f := newRGBFrame(64, 32)
		if err := r.Render(context.Background(), f, RenderTime(50)); err != nil {
			t.Fatal(err)
		}
		frames = append(frames, f.Planes[0])
	}

	for i := 1; i < len(frames); i++ {
		if !slices.Equal(frames[0], frames[i]) {
			t.Errorf("frame %d differs from frame 0", i)
		}
	}
}

func TestRenderImage(t *testing.T) {
	r := NewRenderer([]Event{
		{
			Trigger: TriggerID("x"),
			Objects: []Object{
				Color{R: 10, G: 20, B: 30},
				Alpha(128),
				Shape{Path: rectPath(1, 1, 3, 2)},
			},
		},
	})

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := r.RenderImage(context.Background(), img, RenderID("x")); err != nil {
		t.Fatal(err)
	}

	want := color.RGBAModel.Convert(color.NRGBA{R: 10, G: 20, B: 30, A: 128}).(color.RGBA)
	for y := range 4 {
		for x := range 4 {
			got := img.RGBAAt(x, y)
			inside := y == 1 && (x == 1 || x == 2)
			if inside && got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
			if !inside && got != (color.RGBA{}) {
				t.Errorf("pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if err := r.RenderImage(context.Background(), empty, RenderID("x")); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("empty image: got %v, want ErrInvalidFrame", err)
	}
}

func TestPaintImageOffset(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 14, 22))
	PaintImage(img, Spans{
		0: {{Start: 0, End: 2}},
		1: {{Start: 3, End: 9}},
		7: {{Start: 0, End: 4}},
	}, color.White)

	want := []byte{
		255, 255, 0, 0,
		0, 0, 0, 255,
	}
	if !slices.Equal(img.Pix, want) {
		t.Errorf("got %v, want %v", img.Pix, want)
	}
}

func TestCombine(t *testing.T) {
	translate := Translate{X: 2, Y: -1}.matrix()
	scale := Scale{X: 2, Y: 3}.matrix()
	shear := Shear{X: 0.5}.matrix()

	if got := combine(nil); got != matrix.Identity {
		t.Errorf("combine(nil) = %v", got)
	}
	if got, want := combine([]matrix.Matrix{translate, scale}), (matrix.Matrix{2, 0, 0, 3, 2, -1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// the combined matrix agrees with applying the transformations one by
	// one, last to first
	transforms := []matrix.Matrix{shear, translate, scale}
	m := combine(transforms)
	for _, pt := range []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: -2}} {
		want := pt
		for i := len(transforms) - 1; i >= 0; i-- {
			want = transformPoint(transforms[i], want)
		}
		if got := transformPoint(m, pt); got != want {
			t.Errorf("%v maps to %v, want %v", pt, got, want)
		}
	}
}

// TestRenderScaledArc checks that a small circle enlarged by a Scale tag
// is flattened at its final size.
func TestRenderScaledArc(t *testing.T) {
	circle := (&RawPath{}).
		MoveTo(Point{X: 2, Y: 1}).
		ArcBy(Point{X: 1, Y: 1}, 360).
		Close()
	r := NewRenderer([]Event{
		{
			Trigger: TriggerID("dot"),
			Objects: []Object{Scale{X: 30, Y: 30}, Shape{Path: circle}},
		},
	})

	f := newRGBFrame(64, 64)
	if err := r.Render(context.Background(), f, RenderID("dot")); err != nil {
		t.Fatal(err)
	}

	// a polygon with few corners would leave out much of the disk area
	got := covered(f).Area()
	want := math.Pi * 30 * 30
	if math.Abs(float64(got)-want) > 0.01*want {
		t.Errorf("covered %d pixels, disk area is %.0f", got, want)
	}
}
