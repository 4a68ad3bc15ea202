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
	"fmt"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
)

// Renderer draws the events of a parsed script onto frames.
//
// A Renderer does not modify its events and can be used for several
// frames concurrently, as long as every call uses its own frame.
type Renderer struct {
	// Workers limits the number of shapes rasterized concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	events []Event
}

// NewRenderer returns a Renderer for the given events.
// The events are used in the given order.
func NewRenderer(events []Event) *Renderer {
	return &Renderer{events: events}
}

// Events returns the events of the renderer.
func (r *Renderer) Events() []Event {
	return r.events
}

// job is a single shape to rasterize, together with the style in effect
// when the shape was encountered.
type job struct {
	event      int
	path       *RawPath
	transforms []matrix.Matrix
	color      Color
	alpha      Alpha
}

// jobs collects the shapes of all events which are active for t.
func (r *Renderer) jobs(t RenderTrigger) []job {
	var res []job
	for i := range r.events {
		ev := &r.events[i]
		if !ev.Active(t) {
			continue
		}

		st := defaultStyle()
		for _, obj := range ev.Objects {
			switch o := obj.(type) {
			case Shape:
				if o.Path == nil {
					continue
				}
				res = append(res, job{
					event:      i,
					path:       o.Path,
					transforms: st.transforms,
					color:      st.color,
					alpha:      st.alpha,
				})
			case Color:
				st.color = o
			case Alpha:
				st.alpha = o
			case transformTag:
				// full slice expression, so that jobs never share a
				// backing array which is appended to later
				st.transforms = append(st.transforms[:len(st.transforms):len(st.transforms)], o.matrix())
			}
		}
	}
	return res
}

// Render draws all events which are active for t onto f.
//
// Shapes are rasterized concurrently, and then painted in script order.
// An error is returned if the frame is invalid, or if some shape has
// non-finite coordinates; in this case f is left unchanged.
func (r *Renderer) Render(ctx context.Context, f *Frame, t RenderTrigger) error {
	if err := f.Validate(); err != nil {
		return err
	}

	jobs := r.jobs(t)
	spans, err := r.rasterize(ctx, jobs, f.Width, f.Height)
	if err != nil {
		return err
	}

	rows := 0
	for i, j := range jobs {
		f.Fill(spans[i], j.color, j.alpha)
		rows += len(spans[i])
	}

	Logger().Debug("frame rendered",
		"trigger", t,
		"shapes", len(jobs),
		"rows", rows)
	return nil
}

// RenderImage draws all events which are active for t onto dst.
// The frame size is taken from the bounds of dst.  Alpha values are
// stored as non-premultiplied alpha; no blending takes place.
func (r *Renderer) RenderImage(ctx context.Context, dst draw.Image, t RenderTrigger) error {
	b := dst.Bounds()
	if b.Empty() || b.Dx() > 0xFFFF || b.Dy() > 0xFFFF {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidFrame, b.Dx(), b.Dy())
	}

	jobs := r.jobs(t)
	spans, err := r.rasterize(ctx, jobs, uint16(b.Dx()), uint16(b.Dy()))
	if err != nil {
		return err
	}

	for i, j := range jobs {
		c := color.NRGBA{R: j.color.R, G: j.color.G, B: j.color.B, A: uint8(j.alpha)}
		PaintImage(dst, spans[i], c)
	}

	Logger().Debug("image rendered",
		"trigger", t,
		"shapes", len(jobs))
	return nil
}

// rasterize converts the shapes of all jobs into spans, using up to
// r.Workers goroutines.
func (r *Renderer) rasterize(ctx context.Context, jobs []job, width, height uint16) ([]Spans, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	res := make([]Spans, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := j.path.Validate(); err != nil {
				Logger().Warn("shape rejected", "event", j.event, "error", err)
				return fmt.Errorf("event %d: %w", j.event, err)
			}
			res[i] = rasterizeShape(j.path, j.transforms, width, height)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// rasterizeShape flattens p in device space and computes the covered
// pixels.  The transformation added last is applied first.
func rasterizeShape(p *RawPath, transforms []matrix.Matrix, width, height uint16) Spans {
	return Scanlines(FlattenTransformed(p, combine(transforms)), width, height)
}

// combine returns the matrix which applies transforms[len-1] first and
// transforms[0] last.
func combine(transforms []matrix.Matrix) matrix.Matrix {
	m := matrix.Identity
	for _, t := range transforms {
		m = compose(m, t)
	}
	return m
}

// compose returns the matrix which applies inner first, then outer.
func compose(outer, inner matrix.Matrix) matrix.Matrix {
	a, b := outer, inner
	return matrix.Matrix{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// PaintImage sets all pixels of dst covered by s to c.  Row 0 and column 0
// of the span map correspond to the top-left corner of dst.Bounds().
func PaintImage(dst draw.Image, s Spans, c color.Color) {
	b := dst.Bounds()
	src := image.NewUniform(c)
	for row, spans := range s {
		y := b.Min.Y + int(row)
		for _, span := range spans {
			r := image.Rect(b.Min.X+int(span.Start), y, b.Min.X+int(span.End), y+1)
			draw.Draw(dst, r.Intersect(b), src, image.Point{}, draw.Src)
		}
	}
}
