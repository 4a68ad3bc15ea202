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
	"seehuhn.de/go/geom/matrix"
)

// Event is a parsed script event: a trigger and the objects to draw while
// the event is active.  Objects are processed in order; style objects
// affect the geometry objects which follow them within the same event.
type Event struct {
	Trigger EventTrigger
	Objects []Object
}

// Active reports whether the event is shown for the given render trigger.
func (e *Event) Active(t RenderTrigger) bool {
	if e.Trigger == nil {
		return false
	}
	return e.Trigger.matches(t)
}

// EventTrigger decides when an event is active.
// The implementations are [TriggerID] and [TriggerTime].
type EventTrigger interface {
	matches(RenderTrigger) bool
}

// TriggerID activates an event when a frame is rendered for the same id.
type TriggerID string

func (id TriggerID) matches(t RenderTrigger) bool {
	rid, ok := t.(RenderID)
	return ok && string(rid) == string(id)
}

// TriggerTime activates an event for render times in [Start, End),
// in milliseconds.
type TriggerTime struct {
	Start, End uint32
}

func (tt TriggerTime) matches(t RenderTrigger) bool {
	ms, ok := t.(RenderTime)
	return ok && tt.Start <= uint32(ms) && uint32(ms) < tt.End
}

// RenderTrigger selects the events to draw on a frame.
// The implementations are [RenderID] and [RenderTime].
type RenderTrigger interface {
	isRenderTrigger()
}

// RenderID selects the events with a matching [TriggerID].
type RenderID string

// RenderTime selects the events whose [TriggerTime] contains the given
// time, in milliseconds.
type RenderTime uint32

func (RenderID) isRenderTrigger()   {}
func (RenderTime) isRenderTrigger() {}

// Object is an element of an event.
type Object interface {
	isObject()
}

// Shape is vector geometry, filled with the current color.
type Shape struct {
	Path *RawPath
}

// Color sets the fill color for the following shapes.
type Color struct {
	R, G, B uint8
}

// Alpha sets the opacity for the following shapes.  It is stored in the
// alpha channel of frames which have one.
type Alpha uint8

// Translate moves the following shapes.
type Translate struct {
	X, Y float64
}

// Scale scales the following shapes, relative to the origin.
type Scale struct {
	X, Y float64
}

// Rotate rotates the following shapes around the origin, by the given
// angle in degrees.
type Rotate float64

// Shear shears the following shapes.  X is the horizontal shift per unit
// of y, Y the vertical shift per unit of x.
type Shear struct {
	X, Y float64
}

// Transform applies an arbitrary affine transformation to the following
// shapes.
type Transform matrix.Matrix

func (Shape) isObject()     {}
func (Color) isObject()     {}
func (Alpha) isObject()     {}
func (Translate) isObject() {}
func (Scale) isObject()     {}
func (Rotate) isObject()    {}
func (Shear) isObject()     {}
func (Transform) isObject() {}

// transformTag is implemented by the objects which change the geometry
// transformation.
type transformTag interface {
	Object
	matrix() matrix.Matrix
}

func (t Translate) matrix() matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, t.X, t.Y}
}

func (s Scale) matrix() matrix.Matrix {
	return matrix.Scale(s.X, s.Y)
}

func (r Rotate) matrix() matrix.Matrix {
	return matrix.RotateDeg(float64(r))
}

func (s Shear) matrix() matrix.Matrix {
	return matrix.Matrix{1, s.Y, s.X, 1, 0, 0}
}

func (t Transform) matrix() matrix.Matrix {
	return matrix.Matrix(t)
}

// style is the drawing state while the objects of an event are processed.
type style struct {
	color      Color
	alpha      Alpha
	transforms []matrix.Matrix
}

// defaultStyle is the state at the start of every event: opaque white,
// no transformation.
func defaultStyle() style {
	return style{
		color: Color{R: 255, G: 255, B: 255},
		alpha: 255,
	}
}
