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
	"strings"
)

// ColorType describes the memory layout of the pixels of a [Frame].
type ColorType int

// Supported pixel layouts.
const (
	RGB24  ColorType = iota // packed, 3 bytes per pixel
	BGR24                   // packed, 3 bytes per pixel
	RGBA32                  // packed, 4 bytes per pixel
	BGRA32                  // packed, 4 bytes per pixel
	R8G8B8                  // planar, one plane per channel
)

var colorTypeNames = map[ColorType]string{
	RGB24:  "RGB24",
	BGR24:  "BGR24",
	RGBA32: "RGBA32",
	BGRA32: "BGRA32",
	R8G8B8: "R8G8B8",
}

// ColorTypeByName returns the color type with the given name.
// The comparison is case-insensitive.
func ColorTypeByName(name string) (ColorType, error) {
	upper := strings.ToUpper(name)
	for ct, ctName := range colorTypeNames {
		if ctName == upper {
			return ct, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownColorType)
}

func (ct ColorType) String() string {
	if name, ok := colorTypeNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("ColorType(%d)", int(ct))
}

// Planes returns the number of image planes used by the color type.
func (ct ColorType) Planes() int {
	if ct == R8G8B8 {
		return 3
	}
	return 1
}

// BytesPerPixel returns the size of one pixel within a plane.
func (ct ColorType) BytesPerPixel() int {
	switch ct {
	case RGB24, BGR24:
		return 3
	case RGBA32, BGRA32:
		return 4
	default:
		return 1
	}
}

// Frame is a caller-owned image buffer.  Row y of plane i starts at
// offset y*Stride in Planes[i].
type Frame struct {
	Width, Height uint16
	Stride        int
	ColorType     ColorType
	Planes        [][]byte
}

// Validate checks that the frame is non-empty and that its planes are
// large enough for the given dimensions.
func (f *Frame) Validate() error {
	if f.Width == 0 || f.Height == 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if _, ok := colorTypeNames[f.ColorType]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownColorType, f.ColorType)
	}
	if f.Stride < int(f.Width)*f.ColorType.BytesPerPixel() {
		return fmt.Errorf("%w: stride %d too small for width %d",
			ErrInvalidFrame, f.Stride, f.Width)
	}
	if len(f.Planes) != f.ColorType.Planes() {
		return fmt.Errorf("%w: %d planes, %v needs %d",
			ErrInvalidFrame, len(f.Planes), f.ColorType, f.ColorType.Planes())
	}
	minSize := int(f.Height) * f.Stride
	for i, plane := range f.Planes {
		if len(plane) < minSize {
			return fmt.Errorf("%w: plane %d has %d bytes, need %d",
				ErrInvalidFrame, i, len(plane), minSize)
		}
	}
	return nil
}

// Fill sets all pixels covered by s to the given color.  For color types
// with an alpha channel, the alpha value is stored as well.  No blending
// takes place.
//
// Spans outside the frame are ignored.  The frame must be valid.
func (f *Frame) Fill(s Spans, c Color, a Alpha) {
	var channels []byte
	switch f.ColorType {
	case RGB24, R8G8B8:
		channels = []byte{c.R, c.G, c.B}
	case BGR24:
		channels = []byte{c.B, c.G, c.R}
	case RGBA32:
		channels = []byte{c.R, c.G, c.B, byte(a)}
	case BGRA32:
		channels = []byte{c.B, c.G, c.R, byte(a)}
	}

	for row, spans := range s {
		if row >= f.Height {
			continue
		}
		for _, span := range spans {
			end := min(span.End, f.Width)
			if span.Start >= end {
				continue
			}

			if f.ColorType == R8G8B8 {
				base := int(row) * f.Stride
				for i, plane := range f.Planes {
					line := plane[base+int(span.Start) : base+int(end)]
					for x := range line {
						line[x] = channels[i]
					}
				}
				continue
			}

			bpp := len(channels)
			base := int(row)*f.Stride + int(span.Start)*bpp
			line := f.Planes[0][base : base+int(end-span.Start)*bpp]
			for x := 0; x < len(line); x += bpp {
				copy(line[x:x+bpp], channels)
			}
		}
	}
}
