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

import "errors"

var (
	// ErrNonFinite is returned when path geometry contains NaN or
	// infinite values.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrInvalidFrame is returned when a frame's dimensions, stride or
	// planes are inconsistent.
	ErrInvalidFrame = errors.New("invalid frame")

	// ErrUnknownColorType is returned by ColorTypeByName for unsupported
	// pixel layouts.
	ErrUnknownColorType = errors.New("unknown color type")
)
