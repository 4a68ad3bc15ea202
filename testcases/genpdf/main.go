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

// Command genpdf draws every test case into a PDF file and renders it with
// Ghostscript, to obtain reference images for visual comparison.
//
// The path is flattened and transformed before it is written, so that the
// reference shows exactly the polygons which the rasterizer sees.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/Doko-Demo-Doa/ssb-implementation/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// one point per pixel
	paper := &pdf.Rectangle{
		URx: float64(max(tc.Width, 1)),
		URy: float64(max(tc.Height, 1)),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, white shape
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left, frames use top-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	page.SetFillColor(color.DeviceGray(1))

	flat := tc.Flat()
	p := flat.Data()
	if len(p.Cmds) == 0 {
		return page.Close()
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdLineTo:
			page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.FillEvenOdd()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the rasterizer
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
