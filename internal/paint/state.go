/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package paint is the tool controller of the editor: it owns the canvas state,
// turns pointer events into pencil strokes, line previews and resize drags, and
// pushes the resulting pixels to a Display.
package paint

import (
	"fmt"

	"pixelpaint/internal/geom"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/resize"
)

// Mode is the active drawing tool.
type Mode int

const (
	None Mode = iota
	Pencil
	Line
)

func (m Mode) String() string {
	switch m {
	case Pencil:
		return ToolPencil
	case Line:
		return ToolLine
	default:
		return "none"
	}
}

// Toolbar ids.
const (
	ToolPencil = "pencil"
	ToolLine   = "line"
	ToolColor  = "color"
)

// State is the canvas owned by a session.
type State struct {
	Buffer *raster.Buffer
	Mode   Mode
	Color  raster.Color
	// Origin is the device position of canvas pixel (0,0).
	Origin geom.Point
	// Scale is the number of device units per canvas pixel; values below one
	// count as one.
	Scale int
}

func NewState(buf *raster.Buffer, c raster.Color) *State {
	return &State{Buffer: buf, Color: c, Scale: 1}
}

func (s *State) scale() int { return max(s.Scale, 1) }

// Local converts device coordinates into canvas pixel coordinates. Points left
// of or above the canvas stay negative.
func (s *State) Local(x, y int) geom.Point {
	k := s.scale()
	return geom.P(floorDiv(x-s.Origin.X, k), floorDiv(y-s.Origin.Y, k))
}

// Rect is the canvas in device coordinates.
func (s *State) Rect() resize.Rect {
	k := s.scale()
	return resize.Rect{
		Left: s.Origin.X, Top: s.Origin.Y,
		Width: s.Buffer.Width() * k, Height: s.Buffer.Height() * k,
	}
}

func (s *State) Summary() string {
	return fmt.Sprintf("%dx%d mode=%s color=%s",
		s.Buffer.Width(), s.Buffer.Height(), s.Mode, s.Color.Hex())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Display presents a full frame of flat RGBA bytes.
type Display interface {
	Present(width int, pix []byte)
}

// SketchDisplay is implemented by displays that draw the resize outline.
type SketchDisplay interface {
	ShowSketch(r resize.Rect)
	HideSketch()
}

// ToolbarDisplay is implemented by displays with toolbar buttons.
type ToolbarDisplay interface {
	ToolSelected(id string, selected bool)
}

// ColorDisplay is implemented by displays with a color picker.
type ColorDisplay interface {
	ShowColor(c raster.Color, open bool)
}
