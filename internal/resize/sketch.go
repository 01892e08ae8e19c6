/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package resize

import (
	"fmt"

	"pixelpaint/internal/geom"
)

// DefaultMinSketch is the smallest outline edge in device units.
const DefaultMinSketch = 50

// Rect is an axis-aligned rectangle in device coordinates.
type Rect struct {
	Left, Top     int
	Width, Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.Left, r.Top)
}

// SketchOptions tunes how the outline follows the pointer.
type SketchOptions struct {
	// Centered grows the outline symmetrically, for hosts that keep the canvas
	// centred in its window.
	Centered bool
	// Min is the smallest width and height; zero means DefaultMinSketch.
	Min int
}

// Offsets is the distance between the pointer and the dragged edge when the
// drag starts, so the edge does not jump to the pointer.
func Offsets(h Handle, canvas Rect, pointer geom.Point) geom.Point {
	var off geom.Point
	switch {
	case h.Has(West):
		off.X = canvas.Left - pointer.X
	case h.Has(East):
		off.X = pointer.X - canvas.Right()
	}
	if h.Has(South) {
		off.Y = pointer.Y - canvas.Bottom()
	}
	return off
}

// Sketch returns the outline for the current pointer position.
func Sketch(h Handle, canvas Rect, off, pointer geom.Point, opts SketchOptions) Rect {
	minEdge := opts.Min
	if minEdge <= 0 {
		minEdge = DefaultMinSketch
	}
	out := canvas
	if h.Has(South) {
		out.Height = max(pointer.Y-off.Y-canvas.Top, minEdge)
	}

	var diff int
	switch {
	case h.Has(West):
		diff = canvas.Left - pointer.X - off.X
	case h.Has(East):
		diff = pointer.X - off.X - canvas.Right()
	default:
		return out
	}
	switch {
	case opts.Centered && diff >= 0:
		out.Width = max(canvas.Width+2*diff, minEdge)
		out.Left = canvas.Left - (out.Width-canvas.Width)/2
	case h.Has(West):
		out.Width = max(canvas.Width+diff, minEdge)
		out.Left = canvas.Right() - out.Width
	default:
		out.Width = max(canvas.Width+diff, minEdge)
	}
	return out
}
