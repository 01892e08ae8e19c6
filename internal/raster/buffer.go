/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package raster implements the pixel buffer of the canvas together with
// segment clipping against the canvas bounds and Bresenham line drawing.
//
// Pixel access outside the buffer is a programming error: At and Set panic
// with an *OutOfBoundsError. Callers clip first (see Clip) so strokes that
// leave the canvas never reach the buffer.
package raster

import (
	"errors"
	"fmt"

	"pixelpaint/internal/geom"
)

// ErrOutOfBounds is matched by every *OutOfBoundsError via errors.Is.
var ErrOutOfBounds = errors.New("pixel out of bounds")

// OutOfBoundsError reports a coordinate outside a width x height buffer.
type OutOfBoundsError struct {
	Point         geom.Point
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel %v outside %dx%d buffer", e.Point, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Buffer is a row-major width x height grid of colors.
// len(pixels) == width*height holds for the lifetime of a buffer.
type Buffer struct {
	width, height int
	pixels        []Color
}

// Blank returns an opaque white buffer. Non-positive sizes are clamped to 1.
func Blank(width, height int) *Buffer {
	return Filled(width, height, White)
}

// Filled returns a buffer with every pixel set to c. Non-positive sizes are clamped to 1.
func Filled(width, height int, c Color) *Buffer {
	width, height = max(width, 1), max(height, 1)
	px := make([]Color, width*height)
	for i := range px {
		px[i] = c
	}
	return &Buffer{width: width, height: height, pixels: px}
}

// FromRGBA builds a buffer from flat RGBA bytes, four per pixel, rows of the given width.
func FromRGBA(width int, pix []byte) (*Buffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("from rgba: invalid width %d", width)
	}
	stride := width * 4
	if len(pix) == 0 || len(pix)%stride != 0 {
		return nil, fmt.Errorf("from rgba: %d bytes is not a whole number of %d-pixel rows", len(pix), width)
	}
	b := &Buffer{width: width, height: len(pix) / stride, pixels: make([]Color, len(pix)/4)}
	for i := range b.pixels {
		o := i * 4
		b.pixels[i] = Color{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
	}
	return b, nil
}

// Width is the number of pixel columns.
func (b *Buffer) Width() int { return b.width }

// Height is the number of pixel rows.
func (b *Buffer) Height() int { return b.height }

// Contains reports whether p addresses a pixel of the buffer.
func (b *Buffer) Contains(p geom.Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Index returns the position of p in the row-major pixel slice.
func (b *Buffer) Index(p geom.Point) int { return p.Y*b.width + p.X }

func (b *Buffer) check(p geom.Point) {
	if !b.Contains(p) {
		panic(&OutOfBoundsError{Point: p, Width: b.width, Height: b.height})
	}
}

// At returns the color at p.
func (b *Buffer) At(p geom.Point) Color {
	b.check(p)
	return b.pixels[b.Index(p)]
}

// Set overwrites the color at p.
func (b *Buffer) Set(p geom.Point, c Color) {
	b.check(p)
	b.pixels[b.Index(p)] = c
}

// Clone returns an independent copy, used as a scratch buffer for previews.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{width: b.width, height: b.height, pixels: append([]Color(nil), b.pixels...)}
}

// CopyRegion copies the inclusive rectangle [srcFrom, srcTo] of b into dst with
// its top-left corner at dstFrom. Both rectangles are validated before any pixel
// is written. An empty source rectangle copies nothing.
func (b *Buffer) CopyRegion(srcFrom, srcTo geom.Point, dst *Buffer, dstFrom geom.Point) error {
	w := srcTo.X - srcFrom.X + 1
	h := srcTo.Y - srcFrom.Y + 1
	if w <= 0 || h <= 0 {
		return nil
	}
	for _, c := range []struct {
		buf *Buffer
		p   geom.Point
	}{
		{b, srcFrom}, {b, srcTo},
		{dst, dstFrom}, {dst, dstFrom.Add(geom.P(w-1, h-1))},
	} {
		if !c.buf.Contains(c.p) {
			return &OutOfBoundsError{Point: c.p, Width: c.buf.width, Height: c.buf.height}
		}
	}
	for row := 0; row < h; row++ {
		si := b.Index(geom.P(srcFrom.X, srcFrom.Y+row))
		di := dst.Index(geom.P(dstFrom.X, dstFrom.Y+row))
		copy(dst.pixels[di:di+w], b.pixels[si:si+w])
	}
	return nil
}

// RGBA returns the pixels as flat RGBA bytes, the form display sinks consume.
func (b *Buffer) RGBA() []byte {
	out := make([]byte, len(b.pixels)*4)
	for i, c := range b.pixels {
		o := i * 4
		out[o], out[o+1], out[o+2], out[o+3] = c.R, c.G, c.B, c.A
	}
	return out
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pixels {
		if b.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}
