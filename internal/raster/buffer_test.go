/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package raster

import (
	"errors"
	"testing"

	"pixelpaint/internal/geom"
)

func TestBlankIsOpaqueWhite(t *testing.T) {
	b := Blank(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", b.Width(), b.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := b.At(geom.P(x, y)); got != White {
				t.Fatalf("pixel (%d,%d) = %+v, want white", x, y, got)
			}
		}
	}
}

func TestBlankClampsDegenerateSize(t *testing.T) {
	b := Blank(0, -4)
	if b.Width() != 1 || b.Height() != 1 {
		t.Fatalf("expected 1x1, got %dx%d", b.Width(), b.Height())
	}
}

func TestSetAtAndIndex(t *testing.T) {
	b := Blank(4, 3)
	b.Set(geom.P(2, 1), Black)
	if b.At(geom.P(2, 1)) != Black {
		t.Fatalf("expected black at (2,1)")
	}
	if got := b.Index(geom.P(2, 1)); got != 6 {
		t.Fatalf("Index = %d, want 6", got)
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	b := Blank(2, 2)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", r)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("unexpected panic value: %v", err)
		}
		if oob.Point != geom.P(2, 0) {
			t.Fatalf("unexpected point in error: %v", oob.Point)
		}
	}()
	b.At(geom.P(2, 0))
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	b := Blank(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative coordinate")
		}
	}()
	b.Set(geom.P(0, -1), Black)
}

func TestFromRGBARoundTrip(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	b, err := FromRGBA(2, pix)
	if err != nil {
		t.Fatalf("FromRGBA error: %v", err)
	}
	if b.Height() != 2 {
		t.Fatalf("height = %d, want 2", b.Height())
	}
	if got := b.At(geom.P(1, 1)); got != (Color{13, 14, 15, 16}) {
		t.Fatalf("pixel (1,1) = %+v", got)
	}
	out := b.RGBA()
	for i := range pix {
		if out[i] != pix[i] {
			t.Fatalf("byte %d = %d, want %d", i, out[i], pix[i])
		}
	}
}

func TestFromRGBARejectsRaggedInput(t *testing.T) {
	if _, err := FromRGBA(2, make([]byte, 12)); err == nil {
		t.Fatalf("expected error for partial row")
	}
	if _, err := FromRGBA(0, make([]byte, 8)); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Blank(2, 2)
	c := b.Clone()
	c.Set(geom.P(0, 0), Black)
	if b.At(geom.P(0, 0)) != White {
		t.Fatalf("mutating the clone changed the source buffer")
	}
	if b.Equal(c) {
		t.Fatalf("expected buffers to differ")
	}
}

func TestCopyRegion(t *testing.T) {
	src := Blank(4, 4)
	red := RGB(255, 0, 0)
	src.Set(geom.P(1, 1), red)
	src.Set(geom.P(2, 2), Black)
	dst := Blank(5, 5)
	if err := src.CopyRegion(geom.P(1, 1), geom.P(2, 2), dst, geom.P(3, 3)); err != nil {
		t.Fatalf("CopyRegion error: %v", err)
	}
	if dst.At(geom.P(3, 3)) != red || dst.At(geom.P(4, 4)) != Black {
		t.Fatalf("region not copied to destination offset")
	}
	if dst.At(geom.P(4, 3)) != White || dst.At(geom.P(0, 0)) != White {
		t.Fatalf("unexpected pixels outside the copied region")
	}
}

func TestCopyRegionRejectsOverflowWithoutWriting(t *testing.T) {
	src := Filled(4, 4, Black)
	dst := Blank(3, 3)
	err := src.CopyRegion(geom.P(0, 0), geom.P(3, 3), dst, geom.P(0, 0))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if !dst.Equal(Blank(3, 3)) {
		t.Fatalf("destination was modified by a rejected copy")
	}
	if err := src.CopyRegion(geom.P(-1, 0), geom.P(1, 1), dst, geom.P(0, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected source bounds error, got %v", err)
	}
}

func TestCopyRegionEmptyIsNoop(t *testing.T) {
	src := Filled(2, 2, Black)
	dst := Blank(2, 2)
	if err := src.CopyRegion(geom.P(1, 0), geom.P(0, 1), dst, geom.P(5, 5)); err != nil {
		t.Fatalf("empty copy returned error: %v", err)
	}
	if !dst.Equal(Blank(2, 2)) {
		t.Fatalf("empty copy wrote pixels")
	}
}

func TestColorFormatting(t *testing.T) {
	c := Color{R: 255, G: 16, B: 0, A: 255}
	if c.Hex() != "#ff1000" {
		t.Fatalf("Hex = %s", c.Hex())
	}
	if c.CSS() != "rgba(255,16,0,1)" {
		t.Fatalf("CSS = %s", c.CSS())
	}
	got, err := ParseHex("#f10")
	if err != nil || got != RGB(0xff, 0x11, 0x00) {
		t.Fatalf("ParseHex short form = %+v, %v", got, err)
	}
	if _, err := ParseHex("#12345"); err == nil {
		t.Fatalf("expected error for malformed hex")
	}
}
