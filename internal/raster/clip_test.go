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
	"testing"

	"pixelpaint/internal/geom"
)

func TestClipKeepsInBoundsSegments(t *testing.T) {
	const w, h = 10, 8
	for y0 := 0; y0 < h; y0 += 3 {
		for x0 := 0; x0 < w; x0 += 3 {
			for y1 := 0; y1 < h; y1 += 2 {
				for x1 := 0; x1 < w; x1 += 2 {
					s := geom.Seg(geom.P(x0, y0), geom.P(x1, y1))
					got, ok := Clip(s, w, h)
					if !ok || got != s {
						t.Fatalf("Clip(%v) = %v,%v; want unchanged", s, got, ok)
					}
				}
			}
		}
	}
}

func TestClipRejectsSegmentsOffCanvas(t *testing.T) {
	cases := []geom.Segment{
		geom.Seg(geom.P(20, 20), geom.P(30, 40)),
		geom.Seg(geom.P(-5, -5), geom.P(-1, 20)),
		geom.Seg(geom.P(-5, 10), geom.P(9, 10)),
		geom.Seg(geom.P(3, -7), geom.P(40, -1)),
	}
	for _, s := range cases {
		if got, ok := Clip(s, 10, 10); ok {
			t.Fatalf("Clip(%v) = %v, want none", s, got)
		}
	}
}

func TestClipVertical(t *testing.T) {
	got, ok := Clip(geom.Seg(geom.P(3, -5), geom.P(3, 20)), 10, 10)
	if !ok || got != geom.Seg(geom.P(3, 0), geom.P(3, 9)) {
		t.Fatalf("vertical clip = %v,%v", got, ok)
	}
	got, ok = Clip(geom.Seg(geom.P(3, 20), geom.P(3, 4)), 10, 10)
	if !ok || got != geom.Seg(geom.P(3, 4), geom.P(3, 9)) {
		t.Fatalf("reversed vertical clip = %v,%v", got, ok)
	}
}

func TestClipHorizontal(t *testing.T) {
	got, ok := Clip(geom.Seg(geom.P(-3, 2), geom.P(25, 2)), 10, 10)
	if !ok || got != geom.Seg(geom.P(0, 2), geom.P(9, 2)) {
		t.Fatalf("horizontal clip = %v,%v", got, ok)
	}
	got, ok = Clip(geom.Seg(geom.P(5, 7), geom.P(-1, 7)), 10, 10)
	if !ok || got != geom.Seg(geom.P(0, 7), geom.P(5, 7)) {
		t.Fatalf("reversed horizontal clip = %v,%v", got, ok)
	}
}

func TestClipSlantedKeepsCandidateOrder(t *testing.T) {
	// a is off canvas, b is on it, the bottom edge intersection comes next
	got, ok := Clip(geom.Seg(geom.P(-5, -5), geom.P(5, 5)), 10, 10)
	if !ok || got != geom.Seg(geom.P(5, 5), geom.P(0, 0)) {
		t.Fatalf("clip = %v,%v; want (5,5)->(0,0)", got, ok)
	}
}

func TestClipSlantedThroughTwoEdges(t *testing.T) {
	// y = x + 4 enters on the left edge and leaves through the top edge
	got, ok := Clip(geom.Seg(geom.P(-4, 0), geom.P(6, 10)), 10, 10)
	if !ok || got != geom.Seg(geom.P(5, 9), geom.P(0, 4)) {
		t.Fatalf("clip = %v,%v; want (5,9)->(0,4)", got, ok)
	}
}

func TestClipSlantedMissingCanvasIsNone(t *testing.T) {
	// bounding box overlaps the corner but the line x+y=-2 never enters
	if got, ok := Clip(geom.Seg(geom.P(-3, 1), geom.P(1, -3)), 10, 10); ok {
		t.Fatalf("expected none, got %v", got)
	}
}

func TestClippedSegmentsAreDrawable(t *testing.T) {
	b := Blank(10, 10)
	segs := []geom.Segment{
		geom.Seg(geom.P(-20, 3), geom.P(30, 7)),
		geom.Seg(geom.P(4, -8), geom.P(6, 25)),
		geom.Seg(geom.P(12, -2), geom.P(-3, 11)),
	}
	for _, s := range segs {
		c, ok := Clip(s, 10, 10)
		if !ok {
			continue
		}
		if !b.Contains(c.A) || !b.Contains(c.B) {
			t.Fatalf("clip of %v left the canvas: %v", s, c)
		}
		PutSegment(b, c, Black)
	}
}
