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

import "pixelpaint/internal/geom"

func inside(p geom.Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Clip constrains s to the width x height canvas. It returns s unchanged when
// both endpoints are on the canvas, a shorter segment lying on the canvas when
// part of s crosses it, and false when nothing can be drawn.
//
// For slanted segments the candidates are tried in a fixed order: the two
// endpoints, then the intersections with the top (y=height-1), right
// (x=width-1), bottom (y=0) and left (x=0) border lines. The first two that lie
// on the canvas and inside the segment's bounding box form the result. Fewer
// than two is treated as a miss.
func Clip(s geom.Segment, width, height int) (geom.Segment, bool) {
	if inside(s.A, width, height) && inside(s.B, width, height) {
		return s, true
	}
	lo, hi := s.Bounds()
	if hi.X < 0 || lo.X >= width || hi.Y < 0 || lo.Y >= height {
		return geom.Segment{}, false
	}
	if s.Vertical() {
		return geom.Seg(geom.P(s.A.X, max(lo.Y, 0)), geom.P(s.B.X, min(hi.Y, height-1))), true
	}
	if s.Horizontal() {
		return geom.Seg(geom.P(max(lo.X, 0), s.A.Y), geom.P(min(hi.X, width-1), s.B.Y)), true
	}

	l := s.Line()
	candidates := [...]geom.Point{
		s.A,
		s.B,
		geom.P(l.X(height-1), height-1), // top
		geom.P(width-1, l.Y(width-1)),   // right
		geom.P(l.X(0), 0),               // bottom
		geom.P(0, l.Y(0)),               // left
	}
	var found []geom.Point
	for _, c := range candidates {
		if len(found) == 2 {
			break
		}
		if inside(c, width, height) && s.Contains(c) {
			found = append(found, c)
		}
	}
	if len(found) != 2 {
		return geom.Segment{}, false
	}
	return geom.Seg(found[0], found[1]), true
}
