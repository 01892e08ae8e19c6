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

// Walk visits the pixels of the 1px, 8-connected line from a to b using the
// integer Bresenham error term. a == b visits exactly one pixel.
func Walk(a, b geom.Point, visit func(geom.Point)) {
	kx, ky := 1, 1
	if a.X > b.X {
		kx = -1
	}
	if a.Y > b.Y {
		ky = -1
	}
	dx := abs(a.X - b.X)
	dy := -abs(a.Y - b.Y)
	e := dx + dy
	p := a
	for {
		visit(p)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += kx
		}
		if e2 <= dx {
			e += dx
			p.Y += ky
		}
	}
}

// Points returns the pixels Put would paint for the line a-b.
func Points(a, b geom.Point) []geom.Point {
	var out []geom.Point
	Walk(a, b, func(p geom.Point) { out = append(out, p) })
	return out
}

// Put paints the line a-b into buf. Both endpoints must already be on the
// buffer (see Clip).
func Put(buf *Buffer, a, b geom.Point, c Color) {
	Walk(a, b, func(p geom.Point) { buf.Set(p, c) })
}

// PutSegment paints s into buf.
func PutSegment(buf *Buffer, s geom.Segment, c Color) { Put(buf, s.A, s.B, c) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
