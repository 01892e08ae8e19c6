/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package geom holds the integer pixel geometry used by the canvas:
// points, directed segments and the slope/intercept line derived from them.
package geom

import "fmt"

// Point is an integer pixel coordinate.
type Point struct{ X, Y int }

// P is shorthand for Point{X: x, Y: y}.
func P(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns the component-wise difference p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Segment is a directed pair of endpoints.
type Segment struct{ A, B Point }

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Bounds returns the min and max corners of the segment's bounding box.
func (s Segment) Bounds() (lo, hi Point) {
	lo = Point{min(s.A.X, s.B.X), min(s.A.Y, s.B.Y)}
	hi = Point{max(s.A.X, s.B.X), max(s.A.Y, s.B.Y)}
	return lo, hi
}

// Contains reports whether p lies inside the segment's bounding box, edges included.
func (s Segment) Contains(p Point) bool {
	lo, hi := s.Bounds()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Vertical reports whether both endpoints share an x coordinate.
func (s Segment) Vertical() bool { return s.A.X == s.B.X }

// Horizontal reports whether both endpoints share a y coordinate.
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }

// Line returns the line through both endpoints. Callers handle vertical
// segments before asking for it; the slope is infinite there.
func (s Segment) Line() Line {
	slope := float64(s.B.Y-s.A.Y) / float64(s.B.X-s.A.X)
	return Line{Slope: slope, Intercept: float64(s.A.Y) - slope*float64(s.A.X)}
}

// Line is y = Slope*x + Intercept.
type Line struct{ Slope, Intercept float64 }

// Y evaluates the line at x, truncating toward zero.
func (l Line) Y(x int) int { return int(l.Slope*float64(x) + l.Intercept) }

// X solves the line for y, truncating toward zero.
func (l Line) X(y int) int { return int((float64(y) - l.Intercept) / l.Slope) }
