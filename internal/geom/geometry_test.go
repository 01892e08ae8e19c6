/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestSegmentContainsIsInclusive(t *testing.T) {
	s := Seg(P(10, 2), P(0, 8))
	if !s.Contains(P(0, 2)) || !s.Contains(P(10, 8)) || !s.Contains(P(5, 5)) {
		t.Fatalf("expected bounding box corners and interior to be contained")
	}
	if s.Contains(P(11, 5)) || s.Contains(P(5, 1)) {
		t.Fatalf("expected points outside the box to be rejected")
	}
}

func TestSegmentBounds(t *testing.T) {
	lo, hi := Seg(P(7, -3), P(-2, 4)).Bounds()
	if lo != P(-2, -3) || hi != P(7, 4) {
		t.Fatalf("unexpected bounds lo=%v hi=%v", lo, hi)
	}
}

func TestLineThroughPoints(t *testing.T) {
	l := Seg(P(0, 1), P(4, 9)).Line()
	if l.Slope != 2 || l.Intercept != 1 {
		t.Fatalf("unexpected line: %+v", l)
	}
	if got := l.Y(3); got != 7 {
		t.Fatalf("Y(3) = %d, want 7", got)
	}
	if got := l.X(5); got != 2 {
		t.Fatalf("X(5) = %d, want 2", got)
	}
}

func TestLineTruncatesTowardZero(t *testing.T) {
	// y = -0.5x
	l := Seg(P(0, 0), P(2, -1)).Line()
	if got := l.Y(3); got != -1 { // -1.5 truncates to -1
		t.Fatalf("Y(3) = %d, want -1", got)
	}
	if got := l.X(1); got != -2 {
		t.Fatalf("X(1) = %d, want -2", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	if got := P(3, 4).Add(P(-1, 2)); got != P(2, 6) {
		t.Fatalf("Add = %v", got)
	}
	if got := P(3, 4).Sub(P(5, 5)); got != P(-2, -1) {
		t.Fatalf("Sub = %v", got)
	}
	if P(1, 2).String() != "(1,2)" {
		t.Fatalf("unexpected String: %s", P(1, 2))
	}
}
