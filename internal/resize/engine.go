/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package resize reallocates a canvas buffer to a new size while keeping the
// artwork anchored to the edge opposite the dragged handle, and computes the
// outline that follows the pointer while a handle is dragged.
package resize

import (
	"fmt"

	"pixelpaint/internal/geom"
	"pixelpaint/internal/raster"
)

// Plan is the copy from the old buffer into the new one: the inclusive source
// rectangle [SrcFrom, SrcTo] lands with its top-left corner at DstFrom.
type Plan struct {
	SrcFrom geom.Point
	SrcTo   geom.Point
	DstFrom geom.Point
}

func (p Plan) String() string {
	return fmt.Sprintf("%v-%v -> %v", p.SrcFrom, p.SrcTo, p.DstFrom)
}

// PlanFor computes the region of an oldW x oldH image that survives a resize to
// newW x newH through handle h. Vertical growth is always to the south.
func PlanFor(oldW, oldH, newW, newH int, h Handle) Plan {
	var p Plan
	switch {
	case h.Has(West):
		xDiff := newW - oldW
		if xDiff > 0 {
			p.DstFrom.X = xDiff
		} else {
			p.SrcFrom.X = -xDiff
		}
		p.SrcTo.X = oldW - 1
	case h.Has(East):
		if newW > oldW {
			p.SrcTo.X = oldW - 1
		} else {
			p.SrcTo.X = newW - 1
		}
	default:
		p.SrcTo.X = min(oldW, newW) - 1
	}
	if h.Has(South) {
		if newH > oldH {
			p.SrcTo.Y = oldH - 1
		} else {
			p.SrcTo.Y = newH - 1
		}
	} else {
		p.SrcTo.Y = min(oldH, newH) - 1
	}
	return p
}

// Resize returns a blank newW x newH buffer holding the part of old that the
// handle keeps. Sizes below one pixel are raised to one.
func Resize(old *raster.Buffer, newW, newH int, h Handle) *raster.Buffer {
	newW, newH = max(newW, 1), max(newH, 1)
	out := raster.Blank(newW, newH)
	p := PlanFor(old.Width(), old.Height(), newW, newH, h)
	if err := old.CopyRegion(p.SrcFrom, p.SrcTo, out, p.DstFrom); err != nil {
		panic(fmt.Errorf("resize %dx%d -> %dx%d via %s: plan %v: %w",
			old.Width(), old.Height(), newW, newH, h, p, err))
	}
	return out
}
