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
	"image"

	xdraw "golang.org/x/image/draw"
)

// Image wraps flat RGBA bytes of the given row width as an *image.RGBA.
// The bytes are shared, not copied.
func Image(width int, pix []byte) *image.RGBA {
	if width <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	h := len(pix) / (width * 4)
	return &image.RGBA{Pix: pix[:width*h*4], Stride: width * 4, Rect: image.Rect(0, 0, width, h)}
}

// Image returns a copy of the buffer as an *image.RGBA.
func (b *Buffer) Image() *image.RGBA { return Image(b.width, b.RGBA()) }

// Scale enlarges an RGBA frame by an integer factor with nearest-neighbour
// sampling so every canvas pixel stays a crisp square on screen.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	r := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*factor, r.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, r, xdraw.Src, nil)
	return dst
}
