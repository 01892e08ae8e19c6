//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"pixelpaint/internal/events"
	"pixelpaint/internal/geom"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/resize"
)

// handleThickness is the width of the resize strips around the canvas.
const handleThickness float32 = 8

// absolute returns the window position of obj, or its relative position when
// no driver is running (tests).
func absolute(obj fyne.CanvasObject) fyne.Position {
	if a := fyne.CurrentApp(); a != nil && a.Driver() != nil {
		return a.Driver().AbsolutePositionFor(obj)
	}
	return obj.Position()
}

func toPoint(p fyne.Position) geom.Point { return geom.P(int(p.X), int(p.Y)) }

// Surface shows the canvas pixels and forwards pointer input to the session.
// It implements desktop.Mouseable and desktop.Hoverable; leaving the surface is
// reported as a Leave event.
type Surface struct {
	widget.BaseWidget
	session *paint.Session
	img     *canvas.Image
	last    fyne.Position
}

var (
	_ desktop.Mouseable = (*Surface)(nil)
	_ desktop.Hoverable = (*Surface)(nil)
)

func NewSurface(s *paint.Session) *Surface {
	img := canvas.NewImageFromImage(nil)
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillStretch
	sf := &Surface{session: s, img: img}
	sf.ExtendBaseWidget(sf)
	return sf
}

func (sf *Surface) CreateRenderer() fyne.WidgetRenderer { return widget.NewSimpleRenderer(sf.img) }

func (sf *Surface) MinSize() fyne.Size { return sf.img.MinSize() }

// dispatch forwards to the session unless a handle drag owns the pointer.
func (sf *Surface) dispatch(k events.Kind, abs fyne.Position) {
	if _, resizing := sf.session.Resizing(); resizing {
		return
	}
	sf.session.State().Origin = toPoint(absolute(sf))
	p := toPoint(abs)
	sf.session.Dispatch(events.Event{Kind: k, X: p.X, Y: p.Y})
}

func (sf *Surface) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	sf.last = e.AbsolutePosition
	sf.dispatch(events.Down, e.AbsolutePosition)
}

func (sf *Surface) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	sf.last = e.AbsolutePosition
	sf.dispatch(events.Up, e.AbsolutePosition)
}

func (sf *Surface) MouseIn(e *desktop.MouseEvent) { sf.last = e.AbsolutePosition }

func (sf *Surface) MouseMoved(e *desktop.MouseEvent) {
	sf.last = e.AbsolutePosition
	sf.dispatch(events.Move, e.AbsolutePosition)
}

func (sf *Surface) MouseOut() { sf.dispatch(events.Leave, sf.last) }

// Handle is one draggable resize strip.
type Handle struct {
	widget.BaseWidget
	edges   resize.Handle
	session *paint.Session
	canvas  func() resize.Rect
	rect    *canvas.Rectangle
	last    fyne.Position
}

var (
	_ fyne.Draggable    = (*Handle)(nil)
	_ desktop.Cursorable = (*Handle)(nil)
)

func NewHandle(edges resize.Handle, s *paint.Session, canvasRect func() resize.Rect) *Handle {
	h := &Handle{
		edges:   edges,
		session: s,
		canvas:  canvasRect,
		rect:    canvas.NewRectangle(color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0x80}),
	}
	h.ExtendBaseWidget(h)
	return h
}

func (h *Handle) CreateRenderer() fyne.WidgetRenderer { return widget.NewSimpleRenderer(h.rect) }

func (h *Handle) Cursor() desktop.Cursor {
	switch {
	case h.edges == resize.South:
		return desktop.VResizeCursor
	case h.edges.Has(resize.South):
		return desktop.CrosshairCursor
	default:
		return desktop.HResizeCursor
	}
}

func (h *Handle) Dragged(e *fyne.DragEvent) {
	if _, resizing := h.session.Resizing(); !resizing {
		start := fyne.NewPos(e.AbsolutePosition.X-e.Dragged.DX, e.AbsolutePosition.Y-e.Dragged.DY)
		if !h.session.BeginResize(h.edges, toPoint(start), h.canvas()) {
			return
		}
	}
	h.last = e.AbsolutePosition
	p := toPoint(e.AbsolutePosition)
	h.session.Dispatch(events.Event{Kind: events.Move, X: p.X, Y: p.Y})
}

func (h *Handle) DragEnd() {
	p := toPoint(h.last)
	h.session.Dispatch(events.Event{Kind: events.Up, X: p.X, Y: p.Y})
}

// boardLayout places the surface with the west handle on its left, the east
// handle on its right and the south row below it.
type boardLayout struct {
	surface *Surface
	handles map[resize.Handle]*Handle
}

func (l *boardLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	s := l.surface.MinSize()
	return fyne.NewSize(s.Width+2*handleThickness, s.Height+handleThickness)
}

func (l *boardLayout) Layout([]fyne.CanvasObject, fyne.Size) {
	s := l.surface.MinSize()
	t := handleThickness
	l.surface.Move(fyne.NewPos(t, 0))
	l.surface.Resize(s)
	for edges, r := range handleRects(s, t) {
		if h, ok := l.handles[edges]; ok {
			h.Move(fyne.NewPos(r[0], r[1]))
			h.Resize(fyne.NewSize(r[2], r[3]))
		}
	}
}

// handleRects returns x, y, width, height of every handle for a surface of
// size s laid out at (t, 0).
func handleRects(s fyne.Size, t float32) map[resize.Handle][4]float32 {
	return map[resize.Handle][4]float32{
		resize.West:      {0, 0, t, s.Height},
		resize.East:      {t + s.Width, 0, t, s.Height},
		resize.South:     {t, s.Height, s.Width, t},
		resize.SouthWest: {0, s.Height, t, t},
		resize.SouthEast: {t + s.Width, s.Height, t, t},
	}
}
