/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package paint

import (
	"errors"
	"fmt"
	"log/slog"

	"pixelpaint/internal/events"
	"pixelpaint/internal/geom"
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/resize"
)

// ErrUnsupportedTool is returned by SelectTool for ids outside the toolbar.
var ErrUnsupportedTool = errors.New("unsupported tool")

// Options tunes the resize outline.
type Options struct {
	Centered  bool
	MinSketch int
}

// Session wires a State to an event source and a display. It is driven from a
// single goroutine.
type Session struct {
	state   *State
	src     *events.Source
	display Display
	picker  *ColorPicker
	opts    Options
	log     *slog.Logger

	selected string
	dragging bool
	anchor   geom.Point
	resizing *resizeDrag
}

func NewSession(state *State, d Display, opts Options) *Session {
	s := &Session{
		state:   state,
		src:     events.NewSource(),
		display: d,
		opts:    opts,
		log:     applog.WithComponent("paint"),
	}
	s.picker = &ColorPicker{session: s}
	s.picker.load()
	return s
}

func (s *Session) State() *State          { return s.state }
func (s *Session) Events() *events.Source { return s.src }
func (s *Session) Picker() *ColorPicker   { return s.picker }

// Selected is the highlighted drawing tool id, or "" when none is.
func (s *Session) Selected() string { return s.selected }

// Dispatch forwards a host event to the attached slot.
func (s *Session) Dispatch(e events.Event) bool { return s.src.Dispatch(e) }

// Present pushes the live buffer to the display.
func (s *Session) Present() {
	s.display.Present(s.state.Buffer.Width(), s.state.Buffer.RGBA())
}

// SelectTool handles a toolbar click. Drawing tools start from a clean idle
// state; clicking the selected tool again deselects it.
func (s *Session) SelectTool(id string) error {
	switch id {
	case ToolColor:
		s.picker.Open()
		return nil
	case ToolPencil, ToolLine:
	default:
		return fmt.Errorf("select %q: %w", id, ErrUnsupportedTool)
	}
	l := applog.WithOperation(s.log, "select")

	s.cancelResize()
	s.src.DetachAll()
	if s.dragging {
		s.dragging = false
		s.Present()
	}

	if s.selected == id {
		s.toolbar(id, false)
		s.selected = ""
		s.state.Mode = None
		l.Debug("tool deselected", slog.String("tool", id))
		return nil
	}
	if s.selected != "" {
		s.toolbar(s.selected, false)
	}
	s.selected = id
	s.state.Mode = Pencil
	if id == ToolLine {
		s.state.Mode = Line
	}
	s.toolbar(id, true)
	s.armDown()
	l.Debug("tool selected", slog.String("tool", id), slog.Any("slots", s.src.Slots()))
	return nil
}

func (s *Session) toolbar(id string, selected bool) {
	if tb, ok := s.display.(ToolbarDisplay); ok {
		tb.ToolSelected(id, selected)
	}
}

// BeginResize starts dragging handle h from pointer, with canvas the current
// device rectangle of the canvas. Drawing slots are paused until the drag ends.
// It reports false when a resize is already running or h names no edge.
func (s *Session) BeginResize(h resize.Handle, pointer geom.Point, canvas resize.Rect) bool {
	if s.resizing != nil || h == 0 {
		return false
	}
	s.src.Pause()
	d := &resizeDrag{
		handle: h,
		canvas: canvas,
		off:    resize.Offsets(h, canvas, pointer),
		sketch: canvas,
	}
	s.resizing = d
	s.showSketch(d.sketch)
	s.src.Attach(events.Move, s.resizeMove)
	s.src.Attach(events.Up, s.resizeEnd)
	s.src.Attach(events.Leave, s.resizeEnd)
	s.log.Debug("resize started", slog.String("handle", h.String()), slog.String("canvas", canvas.String()))
	return true
}

// Resizing reports the outline of a running resize drag.
func (s *Session) Resizing() (resize.Rect, bool) {
	if s.resizing == nil {
		return resize.Rect{}, false
	}
	return s.resizing.sketch, true
}

func (s *Session) showSketch(r resize.Rect) {
	if sd, ok := s.display.(SketchDisplay); ok {
		sd.ShowSketch(r)
	}
}

func (s *Session) hideSketch() {
	if sd, ok := s.display.(SketchDisplay); ok {
		sd.HideSketch()
	}
}
