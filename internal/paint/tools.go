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
	"log/slog"

	"pixelpaint/internal/events"
	"pixelpaint/internal/geom"
	"pixelpaint/internal/raster"
)

func (s *Session) armDown() { s.src.Attach(events.Down, s.onDown) }

func (s *Session) onDown(e events.Event) {
	s.src.Detach(events.Down)
	s.anchor = s.state.Local(e.X, e.Y)
	s.dragging = true
	switch s.state.Mode {
	case Pencil:
		s.src.Attach(events.Move, s.pencilMove)
		s.src.Attach(events.Up, s.pencilEnd)
		s.src.Attach(events.Leave, s.pencilEnd)
	case Line:
		s.src.Attach(events.Move, s.lineMove)
		s.src.Attach(events.Up, s.lineEnd)
		s.src.Attach(events.Leave, s.lineEnd)
	}
}

// clip limits anchor->p to the canvas.
func (s *Session) clip(p geom.Point) (geom.Segment, bool) {
	b := s.state.Buffer
	return raster.Clip(geom.Seg(s.anchor, p), b.Width(), b.Height())
}

// pencilMove paints the increment since the previous event, so fast strokes
// stay connected.
func (s *Session) pencilMove(e events.Event) {
	p := s.state.Local(e.X, e.Y)
	if seg, ok := s.clip(p); ok {
		raster.PutSegment(s.state.Buffer, seg, s.state.Color)
		s.Present()
	}
	s.anchor = p
}

func (s *Session) pencilEnd(events.Event) {
	s.finishStroke()
	s.log.Debug("stroke finished", slog.String("tool", ToolPencil))
}

// lineMove previews anchor->pointer on a scratch copy of the buffer.
func (s *Session) lineMove(e events.Event) {
	seg, ok := s.clip(s.state.Local(e.X, e.Y))
	if !ok {
		s.Present()
		return
	}
	scratch := s.state.Buffer.Clone()
	raster.PutSegment(scratch, seg, s.state.Color)
	s.display.Present(scratch.Width(), scratch.RGBA())
}

func (s *Session) lineEnd(e events.Event) {
	end := s.state.Local(e.X, e.Y)
	if seg, ok := s.clip(end); ok {
		raster.PutSegment(s.state.Buffer, seg, s.state.Color)
		s.log.Debug("line committed", slog.String("from", seg.A.String()), slog.String("to", seg.B.String()))
	}
	s.Present()
	s.finishStroke()
}

func (s *Session) finishStroke() {
	s.src.Detach(events.Move, events.Up, events.Leave)
	s.dragging = false
	s.armDown()
}
