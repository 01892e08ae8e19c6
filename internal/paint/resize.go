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
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/resize"
)

type resizeDrag struct {
	handle resize.Handle
	canvas resize.Rect
	off    geom.Point
	sketch resize.Rect
}

func (s *Session) resizeMove(e events.Event) {
	d := s.resizing
	d.sketch = resize.Sketch(d.handle, d.canvas, d.off, geom.P(e.X, e.Y), resize.SketchOptions{
		Centered: s.opts.Centered,
		Min:      s.opts.MinSketch,
	})
	s.showSketch(d.sketch)
}

// resizeEnd reallocates the buffer to the outline size and hands the pointer
// back to the paused drawing tool.
func (s *Session) resizeEnd(events.Event) {
	d := s.resizing
	k := s.state.scale()
	old := s.state.Buffer
	s.state.Buffer = resize.Resize(old, d.sketch.Width/k, d.sketch.Height/k, d.handle)
	s.Present()
	s.hideSketch()
	s.src.Detach(events.Move, events.Up, events.Leave)
	s.src.Resume()
	s.resizing = nil
	applog.WithOperation(s.log, "resize").Debug("canvas resized",
		slog.String("handle", d.handle.String()),
		slog.Int("from_w", old.Width()), slog.Int("from_h", old.Height()),
		slog.Int("to_w", s.state.Buffer.Width()), slog.Int("to_h", s.state.Buffer.Height()))
}

// cancelResize drops a running resize drag without touching the buffer.
func (s *Session) cancelResize() {
	if s.resizing == nil {
		return
	}
	s.hideSketch()
	s.src.Detach(events.Move, events.Up, events.Leave)
	s.src.Resume()
	s.resizing = nil
}
