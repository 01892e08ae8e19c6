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

// These tests exercise the Fyne host. They are gated behind the "fyne" build
// tag so headless CI does not need Fyne or a display. To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"pixelpaint/internal/config"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/resize"
)

func newTestView(t *testing.T, w, h, zoom int) *view {
	t.Helper()
	test.NewApp()
	cfg := config.Defaults()
	st := paint.NewState(raster.Blank(w, h), raster.Black)
	st.Scale = zoom
	v := newView(st, cfg)
	v.session.Present()
	return v
}

func TestPresentScalesByZoom(t *testing.T) {
	v := newTestView(t, 10, 6, 3)
	if got := v.surface.MinSize(); got != fyne.NewSize(30, 18) {
		t.Fatalf("surface MinSize = %v, want 30x18", got)
	}
	if got := v.board.MinSize(); got != fyne.NewSize(30+2*handleThickness, 18+handleThickness) {
		t.Fatalf("board MinSize = %v", got)
	}
}

func TestHandleRectsSurroundSurface(t *testing.T) {
	rects := handleRects(fyne.NewSize(40, 20), 8)
	if len(rects) != len(resize.Handles()) {
		t.Fatalf("got %d handle rects, want %d", len(rects), len(resize.Handles()))
	}
	if r := rects[resize.East]; r != [4]float32{48, 0, 8, 20} {
		t.Fatalf("east rect = %v", r)
	}
	if r := rects[resize.SouthWest]; r != [4]float32{0, 20, 8, 8} {
		t.Fatalf("south-west rect = %v", r)
	}
}

func TestToolbarHighlightsSelection(t *testing.T) {
	v := newTestView(t, 4, 4, 1)
	test.Tap(v.tools[paint.ToolPencil])
	if v.tools[paint.ToolPencil].Importance != widget.HighImportance {
		t.Fatalf("pencil not highlighted")
	}
	test.Tap(v.tools[paint.ToolLine])
	if v.tools[paint.ToolPencil].Importance != widget.MediumImportance || v.tools[paint.ToolLine].Importance != widget.HighImportance {
		t.Fatalf("selection not exclusive")
	}
}

func TestColorPickerRow(t *testing.T) {
	v := newTestView(t, 4, 4, 1)
	test.Tap(v.tools[paint.ToolColor])
	if !v.picker.Visible() {
		t.Fatalf("picker row hidden after selecting color")
	}
	v.entries[paint.Red].SetText("0300")
	if got := v.entries[paint.Red].Text; got != "255" {
		t.Fatalf("red entry = %q, want 255", got)
	}
	if v.session.State().Color.R != 255 {
		t.Fatalf("session color not updated: %+v", v.session.State().Color)
	}
	v.session.Picker().Close()
	if v.picker.Visible() {
		t.Fatalf("picker row still visible after pick")
	}
}
