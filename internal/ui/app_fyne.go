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
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pixelpaint/internal/config"
	"pixelpaint/internal/crash"
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/resize"
	"pixelpaint/internal/version"
)

// Run starts the Fyne desktop window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()))

	fg, bg := cfg.Canvas.Colors()
	st := paint.NewState(raster.Filled(cfg.Canvas.Width, cfg.Canvas.Height, bg), fg)
	st.Scale = max(cfg.Display.Zoom, 1)
	defer crash.Recover(st)

	fyneApp := app.NewWithID("pixelpaint")
	w := fyneApp.NewWindow("PixelPaint")
	w.SetPadded(false)

	v := newView(st, cfg)
	w.SetContent(v.content)
	v.session.Present()
	w.Resize(fyne.NewSize(
		float32(st.Buffer.Width()*st.Scale)+4*handleThickness+80,
		float32(st.Buffer.Height()*st.Scale)+4*handleThickness+120,
	))
	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

// view is the window content and the paint.Display of the session.
type view struct {
	session *paint.Session
	zoom    int

	surface *Surface
	board   *fyne.Container
	content fyne.CanvasObject

	tools   map[string]*widget.Button
	picker  *fyne.Container
	entries map[string]*widget.Entry
	swatch  *canvas.Rectangle
	sketch  *canvas.Rectangle
	overlay *fyne.Container
}

func newView(st *paint.State, cfg config.AppConfig) *view {
	v := &view{zoom: st.Scale, tools: map[string]*widget.Button{}, entries: map[string]*widget.Entry{}}
	v.session = paint.NewSession(st, v, paint.Options{
		Centered:  cfg.Display.Centered,
		MinSketch: cfg.Display.MinSketch,
	})

	v.surface = NewSurface(v.session)
	handles := map[resize.Handle]*Handle{}
	objs := []fyne.CanvasObject{v.surface}
	for _, edges := range resize.Handles() {
		h := NewHandle(edges, v.session, v.canvasRect)
		handles[edges] = h
		objs = append(objs, h)
	}
	v.board = container.New(&boardLayout{surface: v.surface, handles: handles}, objs...)

	var bar []fyne.CanvasObject
	for _, id := range []string{paint.ToolPencil, paint.ToolLine, paint.ToolColor} {
		b := widget.NewButton(id, func() {
			if err := v.session.SelectTool(id); err != nil {
				panic(err)
			}
		})
		v.tools[id] = b
		bar = append(bar, b)
	}

	v.swatch = canvas.NewRectangle(st.Color.RGBA())
	v.swatch.SetMinSize(fyne.NewSize(24, 24))
	row := []fyne.CanvasObject{v.swatch}
	for _, ch := range paint.Channels() {
		e := widget.NewEntry()
		e.SetPlaceHolder(ch)
		e.OnChanged = func(text string) {
			norm, err := v.session.Picker().Input(ch, text)
			if err == nil && norm != text {
				e.SetText(norm)
			}
		}
		v.entries[ch] = e
		row = append(row, widget.NewLabel(ch), e)
	}
	row = append(row, widget.NewButton("pick", v.session.Picker().Close))
	v.picker = container.NewHBox(row...)
	v.picker.Hide()

	v.sketch = canvas.NewRectangle(color.Transparent)
	v.sketch.StrokeColor = color.Black
	v.sketch.StrokeWidth = 1
	v.sketch.Hide()
	v.overlay = container.NewWithoutLayout(v.sketch)

	top := container.NewVBox(container.NewHBox(bar...), v.picker)
	center := container.NewVBox(container.NewHBox(v.board))
	if cfg.Display.Centered {
		center = container.NewCenter(v.board)
	}
	v.content = container.NewStack(container.NewBorder(top, nil, nil, nil, center), v.overlay)
	return v
}

// canvasRect is the surface in window coordinates.
func (v *view) canvasRect() resize.Rect {
	pos := absolute(v.surface)
	st := v.session.State()
	st.Origin = toPoint(pos)
	return st.Rect()
}

func (v *view) Present(width int, pix []byte) {
	img := raster.Scale(raster.Image(width, pix), v.zoom)
	b := img.Bounds()
	v.surface.img.Image = img
	v.surface.img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	v.surface.img.Refresh()
	v.board.Refresh()
}

func (v *view) ShowSketch(r resize.Rect) {
	v.sketch.Move(fyne.NewPos(float32(r.Left), float32(r.Top)))
	v.sketch.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
	v.sketch.Show()
	v.overlay.Refresh()
}

func (v *view) HideSketch() {
	v.sketch.Hide()
	v.overlay.Refresh()
}

func (v *view) ToolSelected(id string, selected bool) {
	b, ok := v.tools[id]
	if !ok {
		return
	}
	if selected {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	b.Refresh()
}

func (v *view) ShowColor(c raster.Color, open bool) {
	v.swatch.FillColor = c.RGBA()
	v.swatch.Refresh()
	if open == v.picker.Visible() {
		return
	}
	if !open {
		v.picker.Hide()
		return
	}
	v.picker.Show()
	for ch, e := range v.entries {
		e.SetText(v.session.Picker().Text(ch))
	}
}
