/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package term is the terminal host: a bubbletea program that draws the
// canvas with two columns per pixel and feeds mouse input to a paint.Session.
//
// Terminal cells are addressed in device units of one pixel pair (two
// columns) by one row. Row 0 holds the toolbar, row 1 the color picker. The
// canvas starts at row 2, centred horizontally between a west handle gutter
// and an east handle column.
package term

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpaint/internal/events"
	"pixelpaint/internal/geom"
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/resize"
)

const (
	toolbarRow = 0
	pickerRow  = 1
	canvasTop  = 2
	cellWidth  = 2
)

// origin is the device position of canvas pixel (0, 0) for a window cols
// cells wide and a canvas width pixels wide.
func origin(cols, width int) geom.Point {
	free := max(cols/cellWidth-(width+2), 0)
	return geom.P(1+free/2, canvasTop)
}

// Model is the bubbletea model. It is also the session's display.
type Model struct {
	session *paint.Session
	log     *slog.Logger

	width, height int
	pressed       bool
	last          geom.Point
	focus         int

	// line tool guide: the full anchor-pointer path, drawn where it leaves
	// the canvas
	guiding bool
	anchor  geom.Point
	guide   map[geom.Point]bool

	frame    *raster.Buffer
	sketch   resize.Rect
	sketched bool
	tools    map[string]bool
	color    raster.Color
	picking  bool
}

var _ tea.Model = (*Model)(nil)

// New wraps st in a session drawn by the returned model.
func New(st *paint.State, minSketch int) *Model {
	st.Origin = origin(0, st.Buffer.Width())
	st.Scale = 1
	m := &Model{
		log:   applog.WithComponent("term"),
		tools: map[string]bool{},
		color: st.Color,
	}
	m.session = paint.NewSession(st, m, paint.Options{Centered: true, MinSketch: minSketch})
	m.session.Present()
	return m
}

func (m *Model) Session() *paint.Session { return m.session }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		shrank := msg.Width < m.width || msg.Height < m.height
		m.width, m.height = msg.Width, msg.Height
		if shrank && m.pressed {
			m.pressed = false
			m.endGuide()
			m.dispatch(events.Leave, m.last)
		}
	case tea.KeyMsg:
		cmd = m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	}
	m.layout()
	return m, cmd
}

// layout re-centres the canvas after the window or the canvas changed size.
// A running resize keeps the rectangle it started from.
func (m *Model) layout() {
	if _, resizing := m.session.Resizing(); resizing {
		return
	}
	st := m.session.State()
	st.Origin = origin(m.width, st.Buffer.Width())
}

// Device converts a terminal cell to device units.
func Device(x, y int) geom.Point { return geom.P(x/cellWidth, y) }

func (m *Model) dispatch(k events.Kind, p geom.Point) bool {
	return m.session.Dispatch(events.Event{Kind: k, X: p.X, Y: p.Y})
}

func (m *Model) inCanvas(p geom.Point) bool {
	st := m.session.State()
	return st.Buffer.Contains(st.Local(p.X, p.Y))
}

// handleAt returns the resize handle drawn at device point p, or 0.
func (m *Model) handleAt(p geom.Point) resize.Handle {
	r := m.session.State().Rect()
	west, east := r.Left-1, r.Right()
	switch {
	case p.Y >= r.Top && p.Y < r.Bottom():
		switch p.X {
		case west:
			return resize.West
		case east:
			return resize.East
		}
	case p.Y == r.Bottom():
		switch {
		case p.X == west:
			return resize.SouthWest
		case p.X == east:
			return resize.SouthEast
		case p.X >= r.Left && p.X < r.Right():
			return resize.South
		}
	}
	return 0
}

func (m *Model) mouse(msg tea.MouseMsg) {
	p := Device(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.last = p
		switch {
		case msg.Y == toolbarRow:
			if id := hit(toolbarSpans(), msg.X); id != "" {
				m.selectTool(id)
			}
		case msg.Y == pickerRow:
			m.clickPicker(msg.X)
		case m.handleAt(p) != 0:
			m.session.BeginResize(m.handleAt(p), p, m.session.State().Rect())
		case m.inCanvas(p):
			m.dispatch(events.Down, p)
			if m.session.Selected() == paint.ToolLine {
				m.guiding, m.anchor = true, p
			}
		}
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		m.last = p
		if m.guiding {
			m.guide = map[geom.Point]bool{}
			for _, q := range raster.Points(m.anchor, p) {
				m.guide[q] = true
			}
		}
		m.dispatch(events.Move, p)
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.last = p
		m.endGuide()
		kind := events.Up
		if _, resizing := m.session.Resizing(); !resizing && !m.inCanvas(p) {
			kind = events.Leave
		}
		m.dispatch(kind, p)
	}
}

func (m *Model) endGuide() { m.guiding, m.guide = false, nil }

func (m *Model) selectTool(id string) {
	m.endGuide()
	if err := m.session.SelectTool(id); err != nil {
		panic(err)
	}
}

func (m *Model) clickPicker(x int) {
	p := m.session.Picker()
	if !p.IsOpen() {
		return
	}
	switch id := hit(m.pickerSpans(), x); id {
	case "":
	case pickID:
		p.Close()
	default:
		for i, ch := range paint.Channels() {
			if ch == id {
				m.focus = i
			}
		}
	}
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	p := m.session.Picker()
	ch := paint.Channels()[m.focus]
	switch k := msg.String(); k {
	case "q", "ctrl+c":
		return tea.Quit
	case "p":
		m.selectTool(paint.ToolPencil)
	case "l":
		m.selectTool(paint.ToolLine)
	case "c":
		m.selectTool(paint.ToolColor)
	case "tab":
		m.focus = (m.focus + 1) % len(paint.Channels())
	case "enter":
		if p.IsOpen() {
			p.Close()
		}
	case "backspace":
		if t := p.Text(ch); p.IsOpen() && t != "" {
			m.input(ch, t[:len(t)-1])
		}
	default:
		if p.IsOpen() && len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
			m.input(ch, p.Text(ch)+k)
		}
	}
	return nil
}

func (m *Model) input(ch, text string) {
	if _, err := m.session.Picker().Input(ch, text); err != nil {
		m.log.Error("color input", slog.String("channel", ch), slog.Any("err", err))
	}
}
