/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package term

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelpaint/internal/geom"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/resize"
)

const pickID = "pick"

var (
	toolStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	handleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	sketchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	guideStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// span is a clickable label on a text row, covering columns [from, to).
type span struct {
	id       string
	label    string
	from, to int
}

func layoutSpans(ids, labels []string) []span {
	var out []span
	x := 0
	for i, id := range ids {
		out = append(out, span{id: id, label: labels[i], from: x, to: x + len(labels[i])})
		x += len(labels[i]) + 1
	}
	return out
}

func toolbarSpans() []span {
	ids := []string{paint.ToolPencil, paint.ToolLine, paint.ToolColor}
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = "[" + id + "]"
	}
	return layoutSpans(ids, labels)
}

func (m *Model) pickerSpans() []span {
	p := m.session.Picker()
	ids := append(paint.Channels(), pickID)
	labels := make([]string, 0, len(ids))
	for _, ch := range paint.Channels() {
		labels = append(labels, fmt.Sprintf("%c:%-3s", ch[0]-'a'+'A', p.Text(ch)))
	}
	labels = append(labels, "[pick]")
	return layoutSpans(ids, labels)
}

func hit(spans []span, x int) string {
	for _, s := range spans {
		if x >= s.from && x < s.to {
			return s.id
		}
	}
	return ""
}

func (m *Model) Present(width int, pix []byte) {
	buf, err := raster.FromRGBA(width, pix)
	if err != nil {
		m.log.Error("present", slog.Any("err", err))
		return
	}
	m.frame = buf
}

func (m *Model) ShowSketch(r resize.Rect) { m.sketch, m.sketched = r, true }

func (m *Model) HideSketch() { m.sketched = false }

func (m *Model) ToolSelected(id string, selected bool) { m.tools[id] = selected }

func (m *Model) ShowColor(c raster.Color, open bool) { m.color, m.picking = c, open }

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.toolbarLine())
	b.WriteByte('\n')
	b.WriteString(m.pickerLine())
	b.WriteByte('\n')
	b.WriteString(m.canvasLines())
	return b.String()
}

func (m *Model) toolbarLine() string {
	var parts []string
	for _, s := range toolbarSpans() {
		st := toolStyle
		if m.tools[s.id] {
			st = selectedStyle
		}
		parts = append(parts, st.Render(s.label))
	}
	return strings.Join(parts, " ")
}

func (m *Model) pickerLine() string {
	if !m.picking {
		return dimStyle.Render(m.session.State().Summary())
	}
	var parts []string
	for i, s := range m.pickerSpans() {
		st := toolStyle
		if s.id != pickID && i == m.focus {
			st = selectedStyle
		}
		parts = append(parts, st.Render(s.label))
	}
	parts = append(parts, lipgloss.NewStyle().Background(lipgloss.Color(m.color.Hex())).Render("  "))
	return strings.Join(parts, " ")
}

// cell is one device unit of the canvas area.
type cell struct {
	text  string
	style string
	bg    raster.Color
}

func (m *Model) cellAt(p geom.Point) cell {
	if m.sketched && onBorder(m.sketch, p) {
		return cell{text: "··", style: "sketch"}
	}
	st := m.session.State()
	if q := st.Local(p.X, p.Y); m.frame != nil && m.frame.Contains(q) {
		return cell{text: "  ", style: "pixel", bg: m.frame.At(q)}
	}
	if m.guide[p] {
		return cell{text: "░░", style: "guide"}
	}
	if !m.sketched && m.handleAt(p) != 0 {
		return cell{text: "▒▒", style: "handle"}
	}
	return cell{text: "  "}
}

func onBorder(r resize.Rect, p geom.Point) bool {
	if p.X < r.Left || p.X >= r.Right() || p.Y < r.Top || p.Y >= r.Bottom() {
		return false
	}
	return p.X == r.Left || p.X == r.Right()-1 || p.Y == r.Top || p.Y == r.Bottom()-1
}

func (c cell) render(n int) string {
	text := strings.Repeat(c.text, n)
	switch c.style {
	case "sketch":
		return sketchStyle.Render(text)
	case "pixel":
		return lipgloss.NewStyle().Background(lipgloss.Color(c.bg.Hex())).Render(text)
	case "handle":
		return handleStyle.Render(text)
	case "guide":
		return guideStyle.Render(text)
	}
	return text
}

// canvasLines renders the canvas, its handles, any resize sketch and the
// line guide. Runs of equal cells share one styled segment.
func (m *Model) canvasLines() string {
	r := m.session.State().Rect()
	right, bottom := r.Right()+1, r.Bottom()+1
	if m.sketched {
		right = max(right, m.sketch.Right())
		bottom = max(bottom, m.sketch.Bottom())
	}
	for q := range m.guide {
		right, bottom = max(right, q.X+1), max(bottom, q.Y+1)
	}
	lines := make([]string, 0, bottom-canvasTop)
	for y := canvasTop; y < bottom; y++ {
		var line strings.Builder
		run, n := m.cellAt(geom.P(0, y)), 1
		for x := 1; x < right; x++ {
			c := m.cellAt(geom.P(x, y))
			if c == run {
				n++
				continue
			}
			line.WriteString(run.render(n))
			run, n = c, 1
		}
		line.WriteString(run.render(n))
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
