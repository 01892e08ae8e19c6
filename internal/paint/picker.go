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
	"strconv"
	"strings"

)

// Color channel ids.
const (
	Red   = "red"
	Green = "green"
	Blue  = "blue"
)

// Channels lists the editable channels in display order.
func Channels() []string { return []string{Red, Green, Blue} }

var ErrUnknownChannel = errors.New("unknown color channel")

// ColorPicker edits the session color through three decimal text fields.
type ColorPicker struct {
	session *Session
	open    bool
	text    map[string]string
}

func (p *ColorPicker) IsOpen() bool { return p.open }

// Text is the current content of a channel field.
func (p *ColorPicker) Text(channel string) string { return p.text[channel] }

// Open shows the picker with the fields loaded from the session color.
func (p *ColorPicker) Open() {
	p.open = true
	p.load()
	p.session.toolbar(ToolColor, true)
	p.show()
}

// Close hides the picker. The color chosen so far stays in effect.
func (p *ColorPicker) Close() {
	p.open = false
	p.session.toolbar(ToolColor, false)
	p.show()
	p.session.log.Debug("color picked", slog.String("color", p.session.state.Color.Hex()))
}

// Input replaces the text of one channel field. The text is normalised as it
// would be while typing, then all fields are committed into the session color.
// The normalised text is returned for the host to write back.
func (p *ColorPicker) Input(channel, text string) (string, error) {
	if _, ok := p.text[channel]; !ok {
		return "", fmt.Errorf("input %q: %w", channel, ErrUnknownChannel)
	}
	norm := SanitizeChannel(text)
	p.text[channel] = norm
	c := &p.session.state.Color
	c.R = CommitChannel(p.text[Red])
	c.G = CommitChannel(p.text[Green])
	c.B = CommitChannel(p.text[Blue])
	p.show()
	return norm, nil
}

func (p *ColorPicker) load() {
	c := p.session.state.Color
	p.text = map[string]string{
		Red:   strconv.Itoa(int(c.R)),
		Green: strconv.Itoa(int(c.G)),
		Blue:  strconv.Itoa(int(c.B)),
	}
}

func (p *ColorPicker) show() {
	if cd, ok := p.session.display.(ColorDisplay); ok {
		cd.ShowColor(p.session.state.Color, p.open)
	}
}

// SanitizeChannel is the live-typing validation: non-digits are dropped,
// leading zeros stripped, empty input becomes "0" and values above 255 are
// clamped.
func SanitizeChannel(text string) string {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := strings.TrimLeft(digits.String(), "0")
	if d == "" {
		return "0"
	}
	if len(d) > 3 {
		return "255"
	}
	n, _ := strconv.Atoi(d)
	if n > 255 {
		n = 255
	}
	return strconv.Itoa(n)
}

// CommitChannel is the commit validation: the text must parse as a byte,
// anything else commits as 255.
func CommitChannel(text string) uint8 {
	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 255
	}
	return uint8(n)
}
