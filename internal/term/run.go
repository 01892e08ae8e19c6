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

	tea "github.com/charmbracelet/bubbletea"

	"pixelpaint/internal/config"
	"pixelpaint/internal/crash"
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/paint"
	"pixelpaint/internal/raster"
	"pixelpaint/internal/version"
)

// Run starts the terminal program on a width x height canvas and blocks until
// the user quits.
func Run(cfg config.AppConfig, width, height int) error {
	l := applog.WithComponent("term")
	l.Info("starting terminal UI", slog.String("version", version.String()),
		slog.Int("width", width), slog.Int("height", height))

	fg, bg := cfg.Canvas.Colors()
	st := paint.NewState(raster.Filled(width, height, bg), fg)
	defer crash.Recover(st)

	p := tea.NewProgram(New(st, cfg.Terminal.MinSketch), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	l.Info("terminal UI closed", slog.String("canvas", st.Summary()))
	return nil
}
