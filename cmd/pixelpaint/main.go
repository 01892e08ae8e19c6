/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"pixelpaint/internal/config"
	"pixelpaint/internal/crash"
	applog "pixelpaint/internal/log"
	"pixelpaint/internal/term"
	"pixelpaint/internal/ui"
	"pixelpaint/internal/version"
)

// Terminal canvas size when tui gets no WxH argument.
const (
	termWidth  = 40
	termHeight = 20
)

func usage() {
	fmt.Println("PixelPaint")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pixelpaint version|-v|--version   Show version")
	fmt.Println("  pixelpaint tui [WxH]               Paint in the terminal (default 40x20)")
	fmt.Println("  pixelpaint ui                      Launch desktop UI (build with -tags fyne)")
	fmt.Println("  pixelpaint config                  Print the effective configuration")
}

// parseSize reads "WxH" with both sides positive.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q: want positive integers", s)
	}
	return w, h, nil
}

func logOptions(c config.LoggingConfig) applog.Options {
	return applog.Options{Level: c.Level, Format: c.Format, AddSource: c.Source, File: c.File}
}

// writeConfig prints the effective configuration as YAML, preceded by its
// path and the keys taken from the environment, followed by any load problem.
func writeConfig(w io.Writer, cfg config.AppConfig, path string, cfgErr error) error {
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintln(w, "# path:", path)
	}
	for _, o := range config.EnvOverrides() {
		fmt.Fprintln(w, "# env override:", o)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if cfgErr != nil {
		fmt.Fprintln(w, "# problems:", cfgErr)
	}
	return nil
}

func main() {
	// environment first so config loading is logged, then the config's settings
	applog.Init(applog.FromEnv())
	defer crash.Recover(nil)

	cfg, cfgErr := config.Load()
	applog.Init(logOptions(cfg.Logging))
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config problem, using defaults", slog.Any("err", cfgErr))
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("PixelPaint")
			fmt.Println(version.String())
			return
		case "tui":
			w, h := termWidth, termHeight
			if len(args) >= 3 {
				var err error
				if w, h, err = parseSize(args[2]); err != nil {
					fmt.Println("Error:", err)
					usage()
					os.Exit(2)
				}
			}
			if err := term.Run(cfg, w, h); err != nil {
				l.Error("terminal UI failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "ui":
			if err := ui.Run(cfg); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "config":
			path, _ := config.ConfigPath()
			if err := writeConfig(os.Stdout, cfg, path, cfgErr); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if errors.Is(cfgErr, config.ErrInvalidConfig) {
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
