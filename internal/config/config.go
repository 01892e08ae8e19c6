/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"pixelpaint/internal/raster"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the
// user scope. Environment variables are read-only overrides applied on Load.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Canvas        CanvasConfig   `yaml:"canvas"`
	Display       DisplayConfig  `yaml:"display"`
	Terminal      TerminalConfig `yaml:"terminal"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// CanvasConfig sizes the initial canvas. Colors are "#rrggbb" or "#rgb".
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

// DisplayConfig applies to the desktop window.
type DisplayConfig struct {
	Zoom      int  `yaml:"zoom"`
	Centered  bool `yaml:"centered"`
	MinSketch int  `yaml:"min_sketch"`
}

type TerminalConfig struct {
	MinSketch int `yaml:"min_sketch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// ErrInvalidConfig marks a config file that could not be parsed or does not
// match the schema. Load still returns a usable configuration alongside it.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed schema.json
var schemaJSON []byte

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 320, Height: 240, Color: "#000000", Background: "#ffffff"},
		Display:       DisplayConfig{Zoom: 2, Centered: true, MinSketch: 50},
		Terminal:      TerminalConfig{MinSketch: 4},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath   = "PXP_CONFIG"
	EnvCanvasWidth  = "PXP_CANVAS_WIDTH"
	EnvCanvasHeight = "PXP_CANVAS_HEIGHT"
	EnvDisplayZoom  = "PXP_DISPLAY_ZOOM"
	EnvLogLevel     = "PXP_LOG_LEVEL"
	EnvLogFormat    = "PXP_LOG_FORMAT"
	EnvLogSource    = "PXP_LOG_SOURCE"
	EnvLogFile      = "PXP_LOG_FILE"
)

// ConfigPath returns the per-user config file path, or PXP_CONFIG when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PixelPaint")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PixelPaint")
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve config directory: %w", err)
		}
		base = filepath.Join(dir, "pixelpaint")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file if present, merges it over the defaults and
// applies environment overrides.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load for an explicit path. A missing file is not an error. A file
// that fails to parse or validate yields ErrInvalidConfig together with the
// defaults plus environment overrides.
func LoadFrom(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		applyEnvOverrides(&cfg)
		return cfg, nil
	}
	if err != nil {
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if verr := Validate(data); verr != nil {
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("%s: %w", path, verr)
	}
	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("%s: %w: %v", path, ErrInvalidConfig, err)
	}
	mergeInto(&cfg, &fileCfg, data)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Validate checks a raw YAML document against the embedded schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return nil
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// Save writes cfg as YAML to the user config path.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// YAML renders the configuration the way Save writes it.
func (c AppConfig) YAML() ([]byte, error) { return yaml.Marshal(c) }

// Colors parses the drawing and background colors, falling back to black and
// white for values that do not parse.
func (c CanvasConfig) Colors() (fg, bg raster.Color) {
	fg, bg = raster.Black, raster.White
	if v, err := raster.ParseHex(c.Color); err == nil {
		fg = v
	}
	if v, err := raster.ParseHex(c.Background); err == nil {
		bg = v
	}
	return fg, bg
}

// mergeInto copies the fields the file sets. Booleans are taken from the file
// only when their key is present in raw.
func mergeInto(dst *AppConfig, src *AppConfig, raw []byte) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width > 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height > 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if v := strings.TrimSpace(src.Canvas.Color); v != "" {
		dst.Canvas.Color = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Canvas.Background); v != "" {
		dst.Canvas.Background = strings.ToLower(v)
	}
	if src.Display.Zoom > 0 {
		dst.Display.Zoom = src.Display.Zoom
	}
	if src.Display.MinSketch > 0 {
		dst.Display.MinSketch = src.Display.MinSketch
	}
	if src.Terminal.MinSketch > 0 {
		dst.Terminal.MinSketch = src.Terminal.MinSketch
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}

	var present struct {
		Display struct {
			Centered *bool `yaml:"centered"`
		} `yaml:"display"`
		Logging struct {
			Source *bool `yaml:"source"`
		} `yaml:"logging"`
	}
	if yaml.Unmarshal(raw, &present) == nil {
		if present.Display.Centered != nil {
			dst.Display.Centered = *present.Display.Centered
		}
		if present.Logging.Source != nil {
			dst.Logging.Source = *present.Logging.Source
		}
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if n, ok := envInt(EnvCanvasWidth); ok && n > 0 {
		cfg.Canvas.Width = n
	}
	if n, ok := envInt(EnvCanvasHeight); ok && n > 0 {
		cfg.Canvas.Height = n
	}
	if n, ok := envInt(EnvDisplayZoom); ok && n > 0 {
		cfg.Display.Zoom = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

// envKeys maps config keys to the variables that override them, in file order.
var envKeys = []struct{ key, env string }{
	{"canvas.width", EnvCanvasWidth},
	{"canvas.height", EnvCanvasHeight},
	{"display.zoom", EnvDisplayZoom},
	{"logging.level", EnvLogLevel},
	{"logging.format", EnvLogFormat},
	{"logging.source", EnvLogSource},
	{"logging.file", EnvLogFile},
}

// EnvOverrideFor returns the env var name if the field is overridden by the
// environment.
func EnvOverrideFor(key string) (string, bool) {
	for _, k := range envKeys {
		if k.key == key && os.Getenv(k.env) != "" {
			return k.env, true
		}
	}
	return "", false
}

// EnvOverrides lists the keys currently overridden by the environment, each
// as "key (VAR)".
func EnvOverrides() []string {
	var out []string
	for _, k := range envKeys {
		if env, ok := EnvOverrideFor(k.key); ok {
			out = append(out, fmt.Sprintf("%s (%s)", k.key, env))
		}
	}
	return out
}
