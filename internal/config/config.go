package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/tool"
)

// Config is the complete penstroke configuration.
type Config struct {
	Input   InputConfig       `toml:"input" yaml:"input"`
	HitTest HitTestConfig     `toml:"hittest" yaml:"hittest"`
	Tool    ToolConfig        `toml:"tool" yaml:"tool"`
	Log     LogConfig         `toml:"log" yaml:"log"`
	Plugins map[string]string `toml:"plugins" yaml:"plugins"`

	// dir is the directory of the file the config was loaded from.
	dir string
}

// InputConfig holds pointer settings.
type InputConfig struct {
	// DoubleClickMS is the longest gap between two presses of a double click.
	DoubleClickMS int `toml:"double_click_ms" yaml:"double_click_ms"`
	// DoubleClickDistance is the largest Manhattan distance between them.
	DoubleClickDistance float64 `toml:"double_click_distance" yaml:"double_click_distance"`
}

// HitTestConfig holds hit-test tolerances in scene units.
type HitTestConfig struct {
	Tolerance      float64 `toml:"tolerance" yaml:"tolerance"`
	CurveTolerance float64 `toml:"curve_tolerance" yaml:"curve_tolerance"`
}

// ToolConfig holds the initial tool and the scene hit policy.
type ToolConfig struct {
	Mode      string `toml:"mode" yaml:"mode"`
	HitPolicy string `toml:"hit_policy" yaml:"hit_policy"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File is the log file. Empty means the default state directory.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	click := mouse.DefaultClickConfig()
	ht := hittest.DefaultConfig()
	return &Config{
		Input: InputConfig{
			DoubleClickMS:       int(click.MaxTime / time.Millisecond),
			DoubleClickDistance: click.MaxDistance,
		},
		HitTest: HitTestConfig{
			Tolerance:      ht.Tolerance,
			CurveTolerance: ht.CurveTolerance,
		},
		Tool: ToolConfig{
			Mode:      editor.ToolSelection.String(),
			HitPolicy: "prefer-unselected",
		},
		Log: LogConfig{
			Level: "info",
		},
		Plugins: map[string]string{},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Input.DoubleClickMS <= 0 {
		add("input.double_click_ms", "must be positive", c.Input.DoubleClickMS)
	}
	if c.Input.DoubleClickDistance < 0 {
		add("input.double_click_distance", "must not be negative", c.Input.DoubleClickDistance)
	}
	if c.HitTest.Tolerance <= 0 {
		add("hittest.tolerance", "must be positive", c.HitTest.Tolerance)
	}
	if c.HitTest.CurveTolerance < c.HitTest.Tolerance {
		add("hittest.curve_tolerance", "must not be below hittest.tolerance", c.HitTest.CurveTolerance)
	}
	if _, err := editor.ParseToolMode(c.Tool.Mode); err != nil {
		add("tool.mode", err.Error(), c.Tool.Mode)
	}
	if _, err := tool.ParseHitPolicy(c.Tool.HitPolicy); err != nil {
		add("tool.hit_policy", err.Error(), c.Tool.HitPolicy)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		add("log.level", "unknown level", c.Log.Level)
	}
	for name, script := range c.Plugins {
		if _, err := gesture.ParseKind(name); err != nil {
			add("plugins."+name, err.Error(), script)
		}
		if strings.TrimSpace(script) == "" {
			add("plugins."+name, "script path is empty", script)
		}
	}

	return errors.Join(errs...)
}

// ClickConfig returns the double-click thresholds.
func (c *Config) ClickConfig() mouse.ClickConfig {
	return mouse.ClickConfig{
		MaxTime:     time.Duration(c.Input.DoubleClickMS) * time.Millisecond,
		MaxDistance: c.Input.DoubleClickDistance,
	}
}

// HitTestConfig returns the geometric oracle settings.
func (c *Config) HitTestConfig() hittest.Config {
	return hittest.Config{
		Tolerance:      c.HitTest.Tolerance,
		CurveTolerance: c.HitTest.CurveTolerance,
	}
}

// ToolMode returns the initial tool mode, or selection if invalid.
func (c *Config) ToolMode() editor.ToolMode {
	m, _ := editor.ParseToolMode(c.Tool.Mode)
	return m
}

// HitPolicy returns the scene hit policy, or PreferUnselected if invalid.
func (c *Config) HitPolicy() tool.HitPolicy {
	p, err := tool.ParseHitPolicy(c.Tool.HitPolicy)
	if err != nil {
		return tool.PreferUnselected
	}
	return p
}

// LogLevel returns the log level, or info if invalid.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// PluginScripts returns the script path for each plugin gesture kind.
// Relative paths are resolved against the config file's directory.
// Unknown kinds are skipped.
func (c *Config) PluginScripts() map[gesture.Kind]string {
	scripts := make(map[gesture.Kind]string, len(c.Plugins))
	for name, script := range c.Plugins {
		kind, err := gesture.ParseKind(name)
		if err != nil {
			continue
		}
		if !filepath.IsAbs(script) && c.dir != "" {
			script = filepath.Join(c.dir, script)
		}
		scripts[kind] = script
	}
	return scripts
}

// String returns a one-line summary for logging.
func (c *Config) String() string {
	return fmt.Sprintf("mode=%s policy=%s double_click=%dms/%g tolerance=%g/%g plugins=%d",
		c.Tool.Mode, c.Tool.HitPolicy, c.Input.DoubleClickMS, c.Input.DoubleClickDistance,
		c.HitTest.Tolerance, c.HitTest.CurveTolerance, len(c.Plugins))
}
