// Package config loads the demo's optional expandtext.yaml configuration
// and resolves it onto widget settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/expandtext/pkg/widget"
)

// Config represents the optional expandtext.yaml configuration.
type Config struct {
	Widget WidgetConfig `yaml:"widget"`
	Demo   DemoConfig   `yaml:"demo"`
}

// WidgetConfig contains widget settings. Absent fields keep the widget
// defaults.
type WidgetConfig struct {
	MaxCollapsedLines   int      `yaml:"maxCollapsedLines,omitempty"`
	AnimationDurationMs int      `yaml:"animationDurationMs,omitempty"`
	AnimAlphaStart      *float64 `yaml:"animAlphaStart,omitempty"`
	ToggleOnTextClick   *bool    `yaml:"toggleOnTextClick,omitempty"`
	Indicator           string   `yaml:"indicator,omitempty"`
	ExpandLabel         string   `yaml:"expandLabel,omitempty"`
	CollapseLabel       string   `yaml:"collapseLabel,omitempty"`
}

// DemoConfig contains demo host settings.
type DemoConfig struct {
	FrameIntervalMs int `yaml:"frameIntervalMs,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Widget        widget.Config
	FrameInterval time.Duration
}

// LoadOptional reads expandtext.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "expandtext.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read expandtext.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse expandtext.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads expandtext.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	w := widget.DefaultConfig()
	if cfg.Widget.MaxCollapsedLines != 0 {
		w.MaxCollapsedLines = cfg.Widget.MaxCollapsedLines
	}
	if cfg.Widget.AnimationDurationMs != 0 {
		w.AnimationDuration = time.Duration(cfg.Widget.AnimationDurationMs) * time.Millisecond
	}
	if cfg.Widget.AnimAlphaStart != nil {
		w.AnimAlphaStart = *cfg.Widget.AnimAlphaStart
	}
	if cfg.Widget.ToggleOnTextClick != nil {
		w.ToggleOnTextClick = *cfg.Widget.ToggleOnTextClick
	}
	switch cfg.Widget.Indicator {
	case "", "image":
		w.Indicator = widget.IndicatorImage
	case "text":
		w.Indicator = widget.IndicatorText
	default:
		return nil, fmt.Errorf("widget.indicator must be \"image\" or \"text\" (got %q)", cfg.Widget.Indicator)
	}
	w.ExpandLabel = cfg.Widget.ExpandLabel
	w.CollapseLabel = cfg.Widget.CollapseLabel
	if w.Indicator == widget.IndicatorText {
		if w.ExpandLabel == "" {
			w.ExpandLabel = "Show more"
		}
		if w.CollapseLabel == "" {
			w.CollapseLabel = "Show less"
		}
	}

	frameInterval := 16 * time.Millisecond
	if cfg.Demo.FrameIntervalMs > 0 {
		frameInterval = time.Duration(cfg.Demo.FrameIntervalMs) * time.Millisecond
	}

	return &Resolved{Widget: w, FrameInterval: frameInterval}, nil
}
