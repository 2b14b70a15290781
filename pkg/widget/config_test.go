package widget

import (
	"testing"
	"time"

	"github.com/go-drift/expandtext/pkg/errors"
)

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zeroLineCap", func(c *Config) { c.MaxCollapsedLines = 0 }, false},
		{"negativeLineCap", func(c *Config) { c.MaxCollapsedLines = -3 }, false},
		{"singleLine", func(c *Config) { c.MaxCollapsedLines = 1 }, true},
		{"negativeDuration", func(c *Config) { c.AnimationDuration = -time.Second }, false},
		{"zeroDuration", func(c *Config) { c.AnimationDuration = 0 }, true},
		{"alphaBelowRange", func(c *Config) { c.AnimAlphaStart = -0.1 }, false},
		{"alphaAboveRange", func(c *Config) { c.AnimAlphaStart = 1.1 }, false},
		{"fadeDisabled", func(c *Config) { c.AnimAlphaStart = 1 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.validate("widget.New")
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected a configuration error")
				}
				e, ok := err.(*errors.Error)
				if !ok || e.Kind != errors.KindConfig {
					t.Errorf("error kind = %v, want config", err)
				}
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxCollapsedLines != 8 {
		t.Errorf("MaxCollapsedLines = %d, want 8", cfg.MaxCollapsedLines)
	}
	if cfg.AnimationDuration != 300*time.Millisecond {
		t.Errorf("AnimationDuration = %v, want 300ms", cfg.AnimationDuration)
	}
	if cfg.AnimAlphaStart != 0.7 {
		t.Errorf("AnimAlphaStart = %v, want 0.7", cfg.AnimAlphaStart)
	}
	if !cfg.ToggleOnTextClick {
		t.Error("ToggleOnTextClick should default on")
	}
	if cfg.Indicator != IndicatorImage {
		t.Errorf("Indicator = %v, want image", cfg.Indicator)
	}
}
