package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/expandtext/pkg/widget"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "expandtext.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolve_Defaults(t *testing.T) {
	resolved, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Widget != widget.DefaultConfig() {
		t.Errorf("widget config = %+v, want defaults", resolved.Widget)
	}
	if resolved.FrameInterval != 16*time.Millisecond {
		t.Errorf("frame interval = %v, want 16ms", resolved.FrameInterval)
	}
}

func TestResolve_Overrides(t *testing.T) {
	dir := writeConfig(t, `
widget:
  maxCollapsedLines: 3
  animationDurationMs: 150
  animAlphaStart: 0.5
  toggleOnTextClick: false
  indicator: text
  expandLabel: more
  collapseLabel: less
demo:
  frameIntervalMs: 33
`)
	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	w := resolved.Widget
	if w.MaxCollapsedLines != 3 {
		t.Errorf("MaxCollapsedLines = %d, want 3", w.MaxCollapsedLines)
	}
	if w.AnimationDuration != 150*time.Millisecond {
		t.Errorf("AnimationDuration = %v, want 150ms", w.AnimationDuration)
	}
	if w.AnimAlphaStart != 0.5 {
		t.Errorf("AnimAlphaStart = %v, want 0.5", w.AnimAlphaStart)
	}
	if w.ToggleOnTextClick {
		t.Error("ToggleOnTextClick should be off")
	}
	if w.Indicator != widget.IndicatorText {
		t.Errorf("Indicator = %v, want text", w.Indicator)
	}
	if w.ExpandLabel != "more" || w.CollapseLabel != "less" {
		t.Errorf("labels = %q/%q", w.ExpandLabel, w.CollapseLabel)
	}
	if resolved.FrameInterval != 33*time.Millisecond {
		t.Errorf("frame interval = %v, want 33ms", resolved.FrameInterval)
	}
}

func TestResolve_RejectsUnknownIndicator(t *testing.T) {
	dir := writeConfig(t, "widget:\n  indicator: blinking\n")
	if _, err := Resolve(dir); err == nil {
		t.Error("expected an error for an unknown indicator variant")
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("missing file should yield an empty config")
	}
}

func TestLoadOptional_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "widget: [")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected a parse error")
	}
}
