package widget

import (
	"fmt"
	"time"

	"github.com/go-drift/expandtext/pkg/errors"
)

// IndicatorVariant selects the toggle control's visual representation.
type IndicatorVariant int

const (
	// IndicatorImage swaps a pair of glyph assets on the toggle control.
	IndicatorImage IndicatorVariant = iota
	// IndicatorText swaps a pair of labels on the toggle control.
	IndicatorText
)

// String returns a human-readable representation of the indicator variant.
func (v IndicatorVariant) String() string {
	switch v {
	case IndicatorImage:
		return "image"
	case IndicatorText:
		return "text"
	default:
		return fmt.Sprintf("IndicatorVariant(%d)", int(v))
	}
}

const (
	// DefaultMaxCollapsedLines is the default line cap in collapsed state.
	DefaultMaxCollapsedLines = 8
	// DefaultAnimationDuration is the default toggle transition length.
	DefaultAnimationDuration = 300 * time.Millisecond
	// DefaultAnimAlphaStart is the text alpha at the start of a transition.
	DefaultAnimAlphaStart = 0.7
)

// Default glyphs used when the Image variant is configured without assets.
var (
	DefaultExpandImage   any = '▾'
	DefaultCollapseImage any = '▴'
)

// Config holds the immutable per-instantiation settings of an
// [ExpandableText]. Start from [DefaultConfig]; the zero value is invalid.
type Config struct {
	// MaxCollapsedLines is the number of lines shown while collapsed.
	// Must be at least 1.
	MaxCollapsedLines int

	// AnimationDuration is the length of the expand/collapse transition.
	// Zero completes the transition on the first frame.
	AnimationDuration time.Duration

	// AnimAlphaStart is the text alpha at the start of a transition, fading
	// to 1 as the transition progresses. 1 disables the fade. Must be in
	// [0, 1].
	AnimAlphaStart float64

	// ToggleOnTextClick makes clicks on the text body activate the toggle
	// in addition to clicks on the toggle control itself.
	ToggleOnTextClick bool

	// Indicator selects the toggle control's representation.
	Indicator IndicatorVariant

	// ExpandImage and CollapseImage are the Image variant's assets. Nil
	// falls back to the package defaults.
	ExpandImage   any
	CollapseImage any

	// ExpandLabel and CollapseLabel are the Text variant's labels.
	ExpandLabel   string
	CollapseLabel string
}

// DefaultConfig returns the configuration the widget ships with.
func DefaultConfig() Config {
	return Config{
		MaxCollapsedLines: DefaultMaxCollapsedLines,
		AnimationDuration: DefaultAnimationDuration,
		AnimAlphaStart:    DefaultAnimAlphaStart,
		ToggleOnTextClick: true,
		Indicator:         IndicatorImage,
	}
}

func (c Config) validate(op string) error {
	if c.MaxCollapsedLines < 1 {
		return errors.Config(op, "maxCollapsedLines must be at least 1, got %d", c.MaxCollapsedLines)
	}
	if c.AnimationDuration < 0 {
		return errors.Config(op, "animationDuration must not be negative, got %v", c.AnimationDuration)
	}
	if c.AnimAlphaStart < 0 || c.AnimAlphaStart > 1 {
		return errors.Config(op, "animAlphaStart must be in [0, 1], got %v", c.AnimAlphaStart)
	}
	return nil
}
