package text

import (
	stderrors "errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/expandtext/pkg/errors"
)

// FaceMeasurer measures text with a font.Face, for hosts that render with
// a concrete typeface. Line height comes from the face's metrics and widths
// from advance measurement, so the layout matches what the host draws.
type FaceMeasurer struct {
	face       font.Face
	lineHeight float64
}

// NewFaceMeasurer creates a measurer for the given font face.
func NewFaceMeasurer(face font.Face) (*FaceMeasurer, error) {
	const op = "text.NewFaceMeasurer"
	if face == nil {
		return nil, errors.Measure(op, stderrors.New("font face required"))
	}
	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight <= 0 {
		lineHeight = fixedToFloat(metrics.Ascent) + fixedToFloat(metrics.Descent)
	}
	if lineHeight <= 0 {
		return nil, errors.Measure(op, stderrors.New("font face reports no line height"))
	}
	return &FaceMeasurer{face: face, lineHeight: lineHeight}, nil
}

// LineHeight returns the height of a single laid-out line in pixels.
func (m *FaceMeasurer) LineHeight() float64 {
	return m.lineHeight
}

// Layout implements [Measurer].
func (m *FaceMeasurer) Layout(content string, maxWidth float64, maxLines int) (Layout, error) {
	const op = "text.FaceMeasurer.Layout"
	if maxWidth <= 0 {
		return Layout{}, errors.Measure(op, fmt.Errorf("non-positive width %v", maxWidth))
	}
	lines := wrapLines(content, maxWidth, func(s string) float64 {
		return fixedToFloat(font.MeasureString(m.face, s))
	})
	return buildLayout(lines, m.lineHeight, maxLines), nil
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
