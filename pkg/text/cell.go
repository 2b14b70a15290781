package text

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/expandtext/pkg/errors"
)

// CellMeasurer measures text on a terminal cell grid: widths are display
// columns and every line is exactly one cell tall. East-Asian wide runes
// count as two columns, matching how terminal hosts render them.
type CellMeasurer struct{}

// NewCellMeasurer creates a cell-grid measurer.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{}
}

// LineHeight returns the height of a single line, which is always one cell.
func (m *CellMeasurer) LineHeight() float64 {
	return 1
}

// Layout implements [Measurer].
func (m *CellMeasurer) Layout(content string, maxWidth float64, maxLines int) (Layout, error) {
	const op = "text.CellMeasurer.Layout"
	if maxWidth < 1 {
		return Layout{}, errors.Measure(op, fmt.Errorf("width %v is narrower than one cell", maxWidth))
	}
	lines := wrapLines(content, maxWidth, func(s string) float64 {
		return float64(runewidth.StringWidth(s))
	})
	return buildLayout(lines, 1, maxLines), nil
}
