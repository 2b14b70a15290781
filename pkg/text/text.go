// Package text supplies the measurement collaborators consumed by the
// expandable text widget.
//
// The widget never breaks lines itself; it asks a [Measurer] how many lines
// some content occupies at a given width and where each line starts
// vertically, then derives its collapsed and expanded heights from the
// answer. Two measurers ship with the module: [FaceMeasurer] for pixel
// hosts rendering with a font face, and [CellMeasurer] for terminal hosts
// where a line is one cell tall.
package text

// Layout is the result of measuring content at a fixed width.
type Layout struct {
	// Lines holds the wrapped lines actually laid out. When a line cap is
	// in effect the slice is truncated to the cap.
	Lines []string
	// LineCount is len(Lines).
	LineCount int
	// LineTops holds LineCount+1 vertical offsets: LineTops[i] is the top
	// of line i, and LineTops[LineCount] is the bottom of the last line.
	LineTops []float64
	// Height is the total laid-out height, equal to LineTops[LineCount].
	Height float64
}

// LineTop returns the vertical offset of the top of line i. i may equal
// LineCount, in which case the bottom of the last line is returned.
func (l Layout) LineTop(i int) float64 {
	if i < 0 || i >= len(l.LineTops) {
		return l.Height
	}
	return l.LineTops[i]
}

// Measurer lays out content at a given width.
//
// maxLines limits the number of laid-out lines; 0 means unlimited. The
// widget runs one unlimited pass to decide whether truncation is needed and,
// if so, a second capped pass to size its collapsed state.
type Measurer interface {
	Layout(content string, maxWidth float64, maxLines int) (Layout, error)
}

// buildLayout assembles a Layout from wrapped lines and a uniform line
// height, applying the line cap.
func buildLayout(lines []string, lineHeight float64, maxLines int) Layout {
	if maxLines > 0 && maxLines < len(lines) {
		lines = lines[:maxLines]
	}
	tops := make([]float64, len(lines)+1)
	for i := range tops {
		tops[i] = float64(i) * lineHeight
	}
	return Layout{
		Lines:     lines,
		LineCount: len(lines),
		LineTops:  tops,
		Height:    tops[len(lines)],
	}
}
