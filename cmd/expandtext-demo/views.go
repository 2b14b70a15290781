package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/expandtext/pkg/text"
)

// frameEvent carries a scheduled animation callback through tcell's event
// queue so frames run on the event loop.
type frameEvent struct {
	tcell.EventTime
	callback func(now time.Time)
}

// screenScheduler implements animation.FrameScheduler over a tcell screen.
// Each requested frame fires one frame interval later as a posted event.
type screenScheduler struct {
	screen   tcell.Screen
	interval time.Duration
}

func (s *screenScheduler) ScheduleFrame(callback func(now time.Time)) {
	time.AfterFunc(s.interval, func() {
		ev := &frameEvent{callback: callback}
		ev.SetEventNow()
		s.screen.PostEventWait(ev)
	})
}

// termTextView renders wrapped text into a cell grid, clipped to the
// animated max height and dimmed while the fade runs.
type termTextView struct {
	measurer  *text.CellMeasurer
	content   string
	maxLines  int
	maxHeight float64
	alpha     float64
	height    float64
}

func newTermTextView() *termTextView {
	return &termTextView{measurer: text.NewCellMeasurer(), alpha: 1}
}

func (v *termTextView) SetText(content string) { v.content = content }
func (v *termTextView) Text() string           { return v.content }
func (v *termTextView) SetMaxLines(n int)      { v.maxLines = n }
func (v *termTextView) SetMaxHeight(h float64) { v.maxHeight = h }
func (v *termTextView) SetAlpha(a float64)     { v.alpha = a }
func (v *termTextView) SetHeight(h float64)    { v.height = h }
func (v *termTextView) Height() float64        { return v.height }

// draw renders the text at (x, y) within width columns and returns the
// number of rows drawn.
func (v *termTextView) draw(screen tcell.Screen, x, y, width int) int {
	if width < 1 {
		return 0
	}
	layout, err := v.measurer.Layout(v.content, float64(width), v.maxLines)
	if err != nil {
		return 0
	}
	rows := layout.LineCount
	if clip := int(v.maxHeight); clip < rows {
		rows = clip
	}
	style := tcell.StyleDefault
	if v.alpha < 1 {
		style = style.Dim(true)
	}
	for i := 0; i < rows; i++ {
		drawString(screen, x, y+i, width, layout.Lines[i], style)
	}
	return rows
}

// termToggleView is the toggle control row. It doubles as the indicator's
// image view: the glyph asset set by the indicator controller is what the
// row displays.
type termToggleView struct {
	visible bool
	glyph   string
}

func (v *termToggleView) SetVisible(visible bool) { v.visible = visible }
func (v *termToggleView) Visible() bool           { return v.visible }
func (v *termToggleView) Height() float64         { return 1 }

func (v *termToggleView) SetImage(img any) {
	switch g := img.(type) {
	case rune:
		v.glyph = string(g)
	case string:
		v.glyph = g
	}
}

func (v *termToggleView) SetLabel(label string) {
	v.glyph = label
}

func (v *termToggleView) draw(screen tcell.Screen, x, y, width int) {
	if !v.visible {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	drawString(screen, x, y, width, " "+v.glyph+" ", style)
}

// termHost implements the widget's container capability with a synchronous
// layout discipline: RequestLayout runs the measurement pass immediately,
// then flushes post-layout callbacks and marks the screen dirty.
type termHost struct {
	width       float64
	height      float64
	fixedHeight bool
	visible     bool
	afterLayout []func()
	dirty       bool

	onLayout func()
}

func (h *termHost) RequestLayout() {
	if h.onLayout != nil {
		h.onLayout()
	}
	callbacks := h.afterLayout
	h.afterLayout = nil
	for _, callback := range callbacks {
		callback()
	}
	h.dirty = true
}

func (h *termHost) RunAfterLayout(callback func()) {
	h.afterLayout = append(h.afterLayout, callback)
}

func (h *termHost) SetVisible(visible bool) { h.visible = visible }
func (h *termHost) Visible() bool           { return h.visible }

func (h *termHost) SetHeight(height float64) {
	h.fixedHeight = true
	h.height = height
}

func (h *termHost) ClearHeight() {
	h.fixedHeight = false
}

func (h *termHost) Height() float64 { return h.height }

func (h *termHost) applyMeasured(height float64) {
	if !h.fixedHeight {
		h.height = height
	}
}

func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > width {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
}
