package testing

import "github.com/go-drift/expandtext/pkg/widget"

// FakeTextView records everything the widget applies to its text element.
type FakeTextView struct {
	content   string
	maxLines  int
	maxHeight float64
	alpha     float64
	height    float64
}

// NewFakeTextView creates a text view with full opacity.
func NewFakeTextView() *FakeTextView {
	return &FakeTextView{alpha: 1}
}

func (v *FakeTextView) SetText(content string) { v.content = content }
func (v *FakeTextView) Text() string           { return v.content }
func (v *FakeTextView) SetMaxLines(n int)      { v.maxLines = n }
func (v *FakeTextView) SetMaxHeight(h float64) { v.maxHeight = h }
func (v *FakeTextView) SetAlpha(a float64)     { v.alpha = a }
func (v *FakeTextView) SetHeight(h float64)    { v.height = h }
func (v *FakeTextView) Height() float64        { return v.height }

// MaxLines returns the current line cap (0 = unlimited).
func (v *FakeTextView) MaxLines() int { return v.maxLines }

// MaxHeight returns the current rendered-height clamp.
func (v *FakeTextView) MaxHeight() float64 { return v.maxHeight }

// Alpha returns the current text opacity.
func (v *FakeTextView) Alpha() float64 { return v.alpha }

// FakeToggleView is a toggle control with a fixed height.
type FakeToggleView struct {
	visible bool
	height  float64
}

// NewFakeToggleView creates a toggle view of the given height.
func NewFakeToggleView(height float64) *FakeToggleView {
	return &FakeToggleView{height: height}
}

func (v *FakeToggleView) SetVisible(visible bool) { v.visible = visible }
func (v *FakeToggleView) Visible() bool           { return v.visible }
func (v *FakeToggleView) Height() float64         { return v.height }

// FakeImageView records the glyph asset set by an image indicator.
type FakeImageView struct {
	image any
}

func (v *FakeImageView) SetImage(img any) { v.image = img }

// Image returns the displayed asset.
func (v *FakeImageView) Image() any { return v.image }

// FakeLabelView records the label set by a text indicator.
type FakeLabelView struct {
	label string
}

func (v *FakeLabelView) SetLabel(label string) { v.label = label }

// Label returns the displayed label.
func (v *FakeLabelView) Label() string { return v.label }

// FakeHost implements the widget's container capability with an immediate
// layout discipline: RequestLayout synchronously invokes the layout
// function the harness registers, then flushes callbacks queued with
// RunAfterLayout.
type FakeHost struct {
	visible     bool
	height      float64
	fixedHeight bool
	afterLayout []func()
	layoutCount int

	// OnLayout is the layout pass. The harness points it at the widget's
	// Measure; tests may replace it.
	OnLayout func()
}

// NewFakeHost creates a hidden host with no layout function.
func NewFakeHost() *FakeHost {
	return &FakeHost{}
}

// RequestLayout runs a synchronous layout pass and flushes post-layout
// callbacks.
func (h *FakeHost) RequestLayout() {
	h.layoutCount++
	if h.OnLayout != nil {
		h.OnLayout()
	}
	callbacks := h.afterLayout
	h.afterLayout = nil
	for _, callback := range callbacks {
		callback()
	}
}

// RunAfterLayout queues a single-shot callback for the end of the next
// layout pass.
func (h *FakeHost) RunAfterLayout(callback func()) {
	h.afterLayout = append(h.afterLayout, callback)
}

func (h *FakeHost) SetVisible(visible bool) { h.visible = visible }
func (h *FakeHost) Visible() bool           { return h.visible }

// SetHeight pins the container height, as the animator does per frame.
func (h *FakeHost) SetHeight(height float64) {
	h.fixedHeight = true
	h.height = height
}

// ClearHeight returns the host to content-sized layout.
func (h *FakeHost) ClearHeight() {
	h.fixedHeight = false
}

func (h *FakeHost) Height() float64 { return h.height }

// ApplyMeasured adopts a measured height unless a fixed height is pinned.
func (h *FakeHost) ApplyMeasured(height float64) {
	if !h.fixedHeight {
		h.height = height
	}
}

// LayoutCount returns how many layout passes have run.
func (h *FakeHost) LayoutCount() int { return h.layoutCount }

// Harness wires a widget's collaborators together: fake views, a fake host
// with synchronous layout, and a hand-pumped frame scheduler.
type Harness struct {
	Scheduler *FakeScheduler
	Text      *FakeTextView
	Toggle    *FakeToggleView
	Image     *FakeImageView
	Label     *FakeLabelView
	Host      *FakeHost

	// Width is the available width handed to Measure on every layout pass.
	Width float64

	// Err records the most recent measurement error, if any.
	Err error
}

// NewHarness creates a harness measuring at the given width, with a toggle
// control of the given height.
func NewHarness(width, toggleHeight float64) *Harness {
	return &Harness{
		Scheduler: NewFakeScheduler(),
		Text:      NewFakeTextView(),
		Toggle:    NewFakeToggleView(toggleHeight),
		Image:     &FakeImageView{},
		Label:     &FakeLabelView{},
		Host:      NewFakeHost(),
		Width:     width,
	}
}

// Views returns the harness's views bundle with the image indicator bound.
func (h *Harness) Views() widget.Views {
	return widget.Views{Text: h.Text, Toggle: h.Toggle, Indicator: h.Image}
}

// Attach points the host's layout pass at the widget's Measure so that
// RequestLayout drives measurement the way a real host would.
func (h *Harness) Attach(w *widget.ExpandableText) {
	h.Host.OnLayout = func() {
		measured, err := w.Measure(h.Width)
		if err != nil {
			h.Err = err
			return
		}
		h.Host.ApplyMeasured(measured)
	}
}
