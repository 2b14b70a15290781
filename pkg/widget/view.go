package widget

// TextView is the host's text element. The widget pushes the text content,
// line cap, laid-out height, animation clamps, and fade alpha through it;
// the host renders accordingly.
type TextView interface {
	SetText(content string)
	Text() string
	// SetMaxLines caps the number of rendered lines. 0 means unlimited.
	SetMaxLines(n int)
	// SetMaxHeight clamps the rendered height during a transition so the
	// text fills the animated container without overflowing the toggle.
	SetMaxHeight(h float64)
	// SetAlpha sets the text opacity in [0, 1].
	SetAlpha(a float64)
	// SetHeight records the laid-out height. Only the widget calls it.
	SetHeight(h float64)
	// Height returns the most recent laid-out height.
	Height() float64
}

// ToggleView is the host's toggle control element.
type ToggleView interface {
	SetVisible(visible bool)
	Visible() bool
	// Height returns the toggle control's fixed height in the stack.
	Height() float64
}

// ImageView displays one of the Image indicator's glyph assets.
type ImageView interface {
	SetImage(img any)
}

// LabelView displays one of the Text indicator's labels.
type LabelView interface {
	SetLabel(label string)
}

// Host is the container capability the widget wraps: a vertical stack that
// can re-run layout, defer a callback until after layout, and pin its
// height while a transition is in flight.
type Host interface {
	// RequestLayout asks the host to run a layout pass, during which it
	// calls [ExpandableText.Measure].
	RequestLayout()
	// RunAfterLayout queues a single-shot callback invoked once the next
	// layout pass has placed all elements.
	RunAfterLayout(callback func())
	SetVisible(visible bool)
	Visible() bool
	// SetHeight pins the container to a fixed height (used per animation
	// frame and persisted after it, the fill-after discipline).
	SetHeight(h float64)
	// ClearHeight returns the container to content-sized height.
	ClearHeight()
	// Height returns the container's current laid-out height.
	Height() float64
}
