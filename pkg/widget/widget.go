package widget

import (
	"fmt"

	"github.com/go-drift/expandtext/pkg/animation"
	"github.com/go-drift/expandtext/pkg/errors"
	"github.com/go-drift/expandtext/pkg/text"
)

// Orientation is the stacking direction of the widget's container.
type Orientation int

const (
	// OrientationVertical stacks the text above the toggle control.
	OrientationVertical Orientation = iota
	// OrientationHorizontal is rejected; the widget is vertical-only.
	OrientationHorizontal
)

// Insets describes the fixed vertical chrome around the text element inside
// the widget's stack: the text element's own content padding and its margin
// from the top of the container.
type Insets struct {
	TextPaddingTop    float64
	TextPaddingBottom float64
	TextMarginTop     float64
}

func (i Insets) padding() float64 {
	return i.TextPaddingTop + i.TextPaddingBottom
}

// Views bundles the host elements the widget manipulates.
type Views struct {
	Text   TextView
	Toggle ToggleView
	// Indicator is the element the indicator controller draws on. It must
	// satisfy [ImageView] or [LabelView] per the configured variant. May be
	// nil when the host routes indicator state elsewhere.
	Indicator any
}

// animationRun is one in-flight height transition. At most one exists per
// widget; starting a new toggle supersedes it without notification.
type animationRun struct {
	startHeight float64
	endHeight   float64
}

// ExpandableText coordinates measurement, collapsed/expanded state, and the
// animated height transition between them. See the package documentation
// for the overall protocol.
type ExpandableText struct {
	cfg       Config
	insets    Insets
	measurer  text.Measurer
	views     Views
	host      Host
	indicator IndicatorController

	controller *animation.AnimationController
	run        *animationRun

	collapsed       bool
	relayoutPending bool
	animating       bool

	measuredHeight  float64
	collapsedHeight float64
	fullTextHeight  float64
	marginToBottom  float64
	lastWidth       float64

	store    *CollapseStore
	position int

	listener func(isExpanded bool)
}

// New creates an ExpandableText wired to the given collaborators. The
// configuration is validated eagerly; an invalid line cap, alpha, duration,
// or indicator variant fails here rather than misbehaving later.
//
// The widget starts collapsed and hidden; it becomes visible on the first
// [ExpandableText.SetText] with non-empty content.
func New(cfg Config, insets Insets, measurer text.Measurer, views Views, host Host, scheduler animation.FrameScheduler) (*ExpandableText, error) {
	const op = "widget.New"
	if err := cfg.validate(op); err != nil {
		return nil, err
	}
	if measurer == nil {
		return nil, errors.Config(op, "measurer required")
	}
	if views.Text == nil || views.Toggle == nil {
		return nil, errors.Config(op, "text and toggle views required")
	}
	if host == nil {
		return nil, errors.Config(op, "host required")
	}
	if scheduler == nil {
		return nil, errors.Config(op, "frame scheduler required")
	}

	indicator, err := newIndicatorController(op, cfg)
	if err != nil {
		return nil, err
	}
	if views.Indicator != nil {
		if err := indicator.Bind(views.Indicator); err != nil {
			return nil, err
		}
	}

	w := &ExpandableText{
		cfg:       cfg,
		insets:    insets,
		measurer:  measurer,
		views:     views,
		host:      host,
		indicator: indicator,
		collapsed: true,
	}
	w.controller = animation.NewAnimationController(cfg.AnimationDuration, scheduler)
	w.controller.AddListener(w.applyFrame)
	w.controller.AddStatusListener(w.onAnimationStatus)

	indicator.ChangeState(true)
	views.Toggle.SetVisible(false)
	host.SetVisible(false)
	return w, nil
}

// SetOrientation accepts the vertical orientation and rejects any attempt
// to force a horizontal layout, signalling misuse immediately.
func (w *ExpandableText) SetOrientation(o Orientation) error {
	if o == OrientationHorizontal {
		return errors.Orientation("widget.SetOrientation", "expandable text only supports vertical orientation")
	}
	return nil
}

// SetOnExpandStateChangeListener registers the callback fired when a toggle
// transition completes. Pass nil to remove it.
func (w *ExpandableText) SetOnExpandStateChangeListener(fn func(isExpanded bool)) {
	w.listener = fn
}

// SetText assigns new content. It marks a remeasure pending, cancels any
// in-flight transition, and hides the widget entirely for empty content.
// It never changes the collapsed/expanded state and never animates.
func (w *ExpandableText) SetText(content string) {
	w.relayoutPending = true
	w.clearAnimation()
	w.views.Text.SetText(content)
	w.views.Text.SetAlpha(1)
	w.collapsedHeight = 0
	w.fullTextHeight = 0
	w.marginToBottom = 0
	w.host.SetVisible(content != "")
	w.host.ClearHeight()
	w.host.RequestLayout()
}

// SetTextAt assigns new content for the item at position, reading the
// collapsed flag from the shared store first so a recycled widget instance
// shows each row in its remembered state. The indicator is synced to that
// state before display.
func (w *ExpandableText) SetTextAt(content string, store *CollapseStore, position int) {
	w.store = store
	w.position = position
	w.clearAnimation()
	w.collapsed = store.Get(position)
	w.indicator.ChangeState(w.collapsed)
	w.SetText(content)
}

// Text returns the current content.
func (w *ExpandableText) Text() string {
	if w.views.Text == nil {
		return ""
	}
	return w.views.Text.Text()
}

// Measure runs the measurement protocol for the given available width and
// returns the widget's measured container height. Hosts call it from their
// layout pass. Measurement is skipped entirely while the widget is hidden
// or no relayout is pending; remeasurement is keyed only to explicit
// content changes, never to implicit layout passes.
func (w *ExpandableText) Measure(width float64) (float64, error) {
	const op = "widget.Measure"
	if !w.relayoutPending || !w.host.Visible() {
		return w.measuredHeight, nil
	}
	if width <= 0 {
		return 0, errors.Measure(op, fmt.Errorf("non-positive width %v", width))
	}
	w.relayoutPending = false
	w.lastWidth = width

	// Optimistic first pass: everything fits, no toggle needed.
	w.views.Toggle.SetVisible(false)
	w.views.Text.SetMaxLines(0)
	layout, err := w.measurer.Layout(w.views.Text.Text(), width, 0)
	if err != nil {
		return 0, errors.Measure(op, err)
	}
	w.applyTextHeight(layout.Height + w.insets.padding())
	w.measuredHeight = w.insets.TextMarginTop + w.views.Text.Height()

	if layout.LineCount <= w.cfg.MaxCollapsedLines {
		return w.measuredHeight, nil
	}

	// Doesn't fit: remember the full text height from the unconstrained
	// pass, cap the text if collapsed, and bring the toggle into the stack.
	w.fullTextHeight = layout.LineTop(layout.LineCount) + w.insets.padding()

	if w.collapsed {
		w.views.Text.SetMaxLines(w.cfg.MaxCollapsedLines)
	}
	w.views.Toggle.SetVisible(true)

	capped := layout
	if w.collapsed {
		capped, err = w.measurer.Layout(w.views.Text.Text(), width, w.cfg.MaxCollapsedLines)
		if err != nil {
			return 0, errors.Measure(op, err)
		}
	}
	w.applyTextHeight(capped.Height + w.insets.padding())
	w.measuredHeight = w.insets.TextMarginTop + w.views.Text.Height() + w.views.Toggle.Height()

	if w.collapsed {
		w.collapsedHeight = w.measuredHeight
		w.host.RunAfterLayout(func() {
			// The gap between the text's bottom and the container's bottom
			// stays fixed while the height animates; read it once the
			// layout pass has placed everything.
			w.marginToBottom = w.host.Height() - w.views.Text.Height()
		})
	}
	return w.measuredHeight, nil
}

// MeasuredHeight returns the container height from the most recent
// measurement pass.
func (w *ExpandableText) MeasuredHeight() float64 {
	return w.measuredHeight
}

// CollapsedHeight returns the recorded collapsed container height, or 0 if
// no collapsed measurement has happened for the current content.
func (w *ExpandableText) CollapsedHeight() float64 {
	return w.collapsedHeight
}

// FullTextHeight returns the unconstrained text height including padding,
// or 0 if the current content needs no truncation.
func (w *ExpandableText) FullTextHeight() float64 {
	return w.fullTextHeight
}

// IsCollapsed reports the settled or target state of the widget.
func (w *ExpandableText) IsCollapsed() bool {
	return w.collapsed
}

// IsAnimating reports whether a toggle transition is in flight.
func (w *ExpandableText) IsAnimating() bool {
	return w.animating
}

// ToggleVisible reports whether the toggle control is shown, which is the
// case exactly when the content exceeds the collapsed line cap.
func (w *ExpandableText) ToggleVisible() bool {
	return w.views.Toggle.Visible()
}

// InterceptTouch reports whether the host should swallow input events bound
// for the widget's descendants. True exactly while a transition runs, so a
// second activation cannot corrupt the in-flight run.
func (w *ExpandableText) InterceptTouch() bool {
	return w.animating
}

// HandleTextClick activates the toggle when the configuration allows
// toggling by clicking the text body.
func (w *ExpandableText) HandleTextClick() {
	if !w.cfg.ToggleOnTextClick {
		return
	}
	w.Toggle()
}

// Toggle flips the collapsed state and starts the height transition.
// Activation while a transition is running, or while the toggle control is
// hidden, is a no-op.
func (w *ExpandableText) Toggle() {
	if w.animating || !w.views.Toggle.Visible() {
		return
	}

	w.collapsed = !w.collapsed
	w.indicator.ChangeState(w.collapsed)
	if w.store != nil {
		w.store.Put(w.position, w.collapsed)
	}

	w.animating = true
	start := w.host.Height()
	var end float64
	if w.collapsed {
		end = w.collapsedTarget(start)
	} else {
		// Grow by exactly the hidden remainder of the text.
		end = start + w.fullTextHeight - w.views.Text.Height()
	}
	w.run = &animationRun{startHeight: start, endHeight: end}

	if w.cfg.AnimAlphaStart < 1 {
		w.views.Text.SetAlpha(w.cfg.AnimAlphaStart)
	}
	w.controller.Restart()
}

// collapsedTarget returns the container height to collapse down to. When
// the widget was bound directly into the expanded state, no collapsed
// measurement pass has run yet, so the capped height is computed here on
// first use.
func (w *ExpandableText) collapsedTarget(current float64) float64 {
	if w.collapsedHeight > 0 {
		return w.collapsedHeight
	}
	capped, err := w.measurer.Layout(w.views.Text.Text(), w.lastWidth, w.cfg.MaxCollapsedLines)
	if err != nil {
		errors.Report(errors.Measure("widget.Toggle", err))
		return current
	}
	w.collapsedHeight = w.insets.TextMarginTop + capped.Height + w.insets.padding() + w.views.Toggle.Height()
	w.marginToBottom = w.collapsedHeight - (capped.Height + w.insets.padding())
	return w.collapsedHeight
}

// applyFrame applies one step of the in-flight transition: the interpolated
// container height, the text's max-height clamp that keeps it filling the
// container without overflowing the toggle, and the alpha fade.
func (w *ExpandableText) applyFrame() {
	run := w.run
	if run == nil {
		return
	}
	f := w.controller.Value
	height := animation.LerpFloat64(run.startHeight, run.endHeight, f)
	w.views.Text.SetMaxHeight(height - w.marginToBottom)
	if w.cfg.AnimAlphaStart < 1 {
		w.views.Text.SetAlpha(w.cfg.AnimAlphaStart + f*(1-w.cfg.AnimAlphaStart))
	}
	w.host.SetHeight(height)
	w.host.RequestLayout()
}

func (w *ExpandableText) onAnimationStatus(status animation.AnimationStatus) {
	if status != animation.AnimationCompleted {
		return
	}
	run := w.run
	if run == nil {
		return
	}
	// Fill-after: the final height persists as the container's layout
	// height. Clear the transient run before notifying so the listener
	// cannot re-enter an in-flight transformation.
	textHeight := run.endHeight - w.marginToBottom
	w.views.Text.SetHeight(textHeight)
	w.views.Text.SetMaxHeight(textHeight)
	w.run = nil
	w.animating = false
	if w.listener != nil {
		w.listener(!w.collapsed)
	}
}

// clearAnimation supersedes any in-flight run. No completion notification
// is sent for a superseded run.
func (w *ExpandableText) clearAnimation() {
	w.controller.Stop()
	w.run = nil
	w.animating = false
}

func (w *ExpandableText) applyTextHeight(h float64) {
	w.views.Text.SetHeight(h)
	w.views.Text.SetMaxHeight(h)
}
