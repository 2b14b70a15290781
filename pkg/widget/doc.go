// Package widget implements the expandable/collapsible text widget.
//
// [ExpandableText] is the orchestrator: it owns the collapsed/expanded
// state machine, runs the two-pass measurement protocol against a
// [text.Measurer], and drives an animated height transition through an
// animation controller when the user activates the toggle. The host
// supplies the concrete [TextView], [ToggleView], and container [Host] it
// manipulates, plus a frame scheduler for the animation.
//
// The widget is a vertical stack of two elements: the text body on top and
// the toggle control beneath it. Collapsed, the text is capped at
// Config.MaxCollapsedLines; expanded, it shows in full. The toggle is only
// shown when the text actually exceeds the cap.
//
// All methods must be called from the host's event-dispatch thread. The
// widget holds no locks and spawns no goroutines.
package widget
