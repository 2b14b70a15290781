package widget

import "github.com/go-drift/expandtext/pkg/errors"

// IndicatorController owns the toggle control's visual representation and
// updates it for a given collapsed/expanded state.
type IndicatorController interface {
	// ChangeState updates the bound view to reflect the collapsed flag.
	// A no-op until a view is bound.
	ChangeState(collapsed bool)
	// Bind attaches the target element the indicator draws on. The element
	// must satisfy the variant's view interface.
	Bind(view any) error
}

type imageIndicator struct {
	expand   any
	collapse any
	view     ImageView
}

func (c *imageIndicator) ChangeState(collapsed bool) {
	if c.view == nil {
		return
	}
	if collapsed {
		c.view.SetImage(c.expand)
	} else {
		c.view.SetImage(c.collapse)
	}
}

func (c *imageIndicator) Bind(view any) error {
	v, ok := view.(ImageView)
	if !ok {
		return errors.Config("widget.IndicatorController.Bind", "image indicator requires an ImageView, got %T", view)
	}
	c.view = v
	return nil
}

type textIndicator struct {
	expandLabel   string
	collapseLabel string
	view          LabelView
}

func (c *textIndicator) ChangeState(collapsed bool) {
	if c.view == nil {
		return
	}
	if collapsed {
		c.view.SetLabel(c.expandLabel)
	} else {
		c.view.SetLabel(c.collapseLabel)
	}
}

func (c *textIndicator) Bind(view any) error {
	v, ok := view.(LabelView)
	if !ok {
		return errors.Config("widget.IndicatorController.Bind", "text indicator requires a LabelView, got %T", view)
	}
	c.view = v
	return nil
}

// newIndicatorController selects the controller for the configured variant.
// An unrecognized variant tag is a configuration error.
func newIndicatorController(op string, cfg Config) (IndicatorController, error) {
	switch cfg.Indicator {
	case IndicatorImage:
		expand := cfg.ExpandImage
		if expand == nil {
			expand = DefaultExpandImage
		}
		collapse := cfg.CollapseImage
		if collapse == nil {
			collapse = DefaultCollapseImage
		}
		return &imageIndicator{expand: expand, collapse: collapse}, nil
	case IndicatorText:
		return &textIndicator{
			expandLabel:   cfg.ExpandLabel,
			collapseLabel: cfg.CollapseLabel,
		}, nil
	default:
		return nil, errors.Config(op, "unrecognized indicator variant %d, must be IndicatorImage or IndicatorText", int(cfg.Indicator))
	}
}
