package widget

import (
	"testing"

	"github.com/go-drift/expandtext/pkg/errors"
)

type recordingImageView struct{ image any }

func (v *recordingImageView) SetImage(img any) { v.image = img }

type recordingLabelView struct{ label string }

func (v *recordingLabelView) SetLabel(label string) { v.label = label }

func TestImageIndicator_SwapsGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExpandImage = "more"
	cfg.CollapseImage = "less"
	c, err := newIndicatorController("widget.New", cfg)
	if err != nil {
		t.Fatal(err)
	}

	view := &recordingImageView{}
	if err := c.Bind(view); err != nil {
		t.Fatal(err)
	}

	c.ChangeState(true)
	if view.image != "more" {
		t.Errorf("collapsed glyph = %v, want expand asset", view.image)
	}
	c.ChangeState(false)
	if view.image != "less" {
		t.Errorf("expanded glyph = %v, want collapse asset", view.image)
	}
}

func TestImageIndicator_DefaultGlyphs(t *testing.T) {
	c, err := newIndicatorController("widget.New", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	view := &recordingImageView{}
	if err := c.Bind(view); err != nil {
		t.Fatal(err)
	}

	c.ChangeState(true)
	if view.image != DefaultExpandImage {
		t.Errorf("collapsed glyph = %v, want default expand glyph", view.image)
	}
}

func TestTextIndicator_SwapsLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Indicator = IndicatorText
	cfg.ExpandLabel = "Show more"
	cfg.CollapseLabel = "Show less"
	c, err := newIndicatorController("widget.New", cfg)
	if err != nil {
		t.Fatal(err)
	}

	view := &recordingLabelView{}
	if err := c.Bind(view); err != nil {
		t.Fatal(err)
	}

	c.ChangeState(true)
	if view.label != "Show more" {
		t.Errorf("collapsed label = %q", view.label)
	}
	c.ChangeState(false)
	if view.label != "Show less" {
		t.Errorf("expanded label = %q", view.label)
	}
}

func TestIndicator_BindRejectsWrongView(t *testing.T) {
	c, err := newIndicatorController("widget.New", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Bind(&recordingLabelView{}); err == nil {
		t.Error("image indicator must reject a label view")
	}

	cfg := DefaultConfig()
	cfg.Indicator = IndicatorText
	c, err = newIndicatorController("widget.New", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Bind(&recordingImageView{}); err == nil {
		t.Error("text indicator must reject an image view")
	}
}

func TestIndicator_UnrecognizedVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Indicator = IndicatorVariant(42)
	_, err := newIndicatorController("widget.New", cfg)
	if err == nil {
		t.Fatal("expected an error for an unrecognized variant")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindConfig {
		t.Errorf("error kind = %v, want config", err)
	}
}

func TestIndicator_ChangeStateUnboundNoPanic(t *testing.T) {
	c, err := newIndicatorController("widget.New", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	c.ChangeState(true)
	c.ChangeState(false)
}
