package widget

import "testing"

func TestCollapseStore_DefaultsCollapsed(t *testing.T) {
	s := NewCollapseStore()
	if !s.Get(0) {
		t.Error("unwritten position should default to collapsed")
	}
}

func TestCollapseStore_PutGet(t *testing.T) {
	s := NewCollapseStore()
	s.Put(3, false)
	s.Put(5, true)

	if s.Get(3) {
		t.Error("Get(3) = true, want recorded false")
	}
	if !s.Get(5) {
		t.Error("Get(5) = false, want recorded true")
	}
	if !s.Get(4) {
		t.Error("Get(4) should stay at the collapsed default")
	}
}

func TestCollapseStore_Remove(t *testing.T) {
	s := NewCollapseStore()
	s.Put(1, false)
	s.Remove(1)
	if !s.Get(1) {
		t.Error("removed position should revert to collapsed")
	}
}

func TestCollapseStore_Clear(t *testing.T) {
	s := NewCollapseStore()
	s.Put(0, false)
	s.Put(1, false)
	s.Clear()
	if !s.Get(0) || !s.Get(1) {
		t.Error("cleared store should revert all positions to collapsed")
	}
}

func TestSetOrientation(t *testing.T) {
	var w ExpandableText
	if err := w.SetOrientation(OrientationVertical); err != nil {
		t.Errorf("vertical orientation rejected: %v", err)
	}
	if err := w.SetOrientation(OrientationHorizontal); err == nil {
		t.Error("horizontal orientation must be rejected")
	}
}
