package vterm

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{StartRow: 1, EndRow: 5, StartCol: 2, EndCol: 6}
	if !r.Contains(Pos{Row: 2, Col: 3}) {
		t.Error("expected point inside rect to be contained")
	}
	if r.Contains(Pos{Row: 5, Col: 3}) {
		t.Error("EndRow should be exclusive")
	}
	if r.Contains(Pos{Row: 2, Col: 6}) {
		t.Error("EndCol should be exclusive")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{StartRow: 0, EndRow: 3, StartCol: 0, EndCol: 3}
	b := Rect{StartRow: 2, EndRow: 5, StartCol: 2, EndCol: 5}
	c := Rect{StartRow: 3, EndRow: 5, StartCol: 0, EndCol: 3}
	if !a.Intersects(b) {
		t.Error("expected overlapping rects to intersect")
	}
	if a.Intersects(c) {
		t.Error("adjacent but non-overlapping rects should not intersect")
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 2}
	r.Expand(Rect{StartRow: 0, EndRow: 4, StartCol: 3, EndCol: 5})
	if r != (Rect{StartRow: 0, EndRow: 4, StartCol: 0, EndCol: 5}) {
		t.Errorf("unexpected expanded rect: %+v", r)
	}
}

func TestRectClip(t *testing.T) {
	r := Rect{StartRow: -2, EndRow: 10, StartCol: -2, EndCol: 10}
	r.Clip(Rect{StartRow: 0, EndRow: 5, StartCol: 0, EndCol: 5})
	if r != (Rect{StartRow: 0, EndRow: 5, StartCol: 0, EndCol: 5}) {
		t.Errorf("unexpected clipped rect: %+v", r)
	}
}

func TestColorRGB(t *testing.T) {
	c := RGBColor(10, 20, 30)
	if !c.IsRGB() {
		t.Error("expected IsRGB")
	}
	if c.IsIndexed() || c.IsDefaultFg() || c.IsDefaultBg() {
		t.Error("RGB color should not be indexed or default")
	}
	r, g, b := c.RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("unexpected RGB components: %d %d %d", r, g, b)
	}
}

func TestColorIndexed(t *testing.T) {
	c := IndexedColor(42)
	if !c.IsIndexed() {
		t.Error("expected IsIndexed")
	}
	if c.Index() != 42 {
		t.Errorf("expected index 42, got %d", c.Index())
	}
}

func TestColorDefault(t *testing.T) {
	fg := DefaultFg()
	bg := DefaultBg()
	if !fg.IsDefaultFg() || fg.IsDefaultBg() {
		t.Error("DefaultFg should only set the foreground flag")
	}
	if !bg.IsDefaultBg() || bg.IsDefaultFg() {
		t.Error("DefaultBg should only set the background flag")
	}
}

func TestCSIArgHelpers(t *testing.T) {
	if !CSIArgIsMissing(CSIArgMissing) {
		t.Error("expected CSIArgMissing to report missing")
	}
	if CSIArgOr(CSIArgMissing, 7) != 7 {
		t.Error("expected CSIArgOr to return default for a missing argument")
	}
	if CSIArgOr(3, 7) != 3 {
		t.Error("expected CSIArgOr to return the present value")
	}
	if CSIArgCount(CSIArgMissing) != 1 || CSIArgCount(0) != 1 {
		t.Error("expected missing or zero argument to count as 1")
	}
	if CSIArgCount(5) != 5 {
		t.Error("expected explicit count to pass through")
	}

	withMore := int64(4) | csiArgFlagHasMore
	if !CSIArgHasMore(withMore) {
		t.Error("expected has-more flag to be detected")
	}
	if CSIArgValue(withMore) != 4 {
		t.Error("expected has-more flag to be stripped from the value")
	}
}

func TestScreenCellBlank(t *testing.T) {
	var c ScreenCell
	if !c.Blank() {
		t.Error("zero-value cell should be blank")
	}
	c.Chars[0] = 'x'
	c.NumChars = 1
	if c.Blank() {
		t.Error("cell with a character should not be blank")
	}
}

func TestKeyFunction(t *testing.T) {
	f1 := KeyFunction(1)
	f2 := KeyFunction(2)
	if f1 == f2 {
		t.Error("expected distinct function key values")
	}
	if f1 <= keyFunction0 {
		t.Error("expected function keys to sit above the named key range")
	}
}
