package vterm

import "testing"

func charCells(s string) []ScreenCell {
	cells := make([]ScreenCell, len(s))
	for i, r := range s {
		cells[i] = ScreenCell{NumChars: 1, Width: 1}
		cells[i].Chars[0] = r
	}
	return cells
}

func TestTrimTrailingBlank(t *testing.T) {
	cells := append(charCells("hi"), make([]ScreenCell, 3)...)
	trimmed := trimTrailingBlank(cells)
	if len(trimmed) != 2 {
		t.Fatalf("expected trailing blanks trimmed to length 2, got %d", len(trimmed))
	}
	if trimmed[0].Chars[0] != 'h' || trimmed[1].Chars[0] != 'i' {
		t.Errorf("unexpected trimmed content: %v", trimmed)
	}
}

func TestTrimTrailingBlankAllBlank(t *testing.T) {
	cells := make([]ScreenCell, 4)
	if got := trimTrailingBlank(cells); len(got) != 0 {
		t.Errorf("expected an all-blank line to trim to nothing, got length %d", len(got))
	}
}

func TestRebreakLineSplitsAtWidth(t *testing.T) {
	rows := rebreakLine(charCells("abcdefg"), 3)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows of width 3, got %d", len(rows))
	}
	if rows[0].continuation {
		t.Error("first chunk should not be marked continuation")
	}
	if !rows[1].continuation || !rows[2].continuation {
		t.Error("every chunk after the first should be marked continuation")
	}
	if rows[2].cells[0].Chars[0] != 'g' {
		t.Errorf("expected last row to start with 'g', got %q", rows[2].cells[0].Chars[0])
	}
	if rows[2].cells[1].NumChars != 0 {
		t.Error("expected the final short chunk to be blank-padded")
	}
}

func TestRebreakLineEmptyProducesOneBlankRow(t *testing.T) {
	rows := rebreakLine(nil, 5)
	if len(rows) != 1 {
		t.Fatalf("expected one blank row for an empty logical line, got %d", len(rows))
	}
	if len(rows[0].cells) != 5 {
		t.Errorf("expected row width 5, got %d", len(rows[0].cells))
	}
}

func TestScreenReflowGrowRecoversScrollback(t *testing.T) {
	sc := NewScreen(2, 4)
	sb := NewScrollback(10)
	sc.AttachScrollback(sb)

	sb.Push(charCells("one "), false)
	sb.Push(charCells("two "), false)
	copy(sc.buf[0][0], charCells("thre"))
	copy(sc.buf[0][1], charCells("four"))

	fields := &StateFields{Pos: Pos{Row: 1, Col: 2}}
	sc.reflowResize(4, 4, fields)

	if sc.rows != 4 || sc.cols != 4 {
		t.Fatalf("expected new dimensions 4x4, got %dx%d", sc.rows, sc.cols)
	}
	if sb.Len() != 0 {
		t.Errorf("expected scrollback to be drained once it fits on screen, got %d lines left", sb.Len())
	}
	if sc.buf[0][0][0].Chars[0] != 'o' {
		t.Errorf("expected oldest scrollback line to reappear at the top, got %q", sc.buf[0][0][0].Chars[0])
	}
}

func TestScreenReflowShrinkPushesToScrollback(t *testing.T) {
	sc := NewScreen(4, 4)
	sb := NewScrollback(10)
	sc.AttachScrollback(sb)

	copy(sc.buf[0][0], charCells("one "))
	copy(sc.buf[0][1], charCells("two "))
	copy(sc.buf[0][2], charCells("thre"))
	copy(sc.buf[0][3], charCells("four"))

	fields := &StateFields{Pos: Pos{Row: 3, Col: 0}}
	sc.reflowResize(2, 4, fields)

	if sc.rows != 2 {
		t.Fatalf("expected 2 rows after shrink, got %d", sc.rows)
	}
	if sb.Len() != 2 {
		t.Fatalf("expected 2 lines pushed to scrollback, got %d", sb.Len())
	}
	first, _ := sb.Line(0)
	if first[0].Chars[0] != 'o' {
		t.Errorf("expected oldest line 'one ' pushed first, got %q", first[0].Chars[0])
	}
}
