package vterm

import "testing"

func cellsOf(r rune) []ScreenCell {
	c := ScreenCell{NumChars: 1, Width: 1}
	c.Chars[0] = r
	return []ScreenCell{c}
}

func TestScrollbackPushEvictsOldest(t *testing.T) {
	sb := NewScrollback(2)
	sb.Push(cellsOf('a'), false)
	sb.Push(cellsOf('b'), false)
	sb.Push(cellsOf('c'), false)

	if sb.Len() != 2 {
		t.Fatalf("expected capacity-bounded length 2, got %d", sb.Len())
	}
	first, _ := sb.Line(0)
	if first[0].Chars[0] != 'b' {
		t.Errorf("expected oldest surviving line to be 'b', got %q", first[0].Chars[0])
	}
}

func TestScrollbackPopIsLIFO(t *testing.T) {
	sb := NewScrollback(10)
	sb.Push(cellsOf('a'), false)
	sb.Push(cellsOf('b'), true)

	cells, cont, ok := sb.Pop()
	if !ok {
		t.Fatal("expected Pop to succeed")
	}
	if cells[0].Chars[0] != 'b' || !cont {
		t.Errorf("expected to pop the most recently pushed line 'b', got %q cont=%v", cells[0].Chars[0], cont)
	}
	if sb.Len() != 1 {
		t.Errorf("expected 1 line remaining, got %d", sb.Len())
	}
}

func TestScrollbackPopEmpty(t *testing.T) {
	sb := NewScrollback(4)
	if _, _, ok := sb.Pop(); ok {
		t.Error("expected Pop on an empty scrollback to fail")
	}
}

func TestScrollbackClear(t *testing.T) {
	sb := NewScrollback(4)
	sb.Push(cellsOf('a'), false)
	sb.Clear()
	if sb.Len() != 0 {
		t.Errorf("expected length 0 after Clear, got %d", sb.Len())
	}
}

func TestScrollbackZeroCapacityDiscardsPushes(t *testing.T) {
	sb := NewScrollback(0)
	sb.Push(cellsOf('a'), false)
	if sb.Len() != 0 {
		t.Errorf("expected zero-capacity scrollback to discard pushes, got length %d", sb.Len())
	}
}

func TestScrollbackReplaceAllTruncatesToCapacity(t *testing.T) {
	sb := NewScrollback(2)
	lines := [][]ScreenCell{cellsOf('a'), cellsOf('b'), cellsOf('c')}
	cont := []bool{false, false, true}
	sb.replaceAll(lines, cont)

	if sb.Len() != 2 {
		t.Fatalf("expected replaceAll to truncate to capacity 2, got %d", sb.Len())
	}
	first, _ := sb.Line(0)
	if first[0].Chars[0] != 'b' {
		t.Errorf("expected the newest 2 lines to survive, oldest kept is %q", first[0].Chars[0])
	}
}
