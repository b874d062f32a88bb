package vterm

import "testing"

func TestNewDefaults(t *testing.T) {
	term := New()
	if term.Rows() != DefaultRows || term.Cols() != DefaultCols {
		t.Fatalf("expected default size %dx%d, got %dx%d", DefaultRows, DefaultCols, term.Rows(), term.Cols())
	}
	if term.Screen() == nil {
		t.Error("expected a Screen to be attached by default")
	}
}

func TestNewWithSize(t *testing.T) {
	term := New(WithSize(10, 30))
	if term.Rows() != 10 || term.Cols() != 30 {
		t.Fatalf("expected size 10x30, got %dx%d", term.Rows(), term.Cols())
	}
	if term.State().Rows() != 10 || term.State().Cols() != 30 {
		t.Error("expected State to be constructed at the requested size")
	}
}

func TestNewWithScreenDisabled(t *testing.T) {
	term := New(WithScreen(false))
	if term.Screen() != nil {
		t.Error("expected WithScreen(false) to leave Screen nil")
	}
}

func TestWithScrollbackCapacityAttachesScrollback(t *testing.T) {
	term := New(WithScrollbackCapacity(50))
	if term.Scrollback() == nil {
		t.Fatal("expected a Scrollback to be attached")
	}
	if term.Scrollback().Capacity() != 50 {
		t.Errorf("expected capacity 50, got %d", term.Scrollback().Capacity())
	}
}

func TestTerminalWritePutsGlyphsOnScreen(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Write([]byte("Hi"))

	sc := term.Screen()
	if got := sc.GetText(0, 0, 2); got != "Hi" {
		t.Errorf("expected \"Hi\" on row 0, got %q", got)
	}
	if term.State().CursorPos() != (Pos{Row: 0, Col: 2}) {
		t.Errorf("expected cursor to advance to col 2, got %+v", term.State().CursorPos())
	}
}

func TestTerminalResizeCascadesToScreen(t *testing.T) {
	term := New(WithSize(4, 4))
	term.Write([]byte("data"))
	term.Resize(6, 6)

	if term.Rows() != 6 || term.Cols() != 6 {
		t.Fatalf("expected 6x6 after resize, got %dx%d", term.Rows(), term.Cols())
	}
	if term.Screen().rows != 6 || term.Screen().cols != 6 {
		t.Error("expected Screen dimensions to follow Resize")
	}
}

func TestTerminalResizeIgnoresInvalidDimensions(t *testing.T) {
	term := New(WithSize(4, 4))
	term.Resize(0, 10)
	if term.Rows() != 4 || term.Cols() != 4 {
		t.Error("expected a non-positive dimension to be ignored")
	}
}

// TestTerminalWriteDecodesUTF8ContinuationBytesInC1Range confirms bytes in
// the 0x80-0x9F range are not misread as C1 controls when they land inside a
// multi-byte UTF-8 sequence (spec §4.1): U+2500 ("─") encodes to the bytes
// 0xE2 0x94 0x80, the last of which falls squarely in the 8-bit C1 range.
func TestTerminalWriteDecodesUTF8ContinuationBytesInC1Range(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Write([]byte("\xe2\x94\x80"))

	sc := term.Screen()
	if got := sc.GetText(0, 0, 1); got != "─" {
		t.Errorf("expected U+2500 decoded from its UTF-8 bytes, got %q", got)
	}
	if term.State().CursorPos() != (Pos{Row: 0, Col: 1}) {
		t.Errorf("expected cursor to advance by one cell, got %+v", term.State().CursorPos())
	}
}

// TestTerminalWriteNonUTF8TreatsC1BytesAsControls confirms that once UTF-8
// mode is disabled, the same 0x80-0x9F bytes resume acting as single-byte
// C1 controls (spec §4.1) rather than being passed through as text.
func TestTerminalWriteNonUTF8TreatsC1BytesAsControls(t *testing.T) {
	term := New(WithSize(5, 10))
	term.State().SetUTF8(false)
	term.Write([]byte("A"))
	term.Write([]byte{0x84}) // IND as a bare C1 byte
	if term.State().CursorPos() != (Pos{Row: 1, Col: 1}) {
		t.Errorf("expected IND (0x84) to move the cursor down a row, got %+v", term.State().CursorPos())
	}
}

func TestLockedSerializesAccess(t *testing.T) {
	l := NewLocked(New(WithSize(3, 3)))
	l.Write([]byte("ab"))
	if l.Rows() != 3 || l.Cols() != 3 {
		t.Errorf("expected size to pass through Locked, got %dx%d", l.Rows(), l.Cols())
	}
	var text string
	l.WithLock(func(term *Terminal) {
		text = term.Screen().GetText(0, 0, 2)
	})
	if text != "ab" {
		t.Errorf("expected \"ab\" written through Locked, got %q", text)
	}
}
