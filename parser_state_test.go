package vterm

import "testing"

func newWiredTerminal(rows, cols int) *Terminal {
	return New(WithSize(rows, cols))
}

func TestParserHandlesCSISplitAcrossWrites(t *testing.T) {
	term := newWiredTerminal(24, 80)

	// "\x1b[10;5H" (cursor position) split mid-parameter across two Write calls.
	term.Write([]byte("\x1b[10;"))
	term.Write([]byte("5H"))

	pos := term.State().CursorPos()
	if pos != (Pos{Row: 9, Col: 4}) {
		t.Errorf("expected cursor at row 9 col 4 (1-based 10;5), got %+v", pos)
	}
}

func TestParserHandlesEscapeSplitAcrossWrites(t *testing.T) {
	term := newWiredTerminal(5, 5)
	term.Write([]byte{0x1b})
	term.Write([]byte("[2J"))

	sc := term.Screen()
	if text := sc.GetText(0, 0, 5); text != "     " {
		t.Errorf("expected erased row to read as blanks, got %q", text)
	}
}

func TestParserRecoversFromCancelledSequence(t *testing.T) {
	term := newWiredTerminal(3, 10)
	// CAN (0x18) cancels the in-progress CSI; the following text should be
	// interpreted fresh rather than as a continuation of the CSI.
	term.Write([]byte("\x1b[1;2\x18hi"))

	if text := term.Screen().GetText(0, 0, 2); text != "hi" {
		t.Errorf("expected cancelled CSI to fall back to plain text \"hi\", got %q", text)
	}
}

func TestParserSurrogateUTF8IsReplacementChar(t *testing.T) {
	term := newWiredTerminal(3, 10)
	// 0xED 0xA0 0x80 encodes U+D800, a lone surrogate: invalid in UTF-8.
	term.Write([]byte{0xED, 0xA0, 0x80})

	chars := term.Screen().GetChars(Pos{Row: 0, Col: 0})
	if len(chars) != 1 || chars[0] != 0xFFFD {
		t.Errorf("expected a lone surrogate to decode to U+FFFD, got %v", chars)
	}
}

func TestSGRForegroundColorAppliesToCell(t *testing.T) {
	term := newWiredTerminal(3, 10)
	term.Write([]byte("\x1b[31mX"))

	cell, ok := term.Screen().GetCell(Pos{Row: 0, Col: 0})
	if !ok {
		t.Fatal("expected cell to be in bounds")
	}
	if !cell.Attrs.Fg.IsIndexed() || cell.Attrs.Fg.Index() != 1 {
		t.Errorf("expected red (index 1) foreground, got %+v", cell.Attrs.Fg)
	}
}

func TestSGRResetClearsAttrs(t *testing.T) {
	term := newWiredTerminal(3, 10)
	term.Write([]byte("\x1b[1;31mX\x1b[0mY"))

	bold, _ := term.Screen().GetCell(Pos{Row: 0, Col: 1})
	if bold.Attrs.Bold || bold.Attrs.Fg.IsIndexed() {
		t.Errorf("expected SGR reset to clear bold/color before writing Y, got %+v", bold.Attrs)
	}
}

// TestC1ControlBytesMatchTheirEscEquivalents confirms the single-byte 8-bit
// C1 controls IND/NEL/HTS/RI (0x84/0x85/0x88/0x8D) behave identically to
// their ESC-letter 7-bit forms once UTF-8 mode is off (spec §4.1).
func TestC1ControlBytesMatchTheirEscEquivalents(t *testing.T) {
	t.Run("IND", func(t *testing.T) {
		term := newWiredTerminal(5, 10)
		term.State().SetUTF8(false)
		term.Write([]byte{'a', 0x84})
		if pos := term.State().CursorPos(); pos != (Pos{Row: 1, Col: 1}) {
			t.Errorf("expected IND to move down one row keeping column, got %+v", pos)
		}
	})

	t.Run("NEL", func(t *testing.T) {
		term := newWiredTerminal(5, 10)
		term.State().SetUTF8(false)
		term.Write([]byte{'a', 0x85})
		if pos := term.State().CursorPos(); pos != (Pos{Row: 1, Col: 0}) {
			t.Errorf("expected NEL to move down a row and to column 0, got %+v", pos)
		}
	})

	t.Run("HTS", func(t *testing.T) {
		term := newWiredTerminal(5, 10)
		term.State().SetUTF8(false)
		term.Write([]byte{'a', 'b', 'c', 0x88}) // set a tab stop at column 3
		term.Write([]byte{0x0D, 0x09})          // CR then HT
		if pos := term.State().CursorPos(); pos != (Pos{Row: 0, Col: 3}) {
			t.Errorf("expected HT to land on the HTS-marked column 3, got %+v", pos)
		}
	})

	t.Run("RI", func(t *testing.T) {
		term := newWiredTerminal(5, 10)
		term.State().SetUTF8(false)
		term.Write([]byte{0x84, 0x84, 0x8D}) // IND, IND, RI: net one row down
		if pos := term.State().CursorPos(); pos != (Pos{Row: 1, Col: 0}) {
			t.Errorf("expected RI to move back up one row, got %+v", pos)
		}
	})
}

// TestOSC52SelectionSetAndQuery confirms the OSC 52 body (fragmented or not)
// is decoded and dispatched to SelectionCallbacks, and that SendSelection
// writes a correctly formed reply through the installed output sink (spec §9
// supplement).
func TestOSC52SelectionSetAndQuery(t *testing.T) {
	term := newWiredTerminal(5, 10)

	var gotMask SelectionMask
	var gotData []byte
	term.SetSelectionCallbacks(selectionCallbacksFuncs{
		onSet: func(mask SelectionMask, frag StringFragment) {
			gotMask = mask
			gotData = append([]byte(nil), frag.Bytes...)
		},
	})

	// base64("hello") == "aGVsbG8="
	term.Write([]byte("\x1b]52;c;aGVsbG8=\x07"))
	if gotMask != SelectionClipboard {
		t.Errorf("expected clipboard target mask, got %v", gotMask)
	}
	if string(gotData) != "hello" {
		t.Errorf("expected decoded payload \"hello\", got %q", gotData)
	}

	var queried SelectionMask
	var reply []byte
	term.SetSelectionCallbacks(selectionCallbacksFuncs{
		onQuery: func(mask SelectionMask) {
			queried = mask
			term.State().SendSelection(mask, []byte("world"))
		},
	})
	term.SetFallbacks(nil)
	term.State().SetOutput(func(b []byte) { reply = append(reply, b...) })
	term.Write([]byte("\x1b]52;p;?\x07"))
	if queried != SelectionPrimary {
		t.Errorf("expected primary target mask on query, got %v", queried)
	}
	if want := "\x1b]52;p;d29ybGQ=\x07"; string(reply) != want {
		t.Errorf("expected reply %q, got %q", want, reply)
	}
}

// selectionCallbacksFuncs adapts plain funcs to SelectionCallbacks for tests.
type selectionCallbacksFuncs struct {
	onSet   func(SelectionMask, StringFragment)
	onQuery func(SelectionMask)
}

func (f selectionCallbacksFuncs) OnSet(mask SelectionMask, frag StringFragment) bool {
	if f.onSet != nil {
		f.onSet(mask, frag)
	}
	return true
}

func (f selectionCallbacksFuncs) OnQuery(mask SelectionMask) bool {
	if f.onQuery != nil {
		f.onQuery(mask)
	}
	return true
}

func TestAutowrapAndScrollRect(t *testing.T) {
	term := newWiredTerminal(2, 3)
	term.Write([]byte("abcdef"))

	if text := term.Screen().GetText(0, 0, 3); text != "abc" {
		t.Errorf("expected row 0 = \"abc\", got %q", text)
	}
	if text := term.Screen().GetText(1, 0, 3); text != "def" {
		t.Errorf("expected wrap onto row 1 = \"def\", got %q", text)
	}

	// One more character forces a scroll: row 0 is evicted upward.
	term.Write([]byte("g"))
	if text := term.Screen().GetText(0, 0, 3); text != "def" {
		t.Errorf("expected scroll to shift \"def\" onto row 0, got %q", text)
	}
}
