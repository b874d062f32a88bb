package vterm

import "testing"

func captureOutput(s *State) *[]byte {
	var out []byte
	s.SetOutput(func(b []byte) { out = append(out, b...) })
	return &out
}

func TestKeyboardUnicharPlain(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.KeyboardUnichar('q', ModNone)
	if string(*out) != "q" {
		t.Errorf("expected plain rune passthrough, got %q", *out)
	}
}

func TestKeyboardUnicharCtrlLetter(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.KeyboardUnichar('c', ModCtrl)
	if len(*out) != 1 || (*out)[0] != 0x03 {
		t.Errorf("expected Ctrl+C to encode as 0x03, got %v", *out)
	}
}

func TestKeyboardUnicharAltPrefixesEscape(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.KeyboardUnichar('x', ModAlt)
	if string(*out) != "\x1bx" {
		t.Errorf("expected Alt+x to prefix ESC, got %q", *out)
	}
}

func TestKeyboardArrowDefaultsToCSI(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.KeyboardKey(KeyUp, ModNone)
	if string(*out) != "\x1b[A" {
		t.Errorf("expected CSI cursor-up form, got %q", *out)
	}
}

func TestKeyboardArrowUsesSS3UnderDECCKM(t *testing.T) {
	s := NewState(24, 80)
	s.modes.DECCKM = true
	out := captureOutput(s)
	s.KeyboardKey(KeyUp, ModNone)
	if string(*out) != "\x1bOA" {
		t.Errorf("expected SS3 cursor-up form under DECCKM, got %q", *out)
	}
}

func TestKeyboardEnterHonorsLNM(t *testing.T) {
	s := NewState(24, 80)
	s.modes.LNM = true
	out := captureOutput(s)
	s.KeyboardKey(KeyEnter, ModNone)
	if string(*out) != "\r\n" {
		t.Errorf("expected CR LF under LNM, got %q", *out)
	}
}

func TestKeyboardStartPasteRequiresBracketedMode(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.KeyboardStartPaste()
	if len(*out) != 0 {
		t.Errorf("expected no output without bracketed-paste mode enabled, got %q", *out)
	}

	s.modes.BracketedPaste2004 = true
	s.KeyboardStartPaste()
	if string(*out) != "\x1b[200~" {
		t.Errorf("expected bracketed-paste start marker, got %q", *out)
	}
}

func TestMouseButtonRequiresTrackingMode(t *testing.T) {
	s := NewState(24, 80)
	out := captureOutput(s)
	s.MouseButton(0, true, ModNone)
	if len(*out) != 0 {
		t.Errorf("expected no mouse report without a tracking mode enabled, got %q", *out)
	}
}

func TestMouseButtonSGREncoding(t *testing.T) {
	s := NewState(24, 80)
	s.modes.Mouse1000 = true
	s.modes.Mouse1006 = true
	out := captureOutput(s)
	s.MouseButton(0, true, ModNone)
	if string(*out) != "\x1b[<0;1;1M" {
		t.Errorf("expected SGR mouse press report, got %q", *out)
	}

	*out = (*out)[:0]
	s.MouseButton(0, false, ModNone)
	if string(*out) != "\x1b[<0;1;1m" {
		t.Errorf("expected SGR mouse release report, got %q", *out)
	}
}
