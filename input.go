package vterm

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// KeyboardUnichar encodes a Unicode character keystroke under the active
// modifier set (spec §6.3). Canonical Ctrl+letter combinations produce the
// raw control byte; other Ctrl combinations use the CSI-u form; Alt prefixes
// with ESC in all cases.
func (s *State) KeyboardUnichar(r rune, mod Modifier) {
	var out []byte
	switch {
	case mod&ModCtrl != 0 && isCtrlLetter(r):
		out = []byte{byte(unicode.ToLower(r)) - 'a' + 1}
	case mod&ModCtrl != 0:
		out = []byte(csiU(int(r), mod))
	default:
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, r)
		out = buf[:n]
	}
	if mod&ModAlt != 0 {
		out = append([]byte{0x1B}, out...)
	}
	s.reply(out)
}

func isCtrlLetter(r rune) bool {
	l := unicode.ToLower(r)
	return l >= 'a' && l <= 'z'
}

func modifierCode(mod Modifier) int {
	code := 1
	if mod&ModShift != 0 {
		code++
	}
	if mod&ModAlt != 0 {
		code += 2
	}
	if mod&ModCtrl != 0 {
		code += 4
	}
	return code
}

func csiU(codepoint int, mod Modifier) string {
	return "\x1b[" + strconv.Itoa(codepoint) + ";" + strconv.Itoa(modifierCode(mod)) + "u"
}

func csiFinal(mod Modifier, final byte) string {
	if mod == ModNone {
		return "\x1b[" + string(final)
	}
	return "\x1b[1;" + strconv.Itoa(modifierCode(mod)) + string(final)
}

func ss3Final(mod Modifier, final byte) string {
	if mod == ModNone {
		return "\x1bO" + string(final)
	}
	return "\x1b[1;" + strconv.Itoa(modifierCode(mod)) + string(final)
}

func tildeForm(code int, mod Modifier) string {
	if mod == ModNone {
		return "\x1b[" + strconv.Itoa(code) + "~"
	}
	return "\x1b[" + strconv.Itoa(code) + ";" + strconv.Itoa(modifierCode(mod)) + "~"
}

// KeyboardKey encodes a named special key under the active modifier set and
// cursor-key/keypad modes (spec §6.3 key tables).
func (s *State) KeyboardKey(key Key, mod Modifier) {
	var seq string
	switch key {
	case KeyUp:
		seq = s.arrowForm(mod, 'A')
	case KeyDown:
		seq = s.arrowForm(mod, 'B')
	case KeyRight:
		seq = s.arrowForm(mod, 'C')
	case KeyLeft:
		seq = s.arrowForm(mod, 'D')
	case KeyHome:
		seq = s.arrowForm(mod, 'H')
	case KeyEnd:
		seq = s.arrowForm(mod, 'F')
	case KeyIns:
		seq = tildeForm(2, mod)
	case KeyDel:
		seq = tildeForm(3, mod)
	case KeyPageUp:
		seq = tildeForm(5, mod)
	case KeyPageDown:
		seq = tildeForm(6, mod)
	case KeyTab:
		seq = s.encodeTab(mod)
	case KeyBackspace:
		seq = "\x7f"
	case KeyEscape:
		seq = "\x1b"
	case KeyEnter:
		if s.modes.LNM {
			seq = "\r\n"
		} else {
			seq = "\r"
		}
	default:
		if n, ok := functionKeyNumber(key); ok {
			seq = s.encodeFunctionKey(n, mod)
			break
		}
		if code, ok := keypadLetter(key); ok && s.modes.Mode66 {
			seq = "\x1bO" + string(code)
			break
		}
		return
	}
	s.reply([]byte(seq))
}

func (s *State) arrowForm(mod Modifier, final byte) string {
	if mod == ModNone && s.modes.DECCKM {
		return ss3Final(mod, final)
	}
	return csiFinal(mod, final)
}

func (s *State) encodeTab(mod Modifier) string {
	switch {
	case mod&ModCtrl != 0:
		return csiU(9, mod)
	case mod&ModShift != 0:
		return "\x1b[Z"
	default:
		return "\t"
	}
}

func functionKeyNumber(key Key) (int, bool) {
	if key < keyFunction0 || key >= kpBase {
		return 0, false
	}
	return int(key - keyFunction0), true
}

var f5to12Codes = [8]int{15, 17, 18, 19, 20, 21, 23, 24}

func (s *State) encodeFunctionKey(n int, mod Modifier) string {
	if n >= 1 && n <= 4 {
		return ss3Final(mod, byte('P'+n-1))
	}
	if n >= 5 && n <= 12 {
		return tildeForm(f5to12Codes[n-5], mod)
	}
	return ""
}

func keypadLetter(key Key) (byte, bool) {
	switch key {
	case KeyKP_0, KeyKP_1, KeyKP_2, KeyKP_3, KeyKP_4, KeyKP_5, KeyKP_6, KeyKP_7, KeyKP_8, KeyKP_9:
		return 'p' + byte(key-KeyKP_0), true
	case KeyKPEnter:
		return 'M', true
	case KeyKPEqual:
		return 'X', true
	}
	return 0, false
}

// KeyboardStartPaste emits the bracketed-paste start marker if mode 2004 is
// active (spec §6.3).
func (s *State) KeyboardStartPaste() {
	if s.modes.BracketedPaste2004 {
		s.reply([]byte("\x1b[200~"))
	}
}

// KeyboardEndPaste emits the bracketed-paste end marker if mode 2004 is
// active.
func (s *State) KeyboardEndPaste() {
	if s.modes.BracketedPaste2004 {
		s.reply([]byte("\x1b[201~"))
	}
}

// FocusIn/FocusOut emit CSI I / CSI O when focus reporting (mode 1004) is on.
func (s *State) FocusIn() {
	if s.modes.Focus1004 {
		s.reply([]byte("\x1b[I"))
	}
}

func (s *State) FocusOut() {
	if s.modes.Focus1004 {
		s.reply([]byte("\x1b[O"))
	}
}

type mouseEncoding int

const (
	mouseEncodingNone mouseEncoding = iota
	mouseEncodingDefault
	mouseEncodingUTF8
	mouseEncodingSGR
	mouseEncodingRXVT
)

func (s *State) activeMouseEncoding() mouseEncoding {
	if !s.modes.Mouse1000 && !s.modes.Mouse1002 && !s.modes.Mouse1003 {
		return mouseEncodingNone
	}
	switch {
	case s.modes.Mouse1006:
		return mouseEncodingSGR
	case s.modes.Mouse1015:
		return mouseEncodingRXVT
	case s.modes.Mouse1005:
		return mouseEncodingUTF8
	default:
		return mouseEncodingDefault
	}
}

// MouseMove reports pointer motion while any-motion tracking (mode 1003) is
// enabled.
func (s *State) MouseMove(row, col int, mod Modifier) {
	enc := s.activeMouseEncoding()
	if enc == mouseEncodingNone || !s.modes.Mouse1003 {
		return
	}
	s.emitMouseReport(enc, 3, mod, false, false, row, col, true)
}

// MouseButton reports a button press/release, or a wheel event for buttons
// 4-7 (spec §6.3).
func (s *State) MouseButton(button int, pressed bool, mod Modifier) {
	enc := s.activeMouseEncoding()
	if enc == mouseEncodingNone {
		return
	}
	wheel := button >= 4
	code := button & 0x3
	s.emitMouseReport(enc, code, mod, wheel, pressed, 0, 0, false)
}

func (s *State) emitMouseReport(enc mouseEncoding, code int, mod Modifier, wheel, pressed bool, row, col int, isMove bool) {
	raw := code
	if wheel {
		raw |= 0x40
	}
	if mod&ModShift != 0 {
		raw |= 0x04
	}
	if mod&ModAlt != 0 {
		raw |= 0x08
	}
	if mod&ModCtrl != 0 {
		raw |= 0x10
	}
	if isMove {
		raw |= 0x20
	}

	row1, col1 := row+1, col+1

	switch enc {
	case mouseEncodingSGR:
		final := byte('M')
		if !pressed && !isMove {
			final = 'm'
		}
		s.reply([]byte("\x1b[<" + strconv.Itoa(raw) + ";" + strconv.Itoa(col1) + ";" + strconv.Itoa(row1) + string(final)))
	case mouseEncodingRXVT:
		if !pressed && !isMove {
			raw = 3
		}
		s.reply([]byte("\x1b[" + strconv.Itoa(raw+32) + ";" + strconv.Itoa(col1+32) + ";" + strconv.Itoa(row1+32) + "M"))
	case mouseEncodingUTF8:
		if !pressed && !isMove {
			raw = 3
		}
		var buf []byte
		buf = append(buf, 0x1b, '[', 'M')
		buf = appendMouseCoord(buf, raw+32)
		buf = appendMouseCoord(buf, col1+32)
		buf = appendMouseCoord(buf, row1+32)
		s.reply(buf)
	default:
		if !pressed && !isMove {
			raw = 3
		}
		c := clampInt(col1, 0, 223)
		r := clampInt(row1, 0, 223)
		s.reply([]byte{0x1b, '[', 'M', byte(raw + 32), byte(c + 32), byte(r + 32)})
	}
}

func appendMouseCoord(buf []byte, v int) []byte {
	if v <= 127 {
		return append(buf, byte(v))
	}
	tmp := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(tmp, rune(v))
	return append(buf, tmp[:n]...)
}
