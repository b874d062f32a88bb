package vterm

import "github.com/oviano/govterm/internal/charset"

// dispatchEscape handles non-CSI escape sequences (spec §4.3.4). bytes holds
// the intermediate(s) plus the final byte, with ESC itself already
// stripped.
func (s *State) dispatchEscape(bytes []byte) bool {
	if len(bytes) == 0 {
		return false
	}

	if len(bytes) == 1 {
		switch bytes[0] {
		case '7': // DECSC
			s.saveCursorState()
			return true
		case '8': // DECRC
			s.restoreCursorState()
			return true
		case '=': // DECKPAM
			s.modes.Mode66 = true // keypad mode has no Prop slot, so nothing is emitted
			return true
		case '>': // DECKPNM
			s.modes.Mode66 = false
			return true
		case 'D': // IND
			s.index()
			return true
		case 'E': // NEL
			s.carriageReturn()
			s.index()
			return true
		case 'H': // HTS
			s.setTabstop()
			return true
		case 'M': // RI
			s.reverseIndex()
			return true
		case 'c': // RIS
			s.Reset(true)
			return true
		case 'n': // LS2: lock GL to G2
			s.cs.LockGL(2)
			return true
		case 'o': // LS3: lock GL to G3
			s.cs.LockGL(3)
			return true
		case 'N': // SS2
			s.cs.SingleShift2()
			return true
		case 'O': // SS3
			s.cs.SingleShift3()
			return true
		case '~': // LS1R: lock GR to G1
			s.cs.LockGR(1)
			return true
		case '}': // LS2R: lock GR to G2
			s.cs.LockGR(2)
			return true
		case '|': // LS3R: lock GR to G3
			s.cs.LockGR(3)
			return true
		}
		if s.fb != nil {
			return false
		}
		return false
	}

	if len(bytes) == 2 {
		lead, final := bytes[0], bytes[1]
		switch lead {
		case '(', ')', '*', '+':
			if ident, ok := charset.IdentFromDesignator(final); ok {
				slot := map[byte]int{'(': 0, ')': 1, '*': 2, '+': 3}[lead]
				s.cs.Designate(slot, ident)
				return true
			}
			return false
		case '#':
			return s.dispatchLineAttr(final)
		case ' ':
			switch final {
			case 'F': // S7C1T
				s.s8c1t = false
				return true
			case 'G': // S8C1T
				s.s8c1t = true
				return true
			}
		}
	}

	return false
}

// dispatchLineAttr handles ESC #3..#6 (DECDHL/DECSWL) and ESC #8 (DECALN).
func (s *State) dispatchLineAttr(final byte) bool {
	switch final {
	case '3': // DECDHL top half
		s.setCurrentLineAttr(true, 1)
		return true
	case '4': // DECDHL bottom half
		s.setCurrentLineAttr(true, 2)
		return true
	case '5': // DECSWL single width
		s.setCurrentLineAttr(false, 0)
		return true
	case '6': // DECDWL double width
		s.setCurrentLineAttr(true, 0)
		return true
	case '8': // DECALN
		s.fillWithE()
		return true
	}
	return false
}

func (s *State) setCurrentLineAttr(dwl bool, dhl uint8) {
	newinfo := LineInfo{DoubleWidth: dwl, DoubleHeight: dhl}
	if s.cb != nil {
		s.cb.OnSetLineInfo(s.cursor.Row, newinfo, LineInfo{})
	}
	s.pen.DWL = dwl
	s.pen.DHL = dhl
}

func (s *State) fillWithE() {
	full := Rect{StartRow: 0, EndRow: s.rows, StartCol: 0, EndCol: s.cols}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			info := GlyphInfo{Chars: []rune{'E'}, Width: 1}
			s.emitPutGlyph(info, Pos{Row: row, Col: col})
		}
	}
	_ = full
}
