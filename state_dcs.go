package vterm

import "strconv"

// dispatchDCS recognizes DECRQSS (`DCS $ q <selector> ST`) and echoes the
// requested status string (spec §4.3.5 Queries). Every other DCS command is
// declined so it reaches StateFallbacks.
func (s *State) dispatchDCS(command string, frag StringFragment) bool {
	if command != "$q" {
		return false
	}
	if frag.Initial {
		s.dcsBody = s.dcsBody[:0]
	}
	s.dcsBody = append(s.dcsBody, frag.Bytes...)
	if !frag.Final {
		return true
	}
	selector := string(s.dcsBody)
	s.dcsBody = s.dcsBody[:0]
	s.replyRQSS(selector)
	return true
}

func (s *State) replyRQSS(selector string) {
	value, ok := s.rqssValue(selector)
	if !ok {
		s.replyDCS("0$r")
		return
	}
	s.replyDCS("1$r" + value)
}

func (s *State) rqssValue(selector string) (string, bool) {
	switch selector {
	case "m":
		params := s.sgrParams()
		joined := params[0]
		for _, p := range params[1:] {
			joined += ";" + p
		}
		return joined + "m", true
	case "r":
		return strconv.Itoa(s.top+1) + ";" + strconv.Itoa(s.bottom) + "r", true
	case "s":
		return strconv.Itoa(s.left+1) + ";" + strconv.Itoa(s.right) + "s", true
	case " q":
		return strconv.Itoa(decscusrCode(s.cursorShape, s.cursorBlink)) + " q", true
	case "\"q":
		code := 2
		if s.protect {
			code = 1
		}
		return strconv.Itoa(code) + "\"q", true
	}
	return "", false
}

func decscusrCode(shape CursorShape, blink bool) int {
	switch shape {
	case CursorShapeBlock:
		if blink {
			return 1
		}
		return 2
	case CursorShapeUnderline:
		if blink {
			return 3
		}
		return 4
	case CursorShapeBarLeft:
		if blink {
			return 5
		}
		return 6
	}
	return 0
}
