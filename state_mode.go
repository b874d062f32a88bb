package vterm

// setANSIModes flips ANSI SM/RM modes (no leader): 4 (IRM), 20 (LNM) per
// spec §3/§4.3.5. Unrecognized numbers are accepted but have no effect.
func (s *State) setANSIModes(args []int64, set bool) {
	for _, a := range args {
		switch CSIArgOr(a, 0) {
		case 4:
			s.modes.IRM = set
		case 20:
			s.modes.LNM = set
		}
	}
}

// setDECModes flips DEC private modes (leader `?`), applying the side
// effects spec §4.3.5 lists for each.
func (s *State) setDECModes(args []int64, set bool) {
	for _, a := range args {
		s.setDECMode(int(CSIArgOr(a, 0)), set)
	}
}

func (s *State) setDECMode(mode int, set bool) {
	switch mode {
	case 1:
		s.modes.DECCKM = set
	case 5:
		s.modes.DECSCNM = set
		s.emitSetTermProp(PropReverse, Value{Bool: set})
	case 6:
		s.modes.DECOM = set
		s.pendingWrap = false
		old := s.cursor
		if set {
			region := s.scrollRegion()
			s.cursor = Pos{Row: region.StartRow, Col: region.StartCol}
		} else {
			s.cursor = Pos{}
		}
		s.emitMoveCursor(old)
	case 7:
		s.modes.DECAWM = set
	case 12:
		s.modes.Mode12 = set
	case 25:
		s.modes.DECTCEM = set
		s.cursorVisible = set
		s.emitSetTermProp(PropCursorVisible, Value{Bool: set})
	case 47:
		if set {
			s.enterAltScreen(false)
		} else {
			s.leaveAltScreen(false)
		}
		s.modes.Mode47 = set
	case 66:
		s.modes.Mode66 = set
	case 69:
		s.modes.DECLRMM = set
		if !set {
			s.left, s.right = 0, s.cols
		}
	case 1000:
		s.modes.Mouse1000 = set
		s.emitMouseProp()
	case 1002:
		s.modes.Mouse1002 = set
		s.emitMouseProp()
	case 1003:
		s.modes.Mouse1003 = set
		s.emitMouseProp()
	case 1004:
		s.modes.Focus1004 = set
		s.emitSetTermProp(PropFocusReport, Value{Bool: set})
	case 1005:
		s.modes.Mouse1005 = set
	case 1006:
		s.modes.Mouse1006 = set
	case 1015:
		s.modes.Mouse1015 = set
	case 1047:
		if set {
			s.enterAltScreen(false)
		} else {
			s.leaveAltScreen(false)
		}
		s.modes.Mode1047 = set
	case 1048:
		if set {
			s.saveCursorState()
		} else {
			s.restoreCursorState()
		}
	case 1049:
		if set {
			s.enterAltScreen(true)
		} else {
			s.leaveAltScreen(true)
		}
		s.modes.Mode1049 = set
	case 2004:
		s.modes.BracketedPaste2004 = set
	}
}

func (s *State) emitMouseProp() {
	prop := MouseNone
	switch {
	case s.modes.Mouse1003:
		prop = MouseMove
	case s.modes.Mouse1002:
		prop = MouseDrag
	case s.modes.Mouse1000:
		prop = MouseClick
	}
	s.emitSetTermProp(PropMouse, Value{Int: int(prop)})
}

// modeValue reports a mode's current boolean state for DECRQM/RQM, and
// whether this engine recognizes the mode number at all.
func (s *State) modeValue(decPrivate bool, mode int) (set bool, known bool) {
	if !decPrivate {
		switch mode {
		case 4:
			return s.modes.IRM, true
		case 20:
			return s.modes.LNM, true
		}
		return false, false
	}
	switch mode {
	case 1:
		return s.modes.DECCKM, true
	case 5:
		return s.modes.DECSCNM, true
	case 6:
		return s.modes.DECOM, true
	case 7:
		return s.modes.DECAWM, true
	case 12:
		return s.modes.Mode12, true
	case 25:
		return s.modes.DECTCEM, true
	case 47:
		return s.modes.Mode47, true
	case 66:
		return s.modes.Mode66, true
	case 69:
		return s.modes.DECLRMM, true
	case 1000:
		return s.modes.Mouse1000, true
	case 1002:
		return s.modes.Mouse1002, true
	case 1003:
		return s.modes.Mouse1003, true
	case 1004:
		return s.modes.Focus1004, true
	case 1005:
		return s.modes.Mouse1005, true
	case 1006:
		return s.modes.Mouse1006, true
	case 1015:
		return s.modes.Mouse1015, true
	case 1047:
		return s.modes.Mode1047, true
	case 1048:
		return false, true
	case 1049:
		return s.modes.Mode1049, true
	case 2004:
		return s.modes.BracketedPaste2004, true
	}
	return false, false
}
