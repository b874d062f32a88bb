package vterm

// handleC0 dispatches a C0 (or 8-bit-mapped) control byte (spec §4.3.3).
func (s *State) handleC0(b byte) {
	switch b {
	case 0x05: // ENQ
		// Answerback is host-configurable; nothing to send by default.
	case 0x07: // BEL
		s.emitBell()
	case 0x08: // BS
		s.backspace()
	case 0x09: // HT
		s.horizontalTab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		s.index()
		if s.modes.LNM {
			s.carriageReturn()
		}
	case 0x0D: // CR
		s.carriageReturn()
	case 0x0E: // SO: lock GL to G1
		s.cs.LockGL(1)
	case 0x0F: // SI: lock GL to G0
		s.cs.LockGL(0)
	case 0x84: // IND
		s.index()
	case 0x85: // NEL = CR + LF
		s.carriageReturn()
		s.index()
	case 0x88: // HTS
		s.setTabstop()
	case 0x8D: // RI
		s.reverseIndex()
	default:
		if s.fb != nil {
			s.fb.OnControl(b)
		}
	}
}

func (s *State) backspace() {
	old := s.cursor
	left := 0
	if s.modes.DECLRMM {
		left = s.left
	}
	if s.cursor.Col > left {
		s.cursor.Col--
	}
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

func (s *State) horizontalTab() {
	old := s.cursor
	right := s.cols
	if s.modes.DECLRMM {
		right = s.right
	}
	col := s.cursor.Col
	for c := col + 1; c < right; c++ {
		if s.tabstops[c] {
			s.cursor.Col = c
			s.pendingWrap = false
			s.emitMoveCursor(old)
			return
		}
	}
	s.cursor.Col = right - 1
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

// tabForward advances n tab stops (CHT).
func (s *State) tabForward(n int) {
	for i := 0; i < n; i++ {
		s.horizontalTab()
	}
}

// tabBackward moves back n tab stops (CBT).
func (s *State) tabBackward(n int) {
	old := s.cursor
	for i := 0; i < n; i++ {
		col := s.cursor.Col
		found := 0
		for c := col - 1; c >= 0; c-- {
			if s.tabstops[c] {
				found = c
				break
			}
		}
		s.cursor.Col = found
	}
	s.pendingWrap = false
	s.emitMoveCursor(old)
}
