package vterm

const maxSaveDepth = 6

func (s *State) bufIndex() int {
	if s.altScreen {
		return 1
	}
	return 0
}

// saveCursorState pushes a DECSC/mode-1048 snapshot onto the active buffer's
// save stack (spec §4.3.9).
func (s *State) saveCursorState() {
	snap := savedState{
		pos:      s.cursor,
		pen:      s.pen,
		origin:   s.modes.DECOM,
		autowrap: s.modes.DECAWM,
		gl:       s.cs.GL,
		gr:       s.cs.GR,
		g:        s.cs.G,
	}
	idx := s.bufIndex()
	stack := s.saveStack[idx]
	if len(stack) >= maxSaveDepth {
		stack = stack[1:]
	}
	s.saveStack[idx] = append(stack, snap)
}

// restoreCursorState pops the most recent snapshot, or resets to defaults if
// the stack is empty (spec §4.3.9).
func (s *State) restoreCursorState() {
	idx := s.bufIndex()
	stack := s.saveStack[idx]
	old := s.cursor
	if len(stack) == 0 {
		s.pen = CellAttrs{Fg: DefaultFg(), Bg: DefaultBg()}
		s.modes.DECOM = false
		s.modes.DECAWM = true
		s.cs.Reset()
		s.cursor = Pos{}
		s.pendingWrap = false
		s.emitMoveCursor(old)
		return
	}
	top := stack[len(stack)-1]
	s.saveStack[idx] = stack[:len(stack)-1]

	s.cursor = top.pos
	s.pen = top.pen
	s.modes.DECOM = top.origin
	s.modes.DECAWM = top.autowrap
	s.cs.GL = top.gl
	s.cs.GR = top.gr
	s.cs.G = top.g
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

// enterAltScreen implements mode 1049's "save then enter altscreen" (and,
// via the withSave=false branch through a plain 1047, entering alt without
// the DECSC save).
func (s *State) enterAltScreen(withSave bool) {
	if withSave {
		s.saveCursorState()
	}
	s.altScreen = true
	s.emitSetTermProp(PropAltScreen, Value{Bool: true})
}

// leaveAltScreen implements leaving mode 1049: it leaves the altscreen
// first, then (withRestore) restores the cursor state saved on entry.
func (s *State) leaveAltScreen(withRestore bool) {
	s.altScreen = false
	s.emitSetTermProp(PropAltScreen, Value{Bool: false})
	if withRestore {
		s.restoreCursorState()
	}
}
