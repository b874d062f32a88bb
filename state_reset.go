package vterm

// Reset restores power-on state (spec §4.3.9). Both forms reset the cursor,
// pen, modes, margins, charsets, tab stops and cursor shape; a hard reset
// (RIS) also clears the save stacks, palette and default colors, re-enables
// UTF-8, erases the screen and re-emits the screen-level termprops.
// Reset(false) leaves those untouched. DECSTR is handled by SoftReset, not
// by Reset(false).
func (s *State) Reset(hard bool) {
	s.cursor = Pos{}
	s.pendingWrap = false
	s.pen = CellAttrs{Fg: DefaultFg(), Bg: DefaultBg()}
	s.modes = DefaultModes()
	s.top, s.bottom = 0, s.rows
	s.left, s.right = 0, s.cols
	s.cs.Reset()
	s.resetTabstops()
	s.altScreen = false
	s.protect = false
	s.s8c1t = false
	s.cursorVisible = true
	s.cursorShape = CursorShapeBlock
	s.cursorBlink = true
	s.haveLastGraphic = false

	if hard {
		s.saveStack[0] = nil
		s.saveStack[1] = nil
		s.defaultFg = DefaultFg()
		s.defaultBg = DefaultBg()
		s.palette = [256]Color{}
		s.boldHighbright = false
		s.utf8 = true
		s.cs.UTF8 = true
		s.utf8Decoder.Reset()
		s.syncParserEightBit()
		s.emitErase(Rect{StartRow: 0, EndRow: s.rows, StartCol: 0, EndCol: s.cols}, false)
		s.emitSetTermProp(PropAltScreen, Value{Bool: false})
		s.emitSetTermProp(PropCursorVisible, Value{Bool: true})
		s.emitSetTermProp(PropCursorBlink, Value{Bool: true})
		s.emitSetTermProp(PropCursorShape, Value{Int: int(CursorShapeBlock)})
	}

	old := Pos{}
	s.emitMoveCursor(old)
}

// SoftReset implements DECSTR (spec §4.3.8): pen, DECOM, DECAWM, IRM, DECSCA,
// mouse modes, and the scroll region reset, but the screen is not erased and
// the cursor is not moved beyond clearing pending-wrap.
func (s *State) SoftReset() {
	s.pen = CellAttrs{Fg: DefaultFg(), Bg: DefaultBg()}
	s.pendingWrap = false
	s.protect = false
	s.modes.DECOM = false
	s.modes.DECAWM = true
	s.modes.IRM = false
	s.modes.Mouse1000 = false
	s.modes.Mouse1002 = false
	s.modes.Mouse1003 = false
	s.modes.Mouse1005 = false
	s.modes.Mouse1006 = false
	s.modes.Mouse1015 = false
	s.top, s.bottom = 0, s.rows
	s.left, s.right = 0, s.cols
	s.modes.DECLRMM = false
}
