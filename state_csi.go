package vterm

import "strconv"

// dispatchCSI routes a fully-parsed CSI event to the right handler (spec
// §4.3.5). Unrecognized (leader, intermed, final) combinations decline so
// the caller can fall through to StateFallbacks.
func (s *State) dispatchCSI(leader string, args []int64, intermed string, final byte) bool {
	switch leader {
	case "":
		switch intermed {
		case "":
			return s.dispatchCSIPlain(args, final)
		case "!":
			if final == 'p' {
				s.SoftReset()
				return true
			}
		case "$":
			if final == 'p' {
				return s.dispatchRQM(false, args)
			}
		case " ":
			if final == 'q' {
				return s.dispatchDECSCUSR(args)
			}
		case "'":
			switch final {
			case '}':
				s.decIC(int(CSIArgCount(argAt(args, 0))))
				return true
			case '~':
				s.decDC(int(CSIArgCount(argAt(args, 0))))
				return true
			}
		}
	case "?":
		switch intermed {
		case "":
			switch final {
			case 'h', 'l':
				s.setDECModes(args, final == 'h')
				return true
			case 'n':
				return s.dispatchDSR(args, true)
			}
		case "$":
			if final == 'p' {
				return s.dispatchRQM(true, args)
			}
		}
	case ">":
		switch final {
		case 'c':
			s.replyCSI(">0;100;0c")
			return true
		case 'q':
			s.replyDCS(">|" + XTVersionString)
			return true
		}
	}
	return false
}

// XTVersionString is the banner returned by the `CSI > q` terminal-version
// query. There's no canonical choice here (spec §9 open question); this one
// names the engine rather than replicating the source's literal string.
const XTVersionString = "govterm(0.1)"

func argAt(args []int64, i int) int64 {
	if i < len(args) {
		return args[i]
	}
	return CSIArgMissing
}

func (s *State) dispatchCSIPlain(args []int64, final byte) bool {
	switch final {
	case 'A': // CUU
		s.moveCursorRel(-int(CSIArgCount(argAt(args, 0))), 0)
	case 'B': // CUD
		s.moveCursorRel(int(CSIArgCount(argAt(args, 0))), 0)
	case 'C': // CUF
		s.moveCursorRel(0, int(CSIArgCount(argAt(args, 0))))
	case 'D': // CUB
		s.moveCursorRel(0, -int(CSIArgCount(argAt(args, 0))))
	case 'E': // CNL
		s.cursorNextLine(int(CSIArgCount(argAt(args, 0))), false)
	case 'F': // CPL
		s.cursorNextLine(int(CSIArgCount(argAt(args, 0))), true)
	case 'G', '`': // CHA, HPA
		s.setColumn(int(CSIArgCount(argAt(args, 0))) - 1)
	case 'H', 'f': // CUP, HVP
		row := int(CSIArgCount(argAt(args, 0))) - 1
		col := int(CSIArgCount(argAt(args, 1))) - 1
		s.setCursorPosition(row, col)
	case 'I': // CHT
		s.tabForward(int(CSIArgCount(argAt(args, 0))))
	case 'Z': // CBT
		s.tabBackward(int(CSIArgCount(argAt(args, 0))))
	case 'a': // HPR
		s.moveCursorRel(0, int(CSIArgCount(argAt(args, 0))))
	case 'j': // HPB
		s.moveCursorRel(0, -int(CSIArgCount(argAt(args, 0))))
	case 'd': // VPA
		s.setRow(int(CSIArgCount(argAt(args, 0))) - 1)
	case 'e': // VPR
		s.moveCursorRel(int(CSIArgCount(argAt(args, 0))), 0)
	case 'k': // VPB
		s.moveCursorRel(-int(CSIArgCount(argAt(args, 0))), 0)
	case 'J': // ED
		s.eraseDisplay(int(CSIArgOr(argAt(args, 0), 0)), false)
	case 'K': // EL
		s.eraseLine(int(CSIArgOr(argAt(args, 0), 0)), false)
	case 'X': // ECH
		s.eraseChars(int(CSIArgCount(argAt(args, 0))))
	case '@': // ICH
		s.insertChars(int(CSIArgCount(argAt(args, 0))))
	case 'P': // DCH
		s.deleteChars(int(CSIArgCount(argAt(args, 0))))
	case 'L': // IL
		s.insertLines(int(CSIArgCount(argAt(args, 0))))
	case 'M': // DL
		s.deleteLines(int(CSIArgCount(argAt(args, 0))))
	case 'S': // SU
		s.scrollUp(int(CSIArgCount(argAt(args, 0))))
	case 'T': // SD
		s.scrollDown(int(CSIArgCount(argAt(args, 0))))
	case 'b': // REP
		s.repeatLastGraphic(int(CSIArgCount(argAt(args, 0))))
	case 'g': // TBC
		s.dispatchTBC(int(CSIArgOr(argAt(args, 0), 0)))
	case 'r': // DECSTBM
		s.decstbm(args)
	case 's': // DECSLRM when DECLRMM, else SCOSC
		if s.modes.DECLRMM {
			s.decslrm(args)
		} else {
			s.saveCursorState()
		}
	case 'u': // SCORC
		s.restoreCursorState()
	case 'm': // SGR
		return s.dispatchSGR(args)
	case 'h', 'l':
		s.setANSIModes(args, final == 'h')
	case 'c': // DA
		if CSIArgOr(argAt(args, 0), 0) == 0 {
			s.replyCSI("?1;2c")
		}
	case 'n': // DSR
		return s.dispatchDSR(args, false)
	default:
		return false
	}
	return true
}

func (s *State) cursorNextLine(n int, up bool) {
	old := s.cursor
	region := s.scrollRegion()
	minRow, maxRow := 0, s.rows-1
	if s.cursor.Row >= region.StartRow && s.cursor.Row < region.EndRow {
		minRow, maxRow = region.StartRow, region.EndRow-1
	}
	delta := n
	if up {
		delta = -n
	}
	s.cursor.Row = clampInt(s.cursor.Row+delta, minRow, maxRow)
	s.cursor.Col = 0
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

func (s *State) setColumn(col int) {
	old := s.cursor
	s.cursor.Col = clampInt(col, 0, s.cols-1)
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

func (s *State) setRow(row int) {
	old := s.cursor
	s.cursor.Row = clampInt(row, 0, s.rows-1)
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

// setCursorPosition implements CUP/HVP: row/col are 0-based offsets from
// the scroll-region origin when DECOM is set, from (0,0) otherwise.
func (s *State) setCursorPosition(row, col int) {
	originRow, originCol := 0, 0
	if s.modes.DECOM {
		region := s.scrollRegion()
		originRow, originCol = region.StartRow, region.StartCol
	}
	s.moveCursorTo(originRow+row, originCol+col)
}

func (s *State) eraseDisplay(mode int, selective bool) {
	switch mode {
	case 0:
		s.emitErase(Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: s.cursor.Col, EndCol: s.cols}, selective)
		if s.cursor.Row+1 < s.rows {
			s.emitErase(Rect{StartRow: s.cursor.Row + 1, EndRow: s.rows, StartCol: 0, EndCol: s.cols}, selective)
		}
	case 1:
		if s.cursor.Row > 0 {
			s.emitErase(Rect{StartRow: 0, EndRow: s.cursor.Row, StartCol: 0, EndCol: s.cols}, selective)
		}
		s.emitErase(Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: 0, EndCol: s.cursor.Col + 1}, selective)
	case 2:
		s.emitErase(Rect{StartRow: 0, EndRow: s.rows, StartCol: 0, EndCol: s.cols}, selective)
	case 3:
		if s.cb != nil {
			s.cb.OnSbClear()
		}
	}
}

func (s *State) eraseLine(mode int, selective bool) {
	row := s.cursor.Row
	switch mode {
	case 0:
		s.emitErase(Rect{StartRow: row, EndRow: row + 1, StartCol: s.cursor.Col, EndCol: s.cols}, selective)
	case 1:
		s.emitErase(Rect{StartRow: row, EndRow: row + 1, StartCol: 0, EndCol: s.cursor.Col + 1}, selective)
	case 2:
		s.emitErase(Rect{StartRow: row, EndRow: row + 1, StartCol: 0, EndCol: s.cols}, selective)
	}
}

func (s *State) eraseChars(n int) {
	end := clampInt(s.cursor.Col+n, 0, s.cols)
	s.emitErase(Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: s.cursor.Col, EndCol: end}, false)
}

func (s *State) rightMargin() int {
	if s.modes.DECLRMM {
		return s.right
	}
	return s.cols
}

func (s *State) insertChars(n int) {
	right := s.rightMargin()
	rect := Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: s.cursor.Col, EndCol: right}
	s.emitScrollRect(rect, 0, -n)
}

func (s *State) deleteChars(n int) {
	right := s.rightMargin()
	rect := Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: s.cursor.Col, EndCol: right}
	s.emitScrollRect(rect, 0, n)
}

func (s *State) insertLines(n int) {
	region := s.scrollRegion()
	if s.cursor.Row < region.StartRow || s.cursor.Row >= region.EndRow {
		return
	}
	rect := Rect{StartRow: s.cursor.Row, EndRow: region.EndRow, StartCol: region.StartCol, EndCol: region.EndCol}
	s.emitScrollRect(rect, -n, 0)
}

func (s *State) deleteLines(n int) {
	region := s.scrollRegion()
	if s.cursor.Row < region.StartRow || s.cursor.Row >= region.EndRow {
		return
	}
	rect := Rect{StartRow: s.cursor.Row, EndRow: region.EndRow, StartCol: region.StartCol, EndCol: region.EndCol}
	s.emitScrollRect(rect, n, 0)
}

func (s *State) decIC(n int) {
	region := s.scrollRegion()
	rect := Rect{StartRow: region.StartRow, EndRow: region.EndRow, StartCol: s.cursor.Col, EndCol: region.EndCol}
	s.emitScrollRect(rect, 0, -n)
}

func (s *State) decDC(n int) {
	region := s.scrollRegion()
	rect := Rect{StartRow: region.StartRow, EndRow: region.EndRow, StartCol: s.cursor.Col, EndCol: region.EndCol}
	s.emitScrollRect(rect, 0, n)
}

func (s *State) repeatLastGraphic(n int) {
	if !s.haveLastGraphic {
		return
	}
	w := 1
	for i := 0; i < n; i++ {
		s.placeGlyph(s.lastGraphic, w)
	}
}

func (s *State) dispatchTBC(mode int) {
	switch mode {
	case 0:
		s.clearTabstop()
	case 3:
		s.clearAllTabstops()
	}
}

func (s *State) decstbm(args []int64) {
	top := int(CSIArgOr(argAt(args, 0), 1)) - 1
	bottom := int(CSIArgOr(argAt(args, 1), int64(s.rows)))
	if top < 0 || bottom > s.rows || top >= bottom {
		return
	}
	s.top, s.bottom = top, bottom
	s.homeCursorToMargin()
}

func (s *State) decslrm(args []int64) {
	left := int(CSIArgOr(argAt(args, 0), 1)) - 1
	right := int(CSIArgOr(argAt(args, 1), int64(s.cols)))
	if left < 0 || right > s.cols || left >= right {
		return
	}
	s.left, s.right = left, right
	s.homeCursorToMargin()
}

func (s *State) homeCursorToMargin() {
	old := s.cursor
	if s.modes.DECOM {
		region := s.scrollRegion()
		s.cursor = Pos{Row: region.StartRow, Col: region.StartCol}
	} else {
		s.cursor = Pos{}
	}
	s.pendingWrap = false
	s.emitMoveCursor(old)
}

func (s *State) dispatchDSR(args []int64, decPrivate bool) bool {
	n := CSIArgOr(argAt(args, 0), 0)
	switch n {
	case 5:
		s.replyCSI("0n")
	case 6:
		row, col := s.cursor.Row, s.cursor.Col
		if s.modes.DECOM {
			region := s.scrollRegion()
			row -= region.StartRow
			col -= region.StartCol
		}
		body := strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1)
		if decPrivate {
			s.replyCSI("?" + body + "R")
		} else {
			s.replyCSI(body + "R")
		}
	default:
		return false
	}
	return true
}

func (s *State) dispatchRQM(decPrivate bool, args []int64) bool {
	mode := int(CSIArgOr(argAt(args, 0), 0))
	status := s.queryModeStatus(decPrivate, mode)
	prefix := ""
	if decPrivate {
		prefix = "?"
	}
	s.replyCSI(prefix + strconv.Itoa(mode) + ";" + strconv.Itoa(status) + "$y")
	return true
}

// queryModeStatus returns 1 (set), 2 (reset), or 0 (unknown) for DECRQM/RQM.
func (s *State) queryModeStatus(decPrivate bool, mode int) int {
	set, known := s.modeValue(decPrivate, mode)
	if !known {
		return 0
	}
	if set {
		return 1
	}
	return 2
}

func (s *State) dispatchDECSCUSR(args []int64) bool {
	n := int(CSIArgOr(argAt(args, 0), 1))
	switch n {
	case 0, 1:
		s.cursorShape, s.cursorBlink = CursorShapeBlock, true
	case 2:
		s.cursorShape, s.cursorBlink = CursorShapeBlock, false
	case 3:
		s.cursorShape, s.cursorBlink = CursorShapeUnderline, true
	case 4:
		s.cursorShape, s.cursorBlink = CursorShapeUnderline, false
	case 5:
		s.cursorShape, s.cursorBlink = CursorShapeBarLeft, true
	case 6:
		s.cursorShape, s.cursorBlink = CursorShapeBarLeft, false
	default:
		return false
	}
	s.emitSetTermProp(PropCursorShape, Value{Int: int(s.cursorShape)})
	s.emitSetTermProp(PropCursorBlink, Value{Bool: s.cursorBlink})
	return true
}
