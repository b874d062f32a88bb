package vterm

// Resize changes the buffer dimensions (spec §4.5). The resize callback
// receives the new dimensions plus a StateFields carrying the current
// cursor position; a Screen uses it to reflow and writes back the
// repositioned cursor, which State then adopts. Tab stops reset to the
// power-on pattern and the scroll/margin region resets to the full new
// extent, matching the teacher's own full-reset-on-resize convention.
func (s *State) Resize(rows, cols int) {
	fields := &StateFields{Pos: s.cursor}
	if s.cb != nil {
		s.cb.OnResize(rows, cols, fields)
	}
	s.rows, s.cols = rows, cols
	s.resetTabstops()
	s.top, s.bottom = 0, s.rows
	s.left, s.right = 0, s.cols
	s.cursor = Pos{
		Row: clampInt(fields.Pos.Row, 0, rows-1),
		Col: clampInt(fields.Pos.Col, 0, cols-1),
	}
	s.pendingWrap = false
}
