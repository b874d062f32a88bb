package vterm

// resetTabstops reinitializes the tab-stop bitset to every 8th column
// (spec §4.3.7), sized to the current column count.
func (s *State) resetTabstops() {
	s.tabstops = make([]bool, s.cols)
	for i := 0; i < s.cols; i += 8 {
		s.tabstops[i] = true
	}
}

// setTabstop sets HTS at the current cursor column.
func (s *State) setTabstop() {
	if s.cursor.Col >= 0 && s.cursor.Col < len(s.tabstops) {
		s.tabstops[s.cursor.Col] = true
	}
}

// clearTabstop clears the tab stop at the current cursor column (TBC 0).
func (s *State) clearTabstop() {
	if s.cursor.Col >= 0 && s.cursor.Col < len(s.tabstops) {
		s.tabstops[s.cursor.Col] = false
	}
}

// clearAllTabstops clears every tab stop (TBC 3).
func (s *State) clearAllTabstops() {
	for i := range s.tabstops {
		s.tabstops[i] = false
	}
}
