package vterm

// pushScrolledLines feeds the rows about to leave the top of the active
// scroll transfer to the attached Scrollback (spec §4.5 Pushline). Called
// from OnScrollRect before State's moverect/erase decomposition runs, while
// the leaving rows are still present in the grid.
func (sc *Screen) pushScrolledLines(rect Rect, downward int) {
	if sc.sb == nil {
		return
	}
	grid := sc.grid()
	lines := sc.lines()
	n := downward
	if n > rect.Height() {
		n = rect.Height()
	}
	for i := 0; i < n; i++ {
		row := rect.StartRow + i
		cells := append([]ScreenCell(nil), grid[row]...)
		cont := lines[row].Continuation
		sc.sb.Push(cells, cont)
		if sc.cb != nil {
			sc.cb.OnSbPushLine(cells, cont)
		}
	}
}

// logicalLine is a maximal run of rows joined by continuation=true, flattened
// into one cell sequence (spec §4.5 Reflow step 1).
type logicalLine struct {
	cells []ScreenCell
}

func trimTrailingBlank(cells []ScreenCell) []ScreenCell {
	end := len(cells)
	for end > 0 && cells[end-1].Blank() {
		end--
	}
	return cells[:end]
}

// flattenPrimary concatenates the scrollback (oldest first) and the primary
// buffer's rows into a logical-line stream, reporting which logical line
// holds the cursor and its character offset within that line.
func (sc *Screen) flattenPrimary() (lines []logicalLine, cursorLine, cursorOffset int) {
	sbLen := 0
	if sc.sb != nil {
		sbLen = sc.sb.Len()
	}
	total := sbLen + sc.rows
	cursorAbsRow := sbLen + sc.cursor.Row

	rowCells := make([][]ScreenCell, total)
	rowCont := make([]bool, total)
	for i := 0; i < sbLen; i++ {
		cells, cont := sc.sb.Line(i)
		rowCells[i] = cells
		rowCont[i] = cont
	}
	for r := 0; r < sc.rows; r++ {
		rowCells[sbLen+r] = sc.buf[0][r]
		rowCont[sbLen+r] = sc.lineInfo[0][r].Continuation
	}

	cursorLine = -1
	for i := 0; i < total; i++ {
		if i == 0 || !rowCont[i] {
			lines = append(lines, logicalLine{})
		}
		li := len(lines) - 1
		offsetInLine := len(lines[li].cells)
		lines[li].cells = append(lines[li].cells, rowCells[i]...)
		if i == cursorAbsRow {
			cursorLine = li
			cursorOffset = offsetInLine + sc.cursor.Col
		}
	}

	for i := range lines {
		if i == cursorLine && cursorOffset >= len(lines[i].cells) {
			pad := make([]ScreenCell, cursorOffset+1-len(lines[i].cells))
			lines[i].cells = append(lines[i].cells, pad...)
		}
		trimmed := trimTrailingBlank(lines[i].cells)
		if i == cursorLine && len(trimmed) <= cursorOffset {
			trimmed = lines[i].cells[:cursorOffset+1]
		}
		lines[i].cells = trimmed
	}
	return
}

type physicalRow struct {
	cells        []ScreenCell
	continuation bool
}

// rebreakLine re-wraps a logical line's cells into fixed-width rows, padding
// the final chunk and marking every chunk but the first as a continuation
// (spec §4.5 Reflow step 3).
func rebreakLine(cells []ScreenCell, width int) []physicalRow {
	if width <= 0 {
		return nil
	}
	if len(cells) == 0 {
		return []physicalRow{{cells: make([]ScreenCell, width)}}
	}
	var rows []physicalRow
	for start := 0; start < len(cells); start += width {
		end := start + width
		if end > len(cells) {
			end = len(cells)
		}
		row := make([]ScreenCell, width)
		copy(row, cells[start:end])
		rows = append(rows, physicalRow{cells: row, continuation: start > 0})
	}
	return rows
}

// reflowResize implements State's resize callback (spec §4.5): it flattens
// the primary buffer plus attached scrollback into logical lines, re-breaks
// them at the new column width, and redistributes the result between the
// new primary buffer (bottom) and the scrollback (overflow). When the column
// width is unchanged this reproduces the existing row boundaries exactly,
// generalizing the spec's separate "resize compensation without reflow"
// path into the same algorithm (see DESIGN.md).
//
// Rows are joined into one logical line only where LineInfo.Continuation is
// already set; State's autowrap does not set that flag, so rows wrapped while
// output was written are re-broken as separate logical lines.
//
// The alt buffer never reflows: it is simply truncated or blank-padded, the
// same way libvertm-style engines leave alt-screen redraw to the occupying
// full-screen application.
func (sc *Screen) reflowResize(newRows, newCols int, fields *StateFields) {
	oldRows, oldCols := sc.rows, sc.cols
	sc.cursor = fields.Pos

	lines, cursorLine, cursorOffset := sc.flattenPrimary()

	var all []physicalRow
	lineStart := make([]int, len(lines))
	for i, ll := range lines {
		lineStart[i] = len(all)
		rows := rebreakLine(ll.cells, newCols)
		if len(rows) == 0 {
			rows = []physicalRow{{cells: make([]ScreenCell, newCols)}}
		}
		all = append(all, rows...)
	}

	cursorPhysRow := len(all) - 1
	cursorCol := 0
	if cursorLine >= 0 && cursorLine < len(lines) {
		cursorPhysRow = lineStart[cursorLine] + cursorOffset/newCols
		cursorCol = cursorOffset % newCols
	}

	var screenRows []physicalRow
	var sbLines [][]ScreenCell
	var sbCont []bool

	total := len(all)
	newCursorRow := 0
	if total <= newRows {
		screenRows = all
		newCursorRow = cursorPhysRow
	} else {
		split := total - newRows
		for _, r := range all[:split] {
			sbLines = append(sbLines, r.cells)
			sbCont = append(sbCont, r.continuation)
		}
		screenRows = all[split:]
		newCursorRow = cursorPhysRow - split
		if newCursorRow < 0 {
			newCursorRow = 0
		}
	}

	newBuf := make([][]ScreenCell, newRows)
	newLines := make([]LineInfo, newRows)
	for i := 0; i < newRows; i++ {
		if i < len(screenRows) {
			newBuf[i] = screenRows[i].cells
			newLines[i] = LineInfo{Continuation: screenRows[i].continuation}
		} else {
			newBuf[i] = make([]ScreenCell, newCols)
		}
	}

	newAlt := make([][]ScreenCell, newRows)
	newAltLines := make([]LineInfo, newRows)
	for i := 0; i < newRows; i++ {
		row := make([]ScreenCell, newCols)
		if i < oldRows && i < len(sc.buf[1]) {
			n := oldCols
			if n > newCols {
				n = newCols
			}
			copy(row, sc.buf[1][i][:n])
			newAltLines[i] = sc.lineInfo[1][i]
		}
		newAlt[i] = row
	}

	sc.buf[0] = newBuf
	sc.lineInfo[0] = newLines
	sc.buf[1] = newAlt
	sc.lineInfo[1] = newAltLines
	sc.rows, sc.cols = newRows, newCols

	if sc.sb != nil {
		sc.sb.replaceAll(sbLines, sbCont)
	}

	if sc.active == 0 {
		sc.cursor = Pos{Row: clampInt(newCursorRow, 0, newRows-1), Col: clampInt(cursorCol, 0, newCols-1)}
	} else {
		sc.cursor = Pos{Row: clampInt(sc.cursor.Row, 0, newRows-1), Col: clampInt(sc.cursor.Col, 0, newCols-1)}
	}
	fields.Pos = sc.cursor
	fields.LineInfos = sc.lineInfo

	sc.hasDamage = false
	sc.damage = Rect{}
	sc.markDamage(Rect{StartRow: 0, EndRow: newRows, StartCol: 0, EndCol: newCols})
	// A resize cannot merge with damage accumulated at the old dimensions
	// (spec §5), so flush unconditionally rather than leaving it deferred
	// under Screen/Scroll granularity.
	sc.flushDamage()
}
