package vterm

// Screen is the optional cell-grid model that sits on top of State (spec
// §4.4): it tracks two buffers (primary/alt), merges damage per a
// configurable granularity, and feeds scrolled-off primary-buffer rows to
// an attached Scrollback.
type Screen struct {
	rows, cols int

	buf      [2][][]ScreenCell
	lineInfo [2][]LineInfo
	active   int

	cursor        Pos
	cursorVisible bool

	pen CellAttrs

	damageGranularity DamageSize
	damage            Rect
	hasDamage         bool

	sb *Scrollback
	cb ScreenCallbacks
}

// NewScreen allocates a Screen sized rows x cols with both buffers blank.
func NewScreen(rows, cols int) *Screen {
	sc := &Screen{
		rows:              rows,
		cols:              cols,
		damageGranularity: DamageCell,
		pen:               CellAttrs{Fg: DefaultFg(), Bg: DefaultBg()},
	}
	sc.buf[0] = newGrid(rows, cols)
	sc.buf[1] = newGrid(rows, cols)
	sc.lineInfo[0] = make([]LineInfo, rows)
	sc.lineInfo[1] = make([]LineInfo, rows)
	return sc
}

func newGrid(rows, cols int) [][]ScreenCell {
	g := make([][]ScreenCell, rows)
	for i := range g {
		g[i] = make([]ScreenCell, cols)
	}
	return g
}

// SetCallbacks installs the ScreenCallbacks sink.
func (sc *Screen) SetCallbacks(cb ScreenCallbacks) { sc.cb = cb }

// AttachScrollback wires a Scrollback ring to receive primary-buffer
// pushlines (spec §4.4.3).
func (sc *Screen) AttachScrollback(sb *Scrollback) { sc.sb = sb }

// SetDamageMerging selects the damage granularity (spec §4.4.2).
func (sc *Screen) SetDamageMerging(g DamageSize) { sc.damageGranularity = g }

func (sc *Screen) grid() [][]ScreenCell      { return sc.buf[sc.active] }
func (sc *Screen) lines() []LineInfo         { return sc.lineInfo[sc.active] }
func (sc *Screen) cellAt(p Pos) *ScreenCell  { return &sc.buf[sc.active][p.Row][p.Col] }
func (sc *Screen) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < sc.rows && p.Col >= 0 && p.Col < sc.cols
}

// GetCell returns a copy of the cell at p, and whether p was in range.
func (sc *Screen) GetCell(p Pos) (ScreenCell, bool) {
	if !sc.inBounds(p) {
		return ScreenCell{}, false
	}
	return *sc.cellAt(p), true
}

// GetChars returns the code points stored in the cell at p.
func (sc *Screen) GetChars(p Pos) []rune {
	cell, ok := sc.GetCell(p)
	if !ok {
		return nil
	}
	return append([]rune(nil), cell.Chars[:cell.NumChars]...)
}

// GetText renders row [startCol,endCol) of row as a string, skipping
// width-2 spacer cells.
func (sc *Screen) GetText(row, startCol, endCol int) string {
	if row < 0 || row >= sc.rows {
		return ""
	}
	var out []rune
	line := sc.grid()[row]
	for col := startCol; col < endCol && col < sc.cols; col++ {
		cell := line[col]
		if cell.NumChars == 0 {
			if col > 0 && line[col-1].Width == 2 {
				continue
			}
			out = append(out, ' ')
			continue
		}
		out = append(out, cell.Chars[:cell.NumChars]...)
	}
	return string(out)
}

// IsEol reports whether the cell at p is blank and nothing non-blank
// follows it on the row (used to trim trailing blanks for reflow).
func (sc *Screen) IsEol(p Pos) bool {
	if !sc.inBounds(p) {
		return true
	}
	line := sc.grid()[p.Row]
	for col := p.Col; col < sc.cols; col++ {
		if !line[col].Blank() {
			return false
		}
	}
	return true
}

// GetAttrsExtent returns how far the cell attributes named by mask extend
// from p, leftward and rightward along the row, without crossing a change in
// any masked attribute.
func (sc *Screen) GetAttrsExtent(p Pos, mask AttrMask) Rect {
	if !sc.inBounds(p) {
		return Rect{}
	}
	line := sc.grid()[p.Row]
	ref := line[p.Col].Attrs
	start, end := p.Col, p.Col+1
	for c := p.Col - 1; c >= 0; c-- {
		if !attrsEqualMasked(line[c].Attrs, ref, mask) {
			break
		}
		start = c
	}
	for c := p.Col + 1; c < sc.cols; c++ {
		if !attrsEqualMasked(line[c].Attrs, ref, mask) {
			break
		}
		end = c + 1
	}
	return Rect{StartRow: p.Row, EndRow: p.Row + 1, StartCol: start, EndCol: end}
}

func attrsEqualMasked(a, b CellAttrs, mask AttrMask) bool {
	if mask&AttrMaskBold != 0 && a.Bold != b.Bold {
		return false
	}
	if mask&AttrMaskItalic != 0 && a.Italic != b.Italic {
		return false
	}
	if mask&AttrMaskUnderline != 0 && a.Underline != b.Underline {
		return false
	}
	if mask&AttrMaskBlink != 0 && a.Blink != b.Blink {
		return false
	}
	if mask&AttrMaskReverse != 0 && a.Reverse != b.Reverse {
		return false
	}
	if mask&AttrMaskConceal != 0 && a.Conceal != b.Conceal {
		return false
	}
	if mask&AttrMaskStrike != 0 && a.Strike != b.Strike {
		return false
	}
	if mask&AttrMaskFont != 0 && a.Font != b.Font {
		return false
	}
	if mask&AttrMaskForeground != 0 && !a.Fg.equal(b.Fg) {
		return false
	}
	if mask&AttrMaskBackground != 0 && !a.Bg.equal(b.Bg) {
		return false
	}
	if mask&AttrMaskBaseline != 0 && a.Baseline != b.Baseline {
		return false
	}
	if mask&AttrMaskSmall != 0 && a.Small != b.Small {
		return false
	}
	return true
}

func (sc *Screen) markDamage(r Rect) {
	switch sc.damageGranularity {
	case DamageCell:
		sc.flushDamage()
		sc.emitDamage(r)
	case DamageRow:
		// Coalesce to full row-spans and defer to end-of-buffer/flush_damage
		// (spec §4.4.2), rather than flushing per write like DamageCell.
		full := Rect{StartRow: r.StartRow, EndRow: r.EndRow, StartCol: 0, EndCol: sc.cols}
		sc.accumulateDamage(full)
	default:
		sc.accumulateDamage(r)
	}
}

func (sc *Screen) accumulateDamage(r Rect) {
	if !sc.hasDamage {
		sc.damage = r
		sc.hasDamage = true
	} else {
		sc.damage.Expand(r)
	}
}

// FlushDamage emits and clears any deferred damage (spec §4.4.2
// flush_damage, required when damage merging is Screen or Scroll).
func (sc *Screen) FlushDamage() { sc.flushDamage() }

func (sc *Screen) flushDamage() {
	if !sc.hasDamage {
		return
	}
	r := sc.damage
	sc.hasDamage = false
	sc.damage = Rect{}
	sc.emitDamage(r)
}

func (sc *Screen) emitDamage(r Rect) {
	if sc.cb != nil {
		sc.cb.OnDamage(r)
	}
}

var _ StateCallbacks = (*Screen)(nil)

func (sc *Screen) OnPutGlyph(info GlyphInfo, pos Pos) bool {
	if !sc.inBounds(pos) {
		return true
	}
	if info.Width == 0 {
		sc.appendCombining(info, pos)
		return true
	}
	cell := ScreenCell{Width: uint8(info.Width), Attrs: sc.pen, Protected: info.Protected}
	n := len(info.Chars)
	if n > MaxCharsPerCell {
		n = MaxCharsPerCell
	}
	copy(cell.Chars[:], info.Chars[:n])
	cell.NumChars = uint8(n)
	*sc.cellAt(pos) = cell

	damaged := Rect{StartRow: pos.Row, EndRow: pos.Row + 1, StartCol: pos.Col, EndCol: pos.Col + 1}
	if info.Width == 2 && pos.Col+1 < sc.cols {
		*sc.cellAt(Pos{Row: pos.Row, Col: pos.Col + 1}) = ScreenCell{}
		damaged.EndCol = pos.Col + 2
	}
	sc.markDamage(damaged)
	return true
}

func (sc *Screen) appendCombining(info GlyphInfo, pos Pos) {
	cell := sc.cellAt(pos)
	if cell.NumChars == 0 || cell.NumChars >= MaxCharsPerCell || len(info.Chars) == 0 {
		return
	}
	cell.Chars[cell.NumChars] = info.Chars[0]
	cell.NumChars++
	sc.markDamage(Rect{StartRow: pos.Row, EndRow: pos.Row + 1, StartCol: pos.Col, EndCol: pos.Col + 1})
}

func (sc *Screen) OnMoveCursor(pos, oldpos Pos, visible bool) bool {
	sc.cursor = pos
	sc.cursorVisible = visible
	if sc.cb != nil {
		return sc.cb.OnMoveCursor(pos, oldpos, visible)
	}
	return false
}

// OnScrollRect pushes lines to the attached Scrollback when the scrolling
// region spans the whole screen, every row and the full width (spec §4.5
// "Side effects on scrollback"); a smaller DECSTBM region never generates
// scrollback entries. The scroll itself is still declined so State performs
// the moverect+erase fallback.
func (sc *Screen) OnScrollRect(rect Rect, downward, rightward int) bool {
	spansTop := rect.StartRow == 0 && rect.EndRow == sc.rows && rect.StartCol == 0 && rect.EndCol == sc.cols
	if sc.active == 0 && sc.sb != nil && downward > 0 && spansTop {
		sc.pushScrolledLines(rect, downward)
	}
	return false
}

func (sc *Screen) OnMoveRect(dest, src Rect) bool {
	sc.moveRect(dest, src)
	sc.markDamage(dest)
	if sc.cb != nil {
		sc.cb.OnMoveRect(dest, src)
	}
	return true
}

func (sc *Screen) moveRect(dest, src Rect) {
	grid := sc.grid()
	lines := sc.lines()
	rowDelta := dest.StartRow - src.StartRow
	colDelta := dest.StartCol - src.StartCol

	rowOrder := make([]int, src.Height())
	for i := range rowOrder {
		rowOrder[i] = i
	}
	if rowDelta > 0 {
		for i, j := 0, len(rowOrder)-1; i < j; i, j = i+1, j-1 {
			rowOrder[i], rowOrder[j] = rowOrder[j], rowOrder[i]
		}
	}

	for _, i := range rowOrder {
		srow := src.StartRow + i
		drow := srow + rowDelta
		rowCells := append([]ScreenCell(nil), grid[srow][src.StartCol:src.EndCol]...)
		copy(grid[drow][dest.StartCol:dest.EndCol], rowCells)
		if colDelta == 0 {
			lines[drow] = lines[srow]
		}
	}
}

func (sc *Screen) OnErase(rect Rect, selective bool) bool {
	grid := sc.grid()
	blank := ScreenCell{NumChars: 0, Width: 1, Attrs: sc.pen}
	for row := rect.StartRow; row < rect.EndRow && row < sc.rows; row++ {
		for col := rect.StartCol; col < rect.EndCol && col < sc.cols; col++ {
			if selective && grid[row][col].Protected {
				continue
			}
			grid[row][col] = blank
		}
	}
	sc.markDamage(rect)
	return true
}

func (sc *Screen) OnInitPen() bool {
	sc.pen = CellAttrs{Fg: DefaultFg(), Bg: DefaultBg()}
	return true
}

func (sc *Screen) OnSetPenAttr(attr Attr, val Value) bool {
	switch attr {
	case AttrBold:
		sc.pen.Bold = val.Bool
	case AttrItalic:
		sc.pen.Italic = val.Bool
	case AttrUnderline:
		sc.pen.Underline = Underline(val.Int)
	case AttrBlink:
		sc.pen.Blink = val.Bool
	case AttrReverse:
		sc.pen.Reverse = val.Bool
	case AttrConceal:
		sc.pen.Conceal = val.Bool
	case AttrStrike:
		sc.pen.Strike = val.Bool
	case AttrFont:
		sc.pen.Font = uint8(val.Int)
	case AttrForeground:
		sc.pen.Fg = val.Color
	case AttrBackground:
		sc.pen.Bg = val.Color
	case AttrSmall:
		sc.pen.Small = val.Bool
	case AttrBaseline:
		sc.pen.Baseline = Baseline(val.Int)
	}
	return true
}

func (sc *Screen) OnSetTermProp(prop Prop, val Value) bool {
	switch prop {
	case PropAltScreen:
		sc.swapBuffer(val.Bool)
	case PropCursorVisible:
		sc.cursorVisible = val.Bool
	}
	if sc.cb != nil {
		return sc.cb.OnSetTermProp(prop, val)
	}
	return false
}

func (sc *Screen) swapBuffer(toAlt bool) {
	next := 0
	if toAlt {
		next = 1
	}
	if next == sc.active {
		return
	}
	sc.active = next
	for row := range sc.buf[next] {
		for col := range sc.buf[next][row] {
			sc.buf[next][row][col] = ScreenCell{Attrs: sc.pen}
		}
	}
	sc.markDamage(Rect{StartRow: 0, EndRow: sc.rows, StartCol: 0, EndCol: sc.cols})
	// Altscreen swap cannot merge with damage from the buffer just left
	// behind (spec §5), so flush unconditionally rather than leaving it
	// deferred under Screen/Scroll granularity.
	sc.flushDamage()
}

func (sc *Screen) OnBell() bool {
	if sc.cb != nil {
		return sc.cb.OnBell()
	}
	return false
}

func (sc *Screen) OnSetLineInfo(row int, newinfo, oldinfo LineInfo) bool {
	if row >= 0 && row < sc.rows {
		sc.lines()[row] = newinfo
	}
	return true
}

func (sc *Screen) OnSbClear() bool {
	if sc.sb != nil {
		sc.sb.Clear()
	}
	if sc.cb != nil {
		return sc.cb.OnSbClear()
	}
	return false
}

func (sc *Screen) OnPremove(dest Rect) bool { return false }

// OnResize implements State's resize callback by reflowing (or
// resize-compensating) the primary buffer and copying the alt buffer into
// the new size, truncated or blank-padded (spec §4.4.3).
func (sc *Screen) OnResize(rows, cols int, fields *StateFields) bool {
	sc.reflowResize(rows, cols, fields)
	if sc.cb != nil {
		sc.cb.OnResize(rows, cols)
	}
	return true
}
