package vterm

import (
	"github.com/oviano/govterm/internal/charset"
	"github.com/oviano/govterm/internal/wcwidth"
)

// savedState is one DECSC/DECRC (or mode-1048) save slot (spec §3, §4.3.9).
type savedState struct {
	pos      Pos
	pen      CellAttrs
	origin   bool
	autowrap bool
	gl, gr   int
	g        [4]charset.Ident
}

// State is the abstract terminal state machine (spec §4.3): cursor, pen,
// modes, margins, tab stops, charset designators, and the DECSC/DECRC stack.
// It interprets ParserCallbacks events and emits StateCallbacks events; it
// holds no cell grid itself (that's Screen, §4.4).
//
// State is not safe for concurrent use: spec §5 mandates a single-threaded,
// cooperatively-scheduled host that serializes all calls into one terminal
// instance, the same way libvterm's vterm_state_t is used.
type State struct {
	rows, cols int

	cursor      Pos
	pendingWrap bool

	pen CellAttrs

	defaultFg, defaultBg Color
	palette              [256]Color
	boldHighbright       bool

	modes ModeSet

	// scroll region, half-open, spec §3.
	top, bottom int
	left, right int

	cs          *charset.Designators
	utf8        bool
	utf8Decoder *charset.UTF8Decoder
	parser      *Parser

	tabstops []bool

	// save/restore stack, one per buffer (0=primary,1=alt); spec §4.3.9.
	saveStack [2][]savedState
	altScreen bool

	protect bool

	s8c1t bool // S8C1T: use 8-bit C1 forms in replies

	premoveEnabled bool

	cb  StateCallbacks
	fb  StateFallbacks
	sel SelectionCallbacks

	out func([]byte)

	lastGraphic   rune
	haveLastGraphic bool

	cursorVisible bool
	cursorShape   CursorShape
	cursorBlink   bool

	dcsBody []byte
	oscBody []byte
}

// NewState creates a State sized rows x cols, hard-reset to power-on
// defaults.
func NewState(rows, cols int) *State {
	s := &State{
		rows: rows,
		cols: cols,
		cs:   charset.NewDesignators(),
		utf8Decoder: charset.NewUTF8Decoder(),
	}
	s.Reset(true)
	return s
}

// SetCallbacks installs the StateCallbacks sink.
func (s *State) SetCallbacks(cb StateCallbacks) { s.cb = cb }

// SetFallbacks installs the StateFallbacks sink for unrecognized sequences.
func (s *State) SetFallbacks(fb StateFallbacks) { s.fb = fb }

// SetSelectionCallbacks installs the SelectionCallbacks sink.
func (s *State) SetSelectionCallbacks(cb SelectionCallbacks) { s.sel = cb }

// SetParser wires the Parser feeding this State so UTF-8 mode changes can
// keep the parser's 8-bit C1 remapping in sync (spec §4.1: 0x80-0x9F bytes
// are C1 controls outside UTF-8 mode, but ordinary UTF-8 continuation/lead
// bytes inside it). Immediately syncs p to the current UTF8() state.
func (s *State) SetParser(p *Parser) {
	s.parser = p
	s.syncParserEightBit()
}

func (s *State) syncParserEightBit() {
	if s.parser != nil {
		s.parser.SetEightBit(!s.utf8)
	}
}

// EnablePremove turns on the on_premove callback ahead of moverect fallback
// emissions (spec §4.3.6).
func (s *State) EnablePremove(enabled bool) { s.premoveEnabled = enabled }

// SetOutput installs the byte sink for query replies (spec §4.3.5 Queries,
// §6.2).
func (s *State) SetOutput(out func([]byte)) { s.out = out }

// SetUTF8 switches between UTF-8 decoding and 94/96-char single-byte
// decoding (spec §4.2). Designations made while UTF-8 is on are recorded but
// inert until UTF-8 is switched off.
func (s *State) SetUTF8(enabled bool) {
	s.utf8 = enabled
	s.cs.UTF8 = enabled
	s.utf8Decoder.Reset()
	s.syncParserEightBit()
}

// UTF8 reports whether UTF-8 decoding is active.
func (s *State) UTF8() bool { return s.utf8 }

// SetBoldHighbright toggles raising an indexed fg 0-7 to 8-15 under bold
// (spec §4.3.5 SGR note, §9 supplement).
func (s *State) SetBoldHighbright(enabled bool) { s.boldHighbright = enabled }

// SetDefaultColors sets the colors used for DefaultFg()/DefaultBg() pen
// resets (spec §9 supplement, state.set_default_colors).
func (s *State) SetDefaultColors(fg, bg Color) { s.defaultFg, s.defaultBg = fg, bg }

// DefaultColors returns the current default fg/bg pair.
func (s *State) DefaultColors() (fg, bg Color) { return s.defaultFg, s.defaultBg }

// SetPaletteColor sets palette slot index (0-255).
func (s *State) SetPaletteColor(index int, col Color) {
	if index >= 0 && index < 256 {
		s.palette[index] = col
	}
}

// PaletteColor returns palette slot index.
func (s *State) PaletteColor(index int) Color {
	if index >= 0 && index < 256 {
		return s.palette[index]
	}
	return Color{}
}

// CursorPos returns the current cursor position.
func (s *State) CursorPos() Pos { return s.cursor }

// Modes returns a copy of the current mode flags.
func (s *State) Modes() ModeSet { return s.modes }

// Rows returns the buffer height.
func (s *State) Rows() int { return s.rows }

// Cols returns the buffer width.
func (s *State) Cols() int { return s.cols }

// scrollRegion returns the active scroll region, honoring DECLRMM for the
// column margins.
func (s *State) scrollRegion() Rect {
	left, right := 0, s.cols
	if s.modes.DECLRMM {
		left, right = s.left, s.right
	}
	return Rect{StartRow: s.top, EndRow: s.bottom, StartCol: left, EndCol: right}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// emitPutGlyph reports a glyph placement, falling back to nothing further
// (putglyph has no lower-level fallback per spec §4.3.6).
func (s *State) emitPutGlyph(info GlyphInfo, pos Pos) {
	if s.cb != nil {
		s.cb.OnPutGlyph(info, pos)
	}
}

func (s *State) emitMoveCursor(oldpos Pos) {
	if s.cb != nil {
		s.cb.OnMoveCursor(s.cursor, oldpos, s.cursorVisible)
	}
}

// emitScrollRect reports an area shift, falling back to moverect+erase if
// declined (spec §4.3.6).
func (s *State) emitScrollRect(rect Rect, downward, rightward int) {
	if s.cb != nil && s.cb.OnScrollRect(rect, downward, rightward) {
		return
	}
	dest, src, freed := scrollRectGeometry(rect, downward, rightward)
	if s.premoveEnabled && s.cb != nil {
		s.cb.OnPremove(dest)
	}
	if s.cb != nil {
		s.cb.OnMoveRect(dest, src)
	}
	s.emitErase(freed, false)
}

// scrollRectGeometry computes the moverect dest/src and the freed rectangle
// for a scrollrect with the conventions in spec §4.3.6: downward>0 shifts
// content up, rightward>0 shifts content left.
func scrollRectGeometry(rect Rect, downward, rightward int) (dest, src, freed Rect) {
	dest = rect
	src = rect
	dest.Move(-downward, -rightward)
	dest.Clip(rect)
	src.Move(downward, rightward)
	src.Clip(rect)

	freed = rect
	if downward > 0 {
		freed.StartRow = rect.EndRow - downward
	} else if downward < 0 {
		freed.EndRow = rect.StartRow - downward
	}
	if rightward > 0 {
		freed.StartCol = rect.EndCol - rightward
	} else if rightward < 0 {
		freed.EndCol = rect.StartCol - rightward
	}
	freed.Clip(rect)
	return
}

func (s *State) emitErase(rect Rect, selective bool) {
	if s.cb != nil {
		s.cb.OnErase(rect, selective)
	}
}

func (s *State) emitBell() {
	if s.cb != nil {
		s.cb.OnBell()
	}
}

func (s *State) emitSetTermProp(prop Prop, val Value) {
	if s.cb != nil {
		s.cb.OnSetTermProp(prop, val)
	}
}

func (s *State) emitSetPenAttr(attr Attr, val Value) {
	if s.cb != nil {
		s.cb.OnSetPenAttr(attr, val)
	}
}

func (s *State) write8C1(b byte) []byte {
	if s.s8c1t {
		return []byte{b}
	}
	return []byte{0x1B, b - 0x40}
}

func (s *State) reply(b []byte) {
	if s.out != nil {
		s.out(b)
	}
}

// --- ParserCallbacks implementation ---

var _ ParserCallbacks = (*State)(nil)

// OnText decodes a coalesced printable-byte run through the active charset
// (UTF-8 or 94/96-char) and places each resulting code point (spec §4.3.2).
func (s *State) OnText(text []byte) {
	if s.utf8 {
		s.utf8Decoder.Decode(text, s.inputRune)
		return
	}
	for _, b := range text {
		s.inputRune(s.cs.Translate(b))
	}
}

func (s *State) OnControl(b byte) bool {
	s.handleC0(b)
	return true
}

func (s *State) OnEscape(bytes []byte) bool {
	return s.dispatchEscape(bytes)
}

func (s *State) OnCSI(leader string, args []int64, intermed string, final byte) bool {
	if s.dispatchCSI(leader, args, intermed, final) {
		return true
	}
	if s.fb != nil {
		return s.fb.OnCSI(leader, args, intermed, final)
	}
	return false
}

func (s *State) OnOSC(command int, frag StringFragment) bool {
	if command == 52 {
		return s.handleOSC52(frag)
	}
	if s.fb != nil {
		return s.fb.OnOSC(command, frag)
	}
	return false
}

func (s *State) OnDCS(command string, frag StringFragment) bool {
	if handled := s.dispatchDCS(command, frag); handled {
		return true
	}
	if s.fb != nil {
		return s.fb.OnDCS(command, frag)
	}
	return false
}

func (s *State) OnAPC(frag StringFragment) bool {
	if s.fb != nil {
		return s.fb.OnAPC(frag)
	}
	return false
}

func (s *State) OnPM(frag StringFragment) bool {
	if s.fb != nil {
		return s.fb.OnPM(frag)
	}
	return false
}

func (s *State) OnSOS(frag StringFragment) bool {
	if s.fb != nil {
		return s.fb.OnSOS(frag)
	}
	return false
}

// inputRune places one decoded code point (spec §4.3.2).
func (s *State) inputRune(r rune) {
	w := wcwidth.Width(r)
	if w == 0 {
		s.appendCombining(r)
		return
	}
	s.placeGlyph(r, w)
}

func (s *State) appendCombining(r rune) {
	// Nothing to attach to if nothing has been placed yet on this row, or
	// the previous write went through a wrap/clear. We approximate "the
	// previous cell" with the cell immediately left of the cursor (or the
	// cursor's own cell while pending-wrap is armed, since the cursor then
	// still sits on the last glyph placed in the row).
	row, col := s.cursor.Row, s.cursor.Col-1
	if s.pendingWrap {
		col = s.cursor.Col
	}
	if col < 0 {
		return
	}
	if s.cb == nil {
		return
	}
	// The combining mark is delivered via a synthetic putglyph describing
	// just the appended mark; Screen merges it into the existing cell. This
	// mirrors libvterm's approach of routing combining chars back through
	// on_putglyph with the existing glyph's width (here communicated as
	// width 0) so the callback consumer can append rather than overwrite.
	info := GlyphInfo{Chars: []rune{r}, Width: 0, Protected: s.protect, DWL: s.pen.DWL, DHL: s.pen.DHL}
	s.emitPutGlyph(info, Pos{Row: row, Col: col})
}

func (s *State) placeGlyph(r rune, width int) {
	if s.pendingWrap {
		s.wrapNow()
	}

	region := s.scrollRegion()
	rightMargin := s.cols
	if s.modes.DECLRMM {
		rightMargin = s.right
	}

	if width == 2 && s.cursor.Col == rightMargin-1 {
		s.wrapNow()
	}

	if s.modes.IRM {
		shiftRect := Rect{StartRow: s.cursor.Row, EndRow: s.cursor.Row + 1, StartCol: s.cursor.Col, EndCol: rightMargin}
		s.emitScrollRect(shiftRect, 0, -width)
	}

	info := GlyphInfo{Chars: []rune{r}, Width: width, Protected: s.protect, DWL: s.pen.DWL, DHL: s.pen.DHL}
	pos := s.cursor
	s.emitPutGlyph(info, pos)

	s.lastGraphic = r
	s.haveLastGraphic = true

	_ = region
	newCol := s.cursor.Col + width
	if newCol >= rightMargin {
		s.cursor.Col = rightMargin - 1
		s.pendingWrap = s.modes.DECAWM
	} else {
		s.cursor.Col = newCol
	}
}

// wrapNow resolves a pending-wrap by advancing to the next row (scrolling if
// needed), per spec §4.3.1.
func (s *State) wrapNow() {
	s.pendingWrap = false
	region := s.scrollRegion()
	old := s.cursor
	if s.cursor.Row+1 >= region.EndRow {
		s.scrollUp(1)
	} else {
		s.cursor.Row++
	}
	leftMargin := 0
	if s.modes.DECLRMM {
		leftMargin = s.left
	}
	s.cursor.Col = leftMargin
	s.emitMoveCursor(old)
}
