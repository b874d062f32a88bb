package vterm

// ParserCallbacks receives semantic events decoded from the byte stream
// (spec §4.1). All methods are optional; embed BaseParserCallbacks to get
// decline-by-default behavior and override only what you need.
type ParserCallbacks interface {
	OnText(text []byte)
	OnControl(b byte) bool
	OnEscape(bytes []byte) bool
	OnCSI(leader string, args []int64, intermed string, final byte) bool
	OnOSC(command int, frag StringFragment) bool
	OnDCS(command string, frag StringFragment) bool
	OnAPC(frag StringFragment) bool
	OnPM(frag StringFragment) bool
	OnSOS(frag StringFragment) bool
}

// BaseParserCallbacks declines every callback. Embed it in a struct that
// overrides only the methods it cares about.
type BaseParserCallbacks struct{}

func (BaseParserCallbacks) OnText(text []byte)                                        {}
func (BaseParserCallbacks) OnControl(b byte) bool                                      { return false }
func (BaseParserCallbacks) OnEscape(bytes []byte) bool                                  { return false }
func (BaseParserCallbacks) OnCSI(leader string, args []int64, intermed string, final byte) bool {
	return false
}
func (BaseParserCallbacks) OnOSC(command int, frag StringFragment) bool { return false }
func (BaseParserCallbacks) OnDCS(command string, frag StringFragment) bool { return false }
func (BaseParserCallbacks) OnAPC(frag StringFragment) bool                 { return false }
func (BaseParserCallbacks) OnPM(frag StringFragment) bool                  { return false }
func (BaseParserCallbacks) OnSOS(frag StringFragment) bool                 { return false }

var _ ParserCallbacks = BaseParserCallbacks{}

// StateCallbacks receives abstract grid-operation events from the state
// machine (spec §4.3). Declining on_scrollrect triggers an on_moverect +
// on_erase fallback (spec §4.3.6).
type StateCallbacks interface {
	OnPutGlyph(info GlyphInfo, pos Pos) bool
	OnMoveCursor(pos, oldpos Pos, visible bool) bool
	OnScrollRect(rect Rect, downward, rightward int) bool
	OnMoveRect(dest, src Rect) bool
	OnErase(rect Rect, selective bool) bool
	OnInitPen() bool
	OnSetPenAttr(attr Attr, val Value) bool
	OnSetTermProp(prop Prop, val Value) bool
	OnBell() bool
	OnResize(rows, cols int, fields *StateFields) bool
	OnSetLineInfo(row int, newinfo, oldinfo LineInfo) bool
	OnSbClear() bool
	OnPremove(dest Rect) bool
}

// StateFields carries mutable resize context out to a resize callback
// (spec §9 supplement, from libvterm's StateFields).
type StateFields struct {
	Pos       Pos
	LineInfos [2][]LineInfo
}

// BaseStateCallbacks declines every callback.
type BaseStateCallbacks struct{}

func (BaseStateCallbacks) OnPutGlyph(info GlyphInfo, pos Pos) bool             { return false }
func (BaseStateCallbacks) OnMoveCursor(pos, oldpos Pos, visible bool) bool     { return false }
func (BaseStateCallbacks) OnScrollRect(rect Rect, downward, rightward int) bool { return false }
func (BaseStateCallbacks) OnMoveRect(dest, src Rect) bool                      { return false }
func (BaseStateCallbacks) OnErase(rect Rect, selective bool) bool              { return false }
func (BaseStateCallbacks) OnInitPen() bool                                     { return false }
func (BaseStateCallbacks) OnSetPenAttr(attr Attr, val Value) bool              { return false }
func (BaseStateCallbacks) OnSetTermProp(prop Prop, val Value) bool             { return false }
func (BaseStateCallbacks) OnBell() bool                                       { return false }
func (BaseStateCallbacks) OnResize(rows, cols int, fields *StateFields) bool  { return false }
func (BaseStateCallbacks) OnSetLineInfo(row int, newinfo, oldinfo LineInfo) bool {
	return false
}
func (BaseStateCallbacks) OnSbClear() bool        { return false }
func (BaseStateCallbacks) OnPremove(dest Rect) bool { return false }

var _ StateCallbacks = BaseStateCallbacks{}

// StateFallbacks receives events the State machine itself did not recognize
// or fully dispatch (spec §7 fallback declines).
type StateFallbacks interface {
	OnControl(b byte) bool
	OnCSI(leader string, args []int64, intermed string, final byte) bool
	OnOSC(command int, frag StringFragment) bool
	OnDCS(command string, frag StringFragment) bool
	OnAPC(frag StringFragment) bool
	OnPM(frag StringFragment) bool
	OnSOS(frag StringFragment) bool
}

// BaseStateFallbacks declines every callback.
type BaseStateFallbacks struct{}

func (BaseStateFallbacks) OnControl(b byte) bool { return false }
func (BaseStateFallbacks) OnCSI(leader string, args []int64, intermed string, final byte) bool {
	return false
}
func (BaseStateFallbacks) OnOSC(command int, frag StringFragment) bool { return false }
func (BaseStateFallbacks) OnDCS(command string, frag StringFragment) bool { return false }
func (BaseStateFallbacks) OnAPC(frag StringFragment) bool                 { return false }
func (BaseStateFallbacks) OnPM(frag StringFragment) bool                  { return false }
func (BaseStateFallbacks) OnSOS(frag StringFragment) bool                 { return false }

var _ StateFallbacks = BaseStateFallbacks{}

// ScreenCallbacks receives events from the optional Screen cell-grid model
// (spec §4.4).
type ScreenCallbacks interface {
	OnDamage(rect Rect) bool
	OnMoveRect(dest, src Rect) bool
	OnMoveCursor(pos, oldpos Pos, visible bool) bool
	OnSetTermProp(prop Prop, val Value) bool
	OnBell() bool
	OnResize(rows, cols int) bool
	OnSbPushLine(cells []ScreenCell, continuation bool) bool
	OnSbPopLine(cells []ScreenCell, continuation *bool) bool
	OnSbClear() bool
}

// BaseScreenCallbacks declines every callback.
type BaseScreenCallbacks struct{}

func (BaseScreenCallbacks) OnDamage(rect Rect) bool                      { return false }
func (BaseScreenCallbacks) OnMoveRect(dest, src Rect) bool                { return false }
func (BaseScreenCallbacks) OnMoveCursor(pos, oldpos Pos, visible bool) bool { return false }
func (BaseScreenCallbacks) OnSetTermProp(prop Prop, val Value) bool       { return false }
func (BaseScreenCallbacks) OnBell() bool                                 { return false }
func (BaseScreenCallbacks) OnResize(rows, cols int) bool                 { return false }
func (BaseScreenCallbacks) OnSbPushLine(cells []ScreenCell, continuation bool) bool {
	return false
}
func (BaseScreenCallbacks) OnSbPopLine(cells []ScreenCell, continuation *bool) bool {
	return false
}
func (BaseScreenCallbacks) OnSbClear() bool { return false }

var _ ScreenCallbacks = BaseScreenCallbacks{}

// SelectionCallbacks receives OSC-52-style in-memory clipboard requests
// (spec §9 supplement). No OS clipboard integration happens here — that is
// an explicit spec §1 Non-goal; a host wires these to whatever clipboard
// mechanism it has.
type SelectionCallbacks interface {
	OnSet(mask SelectionMask, frag StringFragment) bool
	OnQuery(mask SelectionMask) bool
}

// BaseSelectionCallbacks declines every callback.
type BaseSelectionCallbacks struct{}

func (BaseSelectionCallbacks) OnSet(mask SelectionMask, frag StringFragment) bool { return false }
func (BaseSelectionCallbacks) OnQuery(mask SelectionMask) bool                    { return false }

var _ SelectionCallbacks = BaseSelectionCallbacks{}
