package vterm

// ModeSet holds the boolean ANSI/DEC mode flags enumerated in spec §3.
type ModeSet struct {
	IRM  bool // mode 4 - insert/replace
	LNM  bool // mode 20 - linefeed/newline

	DECCKM  bool // 1 - cursor keys
	DECSCNM bool // 5 - screen reverse video
	DECOM   bool // 6 - origin mode
	DECAWM  bool // 7 - autowrap, default on
	Mode12  bool // 12 - local echo / cursor blink (send/receive)
	DECTCEM bool // 25 - text cursor enable, default on
	Mode47  bool // 47 - old-style altscreen
	Mode1047 bool
	Mode1049 bool
	Mode66  bool // application keypad
	DECLRMM bool // 69 - left/right margin mode

	Mouse1000 bool
	Mouse1002 bool
	Mouse1003 bool
	Focus1004 bool
	Mouse1005 bool
	Mouse1006 bool
	Mouse1015 bool
	BracketedPaste2004 bool
}

// DefaultModes returns the power-on mode defaults (spec §4.3.8): DECAWM and
// DECTCEM on, everything else off.
func DefaultModes() ModeSet {
	return ModeSet{
		DECAWM:  true,
		DECTCEM: true,
	}
}
