package vterm

// parserState is one node of the ECMA-48 byte-level automaton (spec §4.1).
type parserState int

const (
	psGround parserState = iota
	psEscape
	psEscapeIntermediate
	psCSIEntry
	psCSIParam
	psCSIIntermediate
	psCSIIgnore
	psOSCString
	psDCSEntry
	psDCSParam
	psDCSIntermediate
	psDCSPassthrough
	psDCSIgnore
	psAPCString
	psPMString
	psSOSString
)

const maxCSIArgs = 16

// Parser decodes a DEC/ECMA-48 terminal byte stream into discrete semantic
// events, streaming them to a ParserCallbacks implementation (spec §4.1).
// It is stateless about the grid and owns no buffers beyond a small fixed
// scratch area for the in-flight CSI/DCS sequence. Bytes may be split
// arbitrarily across Write calls.
type Parser struct {
	cb ParserCallbacks

	state parserState

	// CSI/DCS scratch.
	leader    []byte
	intermed  []byte
	args      [maxCSIArgs]int64
	nargs     int
	curArgSet bool

	// escape scratch (non-CSI, non-DCS/OSC/APC/PM/SOS)
	escBytes []byte

	// OSC scratch for the optional leading command number.
	oscCommand  int
	oscHasCmd   bool
	oscDigits   bool
	oscStarted  bool // whether any byte of the command/body has been seen

	// DCS command bytes (leader+params+intermediate+final), collected
	// before DCS_PASSTHROUGH begins.
	dcsCommand []byte

	// string-sequence fragment state
	stringKind   byte // 'o'=OSC,'d'=DCS,'a'=APC,'p'=PM,'s'=SOS, 0=none
	stringFirst  bool

	eightBit bool // whether 8-bit C1 interpretation is enabled
}

// NewParser creates a Parser that streams events to cb. cb may be nil, in
// which case events are decoded and discarded (useful for tests that only
// care about parser robustness).
func NewParser(cb ParserCallbacks) *Parser {
	return &Parser{cb: cb, eightBit: true}
}

// SetCallbacks replaces the callback sink.
func (p *Parser) SetCallbacks(cb ParserCallbacks) { p.cb = cb }

// SetEightBit controls whether bytes 0x80-0x9F are interpreted as C1
// controls (true, the default) or passed through as text/UTF-8 continuation
// bytes (false, used in UTF-8 mode per spec §4.1). A Parser wired to a
// State via State.SetParser has this kept in sync with State.SetUTF8
// automatically; call it directly only when running a bare Parser with no
// State attached.
func (p *Parser) SetEightBit(enabled bool) { p.eightBit = enabled }

func (p *Parser) emitText(b []byte) {
	if len(b) == 0 || p.cb == nil {
		return
	}
	p.cb.OnText(b)
}

// Write feeds bytes into the parser. Never loses or invents bytes; a
// sequence split across multiple calls resumes exactly where it left off.
func (p *Parser) Write(data []byte) {
	i := 0
	n := len(data)
	textStart := -1

	flushText := func(end int) {
		if textStart >= 0 && end > textStart {
			p.emitText(data[textStart:end])
		}
		textStart = -1
	}

	isStringBodyState := func(s parserState) bool {
		switch s {
		case psOSCString, psDCSPassthrough, psAPCString, psPMString, psSOSString:
			return true
		}
		return false
	}

	for i < n {
		b := data[i]

		// 8-bit C1 remap (spec §4.1): significant everywhere except inside a
		// string body, where the body-scanning step functions already watch
		// for the 0x9C (ST) terminator themselves.
		if p.eightBit && b >= 0x80 && b <= 0x9F && !isStringBodyState(p.state) {
			flushText(i)
			p.handleC1(b)
			i++
			continue
		}

		if p.state == psGround {
			if b == 0x00 {
				i++
				continue
			}
			if b < 0x20 || b == 0x7F {
				flushText(i)
				if p.cb != nil {
					p.cb.OnControl(b)
				}
				i++
				continue
			}
			if b == 0x1B {
				flushText(i)
				p.enterEscape()
				i++
				continue
			}
			if textStart < 0 {
				textStart = i
			}
			i++
			continue
		}

		// Non-ground states: text coalescing does not apply.
		flushText(i)

		// String bodies handle CAN/SUB/ESC in their own step functions so the
		// final fragment is still delivered.
		if !isStringBodyState(p.state) {
			if b == 0x18 || b == 0x1A { // CAN, SUB
				p.cancelToGround()
				i++
				continue
			}
			if b == 0x1B {
				p.enterEscape()
				i++
				continue
			}
		}

		switch p.state {
		case psEscape:
			p.stepEscape(b)
		case psEscapeIntermediate:
			p.stepEscapeIntermediate(b)
		case psCSIEntry, psCSIParam, psCSIIntermediate:
			p.stepCSI(b)
		case psCSIIgnore:
			p.stepCSIIgnore(b)
		case psOSCString:
			p.stepOSC(data, &i)
			continue
		case psDCSEntry, psDCSParam, psDCSIntermediate:
			p.stepDCSHeader(b)
		case psDCSPassthrough:
			p.stepDCSBody(data, &i)
			continue
		case psDCSIgnore:
			p.stepDCSIgnore(b)
		case psAPCString:
			p.stepStringBody(data, &i, 'a')
			continue
		case psPMString:
			p.stepStringBody(data, &i, 'p')
			continue
		case psSOSString:
			p.stepStringBody(data, &i, 's')
			continue
		}
		i++
	}

	flushText(n)
}

func (p *Parser) cancelToGround() {
	p.state = psGround
	p.resetCSIScratch()
}

func (p *Parser) resetCSIScratch() {
	p.leader = p.leader[:0]
	p.intermed = p.intermed[:0]
	p.nargs = 0
	p.curArgSet = false
	for i := range p.args {
		p.args[i] = CSIArgMissing
	}
	p.escBytes = p.escBytes[:0]
}

func (p *Parser) enterEscape() {
	p.state = psEscape
	p.resetCSIScratch()
}

// handleC1 maps an 8-bit C1 control byte to its ESC-equivalent entry point,
// or treats it as a plain control in GROUND.
func (p *Parser) handleC1(b byte) {
	switch b {
	case 0x9B: // CSI
		p.state = psCSIEntry
		p.resetCSIScratch()
	case 0x90: // DCS
		p.state = psDCSEntry
		p.resetCSIScratch()
		p.dcsCommand = p.dcsCommand[:0]
	case 0x9D: // OSC
		p.enterOSC()
	case 0x9F: // APC
		p.enterString(psAPCString, 'a')
	case 0x9E: // PM
		p.enterString(psPMString, 'p')
	case 0x98: // SOS
		p.enterString(psSOSString, 's')
	case 0x9C: // ST
		p.terminateString()
		p.state = psGround
	default:
		if p.cb != nil {
			p.cb.OnControl(b)
		}
	}
}

func (p *Parser) stepEscape(b byte) {
	switch {
	case b == '[':
		p.state = psCSIEntry
	case b == 'P':
		p.state = psDCSEntry
		p.dcsCommand = p.dcsCommand[:0]
	case b == ']':
		p.enterOSC()
	case b == '_':
		p.enterString(psAPCString, 'a')
	case b == '^':
		p.enterString(psPMString, 'p')
	case b == 'X':
		p.enterString(psSOSString, 's')
	case b == '\\': // lone ST outside a string: no-op
		p.state = psGround
	case b >= 0x20 && b <= 0x2F:
		p.escBytes = append(p.escBytes, b)
		p.state = psEscapeIntermediate
	case b >= 0x30 && b <= 0x7E:
		p.escBytes = append(p.escBytes, b)
		if p.cb != nil {
			p.cb.OnEscape(p.escBytes)
		}
		p.state = psGround
	default:
		p.state = psGround
	}
}

func (p *Parser) stepEscapeIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.escBytes = append(p.escBytes, b)
	case b >= 0x30 && b <= 0x7E:
		p.escBytes = append(p.escBytes, b)
		if p.cb != nil {
			p.cb.OnEscape(p.escBytes)
		}
		p.state = psGround
	default:
		p.state = psGround
	}
}

func (p *Parser) stepCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.state = psCSIParam
		if !p.curArgSet {
			if p.nargs < maxCSIArgs {
				p.args[p.nargs] = 0
			}
			p.curArgSet = true
		}
		if p.nargs < maxCSIArgs {
			v := CSIArgValue(p.args[p.nargs])
			if v == CSIArgMissing {
				v = 0
			}
			p.args[p.nargs] = v*10 + int64(b-'0')
		}
	case b == ';' || b == ':':
		if p.nargs < maxCSIArgs {
			if b == ':' {
				p.args[p.nargs] |= csiArgFlagHasMore
			}
			p.nargs++
		}
		p.curArgSet = false
		if p.nargs < maxCSIArgs {
			p.args[p.nargs] = CSIArgMissing
		}
		p.state = psCSIParam
	case b >= 0x3C && b <= 0x3F: // leader bytes < = > ?
		if len(p.leader) == 0 && p.nargs == 0 && !p.curArgSet {
			p.leader = append(p.leader, b)
			p.state = psCSIEntry
		} else {
			p.state = psCSIIgnore
		}
	case b >= 0x20 && b <= 0x2F:
		p.intermed = append(p.intermed, b)
		p.state = psCSIIntermediate
	case b >= 0x40 && b <= 0x7E:
		p.finishCSI(b)
	default:
		p.state = psCSIIgnore
	}
}

func (p *Parser) stepCSIIgnore(b byte) {
	if b >= 0x40 && b <= 0x7E {
		p.state = psGround
		p.resetCSIScratch()
	}
}

func (p *Parser) finishCSI(final byte) {
	count := p.nargs
	if p.curArgSet || count == 0 {
		count++
	}
	if count > maxCSIArgs {
		count = maxCSIArgs
	}
	args := make([]int64, count)
	for i := 0; i < count; i++ {
		args[i] = p.args[i]
	}
	if p.cb != nil {
		p.cb.OnCSI(string(p.leader), args, string(p.intermed), final)
	}
	p.state = psGround
	p.resetCSIScratch()
}

func (p *Parser) enterOSC() {
	p.state = psOSCString
	p.oscCommand = 0
	p.oscHasCmd = false
	p.oscDigits = false
	p.oscStarted = false
	p.stringKind = 'o'
	p.stringFirst = true
}

func (p *Parser) enterString(state parserState, kind byte) {
	p.state = state
	p.stringKind = kind
	p.stringFirst = true
}

// stepOSC consumes OSC bytes starting at *i, handling the optional leading
// decimal command number, and emits fragment callbacks as body bytes arrive.
func (p *Parser) stepOSC(data []byte, i *int) {
	start := *i
	n := len(data)
	j := start
	for j < n {
		b := data[j]
		if b == 0x07 { // BEL terminator
			p.emitOSCFragment(data[start:j], true)
			p.state = psGround
			*i = j + 1
			return
		}
		if b == 0x1B || b == 0x18 || b == 0x1A || (p.eightBit && b == 0x9C) {
			p.emitOSCFragment(data[start:j], true)
			*i = j
			if b == 0x18 || b == 0x1A {
				p.cancelToGround()
				*i = j + 1
			} else if b == 0x1B {
				p.enterEscape()
				*i = j + 1
			} else {
				p.state = psGround
				*i = j + 1
			}
			return
		}
		if !p.oscStarted && b >= '0' && b <= '9' {
			p.oscDigits = true
			p.oscHasCmd = true
			p.oscCommand = p.oscCommand*10 + int(b-'0')
			j++
			continue
		}
		if !p.oscStarted && p.oscDigits && b == ';' {
			p.oscStarted = true
			start = j + 1
			j++
			continue
		}
		if !p.oscStarted {
			// Not a pure-digit prefix: treat everything from here as body.
			p.oscStarted = true
			if !p.oscDigits {
				p.oscHasCmd = false
			}
		}
		j++
	}
	// ran out of input without terminator: emit a non-final fragment
	p.emitOSCFragment(data[start:n], false)
	*i = n
}

func (p *Parser) emitOSCFragment(body []byte, final bool) {
	if p.cb == nil {
		p.stringFirst = false
		return
	}
	cmd := -1
	if p.oscHasCmd {
		cmd = p.oscCommand
	}
	frag := StringFragment{Bytes: body, Initial: p.stringFirst, Final: final}
	p.cb.OnOSC(cmd, frag)
	p.stringFirst = false
}

func (p *Parser) stepDCSHeader(b byte) {
	switch {
	case b >= '0' && b <= '9', b == ';', b == ':', (b >= 0x3C && b <= 0x3F), (b >= 0x20 && b <= 0x2F):
		p.dcsCommand = append(p.dcsCommand, b)
		p.state = psDCSParam
	case b >= 0x40 && b <= 0x7E:
		p.dcsCommand = append(p.dcsCommand, b)
		p.state = psDCSPassthrough
		p.stringKind = 'd'
		p.stringFirst = true
	default:
		p.state = psDCSIgnore
	}
}

func (p *Parser) stepDCSIgnore(b byte) {
	if b == 0x1B || (p.eightBit && b == 0x9C) {
		p.state = psGround
	}
}

func (p *Parser) stepDCSBody(data []byte, i *int) {
	start := *i
	n := len(data)
	j := start
	for j < n {
		b := data[j]
		if b == 0x1B || b == 0x18 || b == 0x1A || (p.eightBit && b == 0x9C) {
			p.emitDCSFragment(data[start:j], true)
			if b == 0x18 || b == 0x1A {
				p.cancelToGround()
				*i = j + 1
			} else if b == 0x1B {
				p.enterEscape()
				*i = j + 1
			} else {
				p.state = psGround
				*i = j + 1
			}
			return
		}
		j++
	}
	p.emitDCSFragment(data[start:n], false)
	*i = n
}

func (p *Parser) emitDCSFragment(body []byte, final bool) {
	if p.cb == nil {
		p.stringFirst = false
		return
	}
	frag := StringFragment{Bytes: body, Initial: p.stringFirst, Final: final}
	p.cb.OnDCS(string(p.dcsCommand), frag)
	p.stringFirst = false
}

func (p *Parser) stepStringBody(data []byte, i *int, kind byte) {
	start := *i
	n := len(data)
	j := start
	for j < n {
		b := data[j]
		if b == 0x1B || b == 0x18 || b == 0x1A || (p.eightBit && b == 0x9C) {
			p.emitStringFragment(data[start:j], true, kind)
			if b == 0x18 || b == 0x1A {
				p.cancelToGround()
				*i = j + 1
			} else if b == 0x1B {
				p.enterEscape()
				*i = j + 1
			} else {
				p.state = psGround
				*i = j + 1
			}
			return
		}
		j++
	}
	p.emitStringFragment(data[start:n], false, kind)
	*i = n
}

func (p *Parser) emitStringFragment(body []byte, final bool, kind byte) {
	if p.cb == nil {
		p.stringFirst = false
		return
	}
	frag := StringFragment{Bytes: body, Initial: p.stringFirst, Final: final}
	switch kind {
	case 'a':
		p.cb.OnAPC(frag)
	case 'p':
		p.cb.OnPM(frag)
	case 's':
		p.cb.OnSOS(frag)
	}
	p.stringFirst = false
}

// terminateString is invoked when an 8-bit ST (0x9C) arrives while in a
// string state entered via the 8-bit C1 form; the normal step* functions
// handle ST within their own loops, so this only covers an ST seen as a
// bare top-level C1 byte (e.g. between sequences, a no-op).
func (p *Parser) terminateString() {}
