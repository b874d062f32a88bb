package vterm

import "encoding/base64"

// handleOSC52 accumulates an OSC 52 "Pc;Pd" selection request across its
// (possibly fragmented) string body and dispatches it once complete (spec
// §9 supplement). Pc names one or more selection targets; Pd is either "?"
// (query) or base64-encoded data to set.
func (s *State) handleOSC52(frag StringFragment) bool {
	if frag.Initial {
		s.oscBody = s.oscBody[:0]
	}
	s.oscBody = append(s.oscBody, frag.Bytes...)
	if !frag.Final {
		return true
	}
	s.dispatchOSC52(s.oscBody)
	s.oscBody = nil
	return true
}

func (s *State) dispatchOSC52(body []byte) {
	if s.sel == nil {
		return
	}
	sep := -1
	for i, b := range body {
		if b == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return
	}
	mask := selectionMaskFromTargets(body[:sep])
	payload := body[sep+1:]
	if len(payload) == 1 && payload[0] == '?' {
		s.sel.OnQuery(mask)
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		return
	}
	s.sel.OnSet(mask, StringFragment{Bytes: decoded, Initial: true, Final: true})
}

func selectionMaskFromTargets(targets []byte) SelectionMask {
	var mask SelectionMask
	for _, t := range targets {
		switch t {
		case 'c':
			mask |= SelectionClipboard
		case 'p':
			mask |= SelectionPrimary
		case 'q':
			mask |= SelectionSecondary
		case 's':
			mask |= SelectionSelect
		case '0':
			mask |= SelectionCut0
		}
	}
	return mask
}

// SendSelection replies to a pending OSC 52 query with the given selection
// data, base64-encoded per spec. A host's SelectionCallbacks.OnQuery
// implementation calls this once it has resolved the requested data.
func (s *State) SendSelection(mask SelectionMask, data []byte) {
	var targets []byte
	if mask&SelectionClipboard != 0 {
		targets = append(targets, 'c')
	}
	if mask&SelectionPrimary != 0 {
		targets = append(targets, 'p')
	}
	if mask&SelectionSecondary != 0 {
		targets = append(targets, 'q')
	}
	if mask&SelectionSelect != 0 {
		targets = append(targets, 's')
	}
	if mask&SelectionCut0 != 0 {
		targets = append(targets, '0')
	}
	if len(targets) == 0 {
		return
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	s.reply([]byte("\x1b]52;" + string(targets) + ";" + encoded + "\x07"))
}
