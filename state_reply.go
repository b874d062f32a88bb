package vterm

// replyCSI sends a CSI-introduced reply, using the 8-bit C1 form when
// S8C1T is active (spec §4.3.5 Queries).
func (s *State) replyCSI(body string) {
	buf := append(s.write8C1(0x9B), body...)
	s.reply(buf)
}

// replyDCS sends a DCS-introduced, ST-terminated reply.
func (s *State) replyDCS(body string) {
	buf := append(s.write8C1(0x90), body...)
	buf = append(buf, s.write8C1(0x9C)...)
	s.reply(buf)
}
