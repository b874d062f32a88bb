package charset

// Designators tracks the G0-G3 charset slots, the GL/GR locking shifts, and
// any pending single shift (spec §3 Charset state, §4.2 selection rules).
type Designators struct {
	G        [4]Ident
	GL       int // 0..3
	GR       int // 0..3
	SingleShift int // 0 = none, 2 = SS2, 3 = SS3
	UTF8     bool
}

// NewDesignators returns the power-on default: G0=ASCII, GL=G0, GR=G1.
func NewDesignators() *Designators {
	d := &Designators{}
	d.Reset()
	return d
}

// Reset restores the power-on default designation state.
func (d *Designators) Reset() {
	d.G = [4]Ident{ASCII, ASCII, ASCII, ASCII}
	d.GL = 0
	d.GR = 1
	d.SingleShift = 0
}

// Designate sets slot (0-3) to ident.
func (d *Designators) Designate(slot int, ident Ident) {
	if slot >= 0 && slot < 4 {
		d.G[slot] = ident
	}
}

// LockGL performs a locking shift of GL to slot.
func (d *Designators) LockGL(slot int) { d.GL = slot }

// LockGR performs a locking shift of GR to slot.
func (d *Designators) LockGR(slot int) { d.GR = slot }

// SingleShift2 arms a one-byte shift to G2.
func (d *Designators) SingleShift2() { d.SingleShift = 2 }

// SingleShift3 arms a one-byte shift to G3.
func (d *Designators) SingleShift3() { d.SingleShift = 3 }

// Translate maps a single non-UTF-8-mode byte through the active
// designation, honoring any pending single shift (consumed after one byte),
// and the GL/GR split at 0x80 (spec §4.2). Only meaningful when UTF8 is
// false; callers must route bytes >= 0x80 around this entirely when UTF8
// mode is active.
func (d *Designators) Translate(b byte) rune {
	slot := d.GL
	if d.SingleShift != 0 {
		slot = d.SingleShift
		d.SingleShift = 0
	}

	if b >= 0x20 && b <= 0x7E {
		return decode94(d.G[slot], b)
	}
	if b >= 0xA0 {
		grSlot := d.GR
		if d.SingleShift != 0 {
			// already consumed above when applicable
		}
		return Decode96(d.G[grSlot], b)
	}
	return rune(b)
}
