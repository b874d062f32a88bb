package vterm

import "sync"

// Terminal wires a Parser, a State, and an optional Screen/Scrollback pair
// into one embeddable engine (spec §2/§6), the same top-level facade role
// the teacher's own Terminal type plays over go-ansicode. Unlike the
// teacher, Terminal itself holds no mutex: spec §5 mandates single-threaded,
// cooperatively-scheduled use, so the core types are not safe for
// concurrent access by design. Hosts that need the teacher's
// multi-goroutine convenience wrap one in Locked.
type Terminal struct {
	rows, cols int

	parser     *Parser
	state      *State
	screen     *Screen
	scrollback *Scrollback
}

// DefaultRows/DefaultCols match the teacher's DEFAULT_ROWS/DEFAULT_COLS.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Option configures a Terminal at construction, mirroring the teacher's
// functional-options constructors (WithSize, WithResponse, WithBell, ...).
type Option func(*Terminal)

// WithSize sets the initial row/column count. Values <= 0 fall back to
// DefaultRows/DefaultCols, matching the teacher's WithSize.
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return func(t *Terminal) { t.rows, t.cols = rows, cols }
}

// WithScreen attaches or detaches the optional cell-grid model (spec §4.4).
// On by default; WithScreen(false) runs only the byte parser and state
// machine, leaving StateCallbacks for the host to install directly via
// SetStateCallbacks.
func WithScreen(enabled bool) Option {
	return func(t *Terminal) {
		if !enabled {
			t.screen = nil
		}
	}
}

// WithScrollbackCapacity attaches a Scrollback ring of the given line
// capacity to the Screen (spec §4.5). A capacity of 0 disables scrollback,
// the spec §4.5 default.
func WithScrollbackCapacity(capacity int) Option {
	return func(t *Terminal) {
		if capacity > 0 {
			t.scrollback = NewScrollback(capacity)
		}
	}
}

// WithDamageMerge sets the Screen's damage-merge granularity (spec §4.4.2).
func WithDamageMerge(g DamageSize) Option {
	return func(t *Terminal) {
		if t.screen != nil {
			t.screen.SetDamageMerging(g)
		}
	}
}

// WithBoldHighbright raises indexed foreground colors 0-7 to 8-15 under
// bold SGR (spec §9 supplement).
func WithBoldHighbright(enabled bool) Option {
	return func(t *Terminal) {
		if t.state != nil {
			t.state.SetBoldHighbright(enabled)
		}
	}
}

// WithPremove turns on the on_premove callback ahead of moverect fallback
// emissions (spec §4.3.6).
func WithPremove(enabled bool) Option {
	return func(t *Terminal) {
		if t.state != nil {
			t.state.EnablePremove(enabled)
		}
	}
}

// WithDefaultColors sets the colors resolved for DefaultFg()/DefaultBg().
func WithDefaultColors(fg, bg Color) Option {
	return func(t *Terminal) {
		if t.state != nil {
			t.state.SetDefaultColors(fg, bg)
		}
	}
}

// WithOutput installs the byte sink that receives query replies and
// synthetic input encodings (spec §6.2, §4.3.5 Queries).
func WithOutput(out func([]byte)) Option {
	return func(t *Terminal) {
		if t.state != nil {
			t.state.SetOutput(out)
		}
	}
}

// New builds a Terminal from the given options. The Screen is attached by
// default; pass WithScreen(false) to run the bare parser+state pipeline.
// WithSize must run before state/screen-dependent options are applied, so
// sizing is resolved in a first pass over opts.
func New(opts ...Option) *Terminal {
	t := &Terminal{rows: DefaultRows, cols: DefaultCols}
	sizing := &Terminal{rows: DefaultRows, cols: DefaultCols}
	for _, opt := range opts {
		opt(sizing)
	}
	t.rows, t.cols = sizing.rows, sizing.cols

	t.state = NewState(t.rows, t.cols)
	t.screen = NewScreen(t.rows, t.cols)

	for _, opt := range opts {
		opt(t)
	}

	if t.screen != nil {
		if t.scrollback != nil {
			t.screen.AttachScrollback(t.scrollback)
		}
		t.state.SetCallbacks(t.screen)
	}

	t.parser = NewParser(t.state)
	t.state.SetParser(t.parser)
	return t
}

// Write feeds host-supplied bytes into the engine (spec §6.1). Under
// DamageRow/DamageScreen/DamageScroll merging, damage accumulated mid-write
// is deferred rather than emitted per cell (spec §4.4.2); Write is itself an
// operation boundary, so any pending damage is flushed before returning
// rather than left for the host to remember to flush.
func (t *Terminal) Write(data []byte) {
	t.parser.Write(data)
	if t.screen != nil {
		t.screen.FlushDamage()
	}
}

// Resize changes the terminal's dimensions, cascading through State to
// Screen/Scrollback (spec §4.5). Invalid dimensions are ignored.
func (t *Terminal) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	t.rows, t.cols = rows, cols
	t.state.Resize(rows, cols)
}

// Rows/Cols report the current dimensions.
func (t *Terminal) Rows() int { return t.rows }
func (t *Terminal) Cols() int { return t.cols }

// State returns the underlying state machine, for hosts that want direct
// access to cursor/mode/pen queries or the keyboard/mouse input encoder.
func (t *Terminal) State() *State { return t.state }

// Screen returns the attached cell-grid model, or nil if WithScreen(false)
// was passed to New.
func (t *Terminal) Screen() *Screen { return t.screen }

// Scrollback returns the attached scrollback ring, or nil if none was
// configured.
func (t *Terminal) Scrollback() *Scrollback { return t.scrollback }

// SetStateCallbacks overrides the StateCallbacks sink installed by New,
// useful for a host that wants raw State events without a Screen (pass
// WithScreen(false) first).
func (t *Terminal) SetStateCallbacks(cb StateCallbacks) { t.state.SetCallbacks(cb) }

// SetScreenCallbacks installs a ScreenCallbacks sink on the attached Screen.
func (t *Terminal) SetScreenCallbacks(cb ScreenCallbacks) {
	if t.screen != nil {
		t.screen.SetCallbacks(cb)
	}
}

// SetFallbacks installs the StateFallbacks sink for sequences State itself
// does not recognize (OSC, unrecognized DCS/APC/PM/SOS, unrecognized CSI).
func (t *Terminal) SetFallbacks(fb StateFallbacks) { t.state.SetFallbacks(fb) }

// SetSelectionCallbacks installs the SelectionCallbacks sink for a
// host-side OSC-52-style in-memory clipboard parser (spec §9 supplement;
// no OS clipboard integration happens in this engine, see spec §1
// Non-goals).
func (t *Terminal) SetSelectionCallbacks(cb SelectionCallbacks) { t.state.SetSelectionCallbacks(cb) }

// Locked wraps a Terminal with a sync.RWMutex, matching the teacher's own
// concurrency convention (it wraps its whole Terminal in a mutex for
// multi-goroutine host use). The core Terminal is deliberately not safe for
// concurrent use (spec §5); Locked is the opt-in layer for hosts that feed
// it from more than one goroutine.
type Locked struct {
	mu sync.RWMutex
	t  *Terminal
}

// NewLocked wraps t in a Locked.
func NewLocked(t *Terminal) *Locked { return &Locked{t: t} }

// Write serializes a Write call behind the write lock.
func (l *Locked) Write(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Write(data)
}

// Resize serializes a Resize call behind the write lock.
func (l *Locked) Resize(rows, cols int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Resize(rows, cols)
}

// Rows/Cols take the read lock, matching the teacher's read/write split.
func (l *Locked) Rows() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Rows()
}

func (l *Locked) Cols() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Cols()
}

// WithLock runs fn with the write lock held, for a host that needs to issue
// several calls (e.g. a screen query following a write) as one atomic unit.
func (l *Locked) WithLock(fn func(t *Terminal)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.t)
}
