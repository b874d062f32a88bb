// Package vterm is an embeddable, I/O-free VT220/xterm-class terminal
// emulator engine. It turns a stream of bytes into terminal state
// transitions without touching a pty, a socket, or a display: hosts own all
// I/O and rendering, and only feed bytes in and read state back out.
//
// # Architecture
//
// The package is organized as a pipeline of independently usable layers:
//
//   - [Parser]: decodes the incoming byte stream into C0/C1 controls, CSI,
//     OSC, DCS, APC, PM, SOS, escape sequences, and UTF-8 text, feeding each
//     to a ParserCallbacks sink.
//   - [State]: the state machine — cursor position, pen (SGR) attributes,
//     modes, scroll margins, tab stops, save/restore, and reset. It consumes
//     ParserCallbacks events and emits StateCallbacks events describing the
//     resulting changes.
//   - [Screen]: an optional cell-grid model built on StateCallbacks/
//     ScreenCallbacks, tracking damage, the alternate screen, reflow on
//     resize, and (with a [Scrollback] attached) history.
//   - Input encoding (State's KeyboardKey/KeyboardUnichar/MouseButton and
//     friends): the reverse direction, turning host-reported keyboard/mouse
//     events into the bytes a program on the other end of the pipeline
//     would expect to read.
//
// [Terminal] wires a Parser, a State, and an optional Screen/Scrollback into
// one struct for the common case; hosts that need finer control can
// construct and wire the layers themselves.
//
// # Quick start
//
//	term := vterm.New(vterm.WithSize(24, 80))
//	term.Write([]byte("\x1b[31mHello\x1b[0m"))
//	screen := term.Screen()
//
// # Non-goals
//
// This package does not rasterize pixels, shape fonts, parse config files,
// log, integrate with an OS clipboard, or build an end-user executable. It
// is a state machine, not a terminal application.
package vterm
