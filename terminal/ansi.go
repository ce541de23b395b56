// Package terminal is a thin ANSI/VT102 control layer: preallocated escape
// fragments and allocation-free writers for the sequences the rain renderer
// needs. It bypasses terminfo entirely; the receiving end is assumed to be a
// VT102-compatible terminal, typically on the far side of a serial link.
package terminal

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi = []byte("\x1b[")

	ClearScreen = []byte("\x1b[2J\x1b[H")
	CursorHome  = []byte("\x1b[H")
	CursorHide  = []byte("\x1b[?25l")
	CursorShow  = []byte("\x1b[?25h")
	SGRReset    = []byte("\x1b[0m")

	// CRLF terminates a row; real terminals on raw links want both bytes
	CRLF = []byte("\r\n")

	// RIS, Reset to Initial State (emergency)
	rawReset = []byte("\x1bc")
)

// WriteInt writes an integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max).
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a cursor positioning sequence (0-indexed input)
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}

// WriteFg256 writes a 256-color foreground selection sequence
func WriteFg256(w *bufio.Writer, n uint8) {
	w.Write(csi)
	w.WriteString("38;5;")
	WriteInt(w, int(n))
	w.WriteByte('m')
}

// EmergencyReset restores a sane terminal state after a crash: full reset,
// attributes cleared, cursor visible. Best effort, errors ignored.
func EmergencyReset(w io.Writer) {
	w.Write(rawReset)
	w.Write(SGRReset)
	w.Write(CursorShow)
}
