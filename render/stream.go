package render

import (
	"bufio"
	"io"

	"github.com/piotrcurious/matrix-rain/terminal"
)

// Emitter writes resolved frames as a minimal ANSI byte stream for a serial
// terminal: cursor homed once per frame instead of per cell, SGR emitted
// only when the level differs from the previous cell in scan order, rows
// terminated with CRLF.
type Emitter struct {
	w   *bufio.Writer
	pal *Palette

	last      Level
	lastValid bool
}

func NewEmitter(w io.Writer, pal *Palette) *Emitter {
	return &Emitter{
		w:   bufio.NewWriterSize(w, 8192),
		pal: pal,
	}
}

// SetPalette swaps the color table. The next cell re-emits color regardless
// of level since the sequences changed under it.
func (e *Emitter) SetPalette(pal *Palette) {
	if pal == nil || pal == e.pal {
		return
	}
	e.pal = pal
	e.lastValid = false
}

// Init clears the screen and hides the cursor
func (e *Emitter) Init() error {
	e.w.Write(terminal.ClearScreen)
	e.w.Write(terminal.CursorHide)
	e.lastValid = false
	return e.w.Flush()
}

// WriteFrame emits one full frame
func (e *Emitter) WriteFrame(f *Frame) error {
	width, height := f.Size()
	e.w.Write(terminal.CursorHome)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := f.At(x, y)
			if !e.lastValid || c.Level != e.last {
				e.w.Write(e.pal.SGR(c.Level))
				e.last = c.Level
				e.lastValid = true
			}
			e.w.WriteByte(c.Glyph)
		}
		// No terminator after the bottom row, it would scroll the screen
		if y < height-1 {
			e.w.Write(terminal.CRLF)
		}
	}
	return e.w.Flush()
}

// Restore resets attributes and re-shows the cursor, for the way out
func (e *Emitter) Restore() error {
	e.w.Write(terminal.SGRReset)
	e.w.Write(terminal.CursorShow)
	e.w.Write(terminal.CRLF)
	return e.w.Flush()
}
