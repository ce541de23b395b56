package terminal

import (
	"bufio"
	"bytes"
	"testing"
)

func capture(f func(w *bufio.Writer)) string {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	f(w)
	w.Flush()
	return buf.String()
}

func TestWriteInt(t *testing.T) {
	cases := map[int]string{
		0: "0", 7: "7", 10: "10", 99: "99", 100: "100", 255: "255", 999: "999",
		1000: "1000", 24576: "24576",
		-5: "0", // clamped
	}
	for n, want := range cases {
		got := capture(func(w *bufio.Writer) { WriteInt(w, n) })
		if got != want {
			t.Errorf("WriteInt(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWriteCursorPos(t *testing.T) {
	got := capture(func(w *bufio.Writer) { WriteCursorPos(w, 0, 0) })
	if got != "\x1b[1;1H" {
		t.Errorf("origin = %q", got)
	}
	got = capture(func(w *bufio.Writer) { WriteCursorPos(w, 79, 23) })
	if got != "\x1b[24;80H" {
		t.Errorf("bottom-right = %q", got)
	}
}

func TestWriteFg256(t *testing.T) {
	got := capture(func(w *bufio.Writer) { WriteFg256(w, 46) })
	if got != "\x1b[38;5;46m" {
		t.Errorf("WriteFg256(46) = %q", got)
	}
}
