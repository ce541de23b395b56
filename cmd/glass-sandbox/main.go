// FILE: cmd/glass-sandbox/main.go
// Rain on glass: a static background image distorted by a slow per-cell
// jitter, with a single-cell rain drop sliding down each column. Simpler
// sibling of the falling-stream effect, kept as a sandbox.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/piotrcurious/matrix-rain/rain"
	"github.com/piotrcurious/matrix-rain/render"
)

const (
	columns = 80
	rows    = 24

	framePeriod = 80 * time.Millisecond

	// dropRestart is the chance out of 256 that a drop that left the bottom
	// reappears at the top on a given tick
	dropRestart = 24
)

var backdrop = strings.Split(strings.Trim(`
      .                                                     .
                 .          *                .
        ________________________________________________
       |  .   '       GLASS  TERMINAL  DEMO        .     |
       |________________________________________________|
          .         '                  .          '
     '          .         .     *              .
`, "\n"), "\n")

type glassDrop struct {
	row int
	rng rain.Rand32
}

// backdropAt returns the background character under (x, y) displaced by a
// slow positional jitter, faking refraction through wet glass
func backdropAt(x, y int, phase uint32) byte {
	h := rain.Mix32(uint32(x)*0x9e3779b9 ^ uint32(y)*0x85ebca6b ^ phase)
	jx := int(h%3) - 1
	jy := int((h>>8)%3) - 1
	bx, by := x+jx, y+jy
	if by < 0 || by >= len(backdrop) {
		return ' '
	}
	line := backdrop[by]
	if bx < 0 || bx >= len(line) {
		return ' '
	}
	return line[bx]
}

func resolve(f *render.Frame, drops []glassDrop, phase uint32) {
	width, height := f.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := backdropAt(x, y, phase)
			lvl := render.LevelBlank
			if ch != ' ' {
				lvl = render.LevelLow
			}
			f.Set(x, y, render.Cell{Glyph: ch, Level: lvl})
		}
	}
	for col := range drops {
		d := &drops[col]
		if d.row >= 0 && d.row < height {
			f.Set(col, d.row, render.Cell{Glyph: '|', Level: render.LevelHead})
		}
	}
}

func main() {
	seedrng := rand.New(rand.NewSource(time.Now().UnixNano()))

	drops := make([]glassDrop, columns)
	for col := range drops {
		drops[col] = glassDrop{
			row: -seedrng.Intn(rows * 4),
			rng: rain.NewRand32(uint32(seedrng.Int63())),
		}
	}

	frame := render.NewFrame(columns, rows)
	pal := render.New256Palette("glass", 24, 30, 37, 45)
	emitter := render.NewEmitter(os.Stdout, pal)
	if err := emitter.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer emitter.Restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	var tick uint32
	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
			tick++
			// Jitter phase moves an order of magnitude slower than the rain
			phase := tick / 12

			for col := range drops {
				d := &drops[col]
				if d.row >= rows {
					if int(d.rng.Byte()) < dropRestart {
						d.row = 0
					}
					continue
				}
				// Uneven cadence per column keeps the sheet from marching
				if d.rng.Intn(3) > 0 {
					d.row++
				}
			}

			resolve(frame, drops, phase)
			if err := emitter.WriteFrame(frame); err != nil {
				fmt.Fprintf(os.Stderr, "write frame: %v\n", err)
				return
			}
		}
	}
}
