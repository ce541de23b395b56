package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Palette binds each display level to a ready-to-emit SGR sequence and an
// xterm-256 index. Sequences are prebuilt so the frame emitter only copies
// bytes.
type Palette struct {
	Name string

	sgr [LevelCount][]byte
	idx [LevelCount]uint8
}

// SGR returns the escape sequence selecting the foreground for level l
func (p *Palette) SGR(l Level) []byte {
	return p.sgr[l]
}

// Index256 returns the xterm-256 palette index for level l, for frontends
// that carry colors instead of escape bytes
func (p *Palette) Index256(l Level) uint8 {
	return p.idx[l]
}

// New256Palette builds a palette from four xterm-256 indices covering
// dim/low/mid/head. Blank resets attributes; Flash is full white.
func New256Palette(name string, dim, low, mid, head uint8) *Palette {
	p := &Palette{Name: name}
	p.idx = [LevelCount]uint8{
		LevelBlank: 0,
		LevelDim:   dim,
		LevelLow:   low,
		LevelMid:   mid,
		LevelHead:  head,
		LevelFlash: 231, // cube white
	}
	p.sgr[LevelBlank] = []byte("\x1b[0m")
	for l := LevelDim; l < LevelCount; l++ {
		p.sgr[l] = []byte(fmt.Sprintf("\x1b[38;5;%dm", p.idx[l]))
	}
	return p
}

// RampPalette blends tail to head in Luv space and snaps the four stops onto
// the xterm color cube
func RampPalette(name string, tail, head colorful.Color) *Palette {
	stops := [4]uint8{}
	for i := 0; i < 4; i++ {
		c := tail.BlendLuv(head, float64(i)/3.0).Clamped()
		stops[i] = Cube256(c)
	}
	return New256Palette(name, stops[0], stops[1], stops[2], stops[3])
}

// cubeValues are the 6 channel levels of the xterm 6x6x6 cube (16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// Cube256 maps an RGB color to its nearest xterm color-cube index
func Cube256(c colorful.Color) uint8 {
	r, g, b := c.RGB255()
	return 16 + 36*nearestCube(r) + 6*nearestCube(g) + nearestCube(b)
}

func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for i := 1; i < 6; i++ {
		d := absInt(int(v) - int(cubeValues[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GreenPalette is the classic fixed phosphor look
func GreenPalette() *Palette {
	return New256Palette("green", 22, 28, 40, 46)
}

// Hour-of-day palette table. Four moods across the day; the simulation is
// untouched, only the color table swaps.
var hourPalettes = []struct {
	from int // inclusive hour
	pal  func() *Palette
}{
	{0, func() *Palette { return New256Palette("night", 17, 19, 27, 33) }},
	{6, func() *Palette { return RampPalette("dawn", colorful.Color{R: 0.15, G: 0.05, B: 0.0}, colorful.Color{R: 1.0, G: 0.6, B: 0.2}) }},
	{10, func() *Palette { return GreenPalette() }},
	{18, func() *Palette { return RampPalette("dusk", colorful.Color{R: 0.1, G: 0.0, B: 0.15}, colorful.Color{R: 0.9, G: 0.3, B: 0.7}) }},
	{22, func() *Palette { return New256Palette("night", 17, 19, 27, 33) }},
}

// ByHour returns the palette for an hour of day (0-23)
func ByHour(hour int) *Palette {
	hour = ((hour % 24) + 24) % 24
	sel := hourPalettes[0].pal
	for _, e := range hourPalettes {
		if hour >= e.from {
			sel = e.pal
		}
	}
	return sel()
}
