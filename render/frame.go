package render

import "github.com/piotrcurious/matrix-rain/rain"

// Level is a discrete display brightness. Blank through Head map the stored
// trail decay; Flash is reserved for fast-drop cells and boosted heads.
type Level uint8

const (
	LevelBlank Level = iota
	LevelDim
	LevelLow
	LevelMid
	LevelHead
	LevelFlash

	LevelCount
)

// Cell is one resolved screen position
type Cell struct {
	Glyph byte
	Level Level
}

// Frame holds per-cell render state derived from the world each tick. It is
// scratch space, reused frame to frame, never persisted.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

func NewFrame(width, height int) *Frame {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range f.cells {
		f.cells[i] = Cell{Glyph: ' ', Level: LevelBlank}
	}
	return f
}

func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// At returns the resolved cell at (col, row)
func (f *Frame) At(col, row int) Cell {
	return f.cells[row*f.width+col]
}

// Set writes a cell, ignoring out-of-bounds positions
func (f *Frame) Set(col, row int, c Cell) {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return
	}
	f.cells[row*f.width+col] = c
}

// Resolve rebuilds the frame from the world. Priority per cell: fast drop
// (with a fainter cell immediately behind it), then crawling drop trail,
// then blank. Painting in that order back to front keeps the rule without a
// per-cell search.
func (f *Frame) Resolve(w *rain.World) {
	for i := range f.cells {
		f.cells[i] = Cell{Glyph: ' ', Level: LevelBlank}
	}

	p := w.Params()

	drops := w.Drops()
	for i := range drops {
		d := &drops[i]
		if !d.Active() {
			continue
		}
		f.drawDrop(p, d)
	}

	fast := w.FastDrops()
	for i := range fast {
		fd := &fast[i]
		if !fd.Active() {
			continue
		}
		f.drawFastDrop(p, fd)
	}
}

// drawDrop paints the trail with head-relative distance 0 at the head,
// increasing upward toward the trailing edge
func (f *Frame) drawDrop(p *rain.Params, d *rain.Drop) {
	for dist := 0; dist < d.Trail; dist++ {
		row := d.Head - dist
		if row < 0 || row >= f.height {
			continue
		}
		lvl := slotLevel(d.LevelAt(dist))
		if dist == 0 && d.Boosted() {
			lvl = LevelFlash
		}
		f.Set(d.Col, row, Cell{
			Glyph: p.Glyph(d.Seed(), row),
			Level: lvl,
		})
	}
}

// drawFastDrop paints the bullet cell at full flash with a fainter cell in
// the row it just left
func (f *Frame) drawFastDrop(p *rain.Params, fd *rain.FastDrop) {
	f.Set(fd.Col, fd.Row, Cell{
		Glyph: p.Glyph(fd.Seed(), fd.Row),
		Level: LevelFlash,
	})
	f.Set(fd.Col, fd.Row-1, Cell{
		Glyph: p.Glyph(fd.Seed(), fd.Row-1),
		Level: LevelHead,
	})
}

// slotLevel maps a stored 2-bit trail brightness onto the display scale,
// leaving LevelBlank for empty cells
func slotLevel(slot int) Level {
	return LevelDim + Level(slot)
}
