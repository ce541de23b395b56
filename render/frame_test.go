package render

import (
	"testing"

	"github.com/piotrcurious/matrix-rain/rain"
)

func findActiveDrop(w *rain.World) *rain.Drop {
	drops := w.Drops()
	for i := range drops {
		if drops[i].Active() {
			return &drops[i]
		}
	}
	return nil
}

func TestResolveEmptyWorldAllBlank(t *testing.T) {
	w := quietWorld(12, 6)
	f := NewFrame(12, 6)
	f.Resolve(w)

	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			c := f.At(x, y)
			if c.Level != LevelBlank || c.Glyph != ' ' {
				t.Fatalf("cell (%d,%d) not blank: %+v", x, y, c)
			}
		}
	}
}

func TestResolveDrawsDropHead(t *testing.T) {
	p := rain.Params{
		Columns: 12, Rows: 6,
		MaxDrops: 1, MaxFastDrops: 1,
		TrailMin: 4, TrailMax: 4,
		SpeedMin: 1, SpeedMax: 1,
		DropSpawnChance: 256,
		Glyphs:          "AB",
	}
	w := rain.NewWorld(p, 7)
	w.Step()

	d := findActiveDrop(w)
	if d == nil {
		t.Fatal("no drop after forced spawn")
	}

	f := NewFrame(12, 6)
	f.Resolve(w)

	c := f.At(d.Col, d.Head)
	if c.Level != LevelHead {
		t.Errorf("head cell level %d, want %d", c.Level, LevelHead)
	}
	if c.Glyph != 'A' && c.Glyph != 'B' {
		t.Errorf("head glyph %q not from the configured set", c.Glyph)
	}
}

func TestResolveTrailDecaysUpward(t *testing.T) {
	p := rain.Params{
		Columns: 8, Rows: 12,
		MaxDrops: 1, MaxFastDrops: 1,
		TrailMin: 4, TrailMax: 4,
		SpeedMin: 1, SpeedMax: 1,
		DropSpawnChance: 256,
		Glyphs:          "AB",
	}
	w := rain.NewWorld(p, 3)
	w.Step() // spawn at row 0
	for i := 0; i < 5; i++ {
		w.Step()
	}

	d := findActiveDrop(w)
	if d == nil {
		t.Fatal("drop gone too early")
	}

	f := NewFrame(8, 12)
	f.Resolve(w)

	prev := LevelCount
	for dist := 0; dist < d.Trail; dist++ {
		row := d.Head - dist
		if row < 0 {
			break
		}
		lvl := f.At(d.Col, row).Level
		if lvl >= prev {
			t.Errorf("dist %d: level %d not fainter than %d above the head", dist, lvl, prev)
		}
		prev = lvl
	}
}

func TestResolveBoostedHeadFlashes(t *testing.T) {
	p := rain.Params{
		Columns: 8, Rows: 12,
		MaxDrops: 1, MaxFastDrops: 1,
		TrailMin: 4, TrailMax: 4,
		SpeedMin: 1, SpeedMax: 1,
		DropSpawnChance: 256,
		Glyphs:          "AB",
	}
	w := rain.NewWorld(p, 11)
	w.Step()

	drops := w.Drops()
	var d *rain.Drop
	for i := range drops {
		if drops[i].Active() {
			d = &drops[i]
		}
	}
	if d == nil {
		t.Fatal("no drop after forced spawn")
	}
	d.Boost = 5

	f := NewFrame(8, 12)
	f.Resolve(w)

	if lvl := f.At(d.Col, d.Head).Level; lvl != LevelFlash {
		t.Errorf("boosted head level %d, want %d", lvl, LevelFlash)
	}
}

func TestResolveFastDropOverridesDrop(t *testing.T) {
	p := rain.Params{
		Columns: 8, Rows: 12,
		MaxDrops: 1, MaxFastDrops: 1,
		TrailMin: 4, TrailMax: 4,
		SpeedMin: 4, SpeedMax: 4,
		DropSpawnChance:     256,
		FastDropSpawnChance: 256,
		BoostFrames:         8,
		Glyphs:              "AB",
	}
	w := rain.NewWorld(p, 21)
	w.Step() // spawns the crawling drop, then the bullet into its column

	fast := w.FastDrops()
	var fd *rain.FastDrop
	for i := range fast {
		if fast[i].Active() {
			fd = &fast[i]
		}
	}
	if fd == nil {
		t.Fatal("no fast drop after forced spawn")
	}

	f := NewFrame(8, 12)
	f.Resolve(w)

	if lvl := f.At(fd.Col, fd.Row).Level; lvl != LevelFlash {
		t.Errorf("fast drop cell level %d, want %d", lvl, LevelFlash)
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(-1, 0, Cell{Glyph: 'X', Level: LevelHead})
	f.Set(0, -1, Cell{Glyph: 'X', Level: LevelHead})
	f.Set(4, 0, Cell{Glyph: 'X', Level: LevelHead})
	f.Set(0, 4, Cell{Glyph: 'X', Level: LevelHead})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if f.At(x, y).Glyph == 'X' {
				t.Fatalf("out-of-bounds write landed at (%d,%d)", x, y)
			}
		}
	}
}
