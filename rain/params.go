package rain

import "github.com/piotrcurious/matrix-rain/constant"

// Params is the fixed tuning for a simulation. Built once, never mutated
// while the world runs.
type Params struct {
	Columns int
	Rows    int

	MaxDrops     int
	MaxFastDrops int

	TrailMin int
	TrailMax int

	SpeedMin int
	SpeedMax int

	// Spawn chances out of 256 per tick
	DropSpawnChance     int
	FastDropSpawnChance int

	BoostFrames int

	Glyphs string
}

// DefaultParams returns the compiled-in tuning
func DefaultParams() Params {
	return Params{
		Columns:             constant.Columns,
		Rows:                constant.Rows,
		MaxDrops:            constant.MaxDrops,
		MaxFastDrops:        constant.MaxFastDrops,
		TrailMin:            constant.TrailMin,
		TrailMax:            constant.TrailMax,
		SpeedMin:            constant.SpeedMin,
		SpeedMax:            constant.SpeedMax,
		DropSpawnChance:     constant.DropSpawnChance,
		FastDropSpawnChance: constant.FastDropSpawnChance,
		BoostFrames:         constant.BoostFrames,
		Glyphs:              constant.Glyphs,
	}
}

// clamp forces structural bounds so every later random draw stays in range
// by modulo against valid table sizes
func (p *Params) clamp() {
	if p.Columns < 1 {
		p.Columns = 1
	}
	if p.Rows < 1 {
		p.Rows = 1
	}
	if p.MaxDrops < 1 {
		p.MaxDrops = 1
	}
	if p.MaxDrops > p.Columns {
		p.MaxDrops = p.Columns
	}
	if p.MaxFastDrops < 0 {
		p.MaxFastDrops = 0
	}
	if p.TrailMin < 1 {
		p.TrailMin = 1
	}
	if p.TrailMax > MaxTrailSlots {
		p.TrailMax = MaxTrailSlots
	}
	if p.TrailMax < p.TrailMin {
		p.TrailMax = p.TrailMin
	}
	if p.SpeedMin < 1 {
		p.SpeedMin = 1
	}
	if p.SpeedMax < p.SpeedMin {
		p.SpeedMax = p.SpeedMin
	}
	if p.BoostFrames < 0 {
		p.BoostFrames = 0
	}
	if p.Glyphs == "" {
		p.Glyphs = constant.Glyphs
	}
}

// Glyph derives the printable character for a cell from an RNG state and the
// cell's row. Stepping the state makes every glyph in the trail roll without
// storing one rune per cell.
func (p *Params) Glyph(state uint32, row int) byte {
	h := Mix32(state ^ uint32(row)*0x9e3779b9)
	return p.Glyphs[h%uint32(len(p.Glyphs))]
}
