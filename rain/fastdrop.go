package rain

// FastDrop is the single-cell bullet overlay. It falls exactly one row per
// tick through an occupied column and dies either past the bottom or on
// reaching the crawling drop's head, boosting it.
type FastDrop struct {
	Col    int
	Row    int
	active bool

	rng Rand32
}

func (f *FastDrop) Active() bool {
	return f.active
}

// Seed exposes the bullet's RNG state for glyph derivation
func (f *FastDrop) Seed() uint32 {
	return f.rng.State()
}

func (f *FastDrop) activate(col int, seed uint32) {
	f.Col = col
	f.Row = 0
	f.active = true
	f.rng = NewRand32(seed)
}

func (f *FastDrop) deactivate() {
	f.active = false
}

// advance moves the bullet one row and steps its glyph state. Returns true
// while it remains on screen; impact handling is the world's job since it
// needs the column's crawling drop.
func (f *FastDrop) advance(rows int) bool {
	if !f.active {
		return false
	}
	f.Row++
	f.rng.Next()
	if f.Row >= rows {
		f.deactivate()
		return false
	}
	return true
}
