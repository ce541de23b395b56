package rain

// HeadInactive is the sentinel head row for a drop with no screen presence
const HeadInactive = -1 << 30

// Drop is one crawling character stream: a head cell at full brightness and
// a trail of fading cells in the rows above it. The trail extends upward;
// head-relative distance 0 is the head, increasing toward the trailing edge
// at head-(trail-1).
type Drop struct {
	Col   int
	Head  int // row of the head, HeadInactive when off
	Trail int // rendered slots including the head
	Speed int // ticks per one-row advance
	Age   int // ticks since the last advance
	Boost int // frames of forced head brightness remaining

	rng    Rand32
	levels TrailLevels
}

func (d *Drop) Active() bool {
	return d.Head != HeadInactive
}

// Seed exposes the drop's current RNG state for glyph derivation
func (d *Drop) Seed() uint32 {
	return d.rng.State()
}

// activate starts a fresh fall at the top of column col
func (d *Drop) activate(col, trail, speed int, seed uint32) {
	d.Col = col
	d.Head = 0
	d.Trail = trail
	d.Speed = speed
	d.Age = 0
	d.Boost = 0
	d.rng = NewRand32(seed)
	d.decayLevels()
}

func (d *Drop) deactivate() {
	d.Head = HeadInactive
	d.Boost = 0
}

// advance runs one tick. The head moves one row down only when the age
// counter reaches the drop's speed, giving distinct fall lanes without
// fractional positions. Reports true when the whole trail has scrolled past
// the bottom and the drop deactivated; the caller frees the column.
func (d *Drop) advance(rows int) bool {
	if !d.Active() {
		return false
	}
	if d.Boost > 0 {
		d.Boost--
	}
	d.Age++
	if d.Age < d.Speed {
		return false
	}
	d.Age = 0
	d.Head++
	d.rng.Next() // glyphs roll
	d.decayLevels()
	if d.Head-(d.Trail-1) >= rows {
		d.deactivate()
		return true
	}
	return false
}

// decayLevels rebuilds the per-slot brightness: maximum at the head slot,
// strict decay to the floor at the trailing edge
func (d *Drop) decayLevels() {
	d.levels = 0
	if d.Trail <= 1 {
		d.levels.Set(0, SlotMax)
		return
	}
	for i := 0; i < d.Trail; i++ {
		d.levels.Set(i, SlotMax*(d.Trail-1-i)/(d.Trail-1))
	}
}

// LevelAt returns the stored brightness for head-relative distance dist
// (0 = head). Distances outside [0, Trail) are the floor.
func (d *Drop) LevelAt(dist int) int {
	if dist < 0 || dist >= d.Trail {
		return SlotFloor
	}
	return d.levels.Get(dist)
}

// Boosted reports whether the head is under a fast-drop impact glow
func (d *Drop) Boosted() bool {
	return d.Boost > 0
}
