package rain

// World owns every piece of simulation state: the fixed drop and fast-drop
// tables and the column occupancy flags. All tables are sized at construction
// and never reallocated; a single goroutine drives it.
type World struct {
	p Params

	drops    []Drop
	fast     []FastDrop
	occupied []bool

	rng Rand32 // spawn decisions
}

// NewWorld builds a world with all drops inactive and all columns free.
// Out-of-range params are clamped, never rejected.
func NewWorld(p Params, seed uint32) *World {
	p.clamp()
	w := &World{
		p:        p,
		drops:    make([]Drop, p.MaxDrops),
		fast:     make([]FastDrop, p.MaxFastDrops),
		occupied: make([]bool, p.Columns),
		rng:      NewRand32(seed),
	}
	for i := range w.drops {
		w.drops[i].Head = HeadInactive
	}
	return w
}

func (w *World) Params() *Params {
	return &w.p
}

// Drops returns the live drop table. Read-only for callers.
func (w *World) Drops() []Drop {
	return w.drops
}

// FastDrops returns the live fast-drop table. Read-only for callers.
func (w *World) FastDrops() []FastDrop {
	return w.fast
}

// Occupied reports whether a crawling drop owns column col
func (w *World) Occupied(col int) bool {
	return col >= 0 && col < len(w.occupied) && w.occupied[col]
}

// Step runs one simulation tick: advance crawling drops, advance bullets and
// resolve impacts, then roll the spawn chances. Spawning after the advance
// keeps a fresh drop at row 0 for the frame that follows.
func (w *World) Step() {
	w.advanceDrops()
	w.advanceFastDrops()
	w.spawnDrop()
	w.spawnFastDrop()
}

func (w *World) advanceDrops() {
	for i := range w.drops {
		d := &w.drops[i]
		if d.advance(w.p.Rows) {
			w.occupied[d.Col] = false
		}
	}
}

func (w *World) advanceFastDrops() {
	for i := range w.fast {
		f := &w.fast[i]
		if !f.advance(w.p.Rows) {
			continue
		}
		d := w.dropInColumn(f.Col)
		if d == nil {
			continue
		}
		// Impact: the bullet caught up with the crawling head
		if f.Row >= d.Head {
			d.Boost = w.p.BoostFrames
			d.levels.Set(0, SlotMax)
			f.deactivate()
		}
	}
}

// spawnDrop rolls one chance byte per tick; under the threshold it claims a
// free drop slot and a free column found by scanning from a random start.
// No slot or no column is a silent no-op.
func (w *World) spawnDrop() {
	if int(w.rng.Byte()) >= w.p.DropSpawnChance {
		return
	}
	slot := w.freeDropSlot()
	if slot < 0 {
		return
	}
	col := w.findColumn(func(c int) bool { return !w.occupied[c] })
	if col < 0 {
		return
	}
	trail := w.rng.IntRange(w.p.TrailMin, w.p.TrailMax)
	speed := w.rng.IntRange(w.p.SpeedMin, w.p.SpeedMax)
	w.drops[slot].activate(col, trail, speed, w.rng.Next())
	w.occupied[col] = true
}

// spawnFastDrop is the analogous roll for bullets; it additionally requires
// an occupied column without a bullet already in flight
func (w *World) spawnFastDrop() {
	if int(w.rng.Byte()) >= w.p.FastDropSpawnChance {
		return
	}
	slot := -1
	for i := range w.fast {
		if !w.fast[i].active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}
	col := w.findColumn(func(c int) bool {
		return w.occupied[c] && !w.fastInColumn(c)
	})
	if col < 0 {
		return
	}
	w.fast[slot].activate(col, w.rng.Next())
}

func (w *World) freeDropSlot() int {
	for i := range w.drops {
		if !w.drops[i].Active() {
			return i
		}
	}
	return -1
}

// findColumn scans every column starting from a random offset and returns
// the first one the predicate accepts, or -1
func (w *World) findColumn(ok func(col int) bool) int {
	start := w.rng.Intn(w.p.Columns)
	for i := 0; i < w.p.Columns; i++ {
		col := (start + i) % w.p.Columns
		if ok(col) {
			return col
		}
	}
	return -1
}

// dropInColumn returns the active crawling drop owning col, or nil
func (w *World) dropInColumn(col int) *Drop {
	if !w.Occupied(col) {
		return nil
	}
	for i := range w.drops {
		if w.drops[i].Active() && w.drops[i].Col == col {
			return &w.drops[i]
		}
	}
	return nil
}

func (w *World) fastInColumn(col int) bool {
	for i := range w.fast {
		if w.fast[i].active && w.fast[i].Col == col {
			return true
		}
	}
	return false
}
