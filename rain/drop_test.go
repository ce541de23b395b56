package rain

import "testing"

func TestDecayLevelsShape(t *testing.T) {
	for trail := 1; trail <= MaxTrailSlots; trail++ {
		var d Drop
		d.activate(0, trail, 1, 1)

		if d.LevelAt(0) != SlotMax {
			t.Errorf("trail %d: head slot %d, want %d", trail, d.LevelAt(0), SlotMax)
		}
		if trail > 1 && d.LevelAt(trail-1) != SlotFloor {
			t.Errorf("trail %d: tail slot %d, want %d", trail, d.LevelAt(trail-1), SlotFloor)
		}
		// Strict decay: never brighter further from the head
		for i := 1; i < trail; i++ {
			if d.LevelAt(i) > d.LevelAt(i-1) {
				t.Errorf("trail %d: slot %d brighter than slot %d", trail, i, i-1)
			}
		}
	}
}

func TestLevelAtOutsideTrail(t *testing.T) {
	var d Drop
	d.activate(0, 8, 1, 1)
	if d.LevelAt(-1) != SlotFloor || d.LevelAt(8) != SlotFloor {
		t.Error("distances outside [0, trail) must be the floor")
	}
}

func TestAdvanceCadence(t *testing.T) {
	var d Drop
	d.activate(0, 4, 3, 1)

	rows := 100
	for tick := 1; tick <= 9; tick++ {
		d.advance(rows)
		want := tick / 3
		if d.Head != want {
			t.Fatalf("tick %d: head %d, want %d", tick, d.Head, want)
		}
	}
}

func TestAdvanceHeadMonotonic(t *testing.T) {
	var d Drop
	d.activate(0, 6, 2, 42)
	rows := 24
	prev := d.Head
	for tick := 0; tick < 200 && d.Active(); tick++ {
		d.advance(rows)
		if d.Active() && d.Head < prev {
			t.Fatalf("head moved up: %d -> %d", prev, d.Head)
		}
		if d.Active() {
			prev = d.Head
		}
	}
	if d.Active() {
		t.Error("drop never deactivated")
	}
}

func TestAdvanceDeactivatesPastBottom(t *testing.T) {
	rows, trail := 24, 6
	var d Drop
	d.activate(0, trail, 1, 9)

	deadline := rows + trail
	freed := false
	for tick := 1; tick <= deadline; tick++ {
		if d.advance(rows) {
			freed = true
			break
		}
	}
	if !freed {
		t.Fatalf("drop still active after %d ticks", deadline)
	}
	if d.Active() {
		t.Error("freed drop still reports active")
	}
	if d.Head != HeadInactive {
		t.Errorf("freed drop head %d, want sentinel", d.Head)
	}
}

func TestBoostDecays(t *testing.T) {
	var d Drop
	d.activate(0, 4, 4, 1)
	d.Boost = 3
	for i := 2; i >= 0; i-- {
		d.advance(100)
		if d.Boost != i {
			t.Fatalf("boost %d, want %d", d.Boost, i)
		}
	}
	if d.Boosted() {
		t.Error("boost should have expired")
	}
}

func TestGlyphsRollOnAdvance(t *testing.T) {
	var d Drop
	d.activate(0, 4, 1, 77)
	before := d.Seed()
	d.advance(100)
	if d.Seed() == before {
		t.Error("RNG state did not step on advance")
	}
}
