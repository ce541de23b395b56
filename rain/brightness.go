package rain

// Per-slot trail brightness, packed 2 bits per slot. The packing mirrors the
// original hardware-constrained layout; it also keeps Drop copyable without
// a heap-allocated slice per drop.

// Slot brightness range. 0 is the tail floor, 3 the head maximum.
const (
	SlotFloor = 0
	SlotMax   = 3
)

// MaxTrailSlots is the hard capacity of the packed store
const MaxTrailSlots = 32

const slotMask = 0b11

// TrailLevels packs one 2-bit brightness level per trail slot, slot 0 at the
// head. Capacity is MaxTrailSlots; TrailMax must stay within it.
type TrailLevels uint64

// Set stores level for slot. Out-of-range levels are masked to 2 bits,
// out-of-range slots are ignored.
func (t *TrailLevels) Set(slot, level int) {
	if slot < 0 || slot >= MaxTrailSlots {
		return
	}
	shift := uint(slot) * 2
	*t = *t&^(TrailLevels(slotMask)<<shift) | TrailLevels(level&slotMask)<<shift
}

// Get returns the stored level for slot, SlotFloor for out-of-range slots
func (t TrailLevels) Get(slot int) int {
	if slot < 0 || slot >= MaxTrailSlots {
		return SlotFloor
	}
	return int(t>>(uint(slot)*2)) & slotMask
}
