package ecs

// EntityId encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero value is never issued and can be used as "no entity".
type EntityId uint64

// NewEntityId creates an EntityId from a generation and slot index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// entityTable hands out entity ids. A destroyed slot gets its generation bumped
// immediately, but the slot index only becomes reusable after release() so an id
// destroyed during a frame cannot be re-issued within the same frame.
type entityTable struct {
	generations []uint32
	alive       []bool
	free        []uint32
	pending     []uint32
	count       int
}

func (t *entityTable) create() EntityId {
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.generations))
		t.generations = append(t.generations, 1)
		t.alive = append(t.alive, false)
	}

	t.alive[index] = true
	t.count++
	return NewEntityId(t.generations[index], index)
}

func (t *entityTable) isAlive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(t.generations) {
		return false
	}
	return t.alive[index] && t.generations[index] == id.Generation()
}

// destroy returns false when the id was already dead
func (t *entityTable) destroy(id EntityId) bool {
	if !t.isAlive(id) {
		return false
	}

	index := id.Index()
	t.alive[index] = false
	t.generations[index]++
	if t.generations[index] == 0 {
		t.generations[index] = 1
	}
	t.pending = append(t.pending, index)
	t.count--
	return true
}

func (t *entityTable) release() {
	t.free = append(t.free, t.pending...)
	t.pending = t.pending[:0]
}
