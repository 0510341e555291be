package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	r.factories[t] = func() iComponentStorage {
		return newGenericComponentStorage[T]()
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of a specific type `T` in fixed
// blocks. Blocks are allocated individually so a component pointer stays valid
// while other components of the same type are added. The sparse index maps an
// entity slot index to the storage slot holding its component.
type genericComponentStorage[T any] struct {
	typ       reflect.Type
	blocks    []*[genericBlockSize]T
	owners    []EntityId
	sparse    *intmap.Map[uint32, int]
	freeSlots []int
	pending   []int
	count     int
}

func newGenericComponentStorage[T any]() *genericComponentStorage[T] {
	return &genericComponentStorage[T]{
		typ:    reflect.TypeFor[T](),
		sparse: intmap.New[uint32, int](genericBlockSize),
	}
}

func (cs *genericComponentStorage[T]) Type() reflect.Type {
	return cs.typ
}

func (cs *genericComponentStorage[T]) at(slot int) *T {
	return &cs.blocks[slot/genericBlockSize][slot%genericBlockSize]
}

// slotOf returns the storage slot for the entity or -1.
func (cs *genericComponentStorage[T]) slotOf(id EntityId) int {
	slot, ok := cs.sparse.Get(id.Index())
	if !ok || cs.owners[slot] != id {
		return -1
	}
	return slot
}

// set attaches or overwrites the component for the entity.
func (cs *genericComponentStorage[T]) set(id EntityId, value T) *T {
	if slot := cs.slotOf(id); slot >= 0 {
		ptr := cs.at(slot)
		*ptr = value
		return ptr
	}

	var slot int
	if n := len(cs.freeSlots); n > 0 {
		slot = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		slot = len(cs.owners)
		cs.owners = append(cs.owners, 0)
		if slot/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		}
	}

	cs.owners[slot] = id
	cs.sparse.Put(id.Index(), slot)
	cs.count++

	ptr := cs.at(slot)
	*ptr = value
	return ptr
}

func (cs *genericComponentStorage[T]) get(id EntityId) *T {
	slot := cs.slotOf(id)
	if slot < 0 {
		return nil
	}
	return cs.at(slot)
}

// Set converts item to T (or *T) and attaches it.
func (cs *genericComponentStorage[T]) Set(id EntityId, item any) any {
	switch v := item.(type) {
	case T:
		return cs.set(id, v)
	case *T:
		return cs.set(id, *v)
	default:
		panic("component " + reflect.TypeOf(item).String() + " does not match storage " + cs.typ.String())
	}
}

// Get returns a pointer to the component or nil.
func (cs *genericComponentStorage[T]) Get(id EntityId) any {
	if ptr := cs.get(id); ptr != nil {
		return ptr
	}
	return nil
}

func (cs *genericComponentStorage[T]) Has(id EntityId) bool {
	return cs.slotOf(id) >= 0
}

// Delete removes the component. The slot is zeroed but not reused until Release.
func (cs *genericComponentStorage[T]) Delete(id EntityId) bool {
	slot := cs.slotOf(id)
	if slot < 0 {
		return false
	}

	var zero T
	*cs.at(slot) = zero
	cs.owners[slot] = 0
	cs.sparse.Del(id.Index())
	cs.pending = append(cs.pending, slot)
	cs.count--
	return true
}

func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

// AppendEntities appends the owners of all filled slots in slot order.
func (cs *genericComponentStorage[T]) AppendEntities(dst []EntityId) []EntityId {
	for _, owner := range cs.owners {
		if owner != 0 {
			dst = append(dst, owner)
		}
	}
	return dst
}

// Release makes slots freed since the last call available for reuse.
func (cs *genericComponentStorage[T]) Release() {
	cs.freeSlots = append(cs.freeSlots, cs.pending...)
	cs.pending = cs.pending[:0]
}
