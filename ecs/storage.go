package ecs

import (
	"fmt"
	"reflect"
	"sort"
)

// Storage is the main ECS storage interface
type Storage struct {
	entities   entityTable
	storages   map[reflect.Type]iComponentStorage
	order      []iComponentStorage
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		storages:   make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// storageOf returns the storage for a component type, creating it on first use.
// Panics when the type was never registered.
func (s *Storage) storageOf(compType reflect.Type) iComponentStorage {
	if cs, ok := s.storages[compType]; ok {
		return cs
	}

	factory := s.registry.getFactory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}

	cs := factory()
	s.storages[compType] = cs
	s.order = append(s.order, cs)
	return cs
}

// lookup returns the storage for a component type without creating it
func (s *Storage) lookup(compType reflect.Type) iComponentStorage {
	cs, ok := s.storages[compType]
	if !ok {
		if s.registry.getFactory(compType) == nil {
			panic("component type " + compType.String() + " not registered")
		}
		return nil
	}
	return cs
}

func (s *Storage) mustBeAlive(id EntityId) {
	if !s.entities.isAlive(id) {
		panic(fmt.Sprintf("invalid entity %d (generation %d, index %d)", id, id.Generation(), id.Index()))
	}
}

// Create returns a fresh entity without components
func (s *Storage) Create() EntityId {
	return s.entities.create()
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	id := s.entities.create()
	for _, comp := range components {
		s.AddComponent(id, comp)
	}
	return id
}

// Alive reports whether the id refers to a live entity
func (s *Storage) Alive(id EntityId) bool {
	return s.entities.isAlive(id)
}

// Delete destroys the entity and removes all of its components.
// Deleting an entity that is already gone is a no-op.
func (s *Storage) Delete(id EntityId) {
	if !s.entities.isAlive(id) {
		return
	}

	for _, cs := range s.order {
		cs.Delete(id)
	}
	s.entities.destroy(id)
}

// AddComponent attaches a component to the entity, overwriting an existing one of the same type.
// Returns a pointer to the stored component.
func (s *Storage) AddComponent(id EntityId, component any) any {
	s.mustBeAlive(id)

	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("cannot add nil component")
	}
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	return s.storageOf(compType).Set(id, component)
}

// RemoveComponent detaches a component. Removing an absent component is a no-op.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	s.mustBeAlive(id)

	if cs := s.lookup(compType); cs != nil {
		cs.Delete(id)
	}
}

// GetComponent returns the component for the given entity ID and component type,
// or nil when the entity is gone or does not hold it
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.entities.isAlive(id) {
		return nil
	}

	cs := s.lookup(compType)
	if cs == nil {
		return nil
	}
	return cs.Get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.entities.isAlive(id) {
		return false
	}

	cs := s.lookup(compType)
	return cs != nil && cs.Has(id)
}

// ComponentTypes returns the component types held by the entity, sorted by name
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.entities.isAlive(id) {
		return nil
	}

	var types []reflect.Type
	for _, cs := range s.order {
		if cs.Has(id) {
			types = append(types, cs.Type())
		}
	}
	sort.Sort(byTypeName(types))
	return types
}

// Entities returns every live entity id
func (s *Storage) Entities() []EntityId {
	ids := make([]EntityId, 0, s.entities.count)
	for index, alive := range s.entities.alive {
		if alive {
			ids = append(ids, NewEntityId(s.entities.generations[index], uint32(index)))
		}
	}
	return ids
}

// EntityCount returns the number of live entities
func (s *Storage) EntityCount() int {
	return s.entities.count
}

// Maintain recycles entity and component slots freed since the previous call.
// The Scheduler calls it at the end of every frame.
func (s *Storage) Maintain() {
	s.entities.release()
	for _, cs := range s.order {
		cs.Release()
	}
}

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the component, panicking when it is missing
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		panic("missing component " + reflect.TypeFor[T]().String())
	}
	return comp.(*T)
}

func typedStorage[T any](s *Storage) *genericComponentStorage[T] {
	return s.storageOf(reflect.TypeFor[T]()).(*genericComponentStorage[T])
}

// Emplace attaches value to the entity, overwriting any existing T, and returns the stored pointer
func Emplace[T any](s *Storage, id EntityId, value T) *T {
	s.mustBeAlive(id)
	return typedStorage[T](s).set(id, value)
}

// Remove detaches T from the entity; no-op when absent
func Remove[T any](s *Storage, id EntityId) {
	s.mustBeAlive(id)
	typedStorage[T](s).Delete(id)
}

// Get returns the entity's T and panics if the entity is gone or lacks it
func Get[T any](s *Storage, id EntityId) *T {
	s.mustBeAlive(id)
	ptr := typedStorage[T](s).get(id)
	if ptr == nil {
		panic(fmt.Sprintf("missing component %s on entity %d", reflect.TypeFor[T](), id))
	}
	return ptr
}

// TryGet returns the entity's T if present
func TryGet[T any](s *Storage, id EntityId) (*T, bool) {
	if !s.entities.isAlive(id) {
		return nil, false
	}
	ptr := typedStorage[T](s).get(id)
	return ptr, ptr != nil
}

// Has reports whether the entity is alive and holds T
func Has[T any](s *Storage, id EntityId) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return typedStorage[T](s).Has(id)
}

// GetOrCreate returns the entity's T, attaching def first when absent
func GetOrCreate[T any](s *Storage, id EntityId, def T) *T {
	s.mustBeAlive(id)
	cs := typedStorage[T](s)
	if ptr := cs.get(id); ptr != nil {
		return ptr
	}
	return cs.set(id, def)
}

// Count returns the number of entities holding T
func Count[T any](s *Storage) int {
	cs := s.lookup(reflect.TypeFor[T]())
	if cs == nil {
		return 0
	}
	return cs.Len()
}
