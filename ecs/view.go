package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
// Fields of type EntityId receive the id of the matched entity
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	idField     []bool
	fieldOffset []uintptr
	required    int
}

// NewView creates a new view for the given struct type
// The struct T should have embedded or named fields that are pointers to component types
// Embedded fields are always required
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			v.types = append(v.types, nil)
			v.optional = append(v.optional, false)
			v.idField = append(v.idField, true)
			v.fieldOffset = append(v.fieldOffset, field.Offset)
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or ecs.EntityId")
		}

		componentType := fieldType.Elem()
		if storage.registry.getFactory(componentType) == nil {
			panic("component type " + componentType.String() + " not registered")
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		if !isOptional {
			v.required++
		}

		v.types = append(v.types, componentType)
		v.optional = append(v.optional, isOptional)
		v.idField = append(v.idField, false)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	if v.required == 0 {
		panic("View must have at least one required component")
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is gone or missing any required components
// Optional components are set to nil if not present
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.entities.isAlive(id) {
		return false
	}

	// Use unsafe.Pointer to directly access the struct's memory
	// This avoids reflection overhead in the hot path
	structPtr := unsafe.Pointer(ptr)

	for i, componentType := range v.types {
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])

		if v.idField[i] {
			*(*EntityId)(fieldPtr) = id
			continue
		}

		var component any
		if cs := v.storage.storages[componentType]; cs != nil {
			component = cs.Get(id)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Component found, point the field at it
		// We need to extract the pointer from the interface{}
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// snapshot appends the candidate ids for this view: the owners of the smallest
// required component storage
func (v *View[T]) snapshot(dst []EntityId) []EntityId {
	var smallest iComponentStorage
	for i, componentType := range v.types {
		if v.idField[i] || v.optional[i] {
			continue
		}
		cs := v.storage.storages[componentType]
		if cs == nil || cs.Len() == 0 {
			return dst
		}
		if smallest == nil || cs.Len() < smallest.Len() {
			smallest = cs
		}
	}
	return smallest.AppendEntities(dst)
}

// All returns an iterator over (EntityId, T) pairs for every entity that has the
// required components. The candidate set is captured when iteration starts:
// entities destroyed during iteration are skipped and entities created during
// iteration are not visited.
func (v *View[T]) All() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		ids := v.snapshot(nil)

		var result T
		for _, id := range ids {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over just the view structs
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of entities currently matching the view
func (v *View[T]) Count() int {
	count := 0
	for range v.All() {
		count++
	}
	return count
}

// Spawn creates a new entity with components extracted from the view struct
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i, componentType := range v.types {
		if v.idField[i] {
			continue
		}

		componentPtr := *(*unsafe.Pointer)(unsafe.Add(structPtr, v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		component := reflect.NewAt(componentType, componentPtr).Elem().Interface()
		components = append(components, component)
	}

	return v.storage.Spawn(components...)
}
