package ecs

import "reflect"

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Type() reflect.Type
	Set(id EntityId, item any) any
	Delete(id EntityId) bool
	Get(id EntityId) any
	Has(id EntityId) bool
	Len() int
	AppendEntities(dst []EntityId) []EntityId
	Release()
}
