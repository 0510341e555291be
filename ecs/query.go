package ecs

import (
	"iter"
)

// Query wraps a View with a per-run snapshot.
// The Scheduler calls Execute before each run of the owning system; iteration then
// walks the captured ids and re-validates each one, so entities destroyed during
// the system are skipped.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	cachedIds  []EntityId
	cacheValid bool
}

// NewQuery creates a new Query for the given storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	return &Query[T]{
		view:    NewView[T](storage),
		storage: storage,
	}
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

// Execute captures the entities matching the query.
// Called automatically by the Scheduler before the owning system runs.
func (q *Query[T]) Execute() {
	q.cachedIds = q.view.snapshot(q.cachedIds[:0])
	q.cacheValid = true
}

// All returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) All() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.All() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		var result T
		for _, id := range q.cachedIds {
			if !q.view.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over component data only.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for _, item := range q.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Get returns the view struct for a single entity, or nil.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}

// Count returns the number of entities currently matching.
func (q *Query[T]) Count() int {
	return q.view.Count()
}
