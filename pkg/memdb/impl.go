/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package memdb

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/voedger/docmodel/pkg/schema"
)

// In-memory document store.
//
// Containers are kept by identifier in insertion order. Returned containers
// are the stored ones, not copies: writes through them are visible to
// subsequent reads.
//
// @ConcurrentAccess for the store itself. Writes into a container are not
// guarded and must be serialized by the caller.
type MemDb struct {
	mu    sync.RWMutex
	docs  map[schema.DocRef]schema.Container
	order []schema.DocRef
}

// Inserts or replaces containers keyed by `_id`. Replaced container keeps its
// position in insertion order.
func (db *MemDb) Load(containers []schema.Container) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, c := range containers {
		if err := db.put(c); err != nil {
			return err
		}
	}
	return nil
}

// Inserts or replaces single container
func (db *MemDb) Put(c schema.Container) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.put(c)
}

func (db *MemDb) put(c schema.Container) error {
	id := c.ID()
	if id == "" {
		return schema.EnrichError(schema.ErrSchema, "container without «%s»: %v", schema.Field_ID, c)
	}
	if _, exists := db.docs[id]; !exists {
		db.order = append(db.order, id)
	}
	db.docs[id] = c
	return nil
}

// Returns stored container. Returns ErrNotFound if absent
func (db *MemDb) Get(id schema.DocRef) (schema.Container, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	c, ok := db.docs[id]
	if !ok {
		return nil, schema.ErrDocNotFound(id)
	}
	return c, nil
}

// Returns containers of exactly specified class which match query, in
// insertion order. Subclass containers are not returned.
func (db *MemDb) FindAll(class schema.ClassRef, query schema.Query) []schema.Container {
	db.mu.RLock()
	defer db.mu.RUnlock()

	res := make([]schema.Container, 0)
	for _, id := range db.order {
		c := db.docs[id]
		if c.Class() == class && query.Match(c) {
			res = append(res, c)
		}
	}
	return res
}

// Writes attributes into stored container. Returns ErrNotFound if absent
func (db *MemDb) Update(id schema.DocRef, attributes map[string]any) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.docs[id]
	if !ok {
		return schema.ErrDocNotFound(id)
	}
	for k, v := range attributes {
		c[k] = v
	}
	return nil
}

// Removes container. Returns ErrNotFound if absent
func (db *MemDb) Remove(id schema.DocRef) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.docs[id]; !ok {
		return schema.ErrDocNotFound(id)
	}
	delete(db.docs, id)
	if i := slices.Index(db.order, id); i >= 0 {
		db.order = slices.Delete(db.order, i, i+1)
	}
	return nil
}

// Returns all containers in insertion order
func (db *MemDb) All() []schema.Container {
	db.mu.RLock()
	defer db.mu.RUnlock()

	res := make([]schema.Container, 0, len(db.order))
	for _, id := range db.order {
		res = append(res, db.docs[id])
	}
	return res
}

// Returns number of stored containers
func (db *MemDb) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.docs)
}
