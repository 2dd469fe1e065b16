/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"sync"
)

// # Implements:
//   - IRegistry
type registry struct {
	mu      sync.RWMutex
	classes map[ClassRef]ClassDescriptor
	order   []ClassRef
}

func newRegistry() *registry {
	return &registry{
		classes: make(map[ClassRef]ClassDescriptor),
	}
}

func (r *registry) Register(d ClassDescriptor) error {
	if d.ID == "" {
		return EnrichError(ErrSchema, "class descriptor without identifier")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAcyclic(d); err != nil {
		return err
	}

	if _, exists := r.classes[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.classes[d.ID] = d
	return nil
}

// Walks extends chain of new descriptor through registered classes
func (r *registry) checkAcyclic(d ClassDescriptor) error {
	visited := map[ClassRef]bool{d.ID: true}
	for p := d.Extends; p != ""; {
		if visited[p] {
			return ErrCyclicClass(d.ID)
		}
		visited[p] = true
		parent, ok := r.classes[p]
		if !ok {
			return nil
		}
		p = parent.Extends
	}
	return nil
}

func (r *registry) Resolve(c ClassRef) (ClassDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolve(c)
}

func (r *registry) resolve(c ClassRef) (ClassDescriptor, error) {
	d, ok := r.classes[c]
	if !ok {
		return ClassDescriptor{}, ErrUnknownClassRef(c)
	}
	return d, nil
}

func (r *registry) ParentOf(c ClassRef) (ClassRef, bool, error) {
	d, err := r.Resolve(c)
	if err != nil {
		return "", false, err
	}
	return d.Extends, d.Extends != "", nil
}

func (r *registry) Ancestors(c ClassRef) ([]ClassRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := make([]ClassRef, 0, 4)
	for p := c; p != ""; {
		d, err := r.resolve(p)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
		if len(chain) > len(r.classes) {
			// notest: cycles are rejected by Register
			return nil, ErrCyclicClass(c)
		}
		p = d.Extends
	}
	return chain, nil
}

func (r *registry) IsAncestor(ancestor, c ClassRef) (bool, error) {
	chain, err := r.Ancestors(c)
	if err != nil {
		return false, err
	}
	for _, a := range chain {
		if a == ancestor {
			return true, nil
		}
	}
	return false, nil
}

func (r *registry) DomainOf(c ClassRef) (string, error) {
	chain, err := r.Ancestors(c)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range chain {
		if d := r.classes[a].Domain; d != "" {
			return d, nil
		}
	}
	return "", nil
}

func (r *registry) Classes() []ClassRef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]ClassRef, len(r.order))
	copy(res, r.order)
	return res
}
