/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"github.com/google/uuid"

	"github.com/voedger/docmodel/pkg/memdb"
	"github.com/voedger/docmodel/pkg/objcache"
	"github.com/voedger/docmodel/pkg/schema"
)

// Creates new runtime with core model loaded
func New(opts ...Option) (*Runtime, error) {
	rt := &Runtime{
		registry:   schema.New(),
		db:         memdb.New(),
		natives:    NewNativeRegistry(),
		types:      defaultTypeFactories(),
		prototypes: objcache.NewUnbounded[schema.ClassRef, *Prototype](),
		newID:      func() schema.DocRef { return schema.DocRef(uuid.NewString()) },
	}
	rt.base = newBasePrototype(rt)

	for _, opt := range opts {
		opt(rt)
	}

	if _, ok := rt.natives.Get(schema.Native_ClassDocument); !ok {
		rt.natives.Set(schema.Native_ClassDocument, classDocumentMethods())
	}

	if err := rt.LoadModel(CoreModel()); err != nil {
		return nil, err
	}
	return rt, nil
}

// Creates new empty native handle registry
func NewNativeRegistry() INativeRegistry {
	return &nativeRegistry{}
}

// Uses specified native handle registry
func WithNatives(n INativeRegistry) Option {
	return func(rt *Runtime) { rt.natives = n }
}

// Registers type factory for type class. Attributes typed with the class or
// its descendants use the factory
func WithTypeFactory(class schema.ClassRef, f TypeFactory) Option {
	return func(rt *Runtime) { rt.types[class] = f }
}

// Uses specified document identifier generator for NewInstance
func WithIDGenerator(f func() schema.DocRef) Option {
	return func(rt *Runtime) { rt.newID = f }
}

// Uses specified document store
func WithDb(db *memdb.MemDb) Option {
	return func(rt *Runtime) { rt.db = db }
}
