/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"github.com/voedger/docmodel/pkg/schema"
)

// Native method. self is the instance the method is called on
type Method func(self *Instance, args ...any) (any, error)

// Native method table, method name to implementation
type MethodTable map[string]Method

// Creates type descriptor for an attribute whose type class is (or extends)
// the class the factory is registered for
type TypeFactory func(rt *Runtime, a schema.Attribute) (ITypeDescriptor, error)

// Computed field accessor
type accessor struct {
	typ ITypeDescriptor // nil for system fields
	get func(*Instance) (any, error)
	set func(*Instance, any) error
}

// Per-class accessor table chained to the parent class prototype.
//
// Prototype is built once per class and is never changed after construction.
// All instances of the class share it.
type Prototype struct {
	class     schema.ClassRef // empty for the base prototype
	parent    *Prototype
	fields    []string // own fields, sorted
	accessors map[string]accessor
	methods   MethodTable

	// set for the base prototype only
	session *Runtime
}

// Live typed object bound to a container.
//
// Instance does not copy container data, all field access is delegated to the
// prototype accessors. Instances are not cached: every materialization makes
// a new wrapper over the same container.
type Instance struct {
	class  schema.ClassRef
	proto  *Prototype
	layout schema.Container
}

// Read-only list of mixin classes applied to a document
type MixinList struct {
	items []schema.ClassRef
}

// Runtime option
type Option func(*Runtime)
