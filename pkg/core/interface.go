/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import "github.com/voedger/docmodel/pkg/schema"

// Value transformer of a class attribute.
//
// Exert transforms stored value into its exposed form on read, Hibernate
// transforms exposed value into its stored form on write.
type ITypeDescriptor interface {
	// owner is the instance which holds the field, key is the field name
	Exert(stored any, owner *Instance, key string) (any, error)

	Hibernate(exposed any) (any, error)
}

// Registry of externally supplied method tables
//
// @ConcurrentAccess
type INativeRegistry interface {
	// Sets method table for handle. Replaces previous one
	Set(schema.NativeHandle, MethodTable)

	// Returns method table for handle
	Get(schema.NativeHandle) (MethodTable, bool)
}
