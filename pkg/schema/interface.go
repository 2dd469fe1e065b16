/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

// Registry of class descriptors.
//
// Classes form single-inheritance chains via ClassDescriptor.Extends. Every
// chain must be acyclic and terminate at a root class with no Extends.
//
// @ConcurrentAccess
type IRegistry interface {
	// Adds or replaces class descriptor.
	//
	// Returns ErrSchema if the descriptor closes a cycle through already
	// registered classes. Parent class is not required to be registered yet.
	Register(ClassDescriptor) error

	// Returns ErrUnknownClass if class is not registered.
	//
	// Returned descriptor attributes must not be modified.
	Resolve(ClassRef) (ClassDescriptor, error)

	// Returns parent class. ok is false for root classes.
	ParentOf(ClassRef) (parent ClassRef, ok bool, err error)

	// Returns class inheritance chain, the class itself first, the root last.
	//
	// Returns ErrUnknownClass if class or any ancestor is not registered.
	Ancestors(ClassRef) ([]ClassRef, error)

	// Returns true if ancestor is equal to class or is found in the class chain.
	IsAncestor(ancestor, class ClassRef) (bool, error)

	// Returns the nearest domain declared along the class chain.
	// Empty string if none is declared.
	DomainOf(ClassRef) (string, error)

	// Returns registered classes in registration order
	Classes() []ClassRef
}
