/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

// Class identifier, e.g. "class:core.Doc"
type ClassRef string

// Document identifier
type DocRef string

// Opaque identifier of an externally supplied method table
type NativeHandle string

// Raw stored record of a document or of an embedded object.
//
// Reserved keys are `_class`, `_id` and `_mixins`. All other keys are raw
// (hibernated) field values.
type Container map[string]any

// Reference to a type descriptor as it is declared in a class attribute bag.
//
// Type names the type class (Class_Type, Class_ArrayOf, ... or any class
// which extends one of them). Of is the element type for ArrayOf and BagOf,
// To is the target class for InstanceOf and RefTo.
type Attribute struct {
	Type    ClassRef
	Default any
	Of      *Attribute
	To      ClassRef
}

// Schema definition of a class
type ClassDescriptor struct {
	ID         ClassRef
	Attributes map[string]Attribute
	Extends    ClassRef
	Native     NativeHandle

	// Storage domain of documents of the class. Empty means inherited
	Domain string
}

// Structural predicate over stored field values.
//
// A plain value matches by equality. A value of type Cond, or an object with
// a single operator key like `{"$gt": 3}`, matches by its operator.
type Query map[string]any

// Comparison operator of a Cond
type Op string

const (
	Op_Eq  Op = "$eq"
	Op_Ne  Op = "$ne"
	Op_Lt  Op = "$lt"
	Op_Lte Op = "$lte"
	Op_Gt  Op = "$gt"
	Op_Gte Op = "$gte"
	Op_In  Op = "$in"
)

// Operator condition of a Query field
type Cond struct {
	Op    Op
	Value any
}
