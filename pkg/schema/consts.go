/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

// Prefix of internal (system) fields. Such fields bypass type descriptors
const SystemFieldPrefix = "_"

// Prefix of the container key which holds attributes of an applied mixin
const MixinKeyPrefix = "$"

// System fields of every container
const (
	Field_Class   = "_class"
	Field_ID      = "_id"
	Field_Mixins  = "_mixins"
	Field_Default = "_default"
)

// Fields of class and type containers from the model domain
const (
	Field_Attributes = "attributes"
	Field_Extends    = "extends"
	Field_Native     = "native"
	Field_Domain     = "domain"
	Field_Of         = "of"
	Field_To         = "to"
)

// Domain which holds class and type descriptors themselves
const DomainModel = "model"

// Core classes
const (
	Class_Obj        ClassRef = "class:core.Obj"
	Class_Doc        ClassRef = "class:core.Doc"
	Class_Class      ClassRef = "class:core.Class"
	Class_Mixin      ClassRef = "class:core.Mixin"
	Class_Type       ClassRef = "class:core.Type"
	Class_ArrayOf    ClassRef = "class:core.ArrayOf"
	Class_BagOf      ClassRef = "class:core.BagOf"
	Class_InstanceOf ClassRef = "class:core.InstanceOf"
	Class_RefTo      ClassRef = "class:core.RefTo"
	Class_Mixins     ClassRef = "class:core.Mixins"
)

// Native handle of class documents
const Native_ClassDocument NativeHandle = "native:core.ClassDocument"
