/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"github.com/voedger/docmodel/pkg/schema"
)

func typeAttr() schema.Attribute {
	return schema.Attribute{Type: schema.Class_Type}
}

func embeddedTypeAttr() schema.Attribute {
	return schema.Attribute{Type: schema.Class_InstanceOf, To: schema.Class_Type}
}

func classRefAttr() schema.Attribute {
	return schema.Attribute{Type: schema.Class_RefTo, To: schema.Class_Class}
}

// Returns class descriptors of the core model: objects, documents, classes,
// mixins and the type classes every attribute type extends
func CoreClasses() []schema.ClassDescriptor {
	elem := embeddedTypeAttr()
	return []schema.ClassDescriptor{
		{
			ID: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				schema.Field_Class: typeAttr(),
			},
		},
		{
			ID:      schema.Class_Doc,
			Extends: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				schema.Field_ID:     typeAttr(),
				schema.Field_Mixins: {Type: schema.Class_Mixins},
			},
		},
		{
			ID:      schema.Class_Class,
			Extends: schema.Class_Doc,
			Native:  schema.Native_ClassDocument,
			Domain:  schema.DomainModel,
			Attributes: map[string]schema.Attribute{
				schema.Field_Attributes: {Type: schema.Class_BagOf, Of: &elem},
				schema.Field_Extends:    classRefAttr(),
				schema.Field_Native:     typeAttr(),
				schema.Field_Domain:     typeAttr(),
			},
		},
		{
			ID:      schema.Class_Mixin,
			Extends: schema.Class_Class,
		},
		{
			ID:      schema.Class_Type,
			Extends: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				schema.Field_Default: typeAttr(),
			},
		},
		{
			ID:      schema.Class_ArrayOf,
			Extends: schema.Class_Type,
			Attributes: map[string]schema.Attribute{
				schema.Field_Of: embeddedTypeAttr(),
			},
		},
		{
			ID:      schema.Class_BagOf,
			Extends: schema.Class_Type,
			Attributes: map[string]schema.Attribute{
				schema.Field_Of: embeddedTypeAttr(),
			},
		},
		{
			ID:      schema.Class_InstanceOf,
			Extends: schema.Class_Type,
			Attributes: map[string]schema.Attribute{
				schema.Field_To: classRefAttr(),
			},
		},
		{
			ID:      schema.Class_RefTo,
			Extends: schema.Class_Type,
			Attributes: map[string]schema.Attribute{
				schema.Field_To: classRefAttr(),
			},
		},
		{
			ID:      schema.Class_Mixins,
			Extends: schema.Class_Type,
		},
	}
}

// Returns core model as class containers of the model domain
func CoreModel() []schema.Container {
	classes := CoreClasses()
	res := make([]schema.Container, len(classes))
	for n, d := range classes {
		res[n] = schema.ClassToContainer(d)
	}
	return res
}
