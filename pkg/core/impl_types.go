/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"reflect"

	"github.com/voedger/docmodel/pkg/schema"
)

// Returns type descriptor for attribute.
//
// Attribute type class chain is walked up to the first class which has a
// registered type factory. Returns ErrUnknownType if no class in the chain
// has one.
func (rt *Runtime) TypeDescriptor(a schema.Attribute) (ITypeDescriptor, error) {
	chain, err := rt.registry.Ancestors(a.Type)
	if err != nil {
		return nil, err
	}
	for _, c := range chain {
		if f, ok := rt.types[c]; ok {
			return f(rt, a)
		}
	}
	return nil, schema.EnrichError(schema.ErrUnknownType, "no type factory for «%v»", a.Type)
}

func defaultTypeFactories() map[schema.ClassRef]TypeFactory {
	return map[schema.ClassRef]TypeFactory{
		schema.Class_Type:       newPlainType,
		schema.Class_ArrayOf:    newArrayOfType,
		schema.Class_BagOf:      newBagOfType,
		schema.Class_InstanceOf: newInstanceOfType,
		schema.Class_RefTo:      newRefToType,
		schema.Class_Mixins:     newMixinsType,
	}
}

func innerType(rt *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	if a.Of == nil {
		return nil, schema.EnrichError(schema.ErrSchema, "«%v» without element type", a.Type)
	}
	return rt.TypeDescriptor(*a.Of)
}

// Value is stored and exposed as is
type plainType struct {
	def any
}

func newPlainType(_ *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	return &plainType{def: a.Default}, nil
}

func (t *plainType) Exert(v any, _ *Instance, _ string) (any, error) {
	if v == nil {
		return t.def, nil
	}
	return v, nil
}

func (t *plainType) Hibernate(v any) (any, error) {
	return v, nil
}

// Slice of values of inner type
type arrayOfType struct {
	of ITypeDescriptor
}

func newArrayOfType(rt *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	of, err := innerType(rt, a)
	if err != nil {
		return nil, err
	}
	return &arrayOfType{of: of}, nil
}

func (t *arrayOfType) Exert(v any, owner *Instance, key string) (any, error) {
	if v == nil {
		return nil, nil
	}
	list := reflect.ValueOf(v)
	if list.Kind() != reflect.Slice {
		return nil, ErrWrongValue("array", v)
	}
	res := make([]any, list.Len())
	for i := range res {
		e, err := t.of.Exert(list.Index(i).Interface(), owner, key)
		if err != nil {
			return nil, err
		}
		res[i] = e
	}
	return res, nil
}

func (t *arrayOfType) Hibernate(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	list := reflect.ValueOf(v)
	if list.Kind() != reflect.Slice {
		return nil, ErrWrongValue("array", v)
	}
	res := make([]any, list.Len())
	for i := range res {
		e, err := t.of.Hibernate(list.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		res[i] = e
	}
	return res, nil
}

// String keyed map of values of inner type
type bagOfType struct {
	of ITypeDescriptor
}

func newBagOfType(rt *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	of, err := innerType(rt, a)
	if err != nil {
		return nil, err
	}
	return &bagOfType{of: of}, nil
}

func (t *bagOfType) Exert(v any, owner *Instance, key string) (any, error) {
	if v == nil {
		return nil, nil
	}
	bag, ok := schema.AsContainer(v)
	if !ok {
		return nil, ErrWrongValue("bag", v)
	}
	res := make(map[string]any, len(bag))
	for k, e := range bag {
		x, err := t.of.Exert(e, owner, key)
		if err != nil {
			return nil, err
		}
		res[k] = x
	}
	return res, nil
}

func (t *bagOfType) Hibernate(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	bag := reflect.ValueOf(v)
	if bag.Kind() != reflect.Map || bag.Type().Key().Kind() != reflect.String {
		return nil, ErrWrongValue("bag", v)
	}
	res := make(map[string]any, bag.Len())
	iter := bag.MapRange()
	for iter.Next() {
		x, err := t.of.Hibernate(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		res[iter.Key().String()] = x
	}
	return res, nil
}

// Embedded object exposed as live instance over the nested container
type instanceOfType struct {
	class schema.ClassRef
}

func newInstanceOfType(_ *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	return &instanceOfType{class: a.To}, nil
}

func (t *instanceOfType) Exert(v any, owner *Instance, _ string) (any, error) {
	if v == nil {
		return nil, nil
	}
	c, ok := schema.AsContainer(v)
	if !ok {
		return nil, ErrWrongValue("object", v)
	}
	if c.Class() == "" {
		if t.class == "" {
			return nil, schema.EnrichError(schema.ErrUnknownClass, "embedded object without «%s»", schema.Field_Class)
		}
		return owner.Session().Materialize(t.class, c)
	}
	return owner.Session().Embed(c)
}

func (t *instanceOfType) Hibernate(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Instance:
		return v.layout, nil
	}
	c, ok := schema.AsContainer(v)
	if !ok {
		return nil, ErrWrongValue("instance", v)
	}
	if c.Class() == "" && t.class != "" {
		c[schema.Field_Class] = string(t.class)
	}
	return c, nil
}

// Reference to a document. Exposed as DocRef, not resolved on read
type refToType struct {
	class schema.ClassRef
}

func newRefToType(_ *Runtime, a schema.Attribute) (ITypeDescriptor, error) {
	return &refToType{class: a.To}, nil
}

func (t *refToType) Exert(v any, _ *Instance, _ string) (any, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := schema.AsString(v)
	if !ok {
		return nil, ErrWrongValue("reference", v)
	}
	return schema.DocRef(s), nil
}

func (t *refToType) Hibernate(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Instance:
		return string(v.ID()), nil
	}
	s, ok := schema.AsString(v)
	if !ok {
		return nil, ErrWrongValue("reference", v)
	}
	return s, nil
}

// List of applied mixin classes exposed as read-only MixinList
type mixinsType struct{}

func newMixinsType(*Runtime, schema.Attribute) (ITypeDescriptor, error) {
	return mixinsType{}, nil
}

func (mixinsType) Exert(v any, _ *Instance, _ string) (any, error) {
	list, ok := schema.AsStrings(v)
	if !ok {
		return nil, ErrWrongValue("mixin list", v)
	}
	return newMixinList(list), nil
}

func (mixinsType) Hibernate(v any) (any, error) {
	if l, ok := v.(*MixinList); ok {
		return l.strings(), nil
	}
	list, ok := schema.AsStrings(v)
	if !ok {
		return nil, ErrWrongValue("mixin list", v)
	}
	return list, nil
}
