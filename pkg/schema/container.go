/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"fmt"
)

// Returns class of the container, empty if not set
func (c Container) Class() ClassRef {
	s, _ := AsString(c[Field_Class])
	return ClassRef(s)
}

// Returns identifier of the container, empty if not set
func (c Container) ID() DocRef {
	s, _ := AsString(c[Field_ID])
	return DocRef(s)
}

// Returns classes of applied mixins in application order
func (c Container) Mixins() []ClassRef {
	list, _ := AsStrings(c[Field_Mixins])
	res := make([]ClassRef, 0, len(list))
	for _, m := range list {
		res = append(res, ClassRef(m))
	}
	return res
}

// Returns deep copy of the container. Nested maps and slices are copied too
func (c Container) Clone() Container {
	if c == nil {
		return nil
	}
	return cloneValue(c).(Container)
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case Container:
		res := make(Container, len(v))
		for k, e := range v {
			res[k] = cloneValue(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(v))
		for k, e := range v {
			res[k] = cloneValue(e)
		}
		return res
	case []any:
		res := make([]any, len(v))
		for i, e := range v {
			res[i] = cloneValue(e)
		}
		return res
	case []string:
		res := make([]string, len(v))
		copy(res, v)
		return res
	}
	return v
}

// Returns string value of string-kinded identifiers
func AsString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case ClassRef:
		return string(v), true
	case DocRef:
		return string(v), true
	case NativeHandle:
		return string(v), true
	}
	return "", false
}

// Returns strings from []string, []ClassRef or []any of strings
func AsStrings(v any) ([]string, bool) {
	switch v := v.(type) {
	case nil:
		return nil, true
	case []string:
		return v, true
	case []ClassRef:
		res := make([]string, len(v))
		for i, s := range v {
			res[i] = string(s)
		}
		return res, true
	case []any:
		res := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := AsString(e)
			if !ok {
				return nil, false
			}
			res = append(res, s)
		}
		return res, true
	}
	return nil, false
}

// Returns container from Container or map[string]any
func AsContainer(v any) (Container, bool) {
	switch v := v.(type) {
	case Container:
		return v, true
	case map[string]any:
		return Container(v), true
	}
	return nil, false
}

// Converts model container of a class into class descriptor
func ClassFromContainer(c Container) (ClassDescriptor, error) {
	d := ClassDescriptor{
		ID:         ClassRef(c.ID()),
		Attributes: make(map[string]Attribute),
	}
	if d.ID == "" {
		return d, EnrichError(ErrSchema, "class container without «%s»", Field_ID)
	}

	if v, ok := c[Field_Extends]; ok && v != nil {
		s, ok := AsString(v)
		if !ok {
			return d, EnrichError(ErrSchema, "class «%v» has invalid «%s»: %v", d.ID, Field_Extends, v)
		}
		d.Extends = ClassRef(s)
	}
	if v, ok := c[Field_Native]; ok && v != nil {
		s, ok := AsString(v)
		if !ok {
			return d, EnrichError(ErrSchema, "class «%v» has invalid «%s»: %v", d.ID, Field_Native, v)
		}
		d.Native = NativeHandle(s)
	}
	if v, ok := c[Field_Domain]; ok && v != nil {
		s, ok := AsString(v)
		if !ok {
			return d, EnrichError(ErrSchema, "class «%v» has invalid «%s»: %v", d.ID, Field_Domain, v)
		}
		d.Domain = s
	}

	if v, ok := c[Field_Attributes]; ok && v != nil {
		attrs, ok := AsContainer(v)
		if !ok {
			return d, EnrichError(ErrSchema, "class «%v» has invalid «%s»: %v", d.ID, Field_Attributes, v)
		}
		for name, value := range attrs {
			a, err := AttributeFromValue(value)
			if err != nil {
				return d, fmt.Errorf("class «%v» attribute «%s»: %w", d.ID, name, err)
			}
			d.Attributes[name] = a
		}
	}

	return d, nil
}

// Converts stored attribute value (embedded type object) into attribute
func AttributeFromValue(v any) (Attribute, error) {
	c, ok := AsContainer(v)
	if !ok {
		return Attribute{}, EnrichError(ErrSchema, "attribute must be an object, got %T", v)
	}
	a := Attribute{
		Type:    c.Class(),
		Default: c[Field_Default],
	}
	if a.Type == "" {
		return a, EnrichError(ErrSchema, "attribute type without «%s»", Field_Class)
	}
	if of, ok := c[Field_Of]; ok && of != nil {
		if s, ok := AsString(of); ok {
			// InstanceOf declares embedded class with `of`
			a.To = ClassRef(s)
		} else {
			inner, err := AttributeFromValue(of)
			if err != nil {
				return a, err
			}
			a.Of = &inner
		}
	}
	if to, ok := c[Field_To]; ok && to != nil {
		s, ok := AsString(to)
		if !ok {
			return a, EnrichError(ErrSchema, "attribute has invalid «%s»: %v", Field_To, to)
		}
		a.To = ClassRef(s)
	}
	return a, nil
}

// Converts class descriptor into model container of class Class_Class
func ClassToContainer(d ClassDescriptor) Container {
	attrs := make(map[string]any, len(d.Attributes))
	for name, a := range d.Attributes {
		attrs[name] = AttributeToValue(a)
	}
	c := Container{
		Field_Class:      string(Class_Class),
		Field_ID:         string(d.ID),
		Field_Attributes: attrs,
	}
	if d.Extends != "" {
		c[Field_Extends] = string(d.Extends)
	}
	if d.Native != "" {
		c[Field_Native] = string(d.Native)
	}
	if d.Domain != "" {
		c[Field_Domain] = d.Domain
	}
	return c
}

// Converts attribute into stored embedded type object
func AttributeToValue(a Attribute) map[string]any {
	v := map[string]any{Field_Class: string(a.Type)}
	if a.Default != nil {
		v[Field_Default] = a.Default
	}
	if a.Of != nil {
		v[Field_Of] = AttributeToValue(*a.Of)
	}
	if a.To != "" {
		v[Field_To] = string(a.To)
	}
	return v
}
