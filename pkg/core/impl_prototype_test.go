/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/docmodel/pkg/schema"
)

func Test_Prototype(t *testing.T) {
	require := require.New(t)

	rt := newTestRuntime(t)

	t.Run("must be ok to expose own and inherited fields once", func(t *testing.T) {
		p, err := rt.Prototype(testEmployee)
		require.NoError(err)
		require.Equal(testEmployee, p.Class())
		require.Equal([]string{"company"}, p.OwnFields())

		fields := p.Fields()
		require.Equal([]string{
			schema.Field_Class,                   // Obj
			schema.Field_ID, schema.Field_Mixins, // Doc
			"_secret", "address", "age", "boss", "contacts", "name", "phones", "tags", // Person
			"company", // Employee
		}, fields)

		seen := map[string]bool{}
		for _, f := range fields {
			require.False(seen[f], f)
			seen[f] = true
			require.True(p.HasField(f))
		}
	})

	t.Run("must be ok to chain to parent prototypes", func(t *testing.T) {
		p, err := rt.Prototype(testEmployee)
		require.NoError(err)

		person, err := rt.Prototype(testPerson)
		require.NoError(err)
		require.Same(person, p.Parent())

		doc, err := rt.Prototype(schema.Class_Doc)
		require.NoError(err)
		require.Same(doc, person.Parent())

		obj, err := rt.Prototype(schema.Class_Obj)
		require.NoError(err)
		require.Same(obj, doc.Parent())

		base := obj.Parent()
		require.NotNil(base)
		require.Empty(base.Class())
		require.Nil(base.Parent())
		require.Empty(base.Fields())
		_, ok := base.Method(Method_GetSession)
		require.True(ok)
		require.Same(rt, p.Session())
	})

	t.Run("must be ok to return same prototype", func(t *testing.T) {
		p1, err := rt.Prototype(testPerson)
		require.NoError(err)
		p2, err := rt.Prototype(testPerson)
		require.NoError(err)
		require.Same(p1, p2)
	})

	t.Run("must be ok to build concurrently", func(t *testing.T) {
		rt := newTestRuntime(t)
		const workers = 8
		res := make([]*Prototype, workers)
		wg := sync.WaitGroup{}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				p, err := rt.Prototype(testEmployee)
				if err == nil {
					res[w] = p
				}
			}(w)
		}
		wg.Wait()
		for w := 1; w < workers; w++ {
			require.NotNil(res[w])
			require.Same(res[0], res[w])
		}
	})
}

func Test_PrototypeErrors(t *testing.T) {
	require := require.New(t)

	t.Run("should be error if class is unknown", func(t *testing.T) {
		rt := newTestRuntime(t)
		_, err := rt.Prototype("class:test.Unknown")
		require.ErrorIs(err, schema.ErrUnknownClass)
	})

	t.Run("should be error if ancestor is unknown", func(t *testing.T) {
		rt := newTestRuntime(t)
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: "class:test.Orphan", Extends: "class:test.Missed"}))
		_, err := rt.Prototype("class:test.Orphan")
		require.ErrorIs(err, schema.ErrUnknownClass)
		require.ErrorContains(err, "class:test.Missed")
	})

	t.Run("should be error if native handle is unknown", func(t *testing.T) {
		rt := newTestRuntime(t)
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: "class:test.Foo", Extends: schema.Class_Obj, Native: "native:test.Missed"}))
		_, err := rt.Prototype("class:test.Foo")
		require.ErrorIs(err, schema.ErrUnknownNativeHandle)
	})

	t.Run("should be error if attribute type is unknown", func(t *testing.T) {
		rt := newTestRuntime(t)
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         "class:test.Foo",
			Extends:    schema.Class_Obj,
			Attributes: map[string]schema.Attribute{"x": {Type: "class:test.NoSuchType"}},
		}))
		_, err := rt.Prototype("class:test.Foo")
		require.ErrorIs(err, schema.ErrUnknownClass)

		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: "class:test.Untyped", Extends: schema.Class_Obj}))
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         "class:test.Bar",
			Extends:    schema.Class_Obj,
			Attributes: map[string]schema.Attribute{"x": {Type: "class:test.Untyped"}},
		}))
		_, err = rt.Prototype("class:test.Bar")
		require.ErrorIs(err, schema.ErrUnknownType)
	})

	t.Run("should be error if array element type is missed", func(t *testing.T) {
		rt := newTestRuntime(t)
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         "class:test.Foo",
			Extends:    schema.Class_Obj,
			Attributes: map[string]schema.Attribute{"x": {Type: schema.Class_ArrayOf}},
		}))
		_, err := rt.Prototype("class:test.Foo")
		require.ErrorIs(err, schema.ErrSchema)
	})

	t.Run("should not cache failed build", func(t *testing.T) {
		rt := newTestRuntime(t)
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: "class:test.Late", Extends: "class:test.LateParent"}))
		_, err := rt.Prototype("class:test.Late")
		require.ErrorIs(err, schema.ErrUnknownClass)

		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: "class:test.LateParent", Extends: schema.Class_Obj}))
		p, err := rt.Prototype("class:test.Late")
		require.NoError(err)
		require.Equal(schema.ClassRef("class:test.LateParent"), p.Parent().Class())
	})
}

func Test_NativeMerge(t *testing.T) {
	require := require.New(t)

	const (
		foo = schema.ClassRef("class:test.Foo")
		h   = schema.NativeHandle("native:test.H")
	)

	natives := NewNativeRegistry()
	natives.Set(h, MethodTable{
		"greet": func(self *Instance, args ...any) (any, error) {
			name, err := self.Get("name")
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("hello %v from %v", args[0], name), nil
		},
	})

	t.Run("must be ok to call native method", func(t *testing.T) {
		rt := newTestRuntime(t, WithNatives(natives))
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         foo,
			Extends:    schema.Class_Doc,
			Native:     h,
			Attributes: map[string]schema.Attribute{"name": attr(schema.Class_Type)},
		}))

		p, err := rt.Prototype(foo)
		require.NoError(err)
		greet, ok := p.Method("greet")
		require.True(ok)
		require.NotNil(greet)

		inst, err := rt.Materialize(foo, schema.Container{schema.Field_Class: string(foo), schema.Field_ID: "f1", "name": "foo"})
		require.NoError(err)
		res, err := inst.Call("greet", "world")
		require.NoError(err)
		require.Equal("hello world from foo", res)

		s, err := inst.Call(Method_GetSession)
		require.NoError(err)
		require.Same(rt, s)

		_, err = inst.Call("missed")
		require.ErrorIs(err, schema.ErrNotFound)
	})

	t.Run("should be error if native method collides with attribute", func(t *testing.T) {
		rt := newTestRuntime(t, WithNatives(natives))
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         foo,
			Extends:    schema.Class_Doc,
			Native:     h,
			Attributes: map[string]schema.Attribute{"greet": attr(schema.Class_Type)},
		}))
		_, err := rt.Prototype(foo)
		require.ErrorIs(err, schema.ErrSchema)
		require.ErrorContains(err, "greet")
	})

	t.Run("should be error if native method collides with inherited attribute", func(t *testing.T) {
		rt := newTestRuntime(t, WithNatives(natives))
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{
			ID:         "class:test.Base",
			Extends:    schema.Class_Doc,
			Attributes: map[string]schema.Attribute{"greet": attr(schema.Class_Type)},
		}))
		require.NoError(rt.Registry().Register(schema.ClassDescriptor{ID: foo, Extends: "class:test.Base", Native: h}))
		_, err := rt.Prototype(foo)
		require.ErrorIs(err, schema.ErrSchema)
	})
}
