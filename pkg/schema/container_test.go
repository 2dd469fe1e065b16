/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Container(t *testing.T) {
	require := require.New(t)

	c := Container{
		Field_Class:  "class:test.Person",
		Field_ID:     "p1",
		Field_Mixins: []any{"class:test.Mixin"},
		"tags":       []any{"a", map[string]any{"k": "v"}},
	}

	require.Equal(ClassRef("class:test.Person"), c.Class())
	require.Equal(DocRef("p1"), c.ID())
	require.Equal([]ClassRef{"class:test.Mixin"}, c.Mixins())

	t.Run("must be ok to clone deep", func(t *testing.T) {
		clone := c.Clone()
		require.Equal(c, clone)

		clone["tags"].([]any)[1].(map[string]any)["k"] = "changed"
		require.Equal("v", c["tags"].([]any)[1].(map[string]any)["k"])
	})
}

func Test_ClassContainer(t *testing.T) {
	require := require.New(t)

	model := Container{
		Field_Class:   string(Class_Class),
		Field_ID:      "class:test.Person",
		Field_Extends: "class:core.Doc",
		Field_Native:  "native:test.Person",
		Field_Domain:  "people",
		Field_Attributes: map[string]any{
			"name": map[string]any{Field_Class: string(Class_Type), Field_Default: "noname"},
			"tags": map[string]any{
				Field_Class: string(Class_ArrayOf),
				Field_Of:    map[string]any{Field_Class: string(Class_Type)},
			},
			"boss": map[string]any{Field_Class: string(Class_RefTo), Field_To: "class:test.Person"},
		},
	}

	d, err := ClassFromContainer(model)
	require.NoError(err)
	require.Equal(ClassRef("class:test.Person"), d.ID)
	require.Equal(Class_Doc, d.Extends)
	require.Equal(NativeHandle("native:test.Person"), d.Native)
	require.Equal("people", d.Domain)
	require.Equal(Attribute{Type: Class_Type, Default: "noname"}, d.Attributes["name"])
	require.Equal(Class_ArrayOf, d.Attributes["tags"].Type)
	require.Equal(Class_Type, d.Attributes["tags"].Of.Type)
	require.Equal(ClassRef("class:test.Person"), d.Attributes["boss"].To)

	t.Run("must be ok to convert back", func(t *testing.T) {
		back, err := ClassFromContainer(ClassToContainer(d))
		require.NoError(err)
		require.Equal(d, back)
	})

	t.Run("should be error if attribute is not an object", func(t *testing.T) {
		_, err := ClassFromContainer(Container{
			Field_ID:         "class:test.Bad",
			Field_Attributes: map[string]any{"name": "string"},
		})
		require.ErrorIs(err, ErrSchema)
		require.ErrorContains(err, "name")
	})

	t.Run("should be error if attribute has no type", func(t *testing.T) {
		_, err := AttributeFromValue(map[string]any{Field_To: "class:test.Person"})
		require.ErrorIs(err, ErrSchema)
	})

	t.Run("should be error if identifier is missed", func(t *testing.T) {
		_, err := ClassFromContainer(Container{Field_Class: string(Class_Class)})
		require.ErrorIs(err, ErrSchema)
	})
}

func Test_AttributeOfClass(t *testing.T) {
	require := require.New(t)

	a, err := AttributeFromValue(map[string]any{
		Field_Class: string(Class_InstanceOf),
		Field_Of:    "class:test.Address",
	})
	require.NoError(err)
	require.Equal(ClassRef("class:test.Address"), a.To)
	require.Nil(a.Of)
}
