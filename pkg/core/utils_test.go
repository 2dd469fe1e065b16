/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/docmodel/pkg/schema"
)

const (
	testPerson   = schema.ClassRef("class:test.Person")
	testEmployee = schema.ClassRef("class:test.Employee")
	testAddress  = schema.ClassRef("class:test.Address")
	testPhone    = schema.ClassRef("class:test.Phone")
	testAudit    = schema.ClassRef("class:test.Audit")
)

func attr(t schema.ClassRef) schema.Attribute { return schema.Attribute{Type: t} }

func testClasses() []schema.ClassDescriptor {
	phone := schema.Attribute{Type: schema.Class_InstanceOf, To: testPhone}
	str := attr(schema.Class_Type)
	return []schema.ClassDescriptor{
		{
			ID:      testAddress,
			Extends: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				"city": str,
			},
		},
		{
			ID:      testPhone,
			Extends: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				"number": str,
			},
		},
		{
			ID:      testPerson,
			Extends: schema.Class_Doc,
			Domain:  "people",
			Attributes: map[string]schema.Attribute{
				"name":     {Type: schema.Class_Type, Default: "noname"},
				"age":      str,
				"address":  {Type: schema.Class_InstanceOf, To: testAddress},
				"phones":   {Type: schema.Class_ArrayOf, Of: &phone},
				"contacts": {Type: schema.Class_BagOf, Of: &phone},
				"tags":     {Type: schema.Class_ArrayOf, Of: &str},
				"boss":     {Type: schema.Class_RefTo, To: testPerson},
				"_secret":  {Type: schema.Class_Type, Default: "none"},
			},
		},
		{
			ID:      testEmployee,
			Extends: testPerson,
			Attributes: map[string]schema.Attribute{
				"company": str,
			},
		},
		{
			ID:      testAudit,
			Extends: schema.Class_Obj,
			Attributes: map[string]schema.Attribute{
				"reviewer": str,
			},
		},
	}
}

func testModel() []schema.Container {
	res := make([]schema.Container, 0)
	for _, d := range testClasses() {
		c := schema.ClassToContainer(d)
		if d.ID == testAudit {
			c[schema.Field_Class] = string(schema.Class_Mixin)
		}
		res = append(res, c)
	}
	return res
}

func testData() []schema.Container {
	return []schema.Container{
		{
			schema.Field_Class: string(testPerson),
			schema.Field_ID:    "p1",
			"name":             "A",
			"address":          map[string]any{schema.Field_Class: string(testAddress), "city": "Riga"},
			"phones": []any{
				map[string]any{schema.Field_Class: string(testPhone), "number": "111"},
				map[string]any{"number": "222"},
			},
			"contacts": map[string]any{
				"home": map[string]any{schema.Field_Class: string(testPhone), "number": "333"},
			},
			"tags": []any{"x", "y"},
		},
		{
			schema.Field_Class: string(testPerson),
			schema.Field_ID:    "p2",
			"name":             "B",
			"boss":             "p1",
		},
		{
			schema.Field_Class: string(testEmployee),
			schema.Field_ID:    "e1",
			"name":             "A",
			"company":          "unTill",
		},
	}
}

func newTestRuntime(t *testing.T, opts ...Option) *Runtime {
	t.Helper()
	cnt := 0
	opts = append([]Option{WithIDGenerator(func() schema.DocRef {
		cnt++
		return schema.DocRef(fmt.Sprintf("new%d", cnt))
	})}, opts...)
	rt, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, rt.LoadModel(testModel()))
	require.NoError(t, rt.LoadModel(testData()))
	return rt
}
