/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/voedger/docmodel/pkg/config"
	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/offline"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/rpc"
	"github.com/voedger/docmodel/pkg/schema"
	"github.com/voedger/docmodel/pkg/snapshot"
)

const (
	testPerson = schema.ClassRef("class:test.Person")
	testTag    = schema.ClassRef("class:test.Tag")
)

const waitTimeout = 5 * time.Second

func testSnapshot() snapshot.Snapshot {
	str := schema.Attribute{Type: schema.Class_Type}
	return snapshot.Snapshot{
		schema.DomainModel: {
			schema.ClassToContainer(schema.ClassDescriptor{
				ID:         testPerson,
				Extends:    schema.Class_Doc,
				Domain:     "people",
				Attributes: map[string]schema.Attribute{"name": str, "age": str},
			}),
			schema.ClassToContainer(schema.ClassDescriptor{
				ID:         testTag,
				Extends:    schema.Class_Doc,
				Domain:     schema.DomainModel,
				Attributes: map[string]schema.Attribute{"title": str, "order": str},
			}),
			{schema.Field_Class: string(testTag), schema.Field_ID: "t1", "title": "x", "order": 2},
			{schema.Field_Class: string(testTag), schema.Field_ID: "t2", "title": "y", "order": 1},
		},
		"people": {
			{schema.Field_Class: string(testPerson), schema.Field_ID: "p1", "name": "A", "age": 30},
			{schema.Field_Class: string(testPerson), schema.Field_ID: "p2", "name": "B", "age": 20},
		},
	}
}

func newTestService(t *testing.T) *Service {
	rt, err := core.New()
	require.NoError(t, err)

	store, err := offline.Open(offline.Params{Dir: t.TempDir(), Name: "test"}, rt.Registry())
	require.NoError(t, err)

	s := New(rt, store)
	t.Cleanup(func() {
		s.Close()
		_ = store.Close()
	})
	require.NoError(t, s.Bootstrap(testSnapshot()))
	return s
}

func names(list []*core.Instance) []any {
	res := make([]any, 0, len(list))
	for _, inst := range list {
		res = append(res, inst.Container()["name"])
	}
	return res
}

func TestService(t *testing.T) {
	defer goleak.VerifyNone(t)
	require := require.New(t)
	ctx := context.Background()

	s := newTestService(t)

	t.Run("must be ok to find in backing store", func(t *testing.T) {
		res, err := s.FindInstances(ctx, testPerson, schema.Query{"name": "A"})
		require.NoError(err)
		require.Len(res, 1)
		require.Equal(testPerson, res[0].Class())
		require.Equal(schema.DocRef("p1"), res[0].ID())

		inst, ok, err := s.FindInstance(ctx, testPerson, schema.Query{"age": schema.Cond{Op: schema.Op_Lt, Value: 25}})
		require.NoError(err)
		require.True(ok)
		require.Equal(schema.DocRef("p2"), inst.ID())

		c, ok, err := s.FindOne(ctx, testPerson, schema.Query{schema.Field_ID: "p2"})
		require.NoError(err)
		require.True(ok)
		require.Equal("B", c["name"])
	})

	t.Run("must be ok to find in model domain", func(t *testing.T) {
		res, err := s.FindInstances(ctx, testTag, nil)
		require.NoError(err)
		require.Len(res, 2)

		list, err := s.Find(ctx, schema.Class_Class, schema.Query{schema.Field_ID: string(testPerson)})
		require.NoError(err)
		require.Len(list, 1)
		list[0]["domain"] = "changed"

		stored, err := s.Runtime().Db().Get(schema.DocRef(testPerson))
		require.NoError(err)
		require.Equal("people", stored["domain"], "returned containers are copies")
	})

	t.Run("must be ok to load domains", func(t *testing.T) {
		res, err := s.LoadDomain(ctx, "people", "age", protocol.Direction_Asc)
		require.NoError(err)
		require.Len(res, 2)
		require.Equal(schema.DocRef("p2"), res[0].ID())

		res, err = s.LoadDomain(ctx, schema.DomainModel, "order", protocol.Direction_Asc)
		require.NoError(err)
		require.Equal(schema.DocRef("t2"), res[0].ID())
		require.Equal(schema.DocRef("t1"), res[1].ID())
		require.Greater(len(res), len(core.CoreClasses()), "class documents are in model domain")
	})

	t.Run("must be ok to apply transactions to both domains", func(t *testing.T) {
		require.NoError(s.Tx(ctx, protocol.Tx{
			ID:     "1",
			Kind:   protocol.TxKind_Create,
			Object: schema.Container{schema.Field_Class: string(testPerson), schema.Field_ID: "p3", "name": "C"},
		}))
		_, ok, err := s.FindOne(ctx, testPerson, schema.Query{"name": "C"})
		require.NoError(err)
		require.True(ok)
		_, err = s.Runtime().Db().Get("p3")
		require.ErrorIs(err, schema.ErrNotFound, "backing store documents are not in runtime")

		require.NoError(s.Tx(ctx, protocol.Tx{ID: "2", Kind: protocol.TxKind_Update, ObjectID: "t1", Attributes: map[string]any{"title": "z"}}))
		tag, ok, err := s.FindInstance(ctx, testTag, schema.Query{schema.Field_ID: "t1"})
		require.NoError(err)
		require.True(ok)
		title, err := tag.Get("title")
		require.NoError(err)
		require.Equal("z", title)

		require.NoError(s.Tx(ctx, protocol.Tx{ID: "4", Kind: protocol.TxKind_Delete, ObjectID: "t2"}))
		res, err := s.FindInstances(ctx, testTag, nil)
		require.NoError(err)
		require.Len(res, 1)
	})

	t.Run("should be error if tx changes class documents", func(t *testing.T) {
		_, err := s.Runtime().Prototype(testTag)
		require.NoError(err)

		err = s.Tx(ctx, protocol.Tx{
			ID:   "c1",
			Kind: protocol.TxKind_Create,
			Object: schema.ClassToContainer(schema.ClassDescriptor{
				ID:      "class:test.Late",
				Extends: schema.Class_Doc,
			}),
		})
		require.ErrorIs(err, schema.ErrSchema)
		_, err = s.Runtime().Registry().Resolve("class:test.Late")
		require.ErrorIs(err, schema.ErrUnknownClass)

		err = s.Tx(ctx, protocol.Tx{
			ID:         "c2",
			Kind:       protocol.TxKind_Update,
			ObjectID:   schema.DocRef(testTag),
			Attributes: map[string]any{schema.Field_Attributes: map[string]any{"color": map[string]any{schema.Field_Class: string(schema.Class_Type)}}},
		})
		require.ErrorIs(err, schema.ErrSchema)

		err = s.Tx(ctx, protocol.Tx{ID: "c3", Kind: protocol.TxKind_Delete, ObjectID: schema.DocRef(testTag)})
		require.ErrorIs(err, schema.ErrSchema)

		d, err := s.Runtime().Registry().Resolve(testTag)
		require.NoError(err)
		require.NotContains(d.Attributes, "color")
		c, err := s.Runtime().Db().Get(schema.DocRef(testTag))
		require.NoError(err)
		require.Equal(string(schema.Class_Class), c[schema.Field_Class])
	})

	t.Run("should be error if class is unknown", func(t *testing.T) {
		_, err := s.FindInstances(ctx, "class:test.Unknown", nil)
		require.ErrorIs(err, schema.ErrUnknownClass)

		err = s.Tx(ctx, protocol.Tx{ID: "5", Kind: protocol.TxKind_Update, ObjectClass: "class:test.Unknown", ObjectID: "x"})
		require.ErrorIs(err, schema.ErrUnknownClass)

		err = s.Tx(ctx, protocol.Tx{ID: "6", Kind: protocol.TxKind_Update, ObjectID: "missed"})
		require.ErrorIs(err, schema.ErrNotFound)
	})
}

func TestQuerySubscription(t *testing.T) {
	defer goleak.VerifyNone(t)
	require := require.New(t)
	ctx := context.Background()

	t.Run("must be ok to receive result and updates", func(t *testing.T) {
		s := newTestService(t)

		results := make(chan []any, 10)
		unsubscribe := s.Query(testPerson, schema.Query{"name": schema.Cond{Op: schema.Op_Ne, Value: "B"}},
			func(res []*core.Instance) { results <- names(res) },
			func(err error) { t.Error(err) },
		)
		defer unsubscribe()
		require.Equal(1, s.Subscriptions())

		select {
		case got := <-results:
			require.Equal([]any{"A"}, got)
		case <-time.After(waitTimeout):
			require.Fail("no initial result")
		}

		require.NoError(s.Tx(ctx, protocol.Tx{
			ID:     "1",
			Kind:   protocol.TxKind_Create,
			Object: schema.Container{schema.Field_Class: string(testPerson), schema.Field_ID: "p3", "name": "C"},
		}))

		select {
		case got := <-results:
			require.Equal([]any{"A", "C"}, got, "full result after transaction")
		case <-time.After(waitTimeout):
			require.Fail("no result after transaction")
		}
	})

	t.Run("must be ok to never call back after immediate unsubscribe", func(t *testing.T) {
		s := newTestService(t)

		var calls atomic.Int64
		for i := 0; i < 100; i++ {
			unsubscribe := s.Query(testPerson, nil,
				func([]*core.Instance) { calls.Add(1) },
				func(error) { calls.Add(1) },
			)
			unsubscribe()
		}
		require.Zero(s.Subscriptions())

		require.NoError(s.Tx(ctx, protocol.Tx{ID: "1", Kind: protocol.TxKind_Delete, ObjectID: "p1"}))
		s.Close()

		require.Zero(calls.Load())
	})

	t.Run("must be ok to stop delivery on unsubscribe", func(t *testing.T) {
		s := newTestService(t)

		var calls atomic.Int64
		first := make(chan struct{})
		unsubscribe := s.Query(testPerson, nil, func([]*core.Instance) {
			if calls.Add(1) == 1 {
				close(first)
			}
		}, nil)

		select {
		case <-first:
		case <-time.After(waitTimeout):
			require.Fail("no initial result")
		}
		unsubscribe()
		unsubscribe()

		for i := 0; i < 10; i++ {
			require.NoError(s.Tx(ctx, protocol.Tx{ID: fmt.Sprint(i), Kind: protocol.TxKind_Update, ObjectID: "p1", Attributes: map[string]any{"age": i}}))
		}
		s.Close()
		require.Equal(int64(1), calls.Load())
	})

	t.Run("should be error delivered to onError", func(t *testing.T) {
		s := newTestService(t)

		errs := make(chan error, 1)
		unsubscribe := s.Query("class:test.Unknown", nil,
			func([]*core.Instance) { t.Error("unexpected result") },
			func(err error) { errs <- err },
		)
		defer unsubscribe()

		select {
		case err := <-errs:
			require.ErrorIs(err, schema.ErrUnknownClass)
		case <-time.After(waitTimeout):
			require.Fail("no error")
		}
	})

	t.Run("must be ok to subscribe after close", func(t *testing.T) {
		s := newTestService(t)
		s.Close()

		unsubscribe := s.Query(testPerson, nil, func([]*core.Instance) { t.Error("unexpected result") }, nil)
		require.Zero(s.Subscriptions())
		unsubscribe()
	})

	t.Run("should be error if tx after close", func(t *testing.T) {
		s := newTestService(t)
		s.Close()

		err := s.Tx(context.Background(), protocol.Tx{Kind: protocol.TxKind_Delete, ObjectClass: testPerson, ObjectID: "p1"})
		require.ErrorIs(err, ErrServiceClosed)
	})
}

func TestNewBackend(t *testing.T) {
	require := require.New(t)

	rt, err := core.New()
	require.NoError(err)

	t.Run("must be ok to create offline store", func(t *testing.T) {
		backend, cleanup, err := NewBackend(&config.Config{Offline: true, Store: "test", CacheDir: t.TempDir()}, rt.Registry(), nil)
		require.NoError(err)
		defer cleanup()
		require.IsType(&offline.Store{}, backend)
	})

	t.Run("must be ok to create rpc client", func(t *testing.T) {
		backend, cleanup, err := NewBackend(&config.Config{RPCURL: "http://localhost:1"}, rt.Registry(), nil)
		require.NoError(err)
		defer cleanup()
		require.IsType(&rpc.Client{}, backend)
	})

	t.Run("should be error if backing is ambiguous", func(t *testing.T) {
		_, _, err := NewBackend(&config.Config{Offline: true, Store: "test", RPCURL: "http://localhost:1"}, rt.Registry(), nil)
		require.ErrorIs(err, config.ErrAmbiguousBacking)
	})
}
