/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"github.com/voedger/docmodel/pkg/memdb"
	"github.com/voedger/docmodel/pkg/objcache"
	"github.com/voedger/docmodel/pkg/schema"
)

// Document runtime: class registry, prototype cache and document store.
//
// Schema state is expected to be immutable after model load. Prototypes are
// built lazily and cached for the runtime lifetime.
type Runtime struct {
	registry   schema.IRegistry
	db         *memdb.MemDb
	natives    INativeRegistry
	types      map[schema.ClassRef]TypeFactory
	prototypes objcache.ICache[schema.ClassRef, *Prototype]
	builds     singleflight.Group
	base       *Prototype
	newID      func() schema.DocRef
}

func (rt *Runtime) Registry() schema.IRegistry { return rt.registry }

func (rt *Runtime) Db() *memdb.MemDb { return rt.db }

func (rt *Runtime) Natives() INativeRegistry { return rt.natives }

// Loads containers into document store. Class containers are registered in
// the class registry too. Last write wins per identifier.
func (rt *Runtime) LoadModel(containers []schema.Container) error {
	if err := rt.db.Load(containers); err != nil {
		return err
	}
	classes := 0
	for _, c := range containers {
		if !rt.isClassContainer(c) {
			continue
		}
		d, err := schema.ClassFromContainer(c)
		if err != nil {
			return err
		}
		if err := rt.registry.Register(d); err != nil {
			return err
		}
		classes++
	}
	logger.Verbose(fmt.Sprintf("model loaded: %d containers, %d classes", len(containers), classes))
	return nil
}

func (rt *Runtime) isClassContainer(c schema.Container) bool {
	switch cls := c.Class(); cls {
	case schema.Class_Class, schema.Class_Mixin:
		return true
	case "":
		return false
	default:
		ok, _ := rt.registry.IsAncestor(schema.Class_Class, cls)
		return ok
	}
}

// Binds container as backing store of a new instance of class.
// No data is copied.
func (rt *Runtime) Materialize(class schema.ClassRef, c schema.Container) (*Instance, error) {
	if c == nil {
		return nil, schema.EnrichError(schema.ErrSchema, "nil container for class «%v»", class)
	}
	p, err := rt.Prototype(class)
	if err != nil {
		return nil, err
	}
	return &Instance{class: class, proto: p, layout: c}, nil
}

// Materializes embedded value as its own declared class
func (rt *Runtime) Embed(c schema.Container) (*Instance, error) {
	class := c.Class()
	if class == "" {
		return nil, schema.EnrichError(schema.ErrUnknownClass, "embedded object without «%s»", schema.Field_Class)
	}
	return rt.Materialize(class, c)
}

// Returns document materialized as class as.
//
// as must be equal to the document class or to one of its ancestors; empty
// as means the document class. Returns ErrNotFound if document is absent,
// ErrUnknownClass if as is not registered, ErrClassMismatch if classes are
// incompatible.
func (rt *Runtime) GetInstance(id schema.DocRef, as schema.ClassRef) (*Instance, error) {
	c, err := rt.db.Get(id)
	if err != nil {
		return nil, err
	}
	own := c.Class()
	if as == "" {
		as = own
	}
	if as != own {
		if _, err := rt.registry.Resolve(as); err != nil {
			return nil, err
		}
		ok, err := rt.registry.IsAncestor(as, own)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, schema.EnrichError(schema.ErrClassMismatch, "document «%v» of class «%v» requested as «%v»", id, own, as)
		}
	}
	return rt.Materialize(as, c)
}

// Returns documents of exactly class which stored values match query,
// in store order
func (rt *Runtime) Find(class schema.ClassRef, query schema.Query) ([]*Instance, error) {
	p, err := rt.Prototype(class)
	if err != nil {
		return nil, err
	}
	layouts := rt.db.FindAll(class, query)
	res := make([]*Instance, len(layouts))
	for n, c := range layouts {
		res[n] = &Instance{class: class, proto: p, layout: c}
	}
	return res, nil
}

// Returns first document found by Find. ok is false if nothing is found
func (rt *Runtime) FindOne(class schema.ClassRef, query schema.Query) (inst *Instance, ok bool, err error) {
	res, err := rt.Find(class, query)
	if err != nil || len(res) == 0 {
		return nil, false, err
	}
	return res[0], true, nil
}

// Creates new document of class, writes values through class accessors and
// adds the document to store. `_id` is generated unless provided in values.
func (rt *Runtime) NewInstance(class schema.ClassRef, values map[string]any) (*Instance, error) {
	c := schema.Container{
		schema.Field_Class: string(class),
		schema.Field_ID:    string(rt.newID()),
	}
	inst, err := rt.Materialize(class, c)
	if err != nil {
		return nil, err
	}
	fields := maps.Keys(values)
	slices.Sort(fields)
	for _, f := range fields {
		if err := inst.Set(f, values[f]); err != nil {
			return nil, err
		}
	}
	if err := rt.db.Put(c); err != nil {
		return nil, err
	}
	return inst, nil
}

// Attaches mixin class to stored document without changing its class.
//
// Mixin is appended to document `_mixins` once. Mixin attributes live in
// the container namespace `$<mixin>`. Returns the namespace materialized as
// mixin class.
func (rt *Runtime) ApplyMixin(id schema.DocRef, mixin schema.ClassRef) (*Instance, error) {
	c, err := rt.db.Get(id)
	if err != nil {
		return nil, err
	}
	if _, err := rt.registry.Resolve(mixin); err != nil {
		return nil, err
	}

	list, _ := schema.AsStrings(c[schema.Field_Mixins])
	if !slices.Contains(list, string(mixin)) {
		updated := make([]string, 0, len(list)+1)
		updated = append(updated, list...)
		c[schema.Field_Mixins] = append(updated, string(mixin))
	}

	ns, ok := schema.AsContainer(c[mixinKey(mixin)])
	if !ok {
		ns = schema.Container{schema.Field_Class: string(mixin)}
		c[mixinKey(mixin)] = ns
	}
	return rt.Materialize(mixin, ns)
}
