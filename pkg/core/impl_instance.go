/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"fmt"

	"github.com/voedger/docmodel/pkg/schema"
)

// Returns class the instance is materialized as
func (i *Instance) Class() schema.ClassRef { return i.class }

// Returns document identifier from backing container
func (i *Instance) ID() schema.DocRef { return i.layout.ID() }

// Returns backing container. Writes into it are visible through the instance
func (i *Instance) Container() schema.Container { return i.layout }

// Returns class prototype
func (i *Instance) Prototype() *Prototype { return i.proto }

// Returns owning runtime
func (i *Instance) Session() *Runtime { return i.proto.Session() }

// Returns all fields of the instance class, inherited first
func (i *Instance) Fields() []string { return i.proto.Fields() }

// Reads field through its accessor.
//
// Returns ErrNotFound if field is not declared by the class or its ancestors
func (i *Instance) Get(field string) (any, error) {
	a, ok := i.proto.lookup(field)
	if !ok {
		return nil, ErrFieldNotFound(i.class, field)
	}
	return a.get(i)
}

// Writes field through its accessor.
//
// Returns ErrNotFound if field is not declared by the class or its ancestors,
// ErrConvert if value can not be hibernated
func (i *Instance) Set(field string, value any) error {
	a, ok := i.proto.lookup(field)
	if !ok {
		return ErrFieldNotFound(i.class, field)
	}
	return a.set(i, value)
}

// Calls native method of the instance class or its ancestors
func (i *Instance) Call(method string, args ...any) (any, error) {
	m, ok := i.proto.Method(method)
	if !ok {
		return nil, ErrMethodNotFound(i.class, method)
	}
	return m(i, args...)
}

// Returns document referenced by RefTo field, materialized as the reference
// target class. Untargeted references use the document own class
func (i *Instance) Deref(field string) (*Instance, error) {
	a, ok := i.proto.lookup(field)
	if !ok {
		return nil, ErrFieldNotFound(i.class, field)
	}
	ref, ok := a.typ.(*refToType)
	if !ok {
		return nil, schema.EnrichError(schema.ErrConvert, "field «%s» of class «%v» is not a reference", field, i.class)
	}
	v, err := a.get(i)
	if err != nil {
		return nil, err
	}
	id, _ := v.(schema.DocRef)
	if id == "" {
		return nil, schema.EnrichError(schema.ErrNotFound, "field «%s» of «%v» is empty", field, i.ID())
	}
	return i.Session().GetInstance(id, ref.class)
}

// Returns applied mixin list of the document
func (i *Instance) Mixins() *MixinList {
	v, err := mixinsType{}.Exert(i.layout[schema.Field_Mixins], i, schema.Field_Mixins)
	if err != nil {
		return newMixinList(nil)
	}
	return v.(*MixinList)
}

// Returns attributes of applied mixin as an instance of the mixin class.
//
// The mixin instance is bound to the mixin namespace of the same container.
// Returns ErrNotFound if mixin is not applied or its namespace is missed.
// Container is never changed.
func (i *Instance) Mixin(mixin schema.ClassRef) (*Instance, error) {
	if !i.Mixins().Contains(mixin) {
		return nil, ErrMixinNotApplied(i.ID(), mixin)
	}
	ns, ok := schema.AsContainer(i.layout[mixinKey(mixin)])
	if !ok {
		return nil, ErrMixinNamespaceMissed(i.ID(), mixin)
	}
	return i.Session().Materialize(mixin, ns)
}

func (i *Instance) String() string {
	return fmt.Sprintf("%v(%v)", i.class, i.ID())
}

func newMixinList(list []string) *MixinList {
	l := &MixinList{items: make([]schema.ClassRef, len(list))}
	for n, s := range list {
		l.items[n] = schema.ClassRef(s)
	}
	return l
}

// Returns number of applied mixins
func (l *MixinList) Len() int { return len(l.items) }

// Returns mixin by index. Panics if index is out of range
func (l *MixinList) At(n int) schema.ClassRef { return l.items[n] }

// Returns true if mixin is in the list
func (l *MixinList) Contains(mixin schema.ClassRef) bool {
	for _, m := range l.items {
		if m == mixin {
			return true
		}
	}
	return false
}

// Returns copy of the list
func (l *MixinList) All() []schema.ClassRef {
	res := make([]schema.ClassRef, len(l.items))
	copy(res, l.items)
	return res
}

func (l *MixinList) strings() []string {
	res := make([]string, len(l.items))
	for n, m := range l.items {
		res[n] = string(m)
	}
	return res
}

func mixinKey(mixin schema.ClassRef) string {
	return schema.MixinKeyPrefix + string(mixin)
}
