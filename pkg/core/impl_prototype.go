/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/docmodel/pkg/schema"
)

func newBasePrototype(rt *Runtime) *Prototype {
	return &Prototype{
		accessors: make(map[string]accessor),
		methods: MethodTable{
			Method_GetSession: func(self *Instance, _ ...any) (any, error) {
				return self.Session(), nil
			},
		},
		session: rt,
	}
}

func newPrototype(class schema.ClassRef, parent *Prototype) *Prototype {
	return &Prototype{
		class:     class,
		parent:    parent,
		accessors: make(map[string]accessor),
		methods:   make(MethodTable),
	}
}

// Returns class of prototype. Empty for base prototype
func (p *Prototype) Class() schema.ClassRef { return p.class }

// Returns parent prototype. Nil for base prototype
func (p *Prototype) Parent() *Prototype { return p.parent }

// Returns own (not inherited) fields, sorted
func (p *Prototype) OwnFields() []string { return slices.Clone(p.fields) }

// Returns all fields, inherited first. Each field is listed once, at the
// position of its first declaration along the chain
func (p *Prototype) Fields() []string {
	chain := make([]*Prototype, 0, 4)
	for pp := p; pp != nil; pp = pp.parent {
		chain = append(chain, pp)
	}
	res := make([]string, 0)
	seen := make(map[string]bool)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].fields {
			if !seen[f] {
				seen[f] = true
				res = append(res, f)
			}
		}
	}
	return res
}

// Returns true if field is declared by prototype or any ancestor
func (p *Prototype) HasField(field string) bool {
	_, ok := p.lookup(field)
	return ok
}

// Returns native method of prototype or nearest ancestor
func (p *Prototype) Method(name string) (Method, bool) {
	for pp := p; pp != nil; pp = pp.parent {
		if m, ok := pp.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Returns owning runtime
func (p *Prototype) Session() *Runtime {
	pp := p
	for pp.parent != nil {
		pp = pp.parent
	}
	return pp.session
}

func (p *Prototype) lookup(field string) (accessor, bool) {
	for pp := p; pp != nil; pp = pp.parent {
		if a, ok := pp.accessors[field]; ok {
			return a, true
		}
	}
	return accessor{}, false
}

// Returns cached prototype of class or builds it.
//
// Returns ErrUnknownClass if class or any ancestor is not registered,
// ErrUnknownNativeHandle if declared native handle is not registered,
// ErrUnknownType if attribute type can not be resolved.
func (rt *Runtime) Prototype(class schema.ClassRef) (*Prototype, error) {
	if p, ok := rt.prototypes.Get(class); ok {
		return p, nil
	}
	v, err, _ := rt.builds.Do(string(class), func() (any, error) {
		if p, ok := rt.prototypes.Get(class); ok {
			return p, nil
		}
		p, err := rt.buildPrototype(class)
		if err != nil {
			return nil, err
		}
		rt.prototypes.Put(class, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Prototype), nil
}

func (rt *Runtime) buildPrototype(class schema.ClassRef) (*Prototype, error) {
	d, err := rt.registry.Resolve(class)
	if err != nil {
		return nil, err
	}

	parent := rt.base
	if d.Extends != "" {
		if parent, err = rt.Prototype(d.Extends); err != nil {
			return nil, fmt.Errorf("prototype of class «%v»: %w", class, err)
		}
	}

	p := newPrototype(class, parent)
	p.fields = maps.Keys(d.Attributes)
	slices.Sort(p.fields)

	for _, name := range p.fields {
		a := d.Attributes[name]
		if strings.HasPrefix(name, schema.SystemFieldPrefix) {
			p.accessors[name] = systemAccessor(name, a.Default)
			continue
		}
		t, err := rt.TypeDescriptor(a)
		if err != nil {
			return nil, fmt.Errorf("class «%v» attribute «%s»: %w", class, name, err)
		}
		p.accessors[name] = typedAccessor(name, t)
	}

	if d.Native != "" {
		table, ok := rt.natives.Get(d.Native)
		if !ok {
			return nil, ErrNativeHandleNotFound(class, d.Native)
		}
		for name, m := range table {
			if p.HasField(name) {
				return nil, ErrNativeCollision(class, d.Native, name)
			}
			p.methods[name] = m
		}
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("prototype built: class «%v», own fields %v, methods %d", class, p.fields, len(p.methods)))
	}
	return p, nil
}

func systemAccessor(name string, def any) accessor {
	return accessor{
		get: func(i *Instance) (any, error) {
			if v, ok := i.layout[name]; ok && v != nil {
				return v, nil
			}
			return def, nil
		},
		set: func(i *Instance, v any) error {
			i.layout[name] = v
			return nil
		},
	}
}

func typedAccessor(name string, t ITypeDescriptor) accessor {
	return accessor{
		typ: t,
		get: func(i *Instance) (any, error) {
			return t.Exert(i.layout[name], i, name)
		},
		set: func(i *Instance, v any) error {
			stored, err := t.Hibernate(v)
			if err != nil {
				return fmt.Errorf("field «%s»: %w", name, err)
			}
			i.layout[name] = stored
			return nil
		},
	}
}
