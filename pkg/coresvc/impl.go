/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import (
	"context"
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"

	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
	"github.com/voedger/docmodel/pkg/snapshot"
)

func (s *Service) Runtime() *core.Runtime { return s.rt }

func (s *Service) Backend() protocol.ICoreProtocol { return s.backend }

// Loads model domain of snapshot into runtime and seeds backing store with
// other domains. Seed documents are ignored if backing store can not be
// seeded
func (s *Service) Bootstrap(snap snapshot.Snapshot) error {
	if err := s.rt.LoadModel(snap.Model()); err != nil {
		return fmt.Errorf("model bootstrap: %w", err)
	}
	data := snap.Data()
	if len(data) == 0 {
		return nil
	}
	seeder, ok := s.backend.(ISeeder)
	if !ok {
		logger.Info(fmt.Sprintf("backing store can not be seeded, %d documents of domains %v ignored", len(data), snap.DataDomains()))
		return nil
	}
	if err := seeder.Seed(data); err != nil {
		return fmt.Errorf("seed bootstrap: %w", err)
	}
	logger.Info(fmt.Sprintf("bootstrap: %d model documents, %d seed documents", len(snap.Model()), len(data)))
	return nil
}

// Returns documents of exactly class as instances of class.
//
// Model domain documents are live: writes through instances are visible to
// subsequent reads. Backing store documents are copies: use Tx to change them
func (s *Service) FindInstances(ctx context.Context, class schema.ClassRef, query schema.Query) ([]*core.Instance, error) {
	model, err := s.isModel(class)
	if err != nil {
		return nil, err
	}
	if model {
		return s.rt.Find(class, query)
	}
	list, err := s.backend.Find(ctx, class, query)
	if err != nil {
		return nil, err
	}
	res := make([]*core.Instance, 0, len(list))
	for _, c := range list {
		inst, err := s.rt.Materialize(class, c)
		if err != nil {
			return nil, err
		}
		res = append(res, inst)
	}
	return res, nil
}

// Returns first document found by FindInstances. ok is false if nothing is found
func (s *Service) FindInstance(ctx context.Context, class schema.ClassRef, query schema.Query) (inst *core.Instance, ok bool, err error) {
	res, err := s.FindInstances(ctx, class, query)
	if err != nil || len(res) == 0 {
		return nil, false, err
	}
	return res[0], true, nil
}

func (s *Service) Find(ctx context.Context, class schema.ClassRef, query schema.Query) ([]schema.Container, error) {
	model, err := s.isModel(class)
	if err != nil {
		return nil, err
	}
	if !model {
		return s.backend.Find(ctx, class, query)
	}
	list, err := s.rt.Find(class, query)
	if err != nil {
		return nil, err
	}
	res := make([]schema.Container, len(list))
	for n, inst := range list {
		res[n] = inst.Container().Clone()
	}
	return res, nil
}

func (s *Service) FindOne(ctx context.Context, class schema.ClassRef, query schema.Query) (schema.Container, bool, error) {
	res, err := s.Find(ctx, class, query)
	if err != nil || len(res) == 0 {
		return nil, false, err
	}
	return res[0], true, nil
}

// Applies transaction to the store of object domain, then re-runs every
// active subscription. Class documents are rejected with ErrSchema.
// Returns ErrServiceClosed after Close
func (s *Service) Tx(ctx context.Context, tx protocol.Tx) error {
	if s.ctx.Err() != nil {
		return ErrServiceClosed
	}
	if err := tx.Normalize(); err != nil {
		return err
	}

	class := tx.ObjectClass
	if class == "" {
		if c, err := s.rt.Db().Get(tx.ObjectID); err == nil {
			class = c.Class()
		}
	}
	model := false
	if class != "" {
		var err error
		if model, err = s.isModel(class); err != nil {
			return err
		}
		if err := s.checkNotClass(class, tx.ObjectID); err != nil {
			return err
		}
	}

	var err error
	if model {
		err = s.modelTx(tx)
	} else {
		err = s.backend.Tx(ctx, tx)
	}
	if err != nil {
		return err
	}

	s.rerun()
	return nil
}

// Class documents are schema. Schema is loaded by Bootstrap only
func (s *Service) checkNotClass(class schema.ClassRef, id schema.DocRef) error {
	isClass, err := s.rt.Registry().IsAncestor(schema.Class_Class, class)
	if err != nil {
		return err
	}
	if isClass {
		return schema.EnrichError(schema.ErrSchema, "class document «%v» can not be changed by transaction", id)
	}
	return nil
}

func (s *Service) modelTx(tx protocol.Tx) error {
	switch tx.Kind {
	case protocol.TxKind_Create:
		return s.rt.Db().Put(tx.Object)
	case protocol.TxKind_Update:
		return s.rt.Db().Update(tx.ObjectID, tx.Attributes)
	}
	return s.rt.Db().Remove(tx.ObjectID)
}

// Returns all documents of domain sorted by index field
func (s *Service) LoadDomain(ctx context.Context, domain string, index string, direction protocol.Direction) ([]schema.Container, error) {
	if domain != schema.DomainModel {
		return s.backend.LoadDomain(ctx, domain, index, direction)
	}
	res := make([]schema.Container, 0)
	for _, c := range s.rt.Db().All() {
		if d, err := s.rt.Registry().DomainOf(c.Class()); err == nil && d == schema.DomainModel {
			res = append(res, c.Clone())
		}
	}
	protocol.SortByIndex(res, index, direction)
	return res, nil
}

// Subscribes to query result.
//
// Query is looked up asynchronously once on subscribe and again after every
// transaction applied through the service. onResult receives the full result
// each time. Failed lookups go to onError, or to the log if onError is nil.
//
// Subscriptions made after Close are never called.
//
// No callback is called after unsubscribe returns. Callbacks of the same
// subscription are never called concurrently and a stale result is never
// delivered after a newer one. unsubscribe must not be called from the
// callbacks of the same subscription.
func (s *Service) Query(class schema.ClassRef, query schema.Query, onResult ResultFunc, onError ErrorFunc) (unsubscribe func()) {
	sub := &subscription{
		class:    class,
		query:    query,
		onResult: onResult,
		onError:  onError,
	}

	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return func() {}
	}
	s.next++
	sub.handle = s.next
	s.subs[sub.handle] = sub
	s.mu.Unlock()

	s.lookup(sub)

	return func() { s.unsubscribe(sub) }
}

// Returns number of active subscriptions
func (s *Service) Subscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Cancels running lookups and waits for them. Subscriptions are not called
// after Close returns
func (s *Service) Close() {
	s.mu.Lock()
	s.cancel()
	subs := maps.Values(s.subs)
	s.subs = make(map[SubscriptionHandle]*subscription)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
	}
	s.wg.Wait()
}

func (s *Service) unsubscribe(sub *subscription) {
	s.mu.Lock()
	delete(s.subs, sub.handle)
	s.mu.Unlock()

	sub.cancel()
}

func (s *Service) rerun() {
	s.mu.Lock()
	subs := maps.Values(s.subs)
	s.mu.Unlock()

	if logger.IsVerbose() && len(subs) > 0 {
		logger.Verbose(fmt.Sprintf("re-running %d subscriptions", len(subs)))
	}
	for _, sub := range subs {
		s.lookup(sub)
	}
}

func (s *Service) lookup(sub *subscription) {
	seq, ok := sub.start()
	if !ok {
		return
	}

	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		res, err := s.FindInstances(s.ctx, sub.class, sub.query)
		if s.ctx.Err() != nil {
			return
		}
		sub.deliver(seq, res, err)
	}()
}

func (s *Service) isModel(class schema.ClassRef) (bool, error) {
	d, err := s.rt.Registry().DomainOf(class)
	if err != nil {
		return false, err
	}
	return d == schema.DomainModel, nil
}

// Returns sequence number of a new lookup. Not ok if cancelled
func (sub *subscription) start() (seq uint64, ok bool) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.cancelled {
		return 0, false
	}
	sub.started++
	return sub.started, true
}

func (sub *subscription) cancel() {
	sub.mu.Lock()
	sub.cancelled = true
	sub.mu.Unlock()
}

func (sub *subscription) deliver(seq uint64, res []*core.Instance, err error) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.cancelled || seq < sub.delivered {
		return
	}
	sub.delivered = seq

	if err != nil {
		if sub.onError != nil {
			sub.onError(err)
			return
		}
		logger.Error(fmt.Sprintf("query «%v» %v failed: %v", sub.class, sub.query, err))
		return
	}
	if sub.onResult != nil {
		sub.onResult(res)
	}
}
