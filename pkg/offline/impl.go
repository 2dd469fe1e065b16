/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

func (s *Store) Name() string { return s.name }

func (s *Store) Find(ctx context.Context, class schema.ClassRef, query schema.Query) ([]schema.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := idOnly(query); ok {
		c, ok, err := s.get(id)
		if err != nil || !ok || c.Class() != class {
			return []schema.Container{}, err
		}
		return []schema.Container{c.Clone()}, nil
	}

	domain, err := s.domainOf(class)
	if err != nil {
		return nil, err
	}

	res := make([]schema.Container, 0)
	err = s.scan(domain, func(c schema.Container) {
		if c.Class() == class && query.Match(c) {
			res = append(res, c.Clone())
		}
	})
	return res, err
}

func (s *Store) FindOne(ctx context.Context, class schema.ClassRef, query schema.Query) (schema.Container, bool, error) {
	res, err := s.Find(ctx, class, query)
	if err != nil || len(res) == 0 {
		return nil, false, err
	}
	return res[0], true, nil
}

func (s *Store) Tx(ctx context.Context, tx protocol.Tx) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := tx.Normalize(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch tx.Kind {
	case protocol.TxKind_Create:
		err = s.create(tx)
	case protocol.TxKind_Update:
		err = s.update(tx)
	case protocol.TxKind_Delete:
		err = s.delete(tx)
	}
	if err != nil {
		return fmt.Errorf("offline store «%s» tx «%s»: %w", s.name, tx.ID, err)
	}

	s.metrics.txs.WithLabelValues(string(tx.Kind)).Inc()
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("offline store «%s»: %s «%v» of «%v»", s.name, tx.Kind, tx.ObjectID, tx.ObjectClass))
	}
	return nil
}

func (s *Store) LoadDomain(ctx context.Context, domain string, index string, direction protocol.Direction) ([]schema.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]schema.Container, 0)
	err := s.scan(domain, func(c schema.Container) {
		res = append(res, c.Clone())
	})
	if err != nil {
		return nil, err
	}
	protocol.SortByIndex(res, index, direction)
	return res, nil
}

// Writes containers into their domains. Last write wins per identifier
func (s *Store) Seed(containers []schema.Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(btx *bolt.Tx) error {
		for _, c := range containers {
			if c.ID() == "" {
				return schema.EnrichError(schema.ErrSchema, "container without «%s»: %v", schema.Field_ID, c)
			}
			domain, err := s.domainOf(c.Class())
			if err != nil {
				return err
			}
			if err := s.put(btx, domain, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Closes store file and drops caches
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw.Reset()
	return s.db.Close()
}

func (s *Store) create(tx protocol.Tx) error {
	domain, err := s.domainOf(tx.ObjectClass)
	if err != nil {
		return err
	}
	return s.db.Update(func(btx *bolt.Tx) error {
		return s.put(btx, domain, tx.Object)
	})
}

func (s *Store) update(tx protocol.Tx) error {
	return s.db.Update(func(btx *bolt.Tx) error {
		domain, v := s.locate(btx, tx.ObjectID)
		if v == nil {
			return schema.ErrDocNotFound(tx.ObjectID)
		}
		c, err := s.decode([]byte(tx.ObjectID), v)
		if err != nil {
			return err
		}
		c = c.Clone()
		for k, v := range tx.Attributes {
			c[k] = v
		}
		return s.put(btx, domain, c)
	})
}

func (s *Store) delete(tx protocol.Tx) error {
	return s.db.Update(func(btx *bolt.Tx) error {
		key := []byte(tx.ObjectID)
		domain, v := s.locate(btx, tx.ObjectID)
		if v == nil {
			return schema.ErrDocNotFound(tx.ObjectID)
		}
		if err := btx.Bucket([]byte(domain)).Delete(key); err != nil {
			return err
		}
		if err := btx.Bucket([]byte(idsBucketName)).Delete(key); err != nil {
			return err
		}
		s.invalidate(tx.ObjectID)
		return nil
	})
}

func (s *Store) put(btx *bolt.Tx, domain string, c schema.Container) error {
	key := []byte(c.ID())
	value, err := json.Marshal(c)
	if err != nil {
		return schema.EnrichError(schema.ErrConvert, "document «%v»: %v", c.ID(), err)
	}

	if prev := btx.Bucket([]byte(idsBucketName)).Get(key); prev != nil && string(prev) != domain {
		if b := btx.Bucket(prev); b != nil {
			if err := b.Delete(key); err != nil {
				return err
			}
		}
	}

	b, err := btx.CreateBucketIfNotExists([]byte(domain))
	if err != nil {
		return err
	}
	if err := b.Put(key, value); err != nil {
		return err
	}
	if err := btx.Bucket([]byte(idsBucketName)).Put(key, []byte(domain)); err != nil {
		return err
	}

	s.invalidate(c.ID())
	return nil
}

// Drops cached values of document. Must be called under exclusive lock
func (s *Store) invalidate(id schema.DocRef) {
	s.versions[id]++
	s.raw.Del([]byte(id))
	s.docs.Remove(id)
}

// Returns decoded document if it is cached at the current version
func (s *Store) cached(id schema.DocRef) (schema.Container, bool) {
	e, ok := s.docs.Get(id)
	if !ok || e.version != s.versions[id] {
		return nil, false
	}
	return e.doc, true
}

// Returns domain and stored value of document. Nil value if absent
func (s *Store) locate(btx *bolt.Tx, id schema.DocRef) (domain string, value []byte) {
	key := []byte(id)
	d := btx.Bucket([]byte(idsBucketName)).Get(key)
	if d == nil {
		return "", nil
	}
	b := btx.Bucket(d)
	if b == nil {
		return "", nil
	}
	return string(d), b.Get(key)
}

// Returns cached or stored document by identifier. Not a copy
func (s *Store) get(id schema.DocRef) (c schema.Container, ok bool, err error) {
	if c, ok := s.cached(id); ok {
		s.metrics.hits.WithLabelValues(cacheDecoded).Inc()
		return c, true, nil
	}
	s.metrics.misses.WithLabelValues(cacheDecoded).Inc()

	key := []byte(id)
	if v := s.raw.Get(nil, key); len(v) > 0 {
		s.metrics.hits.WithLabelValues(cacheRaw).Inc()
		c, err := s.decode(key, v)
		return c, err == nil, err
	}
	s.metrics.misses.WithLabelValues(cacheRaw).Inc()

	err = s.db.View(func(btx *bolt.Tx) error {
		_, v := s.locate(btx, id)
		if v == nil {
			return nil
		}
		s.raw.Set(key, v)
		c, err = s.decode(key, v)
		ok = err == nil
		return err
	})
	return c, ok, err
}

func (s *Store) scan(domain string, cb func(schema.Container)) error {
	return s.db.View(func(btx *bolt.Tx) error {
		b := btx.Bucket([]byte(domain))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			c, err := s.decode(k, v)
			if err != nil {
				return err
			}
			cb(c)
			return nil
		})
	})
}

// Returns decoded document from cache or decodes value and caches it
func (s *Store) decode(key, value []byte) (schema.Container, error) {
	id := schema.DocRef(key)
	if c, ok := s.cached(id); ok {
		return c, nil
	}
	c := make(schema.Container)
	if err := json.Unmarshal(value, &c); err != nil {
		return nil, errBadDocument(key, err)
	}
	s.docs.Put(id, cachedDoc{doc: c, version: s.versions[id]})
	return c, nil
}

func (s *Store) domainOf(class schema.ClassRef) (string, error) {
	if class == "" {
		return DefaultDomain, nil
	}
	domain, err := s.domains.DomainOf(class)
	if err != nil {
		return "", err
	}
	if domain == "" {
		return DefaultDomain, nil
	}
	return domain, nil
}

// Returns identifier if query is a single equality on `_id`
func idOnly(query schema.Query) (schema.DocRef, bool) {
	if len(query) != 1 {
		return "", false
	}
	v, ok := query[schema.Field_ID]
	if !ok {
		return "", false
	}
	s, ok := schema.AsString(v)
	return schema.DocRef(s), ok
}
