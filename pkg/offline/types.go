/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/prometheus/client_golang/prometheus"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/docmodel/pkg/objcache"
	"github.com/voedger/docmodel/pkg/schema"
)

type Params struct {
	// Directory of store files
	Dir string

	// Store name. Each store lives in its own file <Dir>/<Name>.db
	Name string

	// Size of raw document cache. DefaultMaxBytes if zero
	MaxBytes int

	// Number of decoded documents kept. DefaultDocCacheSize if zero
	DocCacheSize int

	// Cache implementation of decoded documents
	DocCacheProvider objcache.CacheProvider

	// Metrics are registered here if not nil
	Registerer prometheus.Registerer
}

// Offline document store.
//
// Documents are kept JSON encoded in a bbolt file, one bucket per domain.
// Raw values are cached by fastcache, decoded ones by an object cache.
// Returned containers are copies.
//
// # Implements:
//   - protocol.ICoreProtocol
//
// @ConcurrentAccess
type Store struct {
	name    string
	db      *bolt.DB
	domains IDomains
	raw     *fastcache.Cache
	docs    objcache.ICache[schema.DocRef, cachedDoc]
	metrics *storeMetrics

	// write versions of documents written since open. Cached decoded
	// documents of other versions are stale
	versions map[schema.DocRef]uint64

	// guards caches and versions. Writers lock exclusively
	mu sync.RWMutex
}

// Decoded document with the write version it was decoded at.
//
// Object caches may apply puts asynchronously, so a put made before a write
// can land after the write removed the key
type cachedDoc struct {
	doc     schema.Container
	version uint64
}

type storeMetrics struct {
	hits   *prometheus.CounterVec
	misses *prometheus.CounterVec
	txs    *prometheus.CounterVec
}
