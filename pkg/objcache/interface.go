/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

// Objects cache
//
// @ConcurrentAccess
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Removes value by key if exists. Evict callback is not guaranteed to be called
	Remove(K)
}

// Cache implementation
type CacheProvider int

const (
	// LRU cache by hashicorp/golang-lru. Size limited
	Hashicorp CacheProvider = iota

	// Hybrid cache by theine-go. Size limited
	Theine

	// Map cache by imcache. Never evicts, size is ignored
	Imcache
)

func (p CacheProvider) String() string {
	switch p {
	case Hashicorp:
		return "Hashicorp"
	case Theine:
		return "Theine"
	case Imcache:
		return "Imcache"
	}
	return "CacheProvider(?)"
}
