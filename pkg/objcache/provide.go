/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import (
	"github.com/voedger/docmodel/pkg/objcache/internal/hashicorp"
	"github.com/voedger/docmodel/pkg/objcache/internal/imcache"
	"github.com/voedger/docmodel/pkg/objcache/internal/theine"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return hashicorp.New[K, V](size, onEvicted)
}

// Creates and return new object cache implemented by specified provider.
//
// Size and onEvicted are ignored by Imcache provider, which never evicts.
func NewProvider[K comparable, V any](p CacheProvider, size int, onEvicted func(K, V)) ICache[K, V] {
	switch p {
	case Theine:
		return theine.New[K, V](size, onEvicted)
	case Imcache:
		return imcache.New[K, V]()
	}
	return hashicorp.New[K, V](size, onEvicted)
}

// Creates and return new object cache which never evicts values
func NewUnbounded[K comparable, V any]() ICache[K, V] {
	return imcache.New[K, V]()
}
