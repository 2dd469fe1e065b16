/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imcache

import "github.com/erni27/imcache"

// Unbounded cache implemented by imcache. Values never expire
type Cache[K comparable, V any] struct {
	cache *imcache.Cache[K, V]
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{cache: imcache.New[K, V]()}
}
