/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imcache

import "github.com/erni27/imcache"

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.cache.Set(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) Remove(key K) {
	c.cache.Remove(key)
}
