/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package theine

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.c.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	_ = c.c.Set(key, value, 1)
}

func (c *Cache[K, V]) Remove(key K) {
	c.c.Delete(key)
}
