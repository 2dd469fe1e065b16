/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package hashicorp

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

func (c *Cache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}
