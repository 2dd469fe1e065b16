/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package hashicorp

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	return new[K, V](size, onEvicted)
}
