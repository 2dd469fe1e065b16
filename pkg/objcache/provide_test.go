/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/docmodel/pkg/objcache"
)

func TestCacheProviders(t *testing.T) {
	for _, p := range []objcache.CacheProvider{objcache.Hashicorp, objcache.Theine, objcache.Imcache} {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			cache := objcache.NewProvider[string, int](p, 100, nil)

			_, ok := cache.Get("missed")
			require.False(ok)

			for i := 0; i < 10; i++ {
				cache.Put(fmt.Sprint(i), i)
			}
			for i := 0; i < 10; i++ {
				v, ok := cache.Get(fmt.Sprint(i))
				require.True(ok)
				require.Equal(i, v)
			}

			cache.Remove("5")
			_, ok = cache.Get("5")
			require.False(ok)
			cache.Remove("missed")
		})
	}
}

func TestLRUEviction(t *testing.T) {
	require := require.New(t)

	evicted := make([]int, 0)
	cache := objcache.New[int, string](2, func(k int, _ string) { evicted = append(evicted, k) })

	cache.Put(1, "one")
	cache.Put(2, "two")
	_, _ = cache.Get(1)
	cache.Put(3, "three")

	require.Equal([]int{2}, evicted, "least recently used must be evicted")
	_, ok := cache.Get(2)
	require.False(ok)
}

func TestUnboundedConcurrent(t *testing.T) {
	require := require.New(t)

	cache := objcache.NewUnbounded[int, int]()

	wg := sync.WaitGroup{}
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				cache.Put(w*1000+i, i)
			}
		}(w)
	}
	wg.Wait()

	for k := 0; k < 4000; k++ {
		v, ok := cache.Get(k)
		require.True(ok)
		require.Equal(k%1000, v)
	}
}
