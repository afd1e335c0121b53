package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheReturnsSameEngineForSameKey(t *testing.T) {
	primes, err := generatePrimes(20, 16, 1)
	require.NoError(t, err)

	c := NewCache()
	e1, err := c.Get(16, primes[0])
	require.NoError(t, err)
	e2, err := c.Get(16, primes[0])
	require.NoError(t, err)
	require.Same(t, e1, e2)
	require.Equal(t, 1, c.Len())
}

func TestCacheIsConcurrencySafe(t *testing.T) {
	primes, err := generatePrimes(20, 16, 1)
	require.NoError(t, err)

	c := NewCache()
	var wg sync.WaitGroup
	results := make([]*Engine, 32)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := c.Get(16, primes[0])
			require.NoError(t, err)
			results[i] = e
		}()
	}
	wg.Wait()

	for _, e := range results {
		require.Same(t, results[0], e)
	}
}

func TestGetEngineUsesDefaultCache(t *testing.T) {
	primes, err := generatePrimes(20, 32, 1)
	require.NoError(t, err)

	e1, err := GetEngine(32, primes[0])
	require.NoError(t, err)
	e2, err := GetEngine(32, primes[0])
	require.NoError(t, err)
	require.Same(t, e1, e2)
}
