package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrimeKnownValues(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 7, 11, 97, 1000000007, 65537} {
		require.True(t, isPrime(p), "%d should be prime", p)
	}
	for _, c := range []uint64{0, 1, 4, 6, 9, 100, 1000000008} {
		require.False(t, isPrime(c), "%d should be composite", c)
	}
}

func TestGeneratePrimesReturnsCongruentPrimes(t *testing.T) {
	n := uint64(8)
	primes, err := generatePrimes(20, n, 4)
	require.NoError(t, err)
	require.Len(t, primes, 4)

	seen := map[uint64]bool{}
	for _, p := range primes {
		require.True(t, isPrime(p))
		require.Equal(t, uint64(1), (p-1)%(2*n))
		require.False(t, seen[p], "duplicate prime %d", p)
		seen[p] = true
	}
}

func TestGeneratePrimesRejectsNonPowerOfTwoDegree(t *testing.T) {
	_, err := generatePrimes(20, 6, 1)
	require.Error(t, err)
}
