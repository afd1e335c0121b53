package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T, n uint64, bitSize int) *Engine {
	t.Helper()
	primes, err := generatePrimes(bitSize, n, 1)
	require.NoError(t, err)
	e, err := NewEngine(n, primes[0])
	require.NoError(t, err)
	return e
}

func TestNewEngineBuildsConsistentTables(t *testing.T) {
	e := testEngine(t, 16, 20)
	require.Equal(t, uint64(16), e.N())
	require.Equal(t, 4, e.LogN())

	roots := e.RootPowers()
	require.Len(t, roots, 16)
	require.Equal(t, uint64(1), roots[0])

	invRoots := e.InvRootPowers()
	require.Len(t, invRoots, 16)
	require.Equal(t, uint64(1), invRoots[0])

	require.Equal(t, uint64(1), mulMod(e.RootOfUnity(), e.InvRootOfUnity(), e.Modulus()))
}

func TestNewEngineWithRootValidation(t *testing.T) {
	_, err := NewEngineWithRoot(6, 17, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewEngineWithRoot(8, 0, 3)
	require.ErrorIs(t, err, ErrModulusIsZero)

	_, err = NewEngineWithRoot(8, 13, 3) // 13-1=12, not divisible by 16
	require.ErrorIs(t, err, ErrBadCongruence)

	_, err = NewEngineWithRoot(8, 33, 3) // 33-1=32 divisible by 16, but 33 is not prime
	require.ErrorIs(t, err, ErrNotPrime)

	_, err = NewEngineWithRoot(8, 17, 1) // 1 is never a primitive root of order > 1
	require.ErrorIs(t, err, ErrNotPrimitiveRoot)
}

func TestNewEngineWithRootAcceptsKnownRoot(t *testing.T) {
	e, err := NewEngineWithRoot(4, 17, 9)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 13, 9, 15}, e.RootPowers())
}

func TestNewEngineWithRootIsDeterministic(t *testing.T) {
	q := mustPrime(t, 20, 16)
	root, err := minimalPrimitiveRoot(32, q)
	require.NoError(t, err)

	b1, err := NewEngineWithRoot(16, q, root)
	require.NoError(t, err)
	b2, err := NewEngineWithRoot(16, q, root)
	require.NoError(t, err)

	if diff := cmp.Diff(b1.RootPowers(), b2.RootPowers()); diff != "" {
		t.Fatalf("RootPowers mismatch between two engines built from the same (n, q, root) (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(b1.InvRootPowers(), b2.InvRootPowers()); diff != "" {
		t.Fatalf("InvRootPowers mismatch between two engines built from the same (n, q, root) (-first +second):\n%s", diff)
	}
}

func mustPrime(t *testing.T, bitSize int, n uint64) uint64 {
	t.Helper()
	primes, err := generatePrimes(bitSize, n, 1)
	require.NoError(t, err)
	return primes[0]
}
