package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrimitiveRootKnownValue(t *testing.T) {
	// q=17 has group order 16; 3 generates the full multiplicative group
	// (verified by direct enumeration of its powers mod 17).
	require.True(t, isPrimitiveRoot(3, 16, 17))
	require.False(t, isPrimitiveRoot(2, 16, 17))
}

func TestReverseBits(t *testing.T) {
	require.Equal(t, uint64(0), reverseBits(uint64(0), 3))
	require.Equal(t, uint64(4), reverseBits(uint64(1), 3))
	require.Equal(t, uint64(1), reverseBits(uint64(4), 3))
	require.Equal(t, uint64(3), reverseBits(uint64(6), 3))
}

// orderOf computes the multiplicative order of x mod q by brute-force
// repeated multiplication, independent of isPrimitiveRoot, so it can be used
// to validate minimalPrimitiveRoot's output.
func orderOf(x, q uint64) uint64 {
	cur := x % q
	for k := uint64(1); k <= q; k++ {
		if cur == 1 {
			return k
		}
		cur = mulMod(cur, x, q)
	}
	return 0
}

func TestMinimalPrimitiveRootHasExactOrder(t *testing.T) {
	q := uint64(1000000007)
	order := uint64(2)
	root, err := minimalPrimitiveRoot(order, q)
	require.NoError(t, err)
	require.Equal(t, order, orderOf(root, q))
}

func TestMinimalPrimitiveRootForNTTSizedOrder(t *testing.T) {
	q := uint64(65537) // Fermat prime, q-1 = 2^16
	order := uint64(1024)
	root, err := minimalPrimitiveRoot(order, q)
	require.NoError(t, err)
	require.Equal(t, order, orderOf(root, q))
	require.True(t, isPrimitiveRoot(root, order, q))
}

func TestGeneratePrimitiveRootRejectsBadCongruence(t *testing.T) {
	_, err := generatePrimitiveRoot(32, 17) // 17-1=16, not divisible by 32
	require.ErrorIs(t, err, ErrBadCongruence)
}
