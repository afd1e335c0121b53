package ring

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// reverseBits reverses the low width bits of x, matching the bit-reversed
// insertion order HEXL's ComputeRootOfUnityPowers and this package's
// Engine table construction both rely on.
func reverseBits[T constraints.Integer](x T, width int) T {
	v := uint64(x)
	var r uint64
	for i := 0; i < width; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return T(r)
}

// isPrimitiveRoot reports whether root is a primitive order-th root of
// unity mod q, for order a power of two: root^order = 1 and
// root^(order/2) = q-1.
func isPrimitiveRoot(root, order, q uint64) bool {
	if order < 2 || order&(order-1) != 0 {
		return false
	}
	if powMod(root, order, q) != 1 {
		return false
	}
	return powMod(root, order/2, q) == q-1
}

// maxPrimitiveRootTrials bounds the random search in generatePrimitiveRoot
// before it reports ErrSearchFailed.
const maxPrimitiveRootTrials = 200

// generatePrimitiveRoot finds *a* primitive order-th root of unity mod q by
// sampling random candidates and raising each to (q-1)/order, matching
// HEXL's GeneratePrimitiveRoot.
func generatePrimitiveRoot(order, q uint64) (uint64, error) {
	if order < 2 || order&(order-1) != 0 {
		return 0, fmt.Errorf("ring: generatePrimitiveRoot: order %d is not a power of two: %w", order, ErrInvalidArgument)
	}
	if (q-1)%order != 0 {
		return 0, fmt.Errorf("ring: generatePrimitiveRoot: modulus %d: %w", q, ErrBadCongruence)
	}

	exp := (q - 1) / order
	for trial := 0; trial < maxPrimitiveRootTrials; trial++ {
		candidate := 2 + rand.Uint64N(q-2)
		root := powMod(candidate, exp, q)
		if root != 0 && isPrimitiveRoot(root, order, q) {
			return root, nil
		}
	}
	return 0, fmt.Errorf("ring: generatePrimitiveRoot(order=%d, q=%d): %w", order, q, ErrSearchFailed)
}

// minimalPrimitiveRoot finds a primitive order-th root of unity mod q and
// returns the minimal element of its cyclic orbit that is itself still a
// primitive order-th root, following HEXL's MinimalPrimitiveRoot: multiply
// by the generator repeatedly and sweep the orbit for the minimum.
func minimalPrimitiveRoot(order, q uint64) (uint64, error) {
	root, err := generatePrimitiveRoot(order, q)
	if err != nil {
		return 0, err
	}

	min := root
	cur := root
	for k := uint64(2); k < order; k++ {
		cur = mulMod(cur, root, q)
		if cur < min && isPrimitiveRoot(cur, order, q) {
			min = cur
		}
	}
	return min, nil
}
