package ring

import (
	"fmt"
	"math/bits"
)

// millerRabinWitnesses is a fixed witness set deterministic for every
// uint64 candidate (HEXL's IsPrime uses the same twelve witnesses).
var millerRabinWitnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// isPrime reports whether n is prime using deterministic Miller-Rabin over
// millerRabinWitnesses.
func isPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}

	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}

	for _, a := range millerRabinWitnesses {
		if a >= n {
			continue
		}
		if !millerRabinRound(n, d, r, a) {
			return false
		}
	}
	return true
}

func millerRabinRound(n, d uint64, r int, a uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// maxPrimeSearchTrials bounds how many candidates generatePrimes will walk
// before giving up and reporting ErrNotEnoughPrimes.
const maxPrimeSearchTrials = 1 << 20

// generatePrimes returns count distinct primes p with 2^bitSize < p <
// 2^(bitSize+1) (so bitSize+1 bits each) satisfying p = 1 (mod 2*n),
// walking candidates p = 2^bitSize+1, +2n, +2n, ... exactly as HEXL's
// GeneratePrimes and tuneinsight/lattigo's GenerateNTTPrime/GeneratePrimesList
// do. It reports ErrNotEnoughPrimes when that window runs out first.
func generatePrimes(bitSize int, n uint64, count int) ([]uint64, error) {
	if bitSize <= 0 || bitSize > 62 {
		return nil, fmt.Errorf("ring: generatePrimes: bitSize %d out of range: %w", bitSize, ErrInvalidArgument)
	}
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: generatePrimes: n %d is not a power of two: %w", n, ErrInvalidArgument)
	}
	if count <= 0 {
		return nil, fmt.Errorf("ring: generatePrimes: count %d must be positive: %w", count, ErrInvalidArgument)
	}

	step := 2 * n
	candidate := (uint64(1) << uint(bitSize)) + 1

	primes := make([]uint64, 0, count)
	for trials := 0; trials < maxPrimeSearchTrials && len(primes) < count; trials++ {
		if bits.Len64(candidate) > bitSize+1 {
			break
		}
		if isPrime(candidate) {
			primes = append(primes, candidate)
		}
		candidate += step
	}

	if len(primes) < count {
		return nil, fmt.Errorf("ring: generatePrimes(bitSize=%d, n=%d, count=%d): found %d: %w", bitSize, n, count, len(primes), ErrNotEnoughPrimes)
	}
	return primes, nil
}
