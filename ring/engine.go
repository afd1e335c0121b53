package ring

import (
	"fmt"
	"math/bits"
)

// Degree and modulus bit-width ceilings this package accepts, matching
// HEXL's NTT::s_max_degree_bits / s_max_modulus_bits.
const (
	maxDegreeBits  = 20
	maxModulusBits = 62
)

// Engine is a fixed (N, Q) negacyclic NTT configuration: a primitive 2N-th
// root of unity (the minimal one when built by NewEngine), its inverse, their bit-reversed power
// tables, and the precomputed Shoup factors needed to multiply by those
// powers on the butterfly hot path without a division.
type Engine struct {
	n    uint64
	logN int
	q    uint64

	w    uint64
	wInv uint64
	nInv uint64

	nInvFactor Factor

	rootPowers     []uint64
	rootFactors    []uint64
	invRootPowers  []uint64
	invRootFactors []uint64
}

// NewEngine builds an Engine for degree n and modulus q, searching for a
// minimal primitive 2n-th root of unity. n must be a power of two and q
// must be prime and satisfy q = 1 (mod 2n).
func NewEngine(n, q uint64) (*Engine, error) {
	if q == 0 {
		return nil, ErrModulusIsZero
	}
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: NewEngine: degree %d is not a power of two: %w", n, ErrInvalidArgument)
	}
	root, err := minimalPrimitiveRoot(2*n, q)
	if err != nil {
		return nil, err
	}
	return NewEngineWithRoot(n, q, root)
}

// NewEngineWithRoot builds an Engine from a caller-supplied 2n-th root of
// unity, validating it is primitive before use.
func NewEngineWithRoot(n, q, root uint64) (*Engine, error) {
	if q == 0 {
		return nil, ErrModulusIsZero
	}
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: degree %d is not a power of two: %w", n, ErrInvalidArgument)
	}
	if bits.Len64(n) > maxDegreeBits+1 {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: degree %d exceeds 2^%d: %w", n, maxDegreeBits, ErrInvalidArgument)
	}
	if bits.Len64(q) > maxModulusBits {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: modulus %d exceeds %d bits: %w", q, maxModulusBits, ErrInvalidArgument)
	}
	if (q-1)%(2*n) != 0 {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: modulus %d: %w", q, ErrBadCongruence)
	}
	if !isPrime(q) {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: modulus %d: %w", q, ErrNotPrime)
	}
	if !isPrimitiveRoot(root, 2*n, q) {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: root %d: %w", root, ErrNotPrimitiveRoot)
	}

	wInv, err := inverseMod(root, q)
	if err != nil {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: root %d has no inverse mod %d: %w", root, q, err)
	}
	nInv, err := inverseMod(n, q)
	if err != nil {
		return nil, fmt.Errorf("ring: NewEngineWithRoot: degree %d has no inverse mod %d: %w", n, q, err)
	}

	e := &Engine{
		n:    n,
		logN: bits.Len64(n) - 1,
		q:    q,
		w:    root,
		wInv: wInv,
		nInv: nInv,
	}
	e.nInvFactor = NewFactor(nInv, Shift64, q)
	e.buildTables()
	return e, nil
}

// buildTables constructs the bit-reversed forward and inverse root power
// tables and their Shoup factors, following HEXL's
// NTT::ComputeRootOfUnityPowers: insert root powers at bit-reversed indices
// walking a Horner-style chain, then re-index the inverse table so level m
// of the Gentleman-Sande butterfly reads a contiguous block.
func (e *Engine) buildTables() {
	n := e.n

	rootPowers := make([]uint64, n)
	invRootOfUnityPowers := make([]uint64, n)

	rootPowers[0] = 1
	invRootOfUnityPowers[0] = 1

	var idx, prevIdx uint64
	for i := uint64(1); i < n; i++ {
		idx = reverseBits(i, e.logN)
		rootPowers[idx] = mulMod(rootPowers[prevIdx], e.w, e.q)
		inv, _ := inverseMod(rootPowers[idx], e.q)
		invRootOfUnityPowers[idx] = inv
		prevIdx = idx
	}

	invRootPowers := make([]uint64, n)
	invRootPowers[0] = invRootOfUnityPowers[0]
	pos := uint64(1)
	for m := n / 2; m > 0; m >>= 1 {
		for i := uint64(0); i < m; i++ {
			invRootPowers[pos] = invRootOfUnityPowers[m+i]
			pos++
		}
	}

	rootFactors := make([]uint64, n)
	invRootFactors := make([]uint64, n)
	for i := uint64(0); i < n; i++ {
		rootFactors[i] = NewFactor(rootPowers[i], Shift64, e.q).BarrettFactor
		invRootFactors[i] = NewFactor(invRootPowers[i], Shift64, e.q).BarrettFactor
	}

	e.rootPowers = rootPowers
	e.rootFactors = rootFactors
	e.invRootPowers = invRootPowers
	e.invRootFactors = invRootFactors
}

// N returns the transform degree.
func (e *Engine) N() uint64 { return e.n }

// LogN returns log2(N).
func (e *Engine) LogN() int { return e.logN }

// Modulus returns the prime modulus q.
func (e *Engine) Modulus() uint64 { return e.q }

// RootOfUnity returns the primitive 2N-th root of unity the Engine was built
// with: the minimal one for NewEngine, the caller's root for
// NewEngineWithRoot.
func (e *Engine) RootOfUnity() uint64 { return e.w }

// InvRootOfUnity returns the inverse of RootOfUnity mod q.
func (e *Engine) InvRootOfUnity() uint64 { return e.wInv }

// RootPowers returns a copy of the bit-reversed forward root power table.
func (e *Engine) RootPowers() []uint64 {
	out := make([]uint64, len(e.rootPowers))
	copy(out, e.rootPowers)
	return out
}

// InvRootPowers returns a copy of the re-indexed inverse root power table.
func (e *Engine) InvRootPowers() []uint64 {
	out := make([]uint64, len(e.invRootPowers))
	copy(out, e.invRootPowers)
	return out
}
