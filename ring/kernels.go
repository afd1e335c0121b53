package ring

import (
	"fmt"
	"math/bits"
)

// CmpInt is one of the eight comparison predicates HEXL's CMPINT enum
// names, used by CmpAdd/CmpSubMod.
type CmpInt int

const (
	CmpEQ CmpInt = iota
	CmpLT
	CmpLE
	CmpFalse
	CmpNE
	CmpNLT
	CmpNLE
	CmpTrue
)

func (c CmpInt) apply(x, bound uint64) bool {
	switch c {
	case CmpEQ:
		return x == bound
	case CmpLT:
		return x < bound
	case CmpLE:
		return x <= bound
	case CmpFalse:
		return false
	case CmpNE:
		return x != bound
	case CmpNLT:
		return x >= bound
	case CmpNLE:
		return x > bound
	case CmpTrue:
		return true
	default:
		panic(fmt.Sprintf("ring: unknown CmpInt %d", c))
	}
}

func checkEqualLen(a, b []uint64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("ring: length mismatch: %d vs %d", len(a), len(b)))
	}
}

// checkModulus rejects any q that cannot be a modulus: every kernel in this
// file that takes a q fails with ErrInvalidArgument on q <= 1, rather than
// silently computing nonsense (q=0 would make every "mod q" reduction a
// no-op, and q=1 reduces everything to 0).
func checkModulus(q uint64) error {
	if q <= 1 {
		return fmt.Errorf("ring: modulus %d must be greater than 1: %w", q, ErrInvalidArgument)
	}
	return nil
}

// barrettMu returns the precomputed Barrett parameter floor(2^64/q) for q,
// for use with barrettReduce64. Callers compute it once per kernel call and
// reuse it across the whole vector, rather than dividing per element.
func barrettMu(q uint64) uint64 {
	mu, _ := bits.Div64(1, 0, q)
	return mu
}

// reduceInput reduces x, contractually bounded to [0, kq) for some small k,
// to canonical [0, q) form using a one-shot Barrett reduction with the
// precomputed parameter mu, rather than the division operator.
func reduceInput(x, q, mu uint64) uint64 {
	return barrettReduce64(x, q, mu)
}

// AddMod computes r[i] = (a[i]+b[i]) mod q for every i.
func AddMod(r, a, b []uint64, q uint64) error {
	checkEqualLen(a, b)
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: AddMod: %w", err)
	}
	for i := range a {
		r[i] = addMod(a[i], b[i], q)
	}
	return nil
}

// AddModScalar computes r[i] = (a[i]+scalar) mod q for every i.
func AddModScalar(r, a []uint64, scalar, q uint64) error {
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: AddModScalar: %w", err)
	}
	scalar %= q
	for i := range a {
		r[i] = addMod(a[i], scalar, q)
	}
	return nil
}

// SubMod computes r[i] = (a[i]-b[i]) mod q for every i.
func SubMod(r, a, b []uint64, q uint64) error {
	checkEqualLen(a, b)
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: SubMod: %w", err)
	}
	for i := range a {
		r[i] = subMod(a[i], b[i], q)
	}
	return nil
}

// SubModScalar computes r[i] = (a[i]-scalar) mod q for every i.
func SubModScalar(r, a []uint64, scalar, q uint64) error {
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: SubModScalar: %w", err)
	}
	scalar %= q
	for i := range a {
		r[i] = subMod(a[i], scalar, q)
	}
	return nil
}

// MultMod computes r[i] = (a[i]*b[i]) mod q for every i. inputModFactor
// bounds the accepted input range to [0, inputModFactor*q) and must be 1, 2
// or 4, matching HEXL's EltwiseMultMod dispatch table.
func MultMod(r, a, b []uint64, q uint64, inputModFactor int) error {
	checkEqualLen(a, b)
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: MultMod: %w", err)
	}
	if inputModFactor != 1 && inputModFactor != 2 && inputModFactor != 4 {
		return fmt.Errorf("ring: MultMod: inputModFactor %d must be 1, 2 or 4: %w", inputModFactor, ErrInvalidArgument)
	}
	mu := barrettMu(q)
	for i := range a {
		x := reduceInput(a[i], q, mu)
		y := reduceInput(b[i], q, mu)
		r[i] = mulMod(x, y, q)
	}
	return nil
}

// MultModScalar computes r[i] = (a[i]*scalar) mod q for every i using a
// single precomputed Shoup factor shared across the whole vector - the
// common case of multiplying a polynomial by one constant.
func MultModScalar(r, a []uint64, scalar, q uint64, inputModFactor int) error {
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: MultModScalar: %w", err)
	}
	if inputModFactor != 1 && inputModFactor != 2 && inputModFactor != 4 {
		return fmt.Errorf("ring: MultModScalar: inputModFactor %d must be 1, 2 or 4: %w", inputModFactor, ErrInvalidArgument)
	}
	mu := barrettMu(q)
	factor := NewFactor(scalar%q, Shift64, q)
	for i := range a {
		x := reduceInput(a[i], q, mu)
		r[i] = factor.Reduce(x)
	}
	return nil
}

// FMAMod computes r[i] = (a[i]*scalar + c[i]) mod q for every i.
// inputModFactor bounds a[i] to [0, inputModFactor*q) and must be one of
// 1, 2, 4 or 8, matching HEXL's EltwiseFMAMod dispatch table. c may be nil,
// in which case r[i] = (a[i]*scalar) mod q.
func FMAMod(r, a []uint64, scalar uint64, c []uint64, q uint64, inputModFactor int) error {
	checkEqualLen(a, r)
	if c != nil {
		checkEqualLen(a, c)
	}
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: FMAMod: %w", err)
	}
	switch inputModFactor {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("ring: FMAMod: inputModFactor %d must be 1, 2, 4 or 8: %w", inputModFactor, ErrInvalidArgument)
	}

	mu := barrettMu(q)
	factor := NewFactor(scalar%q, Shift64, q)
	for i := range a {
		x := reduceInput(a[i], q, mu)
		v := factor.Reduce(x)
		if c != nil {
			v = addMod(v, reduceInput(c[i], q, mu), q)
		}
		r[i] = v
	}
	return nil
}

// ReduceMod reduces every element of a from [0, inputModFactor*q) down to
// [0, outputModFactor*q), writing the result to r. inputModFactor must be
// one of 1, 2 or 4 and outputModFactor must be 1 or 2, with
// outputModFactor <= inputModFactor.
func ReduceMod(r, a []uint64, q uint64, inputModFactor, outputModFactor int) error {
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: ReduceMod: %w", err)
	}
	switch inputModFactor {
	case 1, 2, 4:
	default:
		return fmt.Errorf("ring: ReduceMod: inputModFactor %d must be 1, 2 or 4: %w", inputModFactor, ErrInvalidArgument)
	}
	switch outputModFactor {
	case 1, 2:
	default:
		return fmt.Errorf("ring: ReduceMod: outputModFactor %d must be 1 or 2: %w", outputModFactor, ErrInvalidArgument)
	}
	if outputModFactor > inputModFactor {
		return fmt.Errorf("ring: ReduceMod: outputModFactor %d exceeds inputModFactor %d: %w", outputModFactor, inputModFactor, ErrInvalidArgument)
	}

	mu := barrettMu(q)
	outBound := uint64(outputModFactor) * q
	for i, v := range a {
		v = reduceInput(v, q, mu)
		for v >= outBound {
			v -= q
		}
		r[i] = v
	}
	return nil
}

// CmpAdd computes, for every i: r[i] = a[i]+diff if cmp(a[i], bound), else
// r[i] = a[i]. It performs no modular reduction, matching HEXL's
// non-modular EltwiseCmpAdd. It returns an error
// only to keep a uniform signature with its sibling kernels in this file;
// it has no modulus to violate.
func CmpAdd(r, a []uint64, cmp CmpInt, bound, diff uint64) error {
	checkEqualLen(a, r)
	for i, v := range a {
		if cmp.apply(v, bound) {
			v += diff
		}
		r[i] = v
	}
	return nil
}

// CmpSubMod computes, for every i: op := a[i] mod q; if cmp(a[i], bound)
// then r[i] = (op-diff) mod q, else r[i] = op. The comparison is evaluated
// against the unreduced a[i], matching HEXL's EltwiseCmpSubMod.
func CmpSubMod(r, a []uint64, cmp CmpInt, bound, diff, q uint64) error {
	checkEqualLen(a, r)
	if err := checkModulus(q); err != nil {
		return fmt.Errorf("ring: CmpSubMod: %w", err)
	}
	diff %= q
	for i, v := range a {
		hit := cmp.apply(v, bound)
		op := v % q
		if hit {
			op = subMod(op, diff, q)
		}
		r[i] = op
	}
	return nil
}
