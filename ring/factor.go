package ring

import "math/bits"

// Shift widths supported for a precomputed Shoup Factor. 64 is the
// general-purpose width used throughout this package; 32 and 52 are exposed
// for callers building a narrower reduction (52 matches the IFMA-width
// precomputation HEXL keeps alongside its 64-bit tables).
const (
	Shift32 = 32
	Shift52 = 52
	Shift64 = 64
)

// Factor is a precomputed Shoup multiplication constant for a fixed operand
// under a fixed modulus: BarrettFactor = floor(Operand*2^Shift / Modulus).
// Reduce multiplies by Operand in one pass with no division.
type Factor struct {
	Operand       uint64
	Shift         int
	Modulus       uint64
	BarrettFactor uint64
}

// NewFactor precomputes the Shoup factor for operand under modulus at the
// given shift width. operand must already be reduced mod modulus.
func NewFactor(operand uint64, shift int, modulus uint64) Factor {
	if modulus == 0 {
		panic("ring: NewFactor called with zero modulus")
	}

	var hi, lo uint64
	if shift == 64 {
		hi, lo = operand, 0
	} else {
		hi = operand >> uint(64-shift)
		lo = operand << uint(shift)
	}
	bf, _ := bits.Div64(hi, lo, modulus)

	return Factor{Operand: operand, Shift: shift, Modulus: modulus, BarrettFactor: bf}
}

// Reduce returns (f.Operand * x) mod f.Modulus.
func (f Factor) Reduce(x uint64) uint64 {
	return mulModShoup(x, f.Operand, f.BarrettFactor, f.Shift, f.Modulus)
}
