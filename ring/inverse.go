package ring

import "fmt"

// ComputeInverse writes the natural-order inverse negacyclic NTT of in
// (given in bit-reversed order) into out: a decimation-in-frequency
// Gentleman-Sande transform over the re-indexed inverse root power table,
// with the N^-1 normalization fused into the final pass. out and in may be
// the same slice; when they are not, in is copied into out first and the
// butterfly network then runs in place on out, mirroring
// ComputeForward/HEXL's aliasing rule.
//
// Every butterfly is the Harvey lazy butterfly, the same adaptation
// ComputeForward makes of tuneinsight/lattigo's invbutterfly, generalized
// to the Shoup one-multiplication form: X and Y are carried in [0, 2q)
// across levels instead of being fully reduced at every one, matching
// HEXL's InverseTransformFromBitReverse64.
//
// inputModFactor bounds the accepted input range to [0, inputModFactor*q)
// and must be 1 or 2. outputModFactor selects the produced output range: 1
// reduces every coefficient to canonical [0, q); 2 leaves them in the lazy
// [0, 2q) range the fused N^-1 multiply produces directly.
func (e *Engine) ComputeInverse(out, in []uint64, inputModFactor, outputModFactor int) error {
	if uint64(len(in)) != e.n {
		panic(fmt.Sprintf("ring: ComputeInverse: input length %d does not match degree %d", len(in), e.n))
	}
	if uint64(len(out)) != e.n {
		panic(fmt.Sprintf("ring: ComputeInverse: output length %d does not match degree %d", len(out), e.n))
	}
	if inputModFactor != 1 && inputModFactor != 2 {
		return fmt.Errorf("ring: ComputeInverse: inputModFactor %d must be 1 or 2: %w", inputModFactor, ErrInvalidArgument)
	}
	if outputModFactor != 1 && outputModFactor != 2 {
		return fmt.Errorf("ring: ComputeInverse: outputModFactor %d must be 1 or 2: %w", outputModFactor, ErrInvalidArgument)
	}

	q := e.q
	bound := uint64(inputModFactor) * q
	for i, v := range in {
		if v >= bound {
			return fmt.Errorf("ring: ComputeInverse: value %d at index %d exceeds bound %d: %w", v, i, bound, ErrInvalidArgument)
		}
	}
	copy(out, in)

	n := e.n
	twiceMod := 2 * q
	t := uint64(1)
	rootIndex := uint64(1)
	for m := n; m > 1; m >>= 1 {
		h := m >> 1
		j1 := uint64(0)
		for i := uint64(0); i < h; i++ {
			w := e.invRootPowers[rootIndex]
			wFactor := e.invRootFactors[rootIndex]
			rootIndex++
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				x := out[j]
				y := out[j+t]

				tx := x + y
				if tx >= twiceMod {
					tx -= twiceMod
				}
				ty := x + twiceMod - y

				out[j] = tx
				out[j+t] = mulModShoupLazy(ty, w, wFactor, Shift64, q)
			}
			j1 += t << 1
		}
		t <<= 1
	}

	nInv, nInvFactor := e.nInv, e.nInvFactor.BarrettFactor
	for i, v := range out {
		r := mulModShoupLazy(v, nInv, nInvFactor, Shift64, q)
		if outputModFactor == 1 && r >= q {
			r -= q
		}
		out[i] = r
	}
	return nil
}
