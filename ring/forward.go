package ring

import "fmt"

// ComputeForward writes the bit-reversed-output forward negacyclic NTT of
// in into out: a decimation-in-time Cooley-Tukey transform over the
// bit-reversed root power table. out and in may be the same slice; when
// they are not, in is copied into out first and the butterfly network then
// runs in place on out, the same result/operand aliasing rule HEXL's
// ComputeForward uses (memcpy operand into result unless they already
// alias).
//
// Every butterfly is the Harvey lazy butterfly adapted from
// tuneinsight/lattigo's ring/ntt.go butterfly (X = U+V; Y = U+2Q-V, with
// only a final exact-reduction pass), generalized here to the Shoup
// one-multiplication form: X and Y are carried in [0, 4q) across levels
// instead of being fully reduced at every one, matching HEXL's
// ForwardTransformToBitReverse64.
//
// inputModFactor bounds the accepted input range to [0, inputModFactor*q)
// and must be 1, 2 or 4. outputModFactor selects the produced output
// range: 1 reduces every coefficient to canonical [0, q); 4 leaves them in
// the lazy [0, 4q) range the butterfly network produces directly, for a
// caller that will immediately feed the result into another lazy-bounded
// kernel without paying for the reduction pass.
func (e *Engine) ComputeForward(out, in []uint64, inputModFactor, outputModFactor int) error {
	if uint64(len(in)) != e.n {
		panic(fmt.Sprintf("ring: ComputeForward: input length %d does not match degree %d", len(in), e.n))
	}
	if uint64(len(out)) != e.n {
		panic(fmt.Sprintf("ring: ComputeForward: output length %d does not match degree %d", len(out), e.n))
	}
	if inputModFactor != 1 && inputModFactor != 2 && inputModFactor != 4 {
		return fmt.Errorf("ring: ComputeForward: inputModFactor %d must be 1, 2 or 4: %w", inputModFactor, ErrInvalidArgument)
	}
	if outputModFactor != 1 && outputModFactor != 4 {
		return fmt.Errorf("ring: ComputeForward: outputModFactor %d must be 1 or 4: %w", outputModFactor, ErrInvalidArgument)
	}

	q := e.q
	bound := uint64(inputModFactor) * q
	for i, v := range in {
		if v >= bound {
			return fmt.Errorf("ring: ComputeForward: value %d at index %d exceeds bound %d: %w", v, i, bound, ErrInvalidArgument)
		}
	}
	copy(out, in)

	n := e.n
	twiceMod := 2 * q
	t := n >> 1
	for m := uint64(1); m < n; m <<= 1 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			w := e.rootPowers[m+i]
			wFactor := e.rootFactors[m+i]
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				x := out[j]
				y := out[j+t]

				tx := x
				if tx >= twiceMod {
					tx -= twiceMod
				}
				ty := mulModShoupLazy(y, w, wFactor, Shift64, q)

				out[j] = tx + ty
				out[j+t] = tx + twiceMod - ty
			}
			j1 += t << 1
		}
		t >>= 1
	}

	if outputModFactor == 1 {
		for i, v := range out {
			if v >= twiceMod {
				v -= twiceMod
			}
			if v >= q {
				v -= q
			}
			out[i] = v
		}
	}
	return nil
}
