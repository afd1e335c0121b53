package ring

// ReferenceForward computes the forward negacyclic NTT by direct evaluation
// rather than the fast butterfly recursion: the natural-order frequency
// index j is written to its bit-reversed slot, and
// out[reverseBits(j)] = sum_i values[i] * w^{(2j+1)i} mod q. It
// exists as a bit-for-bit oracle for testing ComputeForward and is never on
// a performance path, the same role tuneinsight/lattigo's NTTBarrett plays
// next to its fast Montgomery NTT in the same file.
func (e *Engine) ReferenceForward(values []uint64) []uint64 {
	n, q := e.n, e.q
	out := make([]uint64, n)
	for j := uint64(0); j < n; j++ {
		base := powMod(e.w, 2*j+1, q)
		acc := uint64(0)
		wPow := uint64(1)
		for i := uint64(0); i < n; i++ {
			acc = addMod(acc, mulMod(values[i], wPow, q), q)
			wPow = mulMod(wPow, base, q)
		}
		out[reverseBits(j, e.logN)] = acc
	}
	return out
}

// ReferenceInverse computes the inverse negacyclic NTT by direct evaluation,
// the exact inverse of ReferenceForward's convention: values is indexed in
// bit-reversed (frequency) order and the result is in natural order.
func (e *Engine) ReferenceInverse(values []uint64) []uint64 {
	n, q := e.n, e.q
	out := make([]uint64, n)
	for i := uint64(0); i < n; i++ {
		acc := uint64(0)
		for j := uint64(0); j < n; j++ {
			exp := (2*j + 1) * i % (2 * n)
			term := mulMod(values[reverseBits(j, e.logN)], powMod(e.wInv, exp, q), q)
			acc = addMod(acc, term, q)
		}
		out[i] = mulModShoup(acc, e.nInv, e.nInvFactor.BarrettFactor, Shift64, q)
	}
	return out
}
