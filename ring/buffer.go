package ring

import "unsafe"

// byteAlignment is the alignment contract this package's buffers hold, the
// same boundary HEXL's AlignedVector64<T> allocates on, so that an
// external SIMD consumer reading the backing storage of an AlignedVector
// sees naturally aligned 512-bit lanes.
const byteAlignment = 64

// AlignedVector is a []uint64 whose backing array starts on a 64-byte
// boundary. Go's allocator does not expose an alignment guarantee on make,
// so NewAlignedVector over-allocates and slices into the first aligned
// uint64, the same idea Pro7ech/lattigo's ntt_standard.go relies on implicit
// natural alignment for when it reinterprets slice windows via
// unsafe.Pointer - made explicit and checkable here.
type AlignedVector struct {
	data []uint64
}

// NewAlignedVector allocates an AlignedVector of length n.
func NewAlignedVector(n int) *AlignedVector {
	const elemsPerLine = byteAlignment / 8
	raw := make([]uint64, n+elemsPerLine)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (byteAlignment - int(addr%byteAlignment)) % byteAlignment
	start := offset / 8
	return &AlignedVector{data: raw[start : start+n : start+n]}
}

// Slice returns the underlying aligned storage.
func (a *AlignedVector) Slice() []uint64 { return a.data }

// Len returns the number of elements.
func (a *AlignedVector) Len() int { return len(a.data) }

// Aligned reports whether the vector's backing storage currently starts on
// a byteAlignment boundary.
func (a *AlignedVector) Aligned() bool {
	if len(a.data) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&a.data[0]))%byteAlignment == 0
}
