package vecmath

import "unsafe"

// BufferAlignment is the byte alignment guaranteed by AlignedFloat32. It
// matches the widest vector load used by any kernel (the 512-bit register
// class).
const BufferAlignment = 64

// AlignedFloat32 returns a float32 slice of length n whose backing array
// starts on a BufferAlignment-byte boundary. The capacity is clipped to n so
// an append reallocates instead of growing past the aligned region.
//
// The slice is obtained by over-allocating one alignment's worth of elements
// and slicing at the first aligned offset.
func AlignedFloat32(n int) []float32 {
	const elem = int(unsafe.Sizeof(float32(0)))

	raw := make([]float32, n+BufferAlignment/elem)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((BufferAlignment - addr%BufferAlignment) % BufferAlignment / uintptr(elem))
	return raw[off : off+n : off+n]
}

// Aligned reports whether the first element of s sits on a
// BufferAlignment-byte boundary. Empty slices are considered aligned.
func Aligned(s []float32) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%BufferAlignment == 0
}
