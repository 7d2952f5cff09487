package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Reused elements are not cleared.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to their zero value.
func Zero[T any](buf []T) {
	clear(buf)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T any](dst, src []T) int {
	return copy(dst, src)
}

// SplitComplex writes the real and imaginary parts of src into re and im.
// Both destination slices must be at least len(src) long.
func SplitComplex(re, im []float64, src []complex128) {
	if len(src) == 0 {
		return
	}
	_ = re[len(src)-1]
	_ = im[len(src)-1]
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
