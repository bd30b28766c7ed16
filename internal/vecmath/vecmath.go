// Package vecmath provides the small set of block operations used by the
// padding and convolution hot loops.
//
// Only portable implementations are provided. The per-axis spans these
// operations run over are short (kernel extents), so dispatch overhead would
// dominate any SIMD gain; the elementwise whole-array cases go through the
// external algo-vecmath module instead.
package vecmath

// DotProduct returns sum(a[i] * b[i]) over the shorter of the two slices.
// Returns 0 for empty input.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	// Four-way unrolled accumulation.
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// AddBlock computes dst[i] = a[i] + b[i].
// All slices must have the same length.
func AddBlock(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace computes dst[i] += src[i].
// Both slices must have the same length.
func AddBlockInPlace(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scale.
// Both slices must have the same length.
func ScaleBlock(dst, src []float64, scale float64) {
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// FillBlock sets every element of dst to v.
func FillBlock(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
