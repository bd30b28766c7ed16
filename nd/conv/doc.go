// Package conv provides N-dimensional cross-correlation and convolution
// over dense arrays, with valid, same and full output geometries.
//
// The primitive operation is cross-correlation (no kernel flip), matching
// the convention of most numeric and machine-learning array libraries:
//
//	out[o] = sum over kernel positions p of a[o+p] * k[p]
//
// True convolution variants (Convolve*) flip the kernel along every axis
// before correlating.
//
// # Output geometries
//
//   - [Valid]: no padding; output extent a_i − k_i + 1 per axis
//   - [Same]: the input is padded so the output shape equals the input shape
//   - [Full]: the input is padded by k_i − 1 on both sides per axis
//
// Same-mode padding is split per axis as pre = floor((k_i−1)/2) and
// post = (k_i−1) − pre. Even kernel extents therefore pad one element more
// after the data than before it, the standard centering for same-size
// outputs. The border is generated by nd/pad, so all four padding modes
// (constant, replicate, symmetric, circular) are available, not only zero
// fill.
//
// # Rank handling
//
// The lower-rank operand is silently extended with trailing singleton axes
// until both operands share a rank. [Same] returns an output with the rank
// and shape of the original input array.
//
// # Algorithm selection
//
// Correlation is computed directly, with the contiguous last axis handled
// as a dot product. Rank-1 inputs with kernels of 64 or more taps switch to
// an FFT-based path; the crossover mirrors the usual direct-versus-spectral
// break-even for one-dimensional kernels.
package conv
