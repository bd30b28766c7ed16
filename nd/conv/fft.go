package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// validCorrelate1DFFT computes the rank-1 valid correlation spectrally:
// correlation equals convolution with the reversed kernel, and linear
// convolution is a pointwise product after zero-padding to the FFT size.
//
// Callers must route NaN-bearing inputs to the direct path first; a single
// NaN smears across the whole spectrum and would lose its position here.
func validCorrelate1DFFT(a, k []float64) ([]float64, error) {
	n := len(a)
	m := len(k)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	af := make([]complex128, fftSize)
	kf := make([]complex128, fftSize)
	for i, v := range a {
		af[i] = complex(v, 0)
	}
	for i := 0; i < m; i++ {
		kf[i] = complex(k[m-1-i], 0)
	}

	if err := plan.Forward(af, af); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kf, kf); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range af {
		af[i] *= kf[i]
	}

	if err := plan.Inverse(af, af); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// The valid region of the full convolution with the reversed kernel
	// starts at offset m-1.
	out := make([]float64, n-m+1)
	for i := range out {
		out[i] = real(af[m-1+i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
