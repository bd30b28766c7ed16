package conv

import (
	"github.com/cwbudde/algo-ndconv/nd"
	"github.com/cwbudde/algo-ndconv/nd/pad"
)

// flip returns the kernel reversed along every axis. For a dense row-major
// array this is a reversal of the flat data.
func flip(k *nd.Array) (*nd.Array, error) {
	d := k.Data()
	f := make([]float64, len(d))
	for i := range d {
		f[i] = d[len(d)-1-i]
	}
	return nd.FromSlice(f, k.Shape())
}

// ConvolveValid computes the valid true convolution of a with k: the kernel
// is flipped along every axis before correlating.
func ConvolveValid(a, k *nd.Array) (*nd.Array, error) {
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}
	kf, err := flip(k)
	if err != nil {
		return nil, err
	}
	return Valid(a, kf)
}

// ConvolveSame computes the same-size true convolution of a with k. The
// centering follows [SamePadding], so for even kernel extents the result is
// the flipped-kernel counterpart of [Same] rather than a re-centered split.
func ConvolveSame(a, k *nd.Array, opts pad.Options) (*nd.Array, error) {
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}
	kf, err := flip(k)
	if err != nil {
		return nil, err
	}
	return Same(a, kf, opts)
}

// ConvolveFull computes the full true convolution of a with k.
func ConvolveFull(a, k *nd.Array, opts pad.Options) (*nd.Array, error) {
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}
	kf, err := flip(k)
	if err != nil {
		return nil, err
	}
	return Full(a, kf, opts)
}
