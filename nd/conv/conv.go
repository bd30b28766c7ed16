package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndconv/internal/vecmath"
	"github.com/cwbudde/algo-ndconv/nd"
	"github.com/cwbudde/algo-ndconv/nd/pad"
)

// Errors returned by correlation and convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrKernelTooLarge = errors.New("conv: kernel extent exceeds input extent in valid mode")
)

// fftKernelThreshold is the rank-1 kernel length at which the FFT path
// becomes faster than direct correlation.
const fftKernelThreshold = 64

// SamePadding returns the per-axis pre and post pad amounts that make a
// valid correlation produce an output of the same shape as its input.
//
// For every axis, pre + post == extent − 1 and pre == (extent−1)/2 with
// integer (floor) division, so even extents pad one element more after the
// data than before it.
func SamePadding(kernelShape nd.Shape) (pre, post []int) {
	pre = make([]int, len(kernelShape))
	post = make([]int, len(kernelShape))
	for i, e := range kernelShape {
		total := e - 1
		pre[i] = total / 2
		post[i] = total - pre[i]
	}
	return pre, post
}

// Valid computes the valid cross-correlation of a with k: only positions
// where the kernel fully overlaps the input contribute, so the output
// extent along axis i is a_i − k_i + 1.
//
// If the operands differ in rank, the lower-rank one is extended with
// trailing singleton axes; the output has the common (maximum) rank.
func Valid(a, k *nd.Array) (*nd.Array, error) {
	if a == nil || a.NumElements() == 0 {
		return nil, ErrEmptyInput
	}
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}

	aa, kk, err := alignRanks(a, k)
	if err != nil {
		return nil, err
	}

	aShape, kShape := aa.Shape(), kk.Shape()
	outShape := make(nd.Shape, len(aShape))
	for i := range outShape {
		outShape[i] = aShape[i] - kShape[i] + 1
		if outShape[i] <= 0 {
			return nil, fmt.Errorf("%w: axis %d has input %d, kernel %d",
				ErrKernelTooLarge, i, aShape[i], kShape[i])
		}
	}

	if len(aShape) == 1 && kShape[0] >= fftKernelThreshold && !hasNaN(aa.Data()) {
		data, err := validCorrelate1DFFT(aa.Data(), kk.Data())
		if err != nil {
			return nil, err
		}
		return nd.FromSlice(data, outShape)
	}

	out, err := nd.New(outShape)
	if err != nil {
		return nil, err
	}
	directValidTo(out, aa, kk)
	return out, nil
}

// Same computes the cross-correlation of a with k after padding a so that
// the output has exactly the shape of a. The border is generated according
// to opts; see nd/pad for the available modes.
//
// All validation happens before any padding or correlation work. The shape
// invariant (output shape == input shape) is verified, not assumed.
func Same(a, k *nd.Array, opts pad.Options) (*nd.Array, error) {
	if a == nil || a.NumElements() == 0 {
		return nil, ErrEmptyInput
	}
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}

	aa, kk, err := alignRanks(a, k)
	if err != nil {
		return nil, err
	}

	pre, post := SamePadding(kk.Shape())
	padded, err := pad.Pad(aa, pre, post, opts)
	if err != nil {
		return nil, err
	}

	out, err := Valid(padded, kk)
	if err != nil {
		return nil, err
	}
	if !out.Shape().Equal(aa.Shape()) {
		return nil, fmt.Errorf("conv: same-mode output shape %v does not match input shape %v",
			out.Shape(), aa.Shape())
	}

	// Drop the singleton axes introduced by rank alignment.
	if out.Rank() != a.Rank() {
		return out.Reshape(a.Shape().Clone())
	}
	return out, nil
}

// Full computes the cross-correlation of a with k with the input padded by
// k_i − 1 on both sides of every axis, so every partial overlap contributes.
// The output extent along axis i is a_i + k_i − 1.
func Full(a, k *nd.Array, opts pad.Options) (*nd.Array, error) {
	if a == nil || a.NumElements() == 0 {
		return nil, ErrEmptyInput
	}
	if k == nil || k.NumElements() == 0 {
		return nil, ErrEmptyKernel
	}

	aa, kk, err := alignRanks(a, k)
	if err != nil {
		return nil, err
	}

	kShape := kk.Shape()
	pre := make([]int, len(kShape))
	post := make([]int, len(kShape))
	for i, e := range kShape {
		pre[i] = e - 1
		post[i] = e - 1
	}

	padded, err := pad.Pad(aa, pre, post, opts)
	if err != nil {
		return nil, err
	}
	return Valid(padded, kk)
}

// alignRanks extends the lower-rank operand with trailing singleton axes so
// both operands share a rank. The extension cannot fail for valid arrays;
// data is shared, not copied.
func alignRanks(a, k *nd.Array) (*nd.Array, *nd.Array, error) {
	n := a.Rank()
	if k.Rank() > n {
		n = k.Rank()
	}
	aa, err := a.Reshape(a.Shape().ExtendRank(n))
	if err != nil {
		return nil, nil, err
	}
	kk, err := k.Reshape(k.Shape().ExtendRank(n))
	if err != nil {
		return nil, nil, err
	}
	return aa, kk, nil
}

// directValidTo computes the valid correlation element by element. The
// innermost (contiguous) axis is handled as a dot product; the remaining
// axes are walked with row-major odometers.
func directValidTo(out, a, k *nd.Array) {
	rank := a.Rank()
	last := rank - 1
	kShape := k.Shape()
	aStrides := a.Strides()
	kStrides := k.Strides()
	aData := a.Data()
	kData := k.Data()
	outData := out.Data()
	outShape := out.Shape()
	kLast := kShape[last]

	outIdx := make([]int, rank)
	kIdx := make([]int, last)
	pos := 0
	for {
		sum := 0.0
		for i := range kIdx {
			kIdx[i] = 0
		}
		for {
			aOff := outIdx[last]
			kOff := 0
			for i := 0; i < last; i++ {
				aOff += (outIdx[i] + kIdx[i]) * aStrides[i]
				kOff += kIdx[i] * kStrides[i]
			}
			sum += vecmath.DotProduct(aData[aOff:aOff+kLast], kData[kOff:kOff+kLast])
			if !increment(kIdx, kShape[:last]) {
				break
			}
		}
		outData[pos] = sum
		pos++
		if !increment(outIdx, outShape) {
			break
		}
	}
}

// increment advances a multi-dimensional index in row-major order.
// Returns false after the last index.
func increment(idx []int, shape nd.Shape) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

func hasNaN(data []float64) bool {
	for _, v := range data {
		if v != v {
			return true
		}
	}
	return false
}
