// Package pad extends N-dimensional arrays with border values.
//
// Four border modes are supported:
//
//   - Constant: fill with a fixed value (default 0; NaN is valid)
//   - Replicate: repeat the nearest edge value
//   - Symmetric: mirror values across the edge, edge element included
//   - Circular: wrap values around from the opposite edge
//
// Pad amounts are given per axis and independently for the leading and
// trailing side, so asymmetric padding (as required by even-length
// convolution kernels) is directly expressible. Pads wider than the source
// extent are handled in every mode.
//
// # Usage
//
//	a, _ := nd.FromSlice([]float64{1, 2, 3}, nd.Shape{3})
//	p, err := pad.Pad(a, []int{1}, []int{1}, pad.Options{Mode: pad.Replicate})
//	// p.Data() == [1 1 2 3 3]
package pad
