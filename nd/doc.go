// Package nd provides dense N-dimensional arrays of float64 values.
//
// An [Array] couples a flat row-major data slice with a [Shape]. The package
// keeps the surface deliberately small: construction, element access, a few
// elementwise block operations, and order-statistics accessors. Padding and
// convolution live in the nd/pad and nd/conv subpackages.
//
// # Layout
//
// Arrays are stored row-major (C order): the last axis is contiguous in
// memory and strides decrease from the first axis to the last. Strides are
// derived from the shape and never carried independently, so every Array is
// densely packed.
//
// # Usage
//
//	a, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, nd.Shape{2, 3})
//	v := a.At(1, 2)      // 6
//	a.Set(9, 0, 0)
//
// Integer data enters through [FromInts], which converts to float64 at the
// boundary. All downstream arithmetic, including convolution with
// floating-point kernels, therefore operates on float64 throughout.
package nd
