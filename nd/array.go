package nd

import (
	"errors"
	"fmt"
)

// Errors returned by array constructors and shape-changing operations.
var (
	ErrInvalidShape  = errors.New("nd: invalid shape")
	ErrLengthNotFit  = errors.New("nd: data length does not match shape")
	ErrShapeMismatch = errors.New("nd: shape mismatch")
)

// Array is a dense N-dimensional array of float64 values in row-major order.
type Array struct {
	shape   Shape
	strides []int
	data    []float64
}

// New returns a zero-filled array of the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	s := shape.Clone()
	return &Array{
		shape:   s,
		strides: s.Strides(),
		data:    make([]float64, s.NumElements()),
	}, nil
}

// FromSlice returns an array wrapping a copy of data with the given shape.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrLengthNotFit, len(data), shape)
	}
	copy(a.data, data)
	return a, nil
}

// FromInts returns an array built from integer data, converted to float64.
// This is the integer entry point: once constructed, all arithmetic on the
// array (including convolution with floating-point kernels) is float64.
func FromInts(data []int, shape Shape) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrLengthNotFit, len(data), shape)
	}
	for i, v := range data {
		a.data[i] = float64(v)
	}
	return a, nil
}

// Full returns an array of the given shape with every element set to value.
func Full(shape Shape, value float64) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Shape returns the array's shape. The returned slice must not be modified.
func (a *Array) Shape() Shape { return a.shape }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Strides returns the row-major strides. The returned slice must not be
// modified.
func (a *Array) Strides() []int { return a.strides }

// NumElements returns the total element count.
func (a *Array) NumElements() int { return len(a.data) }

// Data returns the backing slice in row-major order. Mutations are visible
// to the array.
func (a *Array) Data() []float64 { return a.data }

// Offset returns the flat index of the element at idx.
// It panics if the index has the wrong rank or is out of range.
func (a *Array) Offset(idx ...int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("nd: index rank %d for array rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("nd: index %d out of range [0,%d) on axis %d", x, a.shape[i], i))
		}
		off += x * a.strides[i]
	}
	return off
}

// At returns the element at idx. It panics on out-of-range indices.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.Offset(idx...)]
}

// Set stores v at idx. It panics on out-of-range indices.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.Offset(idx...)] = v
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	c := &Array{
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		data:    make([]float64, len(a.data)),
	}
	copy(c.data, a.data)
	return c
}

// Reshape returns a view of the array with a new shape. The new shape must
// describe the same number of elements; data is shared with the receiver.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if shape.NumElements() != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShapeMismatch, a.shape, shape)
	}
	s := shape.Clone()
	return &Array{shape: s, strides: s.Strides(), data: a.data}, nil
}
