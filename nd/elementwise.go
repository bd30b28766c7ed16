package nd

import (
	"github.com/cwbudde/algo-vecmath"

	ivecmath "github.com/cwbudde/algo-ndconv/internal/vecmath"
)

// Mul returns the elementwise product of a and b, which must share a shape.
func Mul(a, b *Array) (*Array, error) {
	if !a.shape.Equal(b.shape) {
		return nil, ErrShapeMismatch
	}
	out, err := New(a.shape)
	if err != nil {
		return nil, err
	}
	vecmath.MulBlock(out.data, a.data, b.data)
	return out, nil
}

// MulInPlace multiplies a elementwise by b, storing the result in a.
func MulInPlace(a, b *Array) error {
	if !a.shape.Equal(b.shape) {
		return ErrShapeMismatch
	}
	vecmath.MulBlockInPlace(a.data, b.data)
	return nil
}

// Add returns the elementwise sum of a and b, which must share a shape.
func Add(a, b *Array) (*Array, error) {
	if !a.shape.Equal(b.shape) {
		return nil, ErrShapeMismatch
	}
	out, err := New(a.shape)
	if err != nil {
		return nil, err
	}
	ivecmath.AddBlock(out.data, a.data, b.data)
	return out, nil
}

// AddInPlace adds b elementwise into a.
func AddInPlace(a, b *Array) error {
	if !a.shape.Equal(b.shape) {
		return ErrShapeMismatch
	}
	ivecmath.AddBlockInPlace(a.data, b.data)
	return nil
}

// Scale returns a copy of a with every element multiplied by s.
func Scale(a *Array, s float64) (*Array, error) {
	out, err := New(a.shape)
	if err != nil {
		return nil, err
	}
	ivecmath.ScaleBlock(out.data, a.data, s)
	return out, nil
}
