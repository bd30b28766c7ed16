package nd

import "fmt"

// Shape describes the per-axis extents of an array, outermost axis first.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// The empty shape describes a scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate returns an error if any extent is non-positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("nd: invalid extent %d on axis %d", dim, i)
		}
	}
	return nil
}

// Equal reports whether s and other have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Strides returns the row-major strides for the shape: strides[i] is the
// element distance between neighbours along axis i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ExtendRank returns the shape extended to the given rank by appending
// singleton axes. If the shape already has rank >= r, it is returned
// unchanged.
func (s Shape) ExtendRank(r int) Shape {
	if len(s) >= r {
		return s
	}
	ext := make(Shape, r)
	copy(ext, s)
	for i := len(s); i < r; i++ {
		ext[i] = 1
	}
	return ext
}
