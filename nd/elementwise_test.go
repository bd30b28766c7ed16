package nd

import (
	"errors"
	"testing"
)

func TestMulAdd(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]float64{2, 2, 0.5, 1}, Shape{2, 2})

	m, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	for i, want := range []float64{2, 4, 1.5, 4} {
		if m.Data()[i] != want {
			t.Errorf("Mul[%d] = %v, want %v", i, m.Data()[i], want)
		}
	}

	s, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	for i, want := range []float64{3, 4, 3.5, 5} {
		if s.Data()[i] != want {
			t.Errorf("Add[%d] = %v, want %v", i, s.Data()[i], want)
		}
	}
}

func TestMulAddInPlace(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{3, 2, 1}, Shape{3})

	if err := MulInPlace(a, b); err != nil {
		t.Fatalf("MulInPlace: %v", err)
	}
	for i, want := range []float64{3, 4, 3} {
		if a.Data()[i] != want {
			t.Errorf("MulInPlace[%d] = %v, want %v", i, a.Data()[i], want)
		}
	}

	if err := AddInPlace(a, b); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	for i, want := range []float64{6, 6, 4} {
		if a.Data()[i] != want {
			t.Errorf("AddInPlace[%d] = %v, want %v", i, a.Data()[i], want)
		}
	}
}

func TestScale(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2, 3}, Shape{3})
	s, err := Scale(a, -2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	for i, want := range []float64{-2, 4, -6} {
		if s.Data()[i] != want {
			t.Errorf("Scale[%d] = %v, want %v", i, s.Data()[i], want)
		}
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a, _ := New(Shape{2, 2})
	b, _ := New(Shape{4})

	if _, err := Mul(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Mul: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := Add(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add: expected ErrShapeMismatch, got %v", err)
	}
	if err := MulInPlace(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("MulInPlace: expected ErrShapeMismatch, got %v", err)
	}
	if err := AddInPlace(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("AddInPlace: expected ErrShapeMismatch, got %v", err)
	}
}
