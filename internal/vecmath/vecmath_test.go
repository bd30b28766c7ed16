package vecmath

import (
	"math"
	"testing"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"single", []float64{2}, []float64{3}, 6},
		{"short", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"unrolled", []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1}, 15},
		{"length mismatch uses shorter", []float64{1, 2}, []float64{1, 1, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DotProduct(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DotProduct = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotProductLong(t *testing.T) {
	n := 1023
	a := make([]float64, n)
	b := make([]float64, n)
	want := 0.0
	for i := range a {
		a[i] = float64(i % 7)
		b[i] = float64(i % 5)
		want += a[i] * b[i]
	}
	got := DotProduct(a, b)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DotProduct = %v, want %v", got, want)
	}
}

func TestAddBlocks(t *testing.T) {
	dst := make([]float64, 3)
	AddBlock(dst, []float64{1, 2, 3}, []float64{10, 20, 30})
	for i, want := range []float64{11, 22, 33} {
		if dst[i] != want {
			t.Errorf("AddBlock[%d] = %v, want %v", i, dst[i], want)
		}
	}

	AddBlockInPlace(dst, []float64{1, 1, 1})
	for i, want := range []float64{12, 23, 34} {
		if dst[i] != want {
			t.Errorf("AddBlockInPlace[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestScaleAndFill(t *testing.T) {
	dst := make([]float64, 3)
	ScaleBlock(dst, []float64{1, 2, 3}, 2.5)
	for i, want := range []float64{2.5, 5, 7.5} {
		if dst[i] != want {
			t.Errorf("ScaleBlock[%d] = %v, want %v", i, dst[i], want)
		}
	}

	FillBlock(dst, math.NaN())
	for i := range dst {
		if !math.IsNaN(dst[i]) {
			t.Errorf("FillBlock[%d] = %v, want NaN", i, dst[i])
		}
	}
}
