package conv

import (
	"testing"

	"github.com/cwbudde/algo-ndconv/nd"
	"github.com/cwbudde/algo-ndconv/nd/pad"
)

func benchArray(b *testing.B, shape nd.Shape) *nd.Array {
	b.Helper()
	a, err := nd.New(shape)
	if err != nil {
		b.Fatal(err)
	}
	for i := range a.Data() {
		a.Data()[i] = float64(i%17) * 0.25
	}
	return a
}

func BenchmarkSame2D(b *testing.B) {
	sizes := []struct {
		name   string
		shape  nd.Shape
		kernel nd.Shape
	}{
		{"64x64 k3x3", nd.Shape{64, 64}, nd.Shape{3, 3}},
		{"64x64 k5x5", nd.Shape{64, 64}, nd.Shape{5, 5}},
		{"256x256 k3x3", nd.Shape{256, 256}, nd.Shape{3, 3}},
	}

	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			a := benchArray(b, s.shape)
			k := benchArray(b, s.kernel)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Same(a, k, pad.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkValid1D(b *testing.B) {
	cases := []struct {
		name   string
		signal int
		kernel int
	}{
		{"direct k16", 4096, 16},
		{"direct k63", 4096, 63},
		{"fft k64", 4096, 64},
		{"fft k512", 4096, 512},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			a := benchArray(b, nd.Shape{c.signal})
			k := benchArray(b, nd.Shape{c.kernel})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Valid(a, k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
