package pad_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndconv/nd"
	"github.com/cwbudde/algo-ndconv/nd/pad"
)

func ExamplePad() {
	a, _ := nd.FromSlice([]float64{1, 2, 3}, nd.Shape{3})

	for _, mode := range []pad.Mode{pad.Constant, pad.Replicate, pad.Symmetric, pad.Circular} {
		p, _ := pad.Pad(a, []int{2}, []int{2}, pad.Options{Mode: mode})
		fmt.Printf("%-9s %v\n", mode, p.Data())
	}

	// Output:
	// constant  [0 0 1 2 3 0 0]
	// replicate [1 1 1 2 3 3 3]
	// symmetric [2 1 1 2 3 3 2]
	// circular  [2 3 1 2 3 1 2]
}

func ExamplePad_asymmetric() {
	// Even-length kernels need one more element after the data than before
	// it; the two sides are independent.
	a, _ := nd.FromSlice([]float64{1, 2, 3, 4}, nd.Shape{4})
	p, _ := pad.Pad(a, []int{0}, []int{1}, pad.DefaultOptions())
	fmt.Println(p.Data())

	// Output:
	// [1 2 3 4 0]
}
