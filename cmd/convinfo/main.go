// Command convinfo prints the padding and output geometry of a same-size
// N-dimensional correlation for given input and kernel shapes.
//
// Usage:
//
//	convinfo [flags]
//
// Examples:
//
//	convinfo -shape 128,128 -kernel 3,3
//	convinfo -shape 64,64,64 -kernel 5,3 -mode symmetric
//	convinfo -shape 1024 -kernel 64 -mode circular
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ndconv/nd"
	"github.com/cwbudde/algo-ndconv/nd/conv"
	"github.com/cwbudde/algo-ndconv/nd/pad"
)

func main() {
	shapeFlag := flag.String("shape", "16,16", "input shape as comma-separated extents")
	kernelFlag := flag.String("kernel", "3,3", "kernel shape as comma-separated extents")
	modeFlag := flag.String("mode", "constant", "padding mode: constant, replicate, symmetric, circular")
	fillFlag := flag.Float64("fill", 0, "fill value for constant mode")
	flag.Parse()

	if err := run(*shapeFlag, *kernelFlag, *modeFlag, *fillFlag); err != nil {
		fmt.Fprintf(os.Stderr, "convinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(shapeStr, kernelStr, modeStr string, fill float64) error {
	inShape, err := parseShape(shapeStr)
	if err != nil {
		return fmt.Errorf("bad -shape: %w", err)
	}
	kShape, err := parseShape(kernelStr)
	if err != nil {
		return fmt.Errorf("bad -kernel: %w", err)
	}
	mode, err := pad.ParseMode(modeStr)
	if err != nil {
		return err
	}

	rank := len(inShape)
	if len(kShape) > rank {
		rank = len(kShape)
	}
	in := inShape.ExtendRank(rank)
	k := kShape.ExtendRank(rank)
	pre, post := conv.SamePadding(k)

	fmt.Printf("mode: %s", mode)
	if mode == pad.Constant {
		fmt.Printf(" (fill %g)", fill)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "axis\tinput\tkernel\tpre\tpost\tpadded\toutput")
	for i := 0; i < rank; i++ {
		padded := in[i] + pre[i] + post[i]
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i, in[i], k[i], pre[i], post[i], padded, padded-k[i]+1)
	}
	return w.Flush()
}

func parseShape(s string) (nd.Shape, error) {
	parts := strings.Split(s, ",")
	shape := make(nd.Shape, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid extent %q", p)
		}
		if v <= 0 {
			return nil, fmt.Errorf("extent must be positive, got %d", v)
		}
		shape = append(shape, v)
	}
	return shape, nil
}
