package pad

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndconv/internal/vecmath"
	"github.com/cwbudde/algo-ndconv/nd"
)

// Errors returned by padding functions.
var (
	ErrUnknownMode = errors.New("pad: unknown padding mode")
	ErrBadPadSpec  = errors.New("pad: invalid pad specification")
)

// Mode selects how border values are generated.
type Mode int

const (
	// Constant fills the border with Options.Value.
	Constant Mode = iota

	// Replicate repeats the nearest edge value.
	Replicate

	// Symmetric mirrors values across the edge; the edge element itself is
	// repeated ([1 2 3] padded left by 2 becomes [2 1 | 1 2 3]).
	Symmetric

	// Circular wraps values around from the opposite edge.
	Circular
)

// String returns the canonical lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Replicate:
		return "replicate"
	case Symmetric:
		return "symmetric"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode for a canonical name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "constant":
		return Constant, nil
	case "replicate":
		return Replicate, nil
	case "symmetric":
		return Symmetric, nil
	case "circular":
		return Circular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Options configures padding behavior.
type Options struct {
	// Mode selects the border mode.
	Mode Mode

	// Value is the fill value for Constant mode; ignored otherwise.
	// NaN is a valid and meaningful fill value.
	Value float64
}

// DefaultOptions returns constant zero padding.
func DefaultOptions() Options {
	return Options{Mode: Constant, Value: 0}
}

func (o Options) validate() error {
	switch o.Mode {
	case Constant, Replicate, Symmetric, Circular:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
}

// Pad returns a copy of a extended by pre[i] elements before and post[i]
// elements after the data along every axis i. pre and post must have one
// entry per axis; amounts must be non-negative.
//
// All validation happens before any element is written; on error the input
// is untouched and no partial result exists.
func Pad(a *nd.Array, pre, post []int, opts Options) (*nd.Array, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rank := a.Rank()
	if rank == 0 {
		return nil, fmt.Errorf("%w: cannot pad a rank-0 array", ErrBadPadSpec)
	}
	if len(pre) != rank || len(post) != rank {
		return nil, fmt.Errorf("%w: got %d/%d amounts for rank %d",
			ErrBadPadSpec, len(pre), len(post), rank)
	}
	for i := 0; i < rank; i++ {
		if pre[i] < 0 || post[i] < 0 {
			return nil, fmt.Errorf("%w: negative amount on axis %d", ErrBadPadSpec, i)
		}
	}

	srcShape := a.Shape()
	outShape := make(nd.Shape, rank)
	for i := 0; i < rank; i++ {
		outShape[i] = srcShape[i] + pre[i] + post[i]
	}
	out, err := nd.New(outShape)
	if err != nil {
		return nil, err
	}

	// Per-axis lookup tables mapping each output position to its source
	// index, or -1 where Constant mode fills.
	lut := make([][]int, rank)
	for i := 0; i < rank; i++ {
		lut[i] = make([]int, outShape[i])
		for j := 0; j < outShape[i]; j++ {
			lut[i][j] = sourceIndex(j-pre[i], srcShape[i], opts.Mode)
		}
	}

	fillRows(out, a, lut, opts.Value)
	return out, nil
}

// sourceIndex maps a possibly out-of-range position along an axis of extent
// n to an in-range source index per mode, or -1 for constant fill.
// The folding works for offsets arbitrarily far outside [0, n).
func sourceIndex(pos, n int, mode Mode) int {
	if pos >= 0 && pos < n {
		return pos
	}
	switch mode {
	case Constant:
		return -1
	case Replicate:
		if pos < 0 {
			return 0
		}
		return n - 1
	case Circular:
		m := pos % n
		if m < 0 {
			m += n
		}
		return m
	case Symmetric:
		// The mirrored sequence has period 2n.
		m := pos % (2 * n)
		if m < 0 {
			m += 2 * n
		}
		if m < n {
			return m
		}
		return 2*n - 1 - m
	default:
		return -1
	}
}

// fillRows walks the output row by row (a row is one span of the last,
// contiguous axis) and resolves each row either to a constant fill or to
// gathered source elements. The in-range span of the last axis is a single
// copy from the source row.
func fillRows(out, src *nd.Array, lut [][]int, fill float64) {
	rank := out.Rank()
	outShape := out.Shape()
	outData := out.Data()
	srcData := src.Data()
	srcStrides := src.Strides()
	last := rank - 1
	rowLen := outShape[last]
	srcRowLen := src.Shape()[last]

	// Identity span of the last axis: contiguous run of the source row.
	idStart, idEnd := identitySpan(lut[last])

	idx := make([]int, last) // output index over the outer axes
	outOff := 0
	for {
		srcBase := 0
		constantRow := false
		for i := 0; i < last; i++ {
			s := lut[i][idx[i]]
			if s < 0 {
				constantRow = true
				break
			}
			srcBase += s * srcStrides[i]
		}

		row := outData[outOff : outOff+rowLen]
		if constantRow {
			vecmath.FillBlock(row, fill)
		} else {
			srcRow := srcData[srcBase : srcBase+srcRowLen]
			for j := 0; j < idStart; j++ {
				row[j] = gather(srcRow, lut[last][j], fill)
			}
			copy(row[idStart:idEnd], srcRow)
			for j := idEnd; j < rowLen; j++ {
				row[j] = gather(srcRow, lut[last][j], fill)
			}
		}

		outOff += rowLen
		if !increment(idx, outShape[:last]) {
			break
		}
	}
}

// identitySpan returns the half-open range of positions that map one-to-one
// onto the source row (the unpadded middle).
func identitySpan(lut []int) (start, end int) {
	start = 0
	for start < len(lut) && lut[start] != 0 {
		start++
	}
	// Every mode maps the middle identically, so the span length equals the
	// source extent wherever index 0 first appears in order.
	end = start
	for end < len(lut) && lut[end] == end-start {
		end++
	}
	return start, end
}

func gather(srcRow []float64, s int, fill float64) float64 {
	if s < 0 {
		return fill
	}
	return srcRow[s]
}

// increment advances a multi-dimensional index in row-major order.
// Returns false after the last index.
func increment(idx []int, shape nd.Shape) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}
