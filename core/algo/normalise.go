// Package algo has the pure scoring algorithms: normalisation, composite scoring and ranking.
package algo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when an algorithm receives input it cannot work with.
var ErrInvalidInput = errors.New("invalid input")

// MinMaxNormalise rescales values linearly so that the minimum maps to 0 and the
// maximum maps to 1. The output has the same length and order as the input,
// and the input slice is left untouched.
//
// When every value is equal the output is all zeros. Series whose range does not
// fit in a float64 are scaled by halves so the maximum still maps to 1.
func MinMaxNormalise(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot normalise an empty series", ErrInvalidInput)
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(values))
	if hi == lo {
		return out, nil
	}

	span := hi - lo
	if math.IsInf(span, 0) {
		half := hi/2 - lo/2
		for i, v := range values {
			out[i] = (v/2 - lo/2) / half
		}
		return out, nil
	}
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out, nil
}
