// Package vector provides the float64 vector primitives the expression
// engine orchestrates: elementwise add/subtract, scalar scaling, blending,
// and normalization helpers. The engine never owns embedding storage; it
// receives vectors from a caller-supplied lookup and combines them here.
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two vectors of different lengths
// are combined elementwise.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// ErrEmptyInput is returned by aggregate operations given no vectors.
var ErrEmptyInput = errors.New("no vectors supplied")

// Vector is a dense embedding vector.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add returns a + b elementwise.
func Add(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub returns a - b elementwise.
func Sub(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Scale returns v * factor elementwise.
func Scale(v Vector, factor float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * factor
	}
	return out
}

// AddBias returns v with bias added to every element.
func AddBias(v Vector, bias float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + bias
	}
	return out
}

// Lerp interpolates linearly between a and b: a + (b-a)*weight.
func Lerp(a, b Vector, weight float64) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*weight
	}
	return out, nil
}

// Mean returns the arithmetic mean of vs. All vectors must share a dimension.
func Mean(vs []Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyInput
	}
	weights := make([]float64, len(vs))
	for i := range weights {
		weights[i] = 1.0
	}
	return WeightedMean(vs, weights)
}

// WeightedMean returns the weighted average of vs. The weight total must be
// non-zero and len(vs) must equal len(weights).
func WeightedMean(vs []Vector, weights []float64) (Vector, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyInput
	}
	if len(vs) != len(weights) {
		return nil, fmt.Errorf("%w: %d vectors vs %d weights", ErrDimensionMismatch, len(vs), len(weights))
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil, errors.New("sum of weights must be non-zero")
	}
	acc := make(Vector, len(vs[0]))
	for i, v := range vs {
		if len(v) != len(acc) {
			return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(acc))
		}
		for j := range v {
			acc[j] += v[j] * weights[i]
		}
	}
	for j := range acc {
		acc[j] /= total
	}
	return acc, nil
}

// LayerNorm normalizes v to zero mean and unit variance. eps guards the
// denominator for near-constant vectors.
func LayerNorm(v Vector, eps float64) Vector {
	if len(v) == 0 {
		return Vector{}
	}
	mean := 0.0
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	variance := 0.0
	for _, x := range v {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(v))
	denom := math.Sqrt(variance + eps)
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = (x - mean) / denom
	}
	return out
}

// Clamp clips every element of v into [lo, hi].
func Clamp(v Vector, lo, hi float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Max(lo, math.Min(hi, x))
	}
	return out
}
