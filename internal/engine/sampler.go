package engine

import "github.com/pkg/errors"

var (
	// ErrEmptyDomain is returned when sampling from nothing.
	ErrEmptyDomain = errors.New("sample from empty domain")
	// ErrInvalidWeights flags negative weights or a length mismatch.
	ErrInvalidWeights = errors.New("invalid sample weights")
)

// SampleWeighted draws from items with probability proportional to weights.
// Items are walked in slice order. When every weight is zero the walk falls
// through to the last item.
func SampleWeighted[T any](src Source, items []T, weights []int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyDomain
	}
	if len(weights) != len(items) {
		return zero, errors.Wrapf(ErrInvalidWeights, "%d items, %d weights", len(items), len(weights))
	}
	sum := 0
	for _, w := range weights {
		if w < 0 {
			return zero, errors.Wrapf(ErrInvalidWeights, "negative weight %d", w)
		}
		sum += w
	}
	target := src.Intn(sum)
	for i, w := range weights {
		if w > target {
			return items[i], nil
		}
		target -= w
	}
	return items[len(items)-1], nil
}

// SampleUniform picks one item with equal probability.
func SampleUniform[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyDomain
	}
	return items[src.Intn(len(items))], nil
}
