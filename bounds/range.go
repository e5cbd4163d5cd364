// Package bounds holds a two-valued range that picks one of its endpoints.
package bounds

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOutOfRange  = errors.New("normalized value out of range")
	ErrUnsupported = errors.New("not defined for the given inputs")
)

// A Range is only ever a pair of endpoints. Nothing is interpolated, so T
// needs nothing beyond equality, and nothing checks that Min comes before Max.
type Range[T comparable] struct {
	Min T `yaml:"min"`
	Max T `yaml:"max"`
}

func New[T comparable](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// Pick an endpoint by a normalized value in [0, 1]. Anything up to and
// including the halfway point selects Min. NaN is out of range.
func (r Range[T]) Get(normalized float64) (T, error) {
	if !(normalized >= 0 && normalized <= 1) {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "%v not in [0, 1]", normalized)
	}
	if normalized <= .5 {
		return r.Min, nil
	}
	return r.Max, nil
}

// Report whether the value is one of the endpoints. Max always counts, while
// Min only counts when includeMinAndMax is set. Every other input, including a
// value strictly between the endpoints, is unsupported and returns an error.
func (r Range[T]) Contains(value T, includeMinAndMax bool) (bool, error) {
	if (includeMinAndMax && value == r.Min) || value == r.Max {
		return true, nil
	}
	return false, errors.Wrapf(ErrUnsupported, "Contains(%v, %t) on %s", value, includeMinAndMax, r)
}

func (r Range[T]) ContainsEndpoint(value T) (bool, error) {
	return r.Contains(value, true)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
