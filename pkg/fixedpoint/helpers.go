package fixedpoint

import (
	"github.com/pkg/errors"
)

// Sum adds the values up. The result carries the largest fractional-bit
// count among them; an empty slice sums to the zero Value.
func Sum[T Storage](values []Value[T]) (s Value[T]) {
	for _, value := range values {
		s = s.Add(value)
	}
	return s
}

// Avg divides the Sum by the number of values. The count has no fractional
// bits, so the average keeps the precision of the sum.
func Avg[T Storage](values []Value[T]) (Value[T], error) {
	maxCount := uint64(1)<<(bitWidth[T]()-1) - 1
	if uint64(len(values)) > maxCount {
		return Value[T]{}, errors.Wrapf(ErrCountOverflow, "%d values, at most %d", len(values), maxCount)
	}

	s := Sum(values)
	return s.TryDiv(Value[T]{raw: T(len(values))})
}
