package fixedpoint

import (
	"github.com/pkg/errors"
)

// Add returns v + v2 using the larger of the two fractional-bit counts.
func (v Value[T]) Add(v2 Value[T]) Value[T] {
	f := max(v.fracBits, v2.fracBits)
	return Value[T]{raw: v.rescale(f).raw + v2.rescale(f).raw, fracBits: f}
}

// Sub returns v - v2 using the larger of the two fractional-bit counts.
func (v Value[T]) Sub(v2 Value[T]) Value[T] {
	f := max(v.fracBits, v2.fracBits)
	return Value[T]{raw: v.rescale(f).raw - v2.rescale(f).raw, fracBits: f}
}

// TryMul returns v * v2 with FracBits equal to the sum of both operands'
// counts. The raw product is computed in the storage width and is not
// checked for overflow.
func (v Value[T]) TryMul(v2 Value[T]) (Value[T], error) {
	f := uint(v.fracBits) + uint(v2.fracBits)
	if err := checkFracBits[T](f); err != nil {
		return Value[T]{}, errors.Wrap(err, "multiplication")
	}
	return Value[T]{raw: v.raw * v2.raw, fracBits: uint8(f)}, nil
}

// Mul is TryMul that panics when the combined fractional bits do not fit
// the storage type.
func (v Value[T]) Mul(v2 Value[T]) Value[T] {
	r, err := v.TryMul(v2)
	if err != nil {
		panic(err)
	}
	return r
}

// Div returns the truncating quotient of the raw values with FracBits equal
// to v.FracBits() - v2.FracBits(). Precision is subtracted, not preserved:
// dividing two values of the same format yields an integer.
//
// Division by a zero-valued v2 panics with the runtime's integer divide by
// zero error. Div also panics when v2 has more fractional bits than v.
func (v Value[T]) Div(v2 Value[T]) Value[T] {
	if v2.fracBits > v.fracBits {
		panic(errors.Wrapf(ErrInvalidFormat, "division of %d by %d fractional bits", v.fracBits, v2.fracBits))
	}
	return Value[T]{raw: v.raw / v2.raw, fracBits: v.fracBits - v2.fracBits}
}

// TryDiv is Div reporting failures as errors instead of panics.
func (v Value[T]) TryDiv(v2 Value[T]) (Value[T], error) {
	if v2.fracBits > v.fracBits {
		return Value[T]{}, errors.Wrapf(ErrInvalidFormat, "division of %d by %d fractional bits", v.fracBits, v2.fracBits)
	}
	if v2.raw == 0 {
		return Value[T]{}, ErrDivisionByZero
	}
	return v.Div(v2), nil
}

// Eq reports whether v and v2 have the same format and raw value. Values
// with different fractional-bit counts never compare equal; rescale first.
func (v Value[T]) Eq(v2 Value[T]) bool {
	return v.fracBits == v2.fracBits && v.raw == v2.raw
}

func (v Value[T]) Ne(v2 Value[T]) bool {
	return !v.Eq(v2)
}
