package fixedpoint

import (
	"fmt"
)

// QFormat fixes the fractional-bit count for values stored in T.
// A QFormat obtained from NewQFormat or MustQFormat always satisfies
// FracBits() < Width().
type QFormat[T Storage] struct {
	fracBits uint8
}

func NewQFormat[T Storage](fracBits uint) (QFormat[T], error) {
	if err := checkFracBits[T](fracBits); err != nil {
		return QFormat[T]{}, err
	}
	return QFormat[T]{fracBits: uint8(fracBits)}, nil
}

// MustQFormat is like NewQFormat but panics on an invalid configuration.
// It is meant for package-level format declarations.
func MustQFormat[T Storage](fracBits uint) QFormat[T] {
	q, err := NewQFormat[T](fracBits)
	if err != nil {
		panic(err)
	}
	return q
}

// New wraps an already scaled raw integer. No conversion is applied.
func (q QFormat[T]) New(raw T) Value[T] {
	return Value[T]{raw: raw, fracBits: q.fracBits}
}

func (q QFormat[T]) Width() uint { return bitWidth[T]() }

func (q QFormat[T]) FracBits() uint { return uint(q.fracBits) }

// IntBits counts the integer bits, sign bit included.
func (q QFormat[T]) IntBits() uint { return q.Width() - q.FracBits() }

// String returns the Q notation of the format, e.g. "Q24.8".
func (q QFormat[T]) String() string {
	return fmt.Sprintf("Q%d.%d", q.IntBits(), q.FracBits())
}
