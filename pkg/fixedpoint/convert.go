package fixedpoint

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/image/math/fixed"
)

// Float64 converts v for diagnostics. There is no conversion in the other
// direction.
func (v Value[T]) Float64() float64 {
	return math.Ldexp(float64(v.raw), -int(v.fracBits))
}

// Decimal returns the exact value of v. Every binary fraction has a finite
// decimal expansion: raw / 2^F == raw * 5^F / 10^F.
func (v Value[T]) Decimal() decimal.Decimal {
	f := int64(v.fracBits)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(f), nil)
	n := five.Mul(five, big.NewInt(int64(v.raw)))
	return decimal.NewFromBigInt(n, -int32(f))
}

var (
	q26_6  = MustQFormat[int32](6)
	q52_12 = MustQFormat[int64](12)
)

// FromInt26_6 wraps a 26.6 value from golang.org/x/image/math/fixed.
func FromInt26_6(x fixed.Int26_6) Value[int32] {
	return q26_6.New(int32(x))
}

// ToInt26_6 rescales v to 6 fractional bits. Extra fractional bits are
// floored away.
func ToInt26_6(v Value[int32]) fixed.Int26_6 {
	return fixed.Int26_6(v.rescale(q26_6.fracBits).raw)
}

// FromInt52_12 wraps a 52.12 value from golang.org/x/image/math/fixed.
func FromInt52_12(x fixed.Int52_12) Value[int64] {
	return q52_12.New(int64(x))
}

// ToInt52_12 rescales v to 12 fractional bits.
func ToInt52_12(v Value[int64]) fixed.Int52_12 {
	return fixed.Int52_12(v.rescale(q52_12.fracBits).raw)
}
