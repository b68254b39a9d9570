package fixedpoint

import (
	"unsafe"

	"github.com/holiman/uint256"
)

// Storage lists the native integer types a Value can be built on.
type Storage interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// decimal scale per storage width: 10^P with P = floor(log10(2^width)) + 1
var (
	scale8  = pow10(3)
	scale16 = pow10(5)
	scale32 = pow10(10)
	scale64 = pow10(20)
)

func pow10(n uint64) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(n))
}

func bitWidth[T Storage]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// decimalPrecision returns P, the number of decimal digits rendered for the
// fractional part, and the shared 10^P constant. The returned pointer must
// not be modified.
func decimalPrecision[T Storage]() (int, *uint256.Int) {
	switch bitWidth[T]() {
	case 8:
		return 3, scale8
	case 16:
		return 5, scale16
	case 32:
		return 10, scale32
	default:
		return 20, scale64
	}
}
