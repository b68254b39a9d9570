package fixedpoint

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned when a fractional-bit count leaves no room
	// for the integer part of the storage type.
	ErrInvalidFormat = errors.New("fixedpoint: fractional bits must be less than the storage width")

	// ErrDivisionByZero is returned by the checked division helpers.
	ErrDivisionByZero = errors.New("fixedpoint: division by zero")

	// ErrCountOverflow is returned by Avg when the number of values does not
	// fit the storage type.
	ErrCountOverflow = errors.New("fixedpoint: value count overflows the storage type")

	// ErrFormatMismatch is returned when two values must share the same
	// fractional-bit count and do not.
	ErrFormatMismatch = errors.New("fixedpoint: fractional bits mismatch")
)

func checkFracBits[T Storage](fracBits uint) error {
	if width := bitWidth[T](); fracBits >= width {
		return errors.Wrapf(ErrInvalidFormat, "%d fractional bits on %d-bit storage", fracBits, width)
	}
	return nil
}
