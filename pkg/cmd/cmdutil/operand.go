package cmdutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/fixp/pkg/fixedpoint"
)

// Operand is a raw integer as typed on the command line together with its
// fractional-bit count. Only pre-scaled integers are accepted, decimal text
// like "1.5" is rejected.
type Operand struct {
	Raw      string
	FracBits uint
}

// ParseOperand accepts "RAW" or "RAW/FRAC". RAW may use a 0x, 0o or 0b
// prefix.
func ParseOperand(s string, defaultFracBits uint) (Operand, error) {
	raw, frac, found := strings.Cut(s, "/")
	if len(raw) == 0 {
		return Operand{}, errors.Errorf("empty operand %q", s)
	}

	if !found {
		return Operand{Raw: raw, FracBits: defaultFracBits}, nil
	}

	n, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return Operand{}, errors.Wrapf(err, "invalid fractional bits in operand %q", s)
	}

	return Operand{Raw: raw, FracBits: uint(n)}, nil
}

// ParseRaw parses s into the storage type T, rejecting values out of range.
func ParseRaw[T fixedpoint.Storage](s string) (T, error) {
	width := fixedpoint.QFormat[T]{}.Width()
	n, err := strconv.ParseInt(s, 0, int(width))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %d-bit raw value %q", width, s)
	}
	return T(n), nil
}

// Value builds the fixed-point value described by the operand.
func Value[T fixedpoint.Storage](op Operand) (fixedpoint.Value[T], error) {
	q, err := fixedpoint.NewQFormat[T](op.FracBits)
	if err != nil {
		return fixedpoint.Value[T]{}, err
	}

	raw, err := ParseRaw[T](op.Raw)
	if err != nil {
		return fixedpoint.Value[T]{}, err
	}

	return q.New(raw), nil
}
