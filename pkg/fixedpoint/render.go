package fixedpoint

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// String renders v as "<sign><int>.<frac>". See AppendText.
func (v Value[T]) String() string {
	b, _ := v.AppendText(make([]byte, 0, 24))
	return string(b)
}

// WriteTo writes the text form of v to w.
func (v Value[T]) WriteTo(w io.Writer) (int64, error) {
	b, _ := v.AppendText(make([]byte, 0, 24))
	n, err := w.Write(b)
	return int64(n), err
}

// Format implements fmt.Formatter. %v, %s and %q use the text form, %d
// prints the raw integer.
func (v Value[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
		fmt.Fprintf(s, fmt.FormatString(s, verb), v.String())
	case 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), int64(v.raw))
	default:
		fmt.Fprintf(s, "%%!%c(fixedpoint.Value=%s)", verb, v.String())
	}
}

// AppendText appends the decimal rendering of v to b without using floating
// point. The fractional digits are accumulated bit by bit: every fractional
// bit that counts toward the magnitude adds 10^P >> (FracBits - i), P being
// the precision of the storage width. Negative values are read in two's
// complement, so their clear bits count and the accumulator starts at one
// unit in the last fractional place. Each term truncates, which bounds the
// accuracy of the output.
func (v Value[T]) AppendText(b []byte) ([]byte, error) {
	prec, unit := decimalPrecision[T]()
	f := uint(v.fracBits)
	negative := v.raw < 0

	// arithmetic shift floors, the +1 moves negatives back toward zero
	intPart := int64(v.raw >> f)
	acc := new(uint256.Int)
	if negative {
		intPart++
		acc.Rsh(unit, f)
	}

	bits := uint64(v.raw)
	term := new(uint256.Int)
	for i := uint(0); i < f; i++ {
		set := bits>>i&1 == 1
		if set != negative {
			acc.Add(acc, term.Rsh(unit, f-i))
		}
	}

	if negative && intPart >= 0 {
		b = append(b, '-')
	}

	if acc.Eq(unit) {
		// the fraction carried into a whole unit
		if intPart < 0 {
			intPart--
		} else {
			intPart++
		}
		b = strconv.AppendInt(b, intPart, 10)
		return append(b, ".0"...), nil
	}

	b = strconv.AppendInt(b, intPart, 10)
	b = append(b, '.')
	return append(b, fractionDigits(acc, prec)...), nil
}

// fractionDigits writes acc as a prec-digit decimal fraction without the
// trailing zeros, keeping at least one digit.
func fractionDigits(acc *uint256.Int, prec int) string {
	if acc.IsZero() {
		return "0"
	}
	digits := acc.Dec()
	if pad := prec - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return strings.TrimRight(digits, "0")
}
