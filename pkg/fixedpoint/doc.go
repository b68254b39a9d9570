// Package fixedpoint implements binary fixed-point values on top of the
// native signed integer types.
//
// A Value[T] stores a raw two's-complement integer of type T whose low
// FracBits bits hold the fractional part, so the represented number is
// raw / 2^FracBits. The fractional-bit count is chosen through a QFormat,
// which rejects configurations without room for the sign bit:
//
//	q8 := fixedpoint.MustQFormat[int32](8)
//	x := q8.New(384) // 1.5
//	fmt.Println(x)   // 1.5
//
// Operands may carry different fractional-bit counts. Add and Sub align to
// the larger count, Mul adds the counts and Div subtracts the divisor's
// count from the dividend's.
//
// Known limitations:
//
//   - Arithmetic wraps silently on overflow of the storage type. Mul is the
//     usual culprit since the raw operands are multiplied in the native width.
//   - Rendering is float-free and truncating. Each fractional bit contributes
//     10^P / 2^k with P fixed per storage width, so values with many
//     fractional bits may print slightly below their exact value. Use
//     Value.Decimal when the exact value is needed.
//   - Values cannot be parsed back from their text form.
package fixedpoint
