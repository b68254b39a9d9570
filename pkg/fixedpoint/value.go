package fixedpoint

// Value is an immutable binary fixed-point number. The zero Value is 0 with
// no fractional bits.
type Value[T Storage] struct {
	raw      T
	fracBits uint8
}

func (v Value[T]) Raw() T { return v.raw }

func (v Value[T]) FracBits() uint { return uint(v.fracBits) }

func (v Value[T]) QFormat() QFormat[T] { return QFormat[T]{fracBits: v.fracBits} }

// magnitude is |raw| computed in 64 bits, so the minimum storage value keeps
// its magnitude instead of wrapping back to itself.
func (v Value[T]) magnitude() uint64 {
	if v.raw < 0 {
		return uint64(-int64(v.raw))
	}
	return uint64(v.raw)
}

// IntegerPart returns the magnitude of the integer component, truncated
// toward zero. The sign is not part of the result; check Sign or Raw.
func (v Value[T]) IntegerPart() T {
	return T(v.magnitude() >> v.fracBits)
}

// FractionalPart returns the low FracBits bits of the magnitude, a binary
// fraction in [0, 2^FracBits).
func (v Value[T]) FractionalPart() T {
	mask := uint64(1)<<v.fracBits - 1
	return T(v.magnitude() & mask)
}

func (v Value[T]) Sign() int {
	switch {
	case v.raw > 0:
		return 1
	case v.raw < 0:
		return -1
	}
	return 0
}

func (v Value[T]) IsZero() bool { return v.raw == 0 }

func (v Value[T]) Neg() Value[T] {
	return Value[T]{raw: -v.raw, fracBits: v.fracBits}
}

func (v Value[T]) Abs() Value[T] {
	if v.raw < 0 {
		return v.Neg()
	}
	return v
}

// Rescale moves v to a different fractional-bit count. Widening shifts the
// raw value left and may overflow silently; narrowing drops the low bits,
// rounding toward negative infinity.
func (v Value[T]) Rescale(fracBits uint) (Value[T], error) {
	if err := checkFracBits[T](fracBits); err != nil {
		return Value[T]{}, err
	}
	return v.rescale(uint8(fracBits)), nil
}

func (v Value[T]) rescale(fracBits uint8) Value[T] {
	if fracBits >= v.fracBits {
		return Value[T]{raw: v.raw << (fracBits - v.fracBits), fracBits: fracBits}
	}
	return Value[T]{raw: v.raw >> (v.fracBits - fracBits), fracBits: fracBits}
}
