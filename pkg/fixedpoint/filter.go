package fixedpoint

type Tester[T Storage] func(value Value[T]) bool

func PositiveTester[T Storage](value Value[T]) bool {
	return value.Sign() > 0
}

func NegativeTester[T Storage](value Value[T]) bool {
	return value.Sign() < 0
}

func ZeroTester[T Storage](value Value[T]) bool {
	return value.IsZero()
}

func Filter[T Storage](values []Value[T], f Tester[T]) (slice []Value[T]) {
	for _, v := range values {
		if f(v) {
			slice = append(slice, v)
		}
	}
	return slice
}
