package fixedpoint

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Parts(t *testing.T) {
	q8 := MustQFormat[int32](8)

	tests := []struct {
		name     string
		v        Value[int32]
		intPart  int32
		fracPart int32
	}{
		{name: "zero", v: q8.New(0), intPart: 0, fracPart: 0},
		{name: "one", v: q8.New(256), intPart: 1, fracPart: 0},
		{name: "one and a half", v: q8.New(384), intPart: 1, fracPart: 128},
		{name: "negative one and a half", v: q8.New(-384), intPart: 1, fracPart: 128},
		{name: "smallest negative step", v: q8.New(-1), intPart: 0, fracPart: 1},
		{name: "negative fraction only", v: q8.New(-200), intPart: 0, fracPart: 200},
		{name: "large", v: q8.New(1000 << 8), intPart: 1000, fracPart: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.intPart, tt.v.IntegerPart())
			assert.Equal(t, tt.fracPart, tt.v.FractionalPart())
		})
	}

	t.Run("minimum storage value", func(t *testing.T) {
		v := MustQFormat[int8](4).New(math.MinInt8)
		assert.Equal(t, int8(8), v.IntegerPart())
		assert.Equal(t, int8(0), v.FractionalPart())
	})

	t.Run("no fractional bits", func(t *testing.T) {
		v := MustQFormat[int16](0).New(-7)
		assert.Equal(t, int16(7), v.IntegerPart())
		assert.Equal(t, int16(0), v.FractionalPart())
	})
}

func TestValue_Sign(t *testing.T) {
	q := MustQFormat[int16](4)
	assert.Equal(t, 1, q.New(1).Sign())
	assert.Equal(t, -1, q.New(-1).Sign())
	assert.Equal(t, 0, q.New(0).Sign())
	assert.True(t, q.New(0).IsZero())
	assert.True(t, Value[int64]{}.IsZero())

	assert.Equal(t, int16(-24), q.New(24).Neg().Raw())
	assert.Equal(t, int16(24), q.New(-24).Abs().Raw())
	assert.Equal(t, int16(24), q.New(24).Abs().Raw())
	assert.Equal(t, uint(4), q.New(-24).Abs().FracBits())
}

func TestValue_Rescale(t *testing.T) {
	q4 := MustQFormat[int32](4)
	q8 := MustQFormat[int32](8)

	t.Run("widen", func(t *testing.T) {
		v, err := q4.New(16).Rescale(8)
		require.NoError(t, err)
		assert.True(t, v.Eq(q8.New(256)))
	})

	t.Run("narrow exact", func(t *testing.T) {
		v, err := q8.New(-384).Rescale(4)
		require.NoError(t, err)
		assert.Equal(t, int32(-24), v.Raw())
	})

	t.Run("narrow floors", func(t *testing.T) {
		v, err := q8.New(-385).Rescale(4)
		require.NoError(t, err)
		assert.Equal(t, int32(-25), v.Raw())

		v, err = q8.New(385).Rescale(4)
		require.NoError(t, err)
		assert.Equal(t, int32(24), v.Raw())
	})

	t.Run("invalid target", func(t *testing.T) {
		_, err := q8.New(1).Rescale(32)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
	})
}
