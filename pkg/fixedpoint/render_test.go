package fixedpoint

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	q0 := MustQFormat[int32](0)
	q8 := MustQFormat[int32](8)

	tests := []struct {
		name string
		v    Value[int32]
		want string
	}{
		{name: "zero", v: q8.New(0), want: "0.0"},
		{name: "zero without fractional bits", v: q0.New(0), want: "0.0"},
		{name: "one", v: q8.New(256), want: "1.0"},
		{name: "one and a half", v: q8.New(384), want: "1.5"},
		{name: "leading fractional zero", v: q8.New(272), want: "1.0625"},
		{name: "smallest step", v: q8.New(1), want: "0.00390625"},
		{name: "negative one and a half", v: q8.New(-384), want: "-1.5"},
		{name: "negative two and a half", v: q8.New(-640), want: "-2.5"},
		{name: "negative fraction only", v: q8.New(-128), want: "-0.5"},
		{name: "smallest negative step", v: q8.New(-1), want: "-0.00390625"},
		{name: "negative one carries", v: q8.New(-256), want: "-1.0"},
		{name: "negative two carries", v: q8.New(-512), want: "-2.0"},
		{name: "integer storage", v: q0.New(5), want: "5.0"},
		{name: "negative integer storage", v: q0.New(-3), want: "-3.0"},
		{name: "minus one integer storage", v: q0.New(-1), want: "-1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValue_StringPrecision(t *testing.T) {
	t.Run("int8 renders three digits", func(t *testing.T) {
		assert.Equal(t, "0.5", MustQFormat[int8](4).New(8).String())
		// 1/128 = 0.0078125 truncated to 3 digits
		assert.Equal(t, "0.007", MustQFormat[int8](7).New(1).String())
		assert.Equal(t, "-0.499", MustQFormat[int8](4).New(-8).String())
		// the truncated terms never add up to a whole unit
		assert.Equal(t, "-0.999", MustQFormat[int8](4).New(-16).String())
	})

	t.Run("int16 renders five digits", func(t *testing.T) {
		q := MustQFormat[int16](8)
		assert.Equal(t, "1.5", q.New(384).String())
		// 1/256 = 0.00390625
		assert.Equal(t, "0.0039", q.New(1).String())
	})

	t.Run("int64 renders twenty digits", func(t *testing.T) {
		assert.Equal(t, "1.5", MustQFormat[int64](8).New(384).String())
		assert.Equal(t, "0.5", MustQFormat[int64](62).New(1<<61).String())
		assert.Equal(t, "-1.0", MustQFormat[int64](20).New(-1<<20).String())
		assert.Equal(t, "0.00000095367431640625", MustQFormat[int64](20).New(1).String())
	})

	t.Run("storage extremes", func(t *testing.T) {
		assert.Equal(t, "-9223372036854775808.0", MustQFormat[int64](0).New(math.MinInt64).String())
		assert.Equal(t, "9223372036854775807.0", MustQFormat[int64](0).New(math.MaxInt64).String())
		assert.Equal(t, "-128.0", MustQFormat[int8](0).New(math.MinInt8).String())
		// -8.0, the four truncated int8 terms stop at 0.999
		assert.Equal(t, "-7.999", MustQFormat[int8](4).New(math.MinInt8).String())
	})
}

// Whenever 2^F divides 10^P every term is exact, so the rendering must match
// the exact decimal value.
func TestValue_StringMatchesDecimal(t *testing.T) {
	for f := uint(0); f <= 10; f++ {
		q := MustQFormat[int32](f)
		for raw := int32(-2100); raw <= 2100; raw += 7 {
			v := q.New(raw)
			d, err := decimal.NewFromString(v.String())
			require.NoError(t, err, v.String())
			assert.True(t, d.Equal(v.Decimal()), "raw %d with %d fractional bits: %s != %s", raw, f, v.String(), v.Decimal())
		}
	}

	for f := uint(0); f <= 5; f++ {
		q := MustQFormat[int16](f)
		for _, raw := range []int16{math.MinInt16, -1000, -33, -1, 0, 1, 31, 999, math.MaxInt16} {
			v := q.New(raw)
			d, err := decimal.NewFromString(v.String())
			require.NoError(t, err)
			assert.True(t, d.Equal(v.Decimal()), "raw %d with %d fractional bits: %s", raw, f, v.String())
		}
	}
}

func TestValue_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := MustQFormat[int32](8).New(-384).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "-1.5", buf.String())
}

func TestValue_Format(t *testing.T) {
	v := MustQFormat[int32](8).New(384)
	assert.Equal(t, "1.5", fmt.Sprintf("%v", v))
	assert.Equal(t, "1.5", fmt.Sprintf("%s", v))
	assert.Equal(t, `"1.5"`, fmt.Sprintf("%q", v))
	assert.Equal(t, "384", fmt.Sprintf("%d", v))
	assert.Equal(t, "   1.5", fmt.Sprintf("%6v", v))
	assert.Equal(t, "1.5   |", fmt.Sprintf("%-6v|", v))
	assert.Equal(t, "%!x(fixedpoint.Value=1.5)", fmt.Sprintf("%x", v))
}

func TestValue_AppendText(t *testing.T) {
	b, err := MustQFormat[int16](4).New(-24).AppendText([]byte("x="))
	require.NoError(t, err)
	assert.Equal(t, "x=-1.5", string(b))
}
