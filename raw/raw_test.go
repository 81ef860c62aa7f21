package raw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/int24/raw"
)

func TestSextPack(t *testing.T) {
	type TC struct {
		name    string
		pattern raw.Pattern
		value   int32
	}

	tcs := []TC{
		{
			name:    "zero",
			pattern: raw.Pattern{0x00, 0x00, 0x00},
			value:   0,
		},
		{
			name:    "+1",
			pattern: raw.Pattern{0x01, 0x00, 0x00},
			value:   1,
		},
		{
			name:    "-1",
			pattern: raw.Pattern{0xFF, 0xFF, 0xFF},
			value:   -1,
		},
		{
			name:    "max",
			pattern: raw.Pattern{0xFF, 0xFF, 0x7F},
			value:   raw.Max,
		},
		{
			name:    "min",
			pattern: raw.Pattern{0x00, 0x00, 0x80},
			value:   raw.Min,
		},
		{
			name:    "+0x123456",
			pattern: raw.Pattern{0x56, 0x34, 0x12},
			value:   0x123456,
		},
		{
			name:    "-0x123456",
			pattern: raw.Pattern{0xAA, 0xCB, 0xED},
			value:   -0x123456,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.value, raw.Sext(tc.pattern))
			require.Equal(t, tc.pattern, raw.Pack(tc.value))
		})
	}
}

func TestSat(t *testing.T) {
	type TC struct {
		name  string
		input int64
		value int32
	}

	tcs := []TC{
		{
			name:  "in range",
			input: 0x123456,
			value: 0x123456,
		},
		{
			name:  "in range negative",
			input: -0x123456,
			value: -0x123456,
		},
		{
			name:  "max",
			input: int64(raw.Max),
			value: raw.Max,
		},
		{
			name:  "min",
			input: int64(raw.Min),
			value: raw.Min,
		},
		{
			name:  "max+1",
			input: int64(raw.Max) + 1,
			value: raw.Max,
		},
		{
			name:  "min-1",
			input: int64(raw.Min) - 1,
			value: raw.Min,
		},
		{
			name:  "huge positive",
			input: math.MaxInt64,
			value: raw.Max,
		},
		{
			name:  "huge negative",
			input: math.MinInt64,
			value: raw.Min,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.value, raw.Sext(raw.Sat(tc.input)))
		})
	}
}

func TestDivOverflow(t *testing.T) {
	min := raw.Pack(raw.Min)
	negOne := raw.Pack(-1)

	require.Equal(t, raw.Max, raw.Sext(raw.Div(min, negOne)))
}

func TestShlDivIntermediate(t *testing.T) {
	// The shifted intermediate must not clamp before the division. A
	// two step saturating approach would turn (Max << 8) / 256 into
	// Max / 256.
	max := raw.Pack(raw.Max)

	require.Equal(t, raw.Max, raw.Sext(raw.ShlDiv(max, 8, raw.Pack(256))))
}

func TestGe(t *testing.T) {
	// The bit patterns are not monotonic: a negative pattern compares
	// above a positive one without sign extension.
	require.True(t, raw.Ge(raw.Pack(1), raw.Pack(-1)))
	require.False(t, raw.Ge(raw.Pack(-1), raw.Pack(1)))
	require.True(t, raw.Ge(raw.Pack(raw.Max), raw.Pack(raw.Min)))
	require.True(t, raw.Ge(raw.Pack(0), raw.Pack(0)))
}

func TestClamp(t *testing.T) {
	require.Equal(t, int32(10), raw.Clamp(int32(15), -10, 10))
	require.Equal(t, int32(-10), raw.Clamp(int32(-15), -10, 10))
	require.Equal(t, int32(5), raw.Clamp(int32(5), -10, 10))
	require.Equal(t, int64(raw.Max), raw.Clamp(math.MaxInt64, int64(raw.Min), int64(raw.Max)))
}
