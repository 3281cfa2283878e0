package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-algebra/generic"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// =============================================================================
// QUOTIENT ROUNDING
// =============================================================================

func TestQuotient_RoundingModes(t *testing.T) {
	tests := []struct {
		name        string
		numerator   string
		denominator string
		scale       int32
		mode        generic.RoundingMode
		want        string
	}{
		{"down truncates", "10", "3", 3, generic.RoundingDown, "3.333"},
		{"up rounds away from zero", "10", "3", 3, generic.RoundingUp, "3.334"},
		{"half up below half", "10", "3", 3, generic.RoundingHalfUp, "3.333"},
		{"half up above half", "20", "3", 3, generic.RoundingHalfUp, "6.667"},
		{"half up tie", "1", "8", 2, generic.RoundingHalfUp, "0.13"},
		{"half down tie", "1", "8", 2, generic.RoundingHalfDown, "0.12"},
		{"half even tie to even", "1", "8", 2, generic.RoundingHalfEven, "0.12"},
		{"half even tie to odd neighbour", "3", "8", 2, generic.RoundingHalfEven, "0.38"},
		{"negative half up tie", "-1", "8", 2, generic.RoundingHalfUp, "-0.13"},
		{"negative down", "-10", "3", 0, generic.RoundingDown, "-3"},
		{"negative up", "-10", "3", 0, generic.RoundingUp, "-4"},
		{"negative ceiling", "-10", "3", 0, generic.RoundingCeiling, "-3"},
		{"negative floor", "-10", "3", 0, generic.RoundingFloor, "-4"},
		{"positive ceiling", "10", "3", 0, generic.RoundingCeiling, "4"},
		{"positive floor", "10", "3", 0, generic.RoundingFloor, "3"},
		{"negative denominator", "10", "-4", 0, generic.RoundingHalfEven, "-2"},
		{"exact needs no rounding", "10", "4", 2, generic.RoundingUnnecessary, "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generic.Quotient(dec(tt.numerator), dec(tt.denominator), tt.scale, tt.mode)
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestQuotient_Unnecessary_InexactFails(t *testing.T) {
	// GIVEN: 10/3, which has no finite decimal expansion
	// WHEN: Demanding an exact result at scale 3
	// THEN: A RoundingError matching ErrRoundingNecessary

	_, err := generic.Quotient(dec("10"), dec("3"), 3, generic.RoundingUnnecessary)

	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrRoundingNecessary)
	var rErr *generic.RoundingError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, int32(3), rErr.Scale)
}

func TestQuotient_ZeroDenominator(t *testing.T) {
	_, err := generic.Quotient(dec("1"), decimal.Zero, 2, generic.RoundingDown)

	assert.ErrorIs(t, err, generic.ErrZeroDenominator)
}

func TestQuotient_UnknownModeRejected(t *testing.T) {
	_, err := generic.Quotient(dec("1"), dec("3"), 2, generic.RoundingMode(0))

	assert.ErrorIs(t, err, generic.ErrInvalidArgument)
}

func TestRoundingMode_ParseRoundTrip(t *testing.T) {
	for m := generic.RoundingUp; m <= generic.RoundingUnnecessary; m++ {
		parsed, err := generic.ParseRoundingMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := generic.ParseRoundingMode("bankers")
	assert.ErrorIs(t, err, generic.ErrInvalidArgument)
}

// =============================================================================
// RATIO
// =============================================================================

func TestRatio_DecimalValue(t *testing.T) {
	r := generic.MustRatio(generic.RatioOf(10, 3))

	down, err := r.DecimalValue(3, generic.RoundingDown)
	require.NoError(t, err)
	assertDecimal(t, "3.333", down)

	up, err := r.DecimalValue(3, generic.RoundingUp)
	require.NoError(t, err)
	assertDecimal(t, "3.334", up)

	_, err = r.DecimalValue(3, generic.RoundingUnnecessary)
	assert.ErrorIs(t, err, generic.ErrRoundingNecessary)
}

func TestRatio_ZeroDenominatorRejected(t *testing.T) {
	_, err := generic.RatioOf(1, 0)

	assert.ErrorIs(t, err, generic.ErrZeroDenominator)
	assert.True(t, generic.IsConstructionError(err))
}

func TestRatio_Equal_IsStructural(t *testing.T) {
	// GIVEN: Two ratios with the same value but different terms
	// WHEN: Comparing them
	// THEN: They are not equal; only identical terms are

	a := generic.MustRatio(generic.RatioOf(100, 200))
	b := generic.MustRatio(generic.RatioOf(10, 20))

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(generic.MustRatio(generic.RatioOf(100, 200))))

	av, _ := a.DecimalValue(2, generic.RoundingUnnecessary)
	bv, _ := b.DecimalValue(2, generic.RoundingUnnecessary)
	assert.True(t, av.Equal(bv))
}

func TestRatio_Times(t *testing.T) {
	third := generic.MustRatio(generic.RatioOf(1, 3))

	assert.Equal(t, "3/3", third.Times(dec("3")).String())
	assert.Equal(t, "2/9", third.TimesRatio(generic.MustRatio(generic.RatioOf(2, 3))).String())
	assert.Equal(t, "0.25/1", generic.RatioFromDecimal(dec("0.25")).String())
}
