package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownDefault(t *testing.T) {
	got := Distance.Of("metres", 2.5).Breakdown()
	assert.Equal(t, Description{"metres": 2, "centimetres": 50}, got)
}

func TestBreakdownSkipsZeroUnits(t *testing.T) {
	got := Distance.Of("kilometres", 3).Breakdown()
	assert.Equal(t, Description{"kilometres": 3}, got)
}

func TestBreakdownNegative(t *testing.T) {
	got := Distance.Of("metres", -2.5).Breakdown()
	assert.Equal(t, Description{"metres": -2, "centimetres": -50}, got)
}

func TestBreakdownZeroFallsBackToReferenceUnit(t *testing.T) {
	got := Distance.Zero().Breakdown()
	assert.Equal(t, Description{"metres": 0}, got)
}

func TestBreakdownZeroFallbackWithoutReferenceUnit(t *testing.T) {
	// Reference unit not among the candidates: the largest candidate
	// carries the zero entry.
	got := Distance.Zero().BreakdownIn([]string{"centimetres", "kilometres"},
		BreakdownOptions{SkipZero: true})
	assert.Equal(t, Description{"kilometres": 0}, got)
}

func TestBreakdownInFixedShape(t *testing.T) {
	// Explicit unit list defaults to a complete floored record.
	got := Distance.Of("metres", 2.5).BreakdownIn(
		[]string{"kilometres", "metres"}, BreakdownOptions{})
	assert.Equal(t, Description{"kilometres": 0, "metres": 2}, got)
}

func TestBreakdownInFloatLast(t *testing.T) {
	got := Distance.Of("metres", 2.5).BreakdownIn(
		[]string{"metres", "centimetres"}, BreakdownOptions{FloatLast: true})
	assert.Equal(t, Description{"metres": 2, "centimetres": 50}, got)
}

func TestBreakdownInUnsortedInput(t *testing.T) {
	// Candidate order does not matter; units are walked largest first.
	got := Distance.Of("metres", 2.5).BreakdownIn(
		[]string{"centimetres", "metres"}, BreakdownOptions{FloatLast: true})
	assert.Equal(t, Description{"metres": 2, "centimetres": 50}, got)
}

func TestBreakdownInDuplicateUnits(t *testing.T) {
	// A repeated unit must not overwrite its earlier floored entry;
	// duplicates collapse before the walk.
	got := Distance.Of("metres", 2.345).BreakdownIn(
		[]string{"metres", "centimetres", "centimetres"},
		BreakdownOptions{SkipZero: true, FloatLast: true})

	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got["metres"])
	assert.InDelta(t, 34.5, got["centimetres"], 1e-9)
}

func TestBreakdownInEmptyList(t *testing.T) {
	got := Distance.Of("metres", 2.5).BreakdownIn(nil, BreakdownOptions{})
	assert.Empty(t, got)
}

func TestBreakdownInUnknownUnitPanics(t *testing.T) {
	requirePanicCode(t, ErrCodeUnknownUnit, func() {
		Distance.Of("metres", 1).BreakdownIn([]string{"leagues"}, BreakdownOptions{})
	})
}

func TestBreakdownRoundTripsThroughConstructor(t *testing.T) {
	v := Distance.Of("metres", 1234.5678)
	rebuilt, err := Distance.New(v.Breakdown())
	require.NoError(t, err)
	assert.InDelta(t, v.To("metres"), rebuilt.To("metres"), 1e-9)
}

func TestBreakdownPeriod(t *testing.T) {
	got := Period.Of("seconds", 3661.5).BreakdownIn(
		[]string{"hours", "minutes", "seconds"}, BreakdownOptions{SkipZero: true, FloatLast: true})

	require.Len(t, got, 3)
	assert.InDelta(t, 1, got["hours"], 1e-9)
	assert.InDelta(t, 1, got["minutes"], 1e-9)
	assert.InDelta(t, 1.5, got["seconds"], 1e-6)
}

func TestBreakdownDataSizeExact(t *testing.T) {
	// Binary ratios make this decomposition exact.
	v := DataSize.Of("bytes", 1049601) // 1 MB + 1 KB + 1 B
	got := v.BreakdownIn([]string{"megabytes", "kilobytes", "bytes"},
		BreakdownOptions{SkipZero: true, FloatLast: true})
	assert.Equal(t, Description{"megabytes": 1, "kilobytes": 1, "bytes": 1}, got)
}
