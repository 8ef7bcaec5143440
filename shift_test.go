package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw, clamped to the requested range.
type fixedRand struct {
	n int
}

func (f fixedRand) IntN(n int) int {
	return f.n % n
}

func seededRand() Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func applyToField(t *testing.T, rule Rule, line string) string {
	t.Helper()
	row := &Row{Record: SplitRecord(line), Line: 1}
	require.NoError(t, rule.Apply(row))
	return row.Record.Join()
}

func TestShiftStaysWithinBounds(t *testing.T) {
	codec := mustCodec(t, "%Y-%m-%d")
	rule := &ShiftRule{Columns: []int{0}, MaxDays: 30, codec: codec, rand: seededRand()}
	original := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		masked := applyToField(t, rule, "2023-01-15")
		shifted, err := codec.Parse(masked)
		require.NoError(t, err)
		delta := int(shifted.Sub(original).Hours() / 24)
		assert.GreaterOrEqual(t, delta, -30)
		assert.LessOrEqual(t, delta, 30)
	}
}

func TestShiftReachesBothEndpoints(t *testing.T) {
	codec := mustCodec(t, "%Y-%m-%d")

	// IntN(2*max+1) of 0 is the far negative endpoint, 2*max the positive one.
	low := &ShiftRule{Columns: []int{0}, MaxDays: 3, codec: codec, rand: fixedRand{n: 0}}
	assert.Equal(t, "2023-01-12", applyToField(t, low, "2023-01-15"))

	high := &ShiftRule{Columns: []int{0}, MaxDays: 3, codec: codec, rand: fixedRand{n: 6}}
	assert.Equal(t, "2023-01-18", applyToField(t, high, "2023-01-15"))
}

func TestShiftPreservesTimeOfDay(t *testing.T) {
	codec := mustCodec(t, "%Y-%m-%d %H:%M:%S")
	rule := &ShiftRule{Columns: []int{0}, MaxDays: 10, codec: codec, rand: seededRand()}

	for i := 0; i < 100; i++ {
		masked := applyToField(t, rule, "2023-01-15 10:30:09")
		shifted, err := codec.Parse(masked)
		require.NoError(t, err)
		assert.Equal(t, 10, shifted.Hour())
		assert.Equal(t, 30, shifted.Minute())
		assert.Equal(t, 9, shifted.Second())
	}
}

func TestShiftCrossesMonthBoundaries(t *testing.T) {
	codec := mustCodec(t, "%Y-%m-%d")
	rule := &ShiftRule{Columns: []int{0}, MaxDays: 5, codec: codec, rand: fixedRand{n: 10}}
	assert.Equal(t, "2023-02-03", applyToField(t, rule, "2023-01-29"))
}

func TestShiftReportsFormatError(t *testing.T) {
	codec := mustCodec(t, "%Y-%m-%d")
	rule := &ShiftRule{Columns: []int{1}, MaxDays: 5, codec: codec, rand: seededRand()}
	row := &Row{Record: SplitRecord("1,not-a-date,3"), Line: 1}

	err := rule.Apply(row)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
