package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_NotFilled(t *testing.T) {
	// GIVEN
	history := NewHistory(3)
	history.Append(1)
	history.Append(2)

	// WHEN
	values := history.Values()

	// THEN
	assert.Equal(t, []float64{1, 2}, values)
	assert.Equal(t, 2, history.Len())
}

func TestHistory_Wraps(t *testing.T) {
	// GIVEN
	history := NewHistory(3)
	for i := 1; i <= 5; i++ {
		history.Append(float64(i))
	}

	// WHEN
	values := history.Values()

	// THEN
	assert.Equal(t, []float64{3, 4, 5}, values)
	assert.Equal(t, 3, history.Len())
}

func TestHistory_Empty(t *testing.T) {
	// GIVEN
	history := NewHistory(3)

	// WHEN
	values := history.Values()

	// THEN
	assert.Empty(t, values)
}

func TestAvgMinMax(t *testing.T) {
	// GIVEN
	values := []float64{42.5, 40, 47.5}

	// THEN
	assert.InDelta(t, 43.333, Avg(values), 0.001)
	assert.Equal(t, 40.0, Min(values))
	assert.Equal(t, 47.5, Max(values))
	assert.Equal(t, 0.0, Avg(nil))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
}
