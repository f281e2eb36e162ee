package control_loop

import (
	"errors"
	"testing"

	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/stretchr/testify/assert"
)

const threshold = 500

func sample(tenths int) sensors.Sample {
	return sensors.Sample{Value: sensors.Temperature(tenths)}
}

func TestHysteresis_AtThreshold(t *testing.T) {
	assert.True(t, Hysteresis(sample(500), threshold, false))
	assert.True(t, Hysteresis(sample(500), threshold, true))
}

func TestHysteresis_AboveThreshold(t *testing.T) {
	assert.True(t, Hysteresis(sample(723), threshold, false))
}

func TestHysteresis_LowerBandEdge(t *testing.T) {
	// 45 degrees is still inside the band
	assert.False(t, Hysteresis(sample(450), threshold, false))
	assert.True(t, Hysteresis(sample(450), threshold, true))
}

func TestHysteresis_InsideBand(t *testing.T) {
	assert.True(t, Hysteresis(sample(451), threshold, true))
	assert.False(t, Hysteresis(sample(451), threshold, false))
	assert.True(t, Hysteresis(sample(499), threshold, true))
}

func TestHysteresis_BelowBand(t *testing.T) {
	assert.False(t, Hysteresis(sample(449), threshold, true))
	assert.False(t, Hysteresis(sample(440), threshold, true))
	assert.False(t, Hysteresis(sample(440), threshold, false))
}

func TestHysteresis_Truncates(t *testing.T) {
	// 49.9 degrees is compared as 49
	assert.False(t, Hysteresis(sample(499), threshold, false))
	// a threshold of 50.9 is compared as 50
	assert.True(t, Hysteresis(sample(500), 509, false))
}

func TestHysteresis_UnavailableKeepsState(t *testing.T) {
	unavailable := sensors.Unavailable(errors.New("no sensor"))

	for th := 200; th <= 900; th++ {
		assert.True(t, Hysteresis(unavailable, th, true))
		assert.False(t, Hysteresis(unavailable, th, false))
	}
}

func TestHysteresis_Pure(t *testing.T) {
	temperatures := []int{-100, 0, 150, 449, 450, 451, 500, 650, 899, 900, 1200}
	for th := 200; th <= 900; th++ {
		for _, temp := range temperatures {
			for _, previous := range []bool{true, false} {
				first := Hysteresis(sample(temp), th, previous)
				second := Hysteresis(sample(temp), th, previous)
				assert.Equal(t, first, second)
			}
		}
	}
}

func TestHysteresis_NoChatterWithinBand(t *testing.T) {
	// GIVEN
	enabled := Hysteresis(sample(520), threshold, false)
	assert.True(t, enabled)

	// WHEN
	for _, temp := range []int{499, 470, 455, 450, 480, 499} {
		enabled = Hysteresis(sample(temp), threshold, enabled)

		// THEN
		assert.True(t, enabled)
	}
}

func TestHysteresisControlLoop_Cycle(t *testing.T) {
	// GIVEN
	loop := NewHysteresisControlLoop()
	temperatures := []int{300, 520, 470, 440, 440}
	expected := []bool{false, true, true, false, false}

	// WHEN
	enabled := false
	var result []bool
	for _, temp := range temperatures {
		enabled = loop.Cycle(sample(temp), threshold, enabled)
		result = append(result, enabled)
	}

	// THEN
	assert.Equal(t, expected, result)
}
