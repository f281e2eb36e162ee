package endpoints

import (
	"fmt"
	"strings"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/fans"
	"github.com/rpifan/rpifan/internal/sensors"
)

// WriteBufferSize is the largest accepted write payload, in bytes
const WriteBufferSize = 16

func FormatStatus(fanEnabled bool, sample sensors.Sample) string {
	temperature := "N/A"
	if sample.Available() {
		temperature = sample.Value.String() + " °C"
	}
	return fmt.Sprintf("Fan: %s\nTemperature: %s\n", fans.StateString(fanEnabled), temperature)
}

func FormatThreshold(degrees int) string {
	return fmt.Sprintf("Threshold Temperature: %d °C\n", degrees)
}

// ParseThreshold parses a threshold write in whole degrees.
// A single trailing newline is accepted, anything else but digits is not.
func ParseThreshold(payload []byte) (int, error) {
	if len(payload) > WriteBufferSize {
		return 0, fmt.Errorf("%w: %d bytes, at most %d are accepted", ErrWriteTooLarge, len(payload), WriteBufferSize)
	}

	text := strings.TrimSuffix(string(payload), "\n")
	if len(text) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrMalformed)
	}

	value := 0
	tooLarge := false
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrMalformed, text)
		}
		// stop accumulating once above the range, so a long digit run cannot overflow
		if tooLarge {
			continue
		}
		value = value*10 + int(c-'0')
		if value > configuration.MaxThreshold {
			tooLarge = true
		}
	}

	if tooLarge || value < configuration.MinThreshold {
		return 0, fmt.Errorf("%w: %s, must be between %d and %d", ErrOutOfRange, text, configuration.MinThreshold, configuration.MaxThreshold)
	}
	return value, nil
}
