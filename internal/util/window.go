package util

import (
	"sync"

	"github.com/asecurityteam/rolling"
)

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// History is a fixed size rolling window that remembers how many
// values it has seen, so unfilled slots are never reported.
type History struct {
	mu       sync.Mutex
	window   *rolling.PointPolicy
	size     int
	appended int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{
		window: CreateRollingWindow(size),
		size:   size,
	}
}

func (h *History) Append(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.window.Append(value)
	h.appended++
}

// Values returns the values currently held by the window, oldest first
func (h *History) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	var values []float64
	h.window.Reduce(func(w rolling.Window) float64 {
		if h.appended < h.size {
			for i := 0; i < h.appended; i++ {
				values = append(values, w[i][0])
			}
			return 0
		}
		offset := h.appended % h.size
		for i := 0; i < h.size; i++ {
			values = append(values, w[(offset+i)%h.size][0])
		}
		return 0
	})
	return values
}

// Len returns the number of values currently held by the window
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return min(h.appended, h.size)
}

// Avg calculates the average of all values in the given array
func Avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(values); i++ {
		sum += values[i]
	}
	return sum / (float64(len(values)))
}

// Min returns the smallest value of the given array, 0 if it is empty
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, value := range values[1:] {
		result = min(result, value)
	}
	return result
}

// Max returns the largest value of the given array, 0 if it is empty
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, value := range values[1:] {
		result = max(result, value)
	}
	return result
}
