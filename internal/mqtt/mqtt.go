// Package mqtt publishes fan state changes to an MQTT broker.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/fans"
)

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a fan event to the broker.
	Publish(event Event) error

	// Close disconnects from the broker.
	Close() error
}

// Event is a change of the fan state
type Event struct {
	Timestamp time.Time
	FanId     string
	Enabled   bool
	// Temperature in degrees celsius, nil if the sample was unavailable
	Temperature *float64
	Threshold   int
}

func EventFromTick(fanId string, result controller.TickResult) Event {
	event := Event{
		Timestamp: result.Time,
		FanId:     fanId,
		Enabled:   result.Enabled,
		Threshold: result.ThresholdTenths / 10,
	}
	if result.Sample.Available() {
		temperature := result.Sample.Value.Celsius()
		event.Temperature = &temperature
	}
	return event
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Fan FanPayload `json:"fan"`
}

type FanPayload struct {
	Timestamp   string   `json:"timestamp"`
	Id          string   `json:"id"`
	State       string   `json:"state"`
	Temperature *float64 `json:"temperature"`
	Threshold   int      `json:"threshold"`
}

// FormatPayload creates the JSON payload for a fan event.
func FormatPayload(event Event) ([]byte, error) {
	payload := Payload{
		Fan: FanPayload{
			Timestamp:   event.Timestamp.UTC().Format(time.RFC3339),
			Id:          event.FanId,
			State:       fans.StateString(event.Enabled),
			Temperature: event.Temperature,
			Threshold:   event.Threshold,
		},
	}
	return json.Marshal(payload)
}
