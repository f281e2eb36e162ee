package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rpifan/rpifan/internal/configuration"
)

// RealPublisher publishes to an actual MQTT broker.
type RealPublisher struct {
	client paho.Client
	topic  string
}

const defaultConnectTimeout = 10 * time.Second

// NewRealPublisher creates a publisher connected to the configured broker.
func NewRealPublisher(config configuration.MqttConfig) (*RealPublisher, error) {
	client := newClient(config)
	if err := connect(client, config.ConnectTimeout); err != nil {
		return nil, err
	}

	return &RealPublisher{
		client: client,
		topic:  config.Topic,
	}, nil
}

func newClient(config configuration.MqttConfig) paho.Client {
	opts := paho.NewClientOptions().
		AddBroker(config.Broker).
		SetClientID(config.ClientId).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	return paho.NewClient(opts)
}

// connect waits for the initial connection. On failure the client is
// disconnected, so it does not keep retrying in the background.
func connect(client paho.Client, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return fmt.Errorf("connection timeout after %s", timeout)
	}
	if err := token.Error(); err != nil {
		client.Disconnect(0)
		return fmt.Errorf("connect to broker: %w", err)
	}
	return nil
}

// Publish sends a fan event to the MQTT broker.
func (p *RealPublisher) Publish(event Event) error {
	payload, err := FormatPayload(event)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// retained, so new subscribers see the current fan state
	token := p.client.Publish(p.topic, 1, true, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000)
	return nil
}
