package mqtt

import (
	"testing"
	"time"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

var unreachableBroker = configuration.MqttConfig{
	Enabled:        true,
	Broker:         "tcp://127.0.0.1:1",
	ClientId:       "rpifan-test",
	Topic:          "rpifan/fan",
	ConnectTimeout: 200 * time.Millisecond,
}

func TestNewRealPublisher_UnreachableBroker(t *testing.T) {
	// WHEN
	publisher, err := NewRealPublisher(unreachableBroker)

	// THEN
	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestConnect_FailureStopsRetrying(t *testing.T) {
	// GIVEN
	client := newClient(unreachableBroker)

	// WHEN
	err := connect(client, unreachableBroker.ConnectTimeout)

	// THEN
	assert.Error(t, err)
	// a retrying client reports itself as connected
	assert.Eventually(t, func() bool {
		return !client.IsConnected()
	}, 2*time.Second, 10*time.Millisecond)
}
