package mqtt

import (
	"context"

	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/ui"
)

const queueSize = 16

// Notifier forwards fan state changes from the controller to a Publisher.
// Publishing happens on its own goroutine, so a slow broker never delays a tick.
type Notifier struct {
	publisher Publisher
	fanId     string
	events    chan Event

	// only accessed from the controller goroutine
	published bool
}

func NewNotifier(publisher Publisher, fanId string) *Notifier {
	return &Notifier{
		publisher: publisher,
		fanId:     fanId,
		events:    make(chan Event, queueSize),
	}
}

// OnTick queues an event for the first tick and for every fan switch
func (n *Notifier) OnTick(result controller.TickResult) {
	if n.published && !result.Switched() {
		return
	}
	n.published = true

	select {
	case n.events <- EventFromTick(n.fanId, result):
	default:
		ui.Warning("MQTT queue is full, dropping fan event")
	}
}

// Run publishes queued events until ctx is done, then closes the publisher
func (n *Notifier) Run(ctx context.Context) error {
	defer func() {
		if err := n.publisher.Close(); err != nil {
			ui.Warning("Error closing MQTT connection: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-n.events:
			if err := n.publisher.Publish(event); err != nil {
				ui.Warning("Unable to publish fan event: %v", err)
			}
		}
	}
}
