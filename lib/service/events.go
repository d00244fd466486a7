package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/escrowhub/escrowhub.go/lib/events"
)

// publishEvent fans an event out to in-process subscribers. It is called
// after the operation's transaction has committed, so subscribers never see
// an event for a rolled-back transition.
func (svc *EscrowService) publishEvent(event events.Event) {
	event.CreatedAt = time.Now()
	svc.EventPubSub.Publish(event.Type, event)
	svc.EventPubSub.Publish(TopicAllEvents, event)
}

// SubscribeEscrowEvents is passed to the RabbitMQ publisher bridge.
func (svc *EscrowService) SubscribeEscrowEvents() (chan events.Event, func(), error) {
	ch := make(chan events.Event)
	subID, err := svc.EventPubSub.Subscribe(TopicAllEvents, ch)
	if err != nil {
		return nil, nil, err
	}
	unsubscribe := func() {
		svc.EventPubSub.Unsubscribe(subID, TopicAllEvents)
	}
	return ch, unsubscribe, nil
}

// EncodeEvent is passed to the RabbitMQ publisher bridge.
func (svc *EscrowService) EncodeEvent(ctx context.Context, w io.Writer, event events.Event) error {
	return json.NewEncoder(w).Encode(event)
}
