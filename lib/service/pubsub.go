package service

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/escrowhub/escrowhub.go/lib/events"
)

// TopicAllEvents receives every published event regardless of type. The
// RabbitMQ bridge subscribes here.
const TopicAllEvents = "*"

type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan events.Event
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan events.Event)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan events.Event) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan events.Event)
	}
	idBytes := make([]byte, 16)
	if _, err = rand.Read(idBytes); err != nil {
		return "", err
	}
	subId = hex.EncodeToString(idBytes)
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, msg events.Event) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- msg
	}
}
