// Package ws fans state-change notifications out to connected dashboard
// viewers. Delivery is best-effort: a viewer that misses a message re-pulls
// current state over the read API instead of expecting a replay.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const sendBuffer = 32

// Message is the envelope written to every subscriber: a named event plus
// its JSON payload, mirroring the socket emit the dashboard listens for.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Subscriber is one connected viewer. Messages arrive on Chan in publish
// order; the channel is closed on unsubscribe.
type Subscriber struct {
	id   uuid.UUID
	send chan Message
}

func (s *Subscriber) ID() uuid.UUID        { return s.id }
func (s *Subscriber) Chan() <-chan Message { return s.send }

// Hub holds the transient subscriber registry. Registrations are not
// persisted; losing them on restart is fine.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscriber
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]*Subscriber)}
}

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{id: uuid.New(), send: make(chan Message, sendBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(s.send)
		return s
	}
	h.subs[s.id] = s
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.id]; !ok {
		return
	}
	delete(h.subs, s.id)
	close(s.send)
}

// Publish sends the event to every current subscriber. It never blocks: a
// subscriber whose buffer is full has the message dropped, which only
// affects that subscriber. Marshal failures are logged and swallowed; the
// caller has already committed and must not fail here.
func (h *Hub) Publish(event string, payload any) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode broadcast payload", "event", event, "error", err)
		return
	}
	msg := Message{Event: event, Payload: encoded}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.send <- msg:
		default:
			slog.Warn("dropping broadcast for saturated subscriber", "event", event, "subscriber", s.id)
		}
	}
}

// SubscriberCount reports the current number of connected viewers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close unsubscribes everyone and rejects future subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, s := range h.subs {
		delete(h.subs, id)
		close(s.send)
	}
}
