package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	a := hub.Subscribe()
	b := hub.Subscribe()
	require.Equal(t, 2, hub.SubscriberCount())

	hub.Publish("leaderboardUpdate", map[string]int{"teamId": 1})

	for _, sub := range []*Subscriber{a, b} {
		msg := <-sub.Chan()
		assert.Equal(t, "leaderboardUpdate", msg.Event)

		var payload map[string]int
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, 1, payload["teamId"])
	}
}

func TestPerSubscriberOrdering(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe()
	for i := 0; i < 10; i++ {
		hub.Publish("leaderboardUpdate", i)
	}

	for i := 0; i < 10; i++ {
		msg := <-sub.Chan()
		var got int
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, i, got, "messages arrive in publish order")
	}
}

func TestSaturatedSubscriberDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	slow := hub.Subscribe()
	fast := hub.Subscribe()

	// overflow the slow subscriber's buffer without draining it
	for i := 0; i < sendBuffer+10; i++ {
		hub.Publish("leaderboardUpdate", i)
	}

	// the fast subscriber still has the first sendBuffer messages intact
	for i := 0; i < sendBuffer; i++ {
		msg := <-fast.Chan()
		var got int
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, i, got)
	}

	// the slow one kept its buffer's worth; overflow was dropped, not queued
	assert.Len(t, slow.Chan(), sendBuffer)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.Chan()
	assert.False(t, open)

	// double unsubscribe is a no-op, publish to nobody is fine
	hub.Unsubscribe(sub)
	hub.Publish("leaderboardUpdate", 1)
}

func TestCloseRejectsNewSubscribers(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	hub.Close()

	_, open := <-sub.Chan()
	assert.False(t, open)

	late := hub.Subscribe()
	_, open = <-late.Chan()
	assert.False(t, open, "subscriptions after close are immediately closed")
	assert.Equal(t, 0, hub.SubscriberCount())
}
