package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", want, hub.SubscriberCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServeRelaysPublishesInOrder(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := httptest.NewServer(Serve(hub))
	defer srv.Close()

	conn := dialTestServer(t, srv)
	defer conn.Close()
	waitForSubscribers(t, hub, 1)

	hub.Publish("leaderboardUpdate", map[string]int{"points": 50})
	hub.Publish("leaderboardUpdate", map[string]int{"points": 30})

	for _, want := range []int{50, 30} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "leaderboardUpdate", msg.Event)

		var payload map[string]int
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, want, payload["points"])
	}
}

func TestServeUnsubscribesOnDisconnect(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := httptest.NewServer(Serve(hub))
	defer srv.Close()

	conn := dialTestServer(t, srv)
	waitForSubscribers(t, hub, 1)

	conn.Close()
	waitForSubscribers(t, hub, 0)

	// publishing after the viewer left must not panic or block
	hub.Publish("leaderboardUpdate", map[string]int{"points": 10})
}
