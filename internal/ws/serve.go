package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 50 * time.Second
	readLimit    = 512
)

// Serve upgrades the request to a websocket and relays hub messages to the
// client until either side goes away. Inbound frames are read only to
// detect disconnects; viewers are read-only observers.
func Serve(hub *Hub) http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	return func(w http.ResponseWriter, r *http.Request) {
		wc, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "error", err)
			return
		}

		sub := hub.Subscribe()
		slog.Info("viewer connected", "subscriber", sub.ID())

		go writePump(wc, sub)
		readPump(wc)

		hub.Unsubscribe(sub)
		slog.Info("viewer disconnected", "subscriber", sub.ID())
	}
}

func writePump(wc *websocket.Conn, sub *Subscriber) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		wc.Close()
	}()
	for {
		select {
		case msg, ok := <-sub.Chan():
			if !ok {
				wc.SetWriteDeadline(time.Now().Add(writeTimeout))
				wc.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			encoded, err := json.Marshal(msg)
			if err != nil {
				slog.Warn("failed to encode websocket message", "error", err)
				continue
			}
			wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := wc.WriteMessage(websocket.TextMessage, encoded); err != nil {
				return
			}
		case <-ticker.C:
			wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := wc.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

func readPump(wc *websocket.Conn) {
	wc.SetReadLimit(readLimit)
	for {
		if _, _, err := wc.NextReader(); err != nil {
			return
		}
	}
}
