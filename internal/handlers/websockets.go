package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"posturecorrector/internal/logger"
	wshub "posturecorrector/internal/services/websocket"
)

var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const viewerReadDeadline = 60 * time.Second

// viewerPingInterval must stay under the read deadline so a silent but
// healthy viewer keeps answering with pongs. Variable so tests can
// shorten it.
var viewerPingInterval = 30 * time.Second

// ViewWebsocketHandler upgrades a viewer connection and registers it with
// the hub; the connection then receives live posture updates until it
// drops. The server pings on an interval and the pong handler refreshes
// the read deadline, so idle viewers stay connected.
func ViewWebsocketHandler(hub *wshub.HubService, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connection, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("WebSocket upgrade error: %v", err)
			return
		}
		connection.SetReadLimit(512)
		connection.SetReadDeadline(time.Now().Add(viewerReadDeadline))
		connection.SetPongHandler(func(appData string) error {
			connection.SetReadDeadline(time.Now().Add(viewerReadDeadline))
			return nil
		})

		hub.Register(connection)

		// WriteControl is safe alongside the hub's broadcast writes; the
		// pinger exits once the connection is gone.
		go func() {
			ticker := time.NewTicker(viewerPingInterval)
			defer ticker.Stop()
			for range ticker.C {
				deadline := time.Now().Add(10 * time.Second)
				if err := connection.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			}
		}()

		// Viewers only listen; the read loop just detects disconnects.
		go func() {
			defer hub.Unregister(connection)
			for {
				if _, _, err := connection.ReadMessage(); err != nil {
					break
				}
			}
		}()
	}
}
