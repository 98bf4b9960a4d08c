package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadMessage is sent to browsers via WebSocket.
type reloadMessage struct {
	Type string `json:"type"`
}

// ReloadHub manages WebSocket connections for live reload. Connected
// browsers reload the page whenever Notify is called, e.g. after the
// site's page functions have been rebuilt.
type ReloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewReloadHub creates a new reload hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Preview only runs locally
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Notify sends a full page reload message to all connected clients.
func (h *ReloadHub) Notify() {
	h.broadcast(reloadMessage{Type: "reload"})
}

// broadcast sends a message to all connected clients, dropping any that
// fail to write.
func (h *ReloadHub) broadcast(msg reloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// reloadClientScript is appended to served pages when live reload is
// enabled. It reconnects with backoff and reloads on any message.
const reloadClientScript = `<script>
(function() {
    'use strict';

    var delay = 1000;
    var maxDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_blizzard/reload');

        ws.onopen = function() {
            delay = 1000;
        };

        ws.onmessage = function() {
            location.reload();
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, maxDelay);
                connect();
            }, delay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>`
