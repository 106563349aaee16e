// internal/report/feed.go
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"go-power-wash/internal/event"
)

const (
	writeWait  = 2 * time.Second
	sendBuffer = 16
)

// FeedConfig configures a Feed.
type FeedConfig struct {
	Log *slog.Logger
}

// client — одно подключение с собственной очередью отправки. В conn пишет
// только его горутина-писатель.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed pushes every destroyed-report update to connected websocket clients
// as a JSON text frame. A client that connects mid-session first receives the
// latest report. Publishing never waits on the network: each client has a
// bounded queue, and a client whose queue is full is dropped.
type Feed struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool
}

func NewFeed(cfg FeedConfig) *Feed {
	logger := cfg.Log
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Handle upgrades the request and keeps the client until it disconnects.
func (f *Feed) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("feed upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		conn.Close()
		return
	}
	f.clients[c] = struct{}{}
	if f.latest != nil {
		c.send <- f.latest
	}
	f.mu.Unlock()
	f.log.Debug("feed client connected", "remote", r.RemoteAddr)

	go f.writeLoop(c)

	// Клиенты только слушают; чтение нужно, чтобы заметить отключение.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	f.drop(c)
	f.log.Debug("feed client disconnected", "remote", r.RemoteAddr)
}

// writeLoop drains the client queue until it is closed or a write fails.
func (f *Feed) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			f.log.Warn("dropping feed client", "remote", c.conn.RemoteAddr().String(), "err", err)
			f.drop(c)
			return
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

// OnEvent implements event.Listener for ReportUpdated and SessionStarted.
func (f *Feed) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionStarted:
		f.mu.Lock()
		f.latest = nil
		f.mu.Unlock()
	case event.ReportUpdated:
		rep, ok := e.Data.(event.Report)
		if !ok {
			return
		}
		if err := f.Publish(rep); err != nil {
			f.log.Error("feed publish failed", "err", err)
		}
	}
}

// Publish queues rep for every client and returns without waiting for the
// network. Clients that cannot keep up are dropped.
func (f *Feed) Publish(rep event.Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = data
	for c := range f.clients {
		select {
		case c.send <- data:
		default:
			f.log.Warn("feed client too slow, dropping", "remote", c.conn.RemoteAddr().String())
			f.removeLocked(c)
			c.conn.Close()
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (f *Feed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every client and refuses new ones.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	for c := range f.clients {
		f.removeLocked(c)
	}
	return nil
}

func (f *Feed) drop(c *client) {
	f.mu.Lock()
	f.removeLocked(c)
	f.mu.Unlock()
}

// removeLocked forgets c and closes its queue; the writer then closes the
// connection. Caller holds f.mu.
func (f *Feed) removeLocked(c *client) {
	if _, ok := f.clients[c]; !ok {
		return
	}
	delete(f.clients, c)
	close(c.send)
}
