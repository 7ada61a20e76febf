// Package telemetry broadcasts the current aircraft state to any
// connected debug client over WebSocket, one JSON message per frame. It
// is an ambient observability side-channel: the scheduler still runs,
// encodes, and sends FGNetFDM packets whether or not anything is
// listening here.
package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Frame is the one telemetry message shape this system emits — no
// clearance tiers, no mission metadata, just the current state of
// whichever model is running.
type Frame struct {
	Timestamp    time.Time  `json:"timestamp"`
	Model        string     `json:"model"`
	Position     [3]float64 `json:"position"`
	Velocity     [3]float64 `json:"velocity"`
	Attitude     [3]float64 `json:"attitude"` // roll, pitch, yaw, radians
	Speed        float64    `json:"speed"`
	Throttle     float64    `json:"throttle"`
	Stalling     bool       `json:"stalling,omitempty"`
	FrameCount   uint64     `json:"frame_count"`
}

// Broadcaster fans a stream of Frames out to every connected client.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[*client]bool

	broadcast chan Frame
	upgrader  websocket.Upgrader
	logger    *logrus.Logger
}

type client struct {
	conn *websocket.Conn
	send chan Frame
}

// NewBroadcaster builds a Broadcaster. logger may be nil, in which case a
// default logrus.Logger is used.
func NewBroadcaster(logger *logrus.Logger) *Broadcaster {
	if logger == nil {
		logger = logrus.New()
	}
	return &Broadcaster{
		clients:   make(map[*client]bool),
		broadcast: make(chan Frame, 8),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP lets a Broadcaster be mounted directly as an http.Handler.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.HandleWebSocket(w, r)
}

// HandleWebSocket upgrades an incoming HTTP request to a WebSocket
// connection and registers it as a telemetry client.
func (b *Broadcaster) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.WithError(err).Error("telemetry: upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan Frame, 8)}
	b.register(c)

	ctx, cancel := context.WithCancel(context.Background())
	go c.writePump(ctx)
	go c.readPump(ctx, cancel, b)
}

func (b *Broadcaster) register(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[c] = true
}

func (b *Broadcaster) unregister(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
	}
}

// Publish enqueues a frame for broadcast, dropping the oldest queued
// frame if the buffer is full — telemetry is best-effort, never a reason
// to stall the simulation loop.
func (b *Broadcaster) Publish(f Frame) {
	select {
	case b.broadcast <- f:
	default:
		select {
		case <-b.broadcast:
		default:
		}
		b.broadcast <- f
	}
}

// Run drains published frames out to all connected clients until ctx is
// canceled.
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.closeAll()
			return
		case f := <-b.broadcast:
			b.fanOut(f)
		}
	}
}

func (b *Broadcaster) fanOut(f Frame) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for c := range b.clients {
		select {
		case c.send <- f:
		default: // client too slow, drop this frame for it
		}
	}
}

func (b *Broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for c := range b.clients {
		c.conn.Close()
		close(c.send)
		delete(b.clients, c)
	}
}

func (c *client) writePump(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			data, err := json.Marshal(f)
			if err != nil {
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) readPump(ctx context.Context, cancel context.CancelFunc, b *Broadcaster) {
	defer func() {
		cancel()
		b.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
