package sse

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	// HeartbeatInterval is how often the sweep runs.
	HeartbeatInterval = 30 * time.Second
	// StaleTimeout evicts a connection that has had no successful write
	// for this long.
	StaleTimeout = 60 * time.Second
)

var ErrNoConnection = errors.New("sse: no connection for user")

// Frame is the JSON envelope written on every SSE event.
type Frame struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Stats describes the live connection set for the debug endpoint.
type Stats struct {
	ActiveConnections int      `json:"activeConnections"`
	Connections       []string `json:"connections"`
}

type connection struct {
	userID        string
	stream        Stream
	lastHeartbeat time.Time
}

// Registry tracks at most one live SSE connection per admin identifier.
// All map mutation happens behind one mutex; the HTTP handler path, the
// broadcast path and the heartbeat sweep all go through it.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*connection

	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		clients:  make(map[string]*connection),
		interval: HeartbeatInterval,
		timeout:  StaleTimeout,
		now:      time.Now,
	}
}

// AddClient registers stream for userID, force-closing any connection the
// same user already holds, and confirms the channel with a connected frame.
func (r *Registry) AddClient(userID string, stream Stream) error {
	r.mu.Lock()
	if old, ok := r.clients[userID]; ok {
		_ = old.stream.Close()
	}
	c := &connection{userID: userID, stream: stream, lastHeartbeat: r.now()}
	r.clients[userID] = c
	r.mu.Unlock()

	return r.SendToClient(userID, Frame{
		Type:      "connected",
		Timestamp: r.now().UTC().Format(time.RFC3339),
	})
}

// SendToClient writes one frame to the user's stream. A successful write
// refreshes the connection's heartbeat; a failed write evicts it, since a
// broken pipe means the client has to reconnect from scratch anyway.
func (r *Registry) SendToClient(userID string, frame Frame) error {
	r.mu.Lock()
	c, ok := r.clients[userID]
	r.mu.Unlock()
	if !ok {
		return ErrNoConnection
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := c.stream.Send(data); err != nil {
		r.RemoveClient(userID)
		return err
	}

	r.mu.Lock()
	if cur, ok := r.clients[userID]; ok && cur == c {
		cur.lastHeartbeat = r.now()
	}
	r.mu.Unlock()
	return nil
}

// Broadcast delivers one notification frame to every connection. One
// failing client never blocks delivery to the rest; it is evicted and
// counted in failed.
func (r *Registry) Broadcast(notification any) (sent, failed int) {
	frame := Frame{
		Type:      "notification",
		Data:      notification,
		Timestamp: r.now().UTC().Format(time.RFC3339),
	}
	for _, userID := range r.connectedIDs() {
		if err := r.SendToClient(userID, frame); err != nil {
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

// RemoveClient closes the user's stream if still open and drops the entry.
func (r *Registry) RemoveClient(userID string) {
	r.mu.Lock()
	c, ok := r.clients[userID]
	if ok {
		delete(r.clients, userID)
	}
	r.mu.Unlock()
	if ok {
		_ = c.stream.Close()
	}
}

// Disconnect drops the entry for userID only while it still owns s. The
// HTTP handler calls this when its client goes away; without the identity
// check it could tear down a connection that already superseded it.
func (r *Registry) Disconnect(userID string, s Stream) {
	r.mu.Lock()
	if c, ok := r.clients[userID]; ok && c.stream == s {
		delete(r.clients, userID)
	}
	r.mu.Unlock()
	_ = s.Close()
}

// CloseAll evicts every connection; used on shutdown.
func (r *Registry) CloseAll() {
	for _, userID := range r.connectedIDs() {
		r.RemoveClient(userID)
	}
}

func (r *Registry) Stats() Stats {
	ids := r.connectedIDs()
	return Stats{ActiveConnections: len(ids), Connections: ids}
}

// Run sweeps connections on the heartbeat interval until ctx is canceled:
// stale ones are evicted, live ones get a heartbeat frame.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Registry) sweep() {
	now := r.now()

	r.mu.Lock()
	var stale, live []string
	for id, c := range r.clients {
		if now.Sub(c.lastHeartbeat) > r.timeout {
			stale = append(stale, id)
		} else {
			live = append(live, id)
		}
	}
	r.mu.Unlock()

	for _, id := range stale {
		log.Printf("sse: evicting stale connection for %s", id)
		r.RemoveClient(id)
	}
	frame := Frame{Type: "heartbeat", Timestamp: now.UTC().Format(time.RFC3339)}
	for _, id := range live {
		// a failed heartbeat evicts via the normal send path
		_ = r.SendToClient(id, frame)
	}
}

func (r *Registry) connectedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids
}
