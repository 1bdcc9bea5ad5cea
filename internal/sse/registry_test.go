package sse

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	mu     sync.Mutex
	frames []Frame
	fail   bool
	closed bool
}

func (f *fakeStream) Send(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return err
	}
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeStream) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeStream) framesOfType(typ string) []Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Frame
	for _, fr := range f.frames {
		if fr.Type == typ {
			out = append(out, fr)
		}
	}
	return out
}

func TestAddClientSendsConnectedFrame(t *testing.T) {
	r := NewRegistry()
	s := &fakeStream{}
	require.NoError(t, r.AddClient("admin-1", s))

	got := s.framesOfType("connected")
	require.Len(t, got, 1)
	assert.Equal(t, Stats{ActiveConnections: 1, Connections: []string{"admin-1"}}, r.Stats())
}

func TestAddClientReplacesExistingConnection(t *testing.T) {
	r := NewRegistry()
	first := &fakeStream{}
	second := &fakeStream{}
	require.NoError(t, r.AddClient("admin-1", first))
	require.NoError(t, r.AddClient("admin-1", second))

	assert.True(t, first.closed, "superseded stream must be closed")
	assert.False(t, second.closed)

	stats := r.Stats()
	assert.Equal(t, 1, stats.ActiveConnections)
	assert.Equal(t, []string{"admin-1"}, stats.Connections)
}

func TestBroadcastContinuesPastFailingClient(t *testing.T) {
	r := NewRegistry()
	ok1 := &fakeStream{}
	ok2 := &fakeStream{}
	bad := &fakeStream{}
	require.NoError(t, r.AddClient("a", ok1))
	require.NoError(t, r.AddClient("b", ok2))
	require.NoError(t, r.AddClient("c", bad))
	bad.fail = true

	sent, failed := r.Broadcast(map[string]any{"id": 9, "title": "New Contact Inquiry"})

	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)
	assert.Len(t, ok1.framesOfType("notification"), 1)
	assert.Len(t, ok2.framesOfType("notification"), 1)
	assert.True(t, bad.closed, "failing stream must be evicted")
	assert.Equal(t, 2, r.Stats().ActiveConnections)
	assert.NotContains(t, r.Stats().Connections, "c")
}

func TestSendToClientWithoutConnection(t *testing.T) {
	r := NewRegistry()
	err := r.SendToClient("nobody", Frame{Type: "notification"})
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestSweepEvictsStaleAndHeartbeatsLive(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry()
	r.now = func() time.Time { return base }

	stale := &fakeStream{}
	live := &fakeStream{}
	require.NoError(t, r.AddClient("stale", stale))
	require.NoError(t, r.AddClient("live", live))

	r.mu.Lock()
	r.clients["stale"].lastHeartbeat = base.Add(-2 * time.Minute)
	r.clients["live"].lastHeartbeat = base.Add(-30 * time.Second)
	r.mu.Unlock()

	r.sweep()

	assert.True(t, stale.closed)
	assert.Empty(t, stale.framesOfType("heartbeat"), "stale connection must not get a heartbeat")
	require.Len(t, live.framesOfType("heartbeat"), 1)

	r.mu.Lock()
	defer r.mu.Unlock()
	require.Contains(t, r.clients, "live")
	assert.NotContains(t, r.clients, "stale")
	assert.Equal(t, base, r.clients["live"].lastHeartbeat, "heartbeat send must refresh lastHeartbeat")
}

func TestRemoveClientTwiceIsHarmless(t *testing.T) {
	r := NewRegistry()
	s := &fakeStream{}
	require.NoError(t, r.AddClient("a", s))
	r.RemoveClient("a")
	r.RemoveClient("a")
	assert.Equal(t, 0, r.Stats().ActiveConnections)
}
