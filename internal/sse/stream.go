package sse

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Stream is one writable server-sent-events channel. The registry only
// depends on this interface so tests can substitute fakes.
type Stream interface {
	// Send writes one event frame carrying data and flushes it.
	Send(data []byte) error
	// Close tears the channel down. Closing twice is harmless.
	Close() error
}

var ErrStreamClosed = errors.New("sse: stream closed")

// ResponseStream adapts an http.ResponseWriter into a Stream. The writer
// must support flushing; plain buffered writers cannot carry SSE.
type ResponseStream struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	f      http.Flusher
	done   chan struct{}
	closed bool
}

func NewResponseStream(w http.ResponseWriter) (*ResponseStream, error) {
	f, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("sse: response writer does not support flushing")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	f.Flush()
	return &ResponseStream{w: w, f: f, done: make(chan struct{})}, nil
}

func (s *ResponseStream) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	s.f.Flush()
	return nil
}

func (s *ResponseStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	return nil
}

// Done is closed when the stream is closed, letting the HTTP handler
// unblock after the registry evicts this connection.
func (s *ResponseStream) Done() <-chan struct{} {
	return s.done
}
