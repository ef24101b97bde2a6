// Package provider streams AI chat completions for prompt actions.
//
// A Provider turns one rendered user message into a Session: a stream
// of text chunks with an explicit abort handle. Aborting stops
// consumption of the stream; it does not retract anything the caller
// already surfaced.
package provider

import (
	"context"
	"strings"
	"sync"
)

// Request is one streaming chat invocation.
type Request struct {
	// Model is the provider-specific model name.
	Model string

	// System is an optional system prompt.
	System string

	// Message is the rendered user message.
	Message string
}

// Provider starts streaming chat sessions.
type Provider interface {
	// Name identifies the provider in settings and history.
	Name() string

	// Stream starts a session. Transport failures after the session
	// starts surface through Session.Err, not here.
	Stream(ctx context.Context, req Request) (*Session, error)
}

// Session is one in-flight streamed response.
type Session struct {
	chunks chan string
	cancel context.CancelFunc

	mu   sync.Mutex
	text strings.Builder
	err  error
}

// NewSession creates a session whose lifetime is bounded by cancel.
// Providers emit chunks from their own goroutine and close the session
// when the stream ends.
func NewSession(cancel context.CancelFunc) *Session {
	return &Session{
		chunks: make(chan string, 16),
		cancel: cancel,
	}
}

// Chunks returns the chunk stream. The channel closes when the stream
// completes, fails or is aborted.
func (s *Session) Chunks() <-chan string {
	return s.chunks
}

// Abort stops the stream. Safe to call more than once and after
// completion.
func (s *Session) Abort() {
	s.cancel()
}

// Text returns the response accumulated so far.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text.String()
}

// Err returns the stream failure, if any. Valid once Chunks is closed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Emit records and publishes one chunk. Provider use only.
func (s *Session) Emit(chunk string) {
	if chunk == "" {
		return
	}
	s.mu.Lock()
	s.text.WriteString(chunk)
	s.mu.Unlock()
	s.chunks <- chunk
}

// Fail records a stream failure. Provider use only.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Close closes the chunk stream. Provider use only.
func (s *Session) Close() {
	close(s.chunks)
}
