package app

import (
	"encoding/json"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/history"
)

// Surface events emitted on the output stream.
const (
	eventShowMain       = "showMain"
	eventShowPopup      = "showPopup"
	eventAppendResponse = "appendResponse"
	eventShowToolbar    = "showToolbar"
)

// streamSurface writes UI events as newline-delimited JSON to an
// output stream. It implements both the executor's popup surface and
// the dispatcher's toolbar surface; a windowed frontend consumes the
// stream and renders.
type streamSurface struct {
	mu  sync.Mutex
	out io.Writer
	log *zap.Logger
}

func newStreamSurface(out io.Writer, log *zap.Logger) *streamSurface {
	return &streamSurface{out: out, log: log}
}

type surfaceEvent struct {
	Event   string          `json:"event"`
	Entry   *history.Entry  `json:"entry,omitempty"`
	EntryID string          `json:"entryId,omitempty"`
	Chunk   string          `json:"chunk,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (s *streamSurface) ShowMain() {
	s.emit(surfaceEvent{Event: eventShowMain})
}

func (s *streamSurface) ShowPopup(entry history.Entry) {
	s.emit(surfaceEvent{Event: eventShowPopup, Entry: &entry})
}

func (s *streamSurface) AppendResponse(entryID, chunk string) {
	s.emit(surfaceEvent{Event: eventAppendResponse, EntryID: entryID, Chunk: chunk})
}

func (s *streamSurface) ShowToolbar(payload []byte) {
	s.emit(surfaceEvent{Event: eventShowToolbar, Payload: payload})
}

func (s *streamSurface) emit(ev surfaceEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Warn("surface event marshal failed", zap.Error(err))
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(data); err != nil {
		s.log.Warn("surface write failed", zap.Error(err))
	}
}
