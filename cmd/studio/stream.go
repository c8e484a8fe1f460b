package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spetersoncode/studio/render"
)

// eventStream writes the submission's lifecycle to the page as
// Server-Sent Events: any number of "status" events (the loader label),
// then exactly one terminal "result" or "error" event.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newEventStream(w http.ResponseWriter) (*eventStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support flushing")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &eventStream{w: w, flusher: flusher}, nil
}

// Status updates the loader label.
func (s *eventStream) Status(msg string) {
	s.write("status", map[string]string{"message": msg})
}

// Result sends the terminal success payload.
func (s *eventStream) Result(result *render.Result) {
	s.write("result", result)
}

// Error sends the terminal failure payload: the single user-visible
// message.
func (s *eventStream) Error(msg string) {
	s.write("error", map[string]string{"message": msg})
}

func (s *eventStream) write(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// SSE format: event: TYPE\ndata: {json}\n\n
	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data)
	s.flusher.Flush()
}
