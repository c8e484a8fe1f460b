// Package session holds the per-browser-session state of the studio: the
// active mode, the uploaded image, and the current result. State lives on
// an explicit session object behind a mutex, so concurrent submissions and
// cancellation have a single writer to reason about.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/spetersoncode/studio"
)

// ErrSubmissionInFlight is returned when a submission starts while another
// one is still pending for the same session.
var ErrSubmissionInFlight = errors.New("a generation request is already in progress")

// Media is a generated asset held in memory for display and download.
// A new submission supersedes the previous value.
type Media struct {
	ID       string
	MIMEType string
	Data     []byte
	Filename string
}

// Session is the state owned by one browser session.
type Session struct {
	ID string

	mu       sync.Mutex
	mode     studio.Mode
	uploaded *studio.UploadedImage
	rawText  string
	media    *Media

	inFlight bool
	cancel   context.CancelFunc
}

// ModeState is the snapshot returned to the page after a mode switch.
type ModeState struct {
	Mode          studio.Mode          `json:"mode"`
	Placeholder   string               `json:"placeholder"`
	Models        []studio.Model       `json:"models"`
	AspectRatios  []studio.AspectRatio `json:"aspectRatios,omitempty"`
	AcceptsUpload bool                 `json:"acceptsUpload"`
}

func newSession() *Session {
	return &Session{
		ID:   uuid.New().String(),
		mode: studio.DefaultMode,
	}
}

// Mode returns the session's active mode.
func (s *Session) Mode() studio.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the active mode. It cancels any in-flight submission,
// discards the current result and raw text, clears the uploaded image, and
// returns the form state for the new mode. No network side effects.
func (s *Session) SetMode(mode studio.Mode) ModeState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abortLocked()
	s.clearResultsLocked()
	s.uploaded = nil
	s.mode = mode

	state := ModeState{
		Mode:          mode,
		Placeholder:   mode.Placeholder(),
		Models:        studio.ModelsFor(mode),
		AcceptsUpload: mode.AcceptsUpload(),
	}
	if mode == studio.ModeImage {
		state.AspectRatios = studio.AspectRatios()
	}
	return state
}

// AttachImage replaces the session's uploaded image. At most one is live
// at a time.
func (s *Session) AttachImage(img *studio.UploadedImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploaded = img
}

// RemoveImage discards the uploaded image.
func (s *Session) RemoveImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploaded = nil
}

// UploadedImage returns the current uploaded image, or nil.
func (s *Session) UploadedImage() *studio.UploadedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploaded
}

// Begin starts a submission. It rejects re-entrant submissions, clears all
// prior result state (at most one result is ever current), and derives a
// cancellable context that Abort and SetMode can cut short.
func (s *Session) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return nil, ErrSubmissionInFlight
	}
	s.clearResultsLocked()

	ctx, cancel := context.WithCancel(ctx)
	s.inFlight = true
	s.cancel = cancel
	return ctx, nil
}

// End finishes the in-flight submission and releases its context.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked()
}

// Abort cancels the in-flight submission, if any.
func (s *Session) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked()
}

// InFlight reports whether a submission is pending.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// SetChatResult records the chat response text for the copy action.
func (s *Session) SetChatResult(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawText = text
	s.media = nil
}

// RawText returns the last chat response's plain text.
func (s *Session) RawText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawText
}

// SetMedia stores a generated asset and returns it with a fresh ID. The
// previous asset, if any, is discarded.
func (s *Session) SetMedia(mimeType string, data []byte, filename string) *Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawText = ""
	s.media = &Media{
		ID:       uuid.New().String(),
		MIMEType: mimeType,
		Data:     data,
		Filename: filename,
	}
	return s.media
}

// MediaByID returns the current asset when its ID matches.
func (s *Session) MediaByID(id string) (*Media, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.media == nil || s.media.ID != id {
		return nil, false
	}
	return s.media, true
}

// abortLocked cancels the in-flight submission. Caller holds s.mu.
func (s *Session) abortLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.inFlight = false
}

// clearResultsLocked drops the current result state. Caller holds s.mu.
func (s *Session) clearResultsLocked() {
	s.rawText = ""
	s.media = nil
}
