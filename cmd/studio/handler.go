package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spetersoncode/studio"
	"github.com/spetersoncode/studio/media"
	"github.com/spetersoncode/studio/render"
	"github.com/spetersoncode/studio/session"
)

// maxRequestBytes bounds the whole multipart submission body.
const maxRequestBytes = media.MaxUploadBytes + 1<<20

// Handler serves the studio page and its JSON/SSE API.
type Handler struct {
	Chat     studio.ChatProvider
	Images   studio.ImageProvider
	Videos   studio.VideoProvider
	Sessions *session.Store

	// PollInterval overrides the video poll interval. Zero keeps the
	// default.
	PollInterval time.Duration
}

// Routes returns the studio's HTTP routes.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /api/mode", h.handleMode)
	mux.HandleFunc("POST /api/generate", h.handleGenerate)
	mux.HandleFunc("GET /api/media/{session}/{id}", h.handleMedia)
	mux.HandleFunc("GET /api/media/{session}/{id}/download", h.handleDownload)
	mux.HandleFunc("GET /health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleIndex mints a session and serves the page with the default mode's
// form state embedded.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Create()
	state := sess.SetMode(studio.DefaultMode)

	if err := renderIndexPage(w, indexPageData{
		SessionID: sess.ID,
		State:     state,
	}); err != nil {
		slog.Error("render index page", "error", err)
	}
}

type modeRequest struct {
	SessionID string `json:"sessionId"`
	Mode      string `json:"mode"`
}

// handleMode switches the session's mode: prior results are cleared, the
// prompt resets, and the response carries the new mode's placeholder,
// model list, and aspect ratios.
func (h *Handler) handleMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sess, ok := h.Sessions.Get(req.SessionID)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown session. Reload the page.")
		return
	}
	mode, err := studio.ParseMode(req.Mode)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Unknown mode.")
		return
	}

	writeJSON(w, http.StatusOK, sess.SetMode(mode))
}

// handleGenerate runs one submission. Validation failures are rejected
// with a JSON error before any backend call; accepted submissions respond
// as an SSE stream of status events followed by one terminal result or
// error event.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(maxRequestBytes); err != nil {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Upload is too large.")
		return
	}

	sess, ok := h.Sessions.Get(r.FormValue("session"))
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown session. Reload the page.")
		return
	}

	mode, err := studio.ParseMode(r.FormValue("mode"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Unknown mode.")
		return
	}
	if sess.Mode() != mode {
		sess.SetMode(mode)
	}

	if mode.AcceptsUpload() {
		if _, fh, err := r.FormFile("image"); err == nil {
			img, encErr := media.EncodeUpload(fh)
			if encErr != nil {
				writeJSONError(w, http.StatusBadRequest, render.ErrorMessage(encErr))
				return
			}
			sess.AttachImage(img)
		} else {
			// The submitted form is authoritative: no image part means the
			// page's attachment was removed.
			sess.RemoveImage()
		}
	}

	req := &studio.Request{
		Mode:        mode,
		Prompt:      r.FormValue("prompt"),
		Model:       r.FormValue("model"),
		AspectRatio: studio.AspectRatio(r.FormValue("aspectRatio")),
		Image:       sess.UploadedImage(),
	}
	if req.Model == "" {
		req.Model = studio.DefaultModelFor(mode)
	}
	if mode == studio.ModeImage && req.AspectRatio == "" {
		req.AspectRatio = studio.DefaultAspectRatio
	}

	if !studio.ValidModelFor(mode, req.Model) {
		writeJSONError(w, http.StatusBadRequest, "Unknown model for this mode.")
		return
	}
	if mode == studio.ModeImage && !req.AspectRatio.Valid() {
		writeJSONError(w, http.StatusBadRequest, "Unknown aspect ratio.")
		return
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, render.ErrorMessage(err))
		return
	}

	ctx, err := sess.Begin(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusConflict, "A generation request is already in progress.")
		return
	}
	defer sess.End()

	log := slog.With("session", sess.ID, "mode", mode)
	start := time.Now()
	log.Info("submission started", "model", req.Model, "has_image", req.Image != nil)

	stream, err := newEventStream(w)
	if err != nil {
		log.Error("streaming not supported")
		writeJSONError(w, http.StatusInternalServerError, "Streaming not supported.")
		return
	}

	var result *render.Result
	switch mode {
	case studio.ModeChat:
		result, err = h.generateChat(ctx, sess, req, stream)
	case studio.ModeImage:
		result, err = h.generateImage(ctx, sess, req, stream)
	case studio.ModeVideo:
		result, err = h.generateVideo(ctx, sess, req, stream)
	}

	if err != nil {
		log.Warn("submission failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"category", studio.CategoryOf(err),
			"error", err,
		)
		stream.Error(render.ErrorMessage(err))
		return
	}

	log.Info("submission completed", "duration_ms", time.Since(start).Milliseconds())
	stream.Result(result)
}

func (h *Handler) generateChat(ctx context.Context, sess *session.Session, req *studio.Request, stream *eventStream) (*render.Result, error) {
	stream.Status("Thinking…")

	resp, err := h.Chat.GenerateText(ctx, req.Messages(), studio.WithModel(req.Model))
	if err != nil {
		return nil, err
	}

	result, err := render.Chat(resp.Text)
	if err != nil {
		return nil, err
	}
	sess.SetChatResult(resp.Text)
	return result, nil
}

func (h *Handler) generateImage(ctx context.Context, sess *session.Session, req *studio.Request, stream *eventStream) (*render.Result, error) {
	stream.Status("Generating image…")

	resp, err := h.Images.GenerateImage(ctx, req.Prompt, req.ImageOptions()...)
	if err != nil {
		return nil, err
	}

	img := resp.Images[0]
	m := sess.SetMedia(img.MIMEType, img.Data, studio.DownloadFilename(req.Prompt, req.Mode))
	return render.Image(mediaURL(sess.ID, m.ID), downloadURL(sess.ID, m.ID)), nil
}

func (h *Handler) generateVideo(ctx context.Context, sess *session.Session, req *studio.Request, stream *eventStream) (*render.Result, error) {
	stream.Status("Submitting video request…")

	op, err := h.Videos.GenerateVideo(ctx, req.Prompt, req.VideoOptions()...)
	if err != nil {
		return nil, err
	}

	poller := &studio.Poller{
		Videos:   h.Videos,
		Interval: h.PollInterval,
		OnStatus: stream.Status,
	}
	video, err := poller.Wait(ctx, op)
	if err != nil {
		return nil, err
	}

	m := sess.SetMedia(video.MIMEType, video.Data, studio.DownloadFilename(req.Prompt, req.Mode))
	return render.Video(mediaURL(sess.ID, m.ID), downloadURL(sess.ID, m.ID)), nil
}

func (h *Handler) handleMedia(w http.ResponseWriter, r *http.Request) {
	m, ok := h.lookupMedia(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", m.MIMEType)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(m.Data)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	m, ok := h.lookupMedia(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", m.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", m.Filename))
	w.Write(m.Data)
}

func (h *Handler) lookupMedia(r *http.Request) (*session.Media, bool) {
	sess, ok := h.Sessions.Get(r.PathValue("session"))
	if !ok {
		return nil, false
	}
	return sess.MediaByID(r.PathValue("id"))
}

func mediaURL(sessionID, mediaID string) string {
	return fmt.Sprintf("/api/media/%s/%s", sessionID, mediaID)
}

func downloadURL(sessionID, mediaID string) string {
	return fmt.Sprintf("/api/media/%s/%s/download", sessionID, mediaID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
