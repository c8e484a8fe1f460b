package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/studio"
	"github.com/spetersoncode/studio/session"
)

type fakeChat struct {
	calls    int
	messages []studio.Message
	text     string
	err      error
}

func (f *fakeChat) GenerateText(_ context.Context, messages []studio.Message, _ ...studio.Option) (*studio.ChatResponse, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &studio.ChatResponse{Text: f.text}, nil
}

type fakeImages struct {
	calls int
	image studio.GeneratedImage
	err   error
}

func (f *fakeImages) GenerateImage(_ context.Context, _ string, _ ...studio.ImageOption) (*studio.ImageResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &studio.ImageResponse{Images: []studio.GeneratedImage{f.image}}, nil
}

type fakeVideos struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeVideos) GenerateVideo(_ context.Context, _ string, _ ...studio.VideoOption) (*studio.VideoOperation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &studio.VideoOperation{Name: "operations/test"}, nil
}

func (f *fakeVideos) PollVideo(_ context.Context, op *studio.VideoOperation) (*studio.VideoOperation, error) {
	return &studio.VideoOperation{
		Name: op.Name,
		Done: true,
		Video: &studio.GeneratedVideo{
			MIMEType: "video/mp4",
			Data:     f.data,
		},
	}, nil
}

func (f *fakeVideos) FetchVideo(_ context.Context, video *studio.GeneratedVideo) ([]byte, error) {
	return video.Data, nil
}

type fixture struct {
	handler *Handler
	chat    *fakeChat
	images  *fakeImages
	videos  *fakeVideos
	server  http.Handler
	session *session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		chat:   &fakeChat{text: "The answer is **42**."},
		images: &fakeImages{image: studio.GeneratedImage{MIMEType: "image/jpeg", Data: []byte("jpeg-bytes")}},
		videos: &fakeVideos{data: []byte("mp4-bytes")},
	}
	f.handler = &Handler{
		Chat:         f.chat,
		Images:       f.images,
		Videos:       f.videos,
		Sessions:     session.NewStore(),
		PollInterval: time.Millisecond,
	}
	f.server = f.handler.Routes()
	f.session = f.handler.Sessions.Create()
	return f
}

// generateForm builds a multipart /api/generate body.
func generateForm(t *testing.T, fields map[string]string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageData != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
		h.Set("Content-Type", "image/png")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func (f *fixture) generate(t *testing.T, fields map[string]string, imageData []byte) *httptest.ResponseRecorder {
	t.Helper()
	if _, ok := fields["session"]; !ok {
		fields["session"] = f.session.ID
	}
	body, contentType := generateForm(t, fields, imageData)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

// sseEvents parses an SSE body into (event, decoded data) pairs.
func sseEvents(t *testing.T, body string) []struct {
	Event string
	Data  map[string]any
} {
	t.Helper()
	var events []struct {
		Event string
		Data  map[string]any
	}
	var current string
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			var data map[string]any
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &data))
			events = append(events, struct {
				Event string
				Data  map[string]any
			}{current, data})
		}
	}
	return events
}

func terminalEvent(t *testing.T, body string) (string, map[string]any) {
	t.Helper()
	events := sseEvents(t, body)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	return last.Event, last.Data
}

func TestHandleGenerateChat(t *testing.T) {
	t.Run("empty prompt is rejected before any backend call", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "   "}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Please enter a prompt.", resp["error"])
		assert.Equal(t, 0, f.chat.calls)
	})

	t.Run("image-only chat submission is accepted", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": ""}, pngBytes())

		require.Equal(t, http.StatusOK, rec.Code)
		event, _ := terminalEvent(t, rec.Body.String())
		assert.Equal(t, "result", event)
		assert.Equal(t, 1, f.chat.calls)
		require.Len(t, f.chat.messages, 1)
		require.Len(t, f.chat.messages[0].Parts, 1)
		assert.Equal(t, studio.ContentPartTypeImage, f.chat.messages[0].Parts[0].Type)
	})

	t.Run("removed image does not ride into the next submission", func(t *testing.T) {
		f := newFixture(t)

		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "what is this"}, pngBytes())
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, f.session.UploadedImage())

		// The page removed the image, so the follow-up form has no image
		// part. The stale attachment must not be reused.
		rec = f.generate(t, map[string]string{"mode": "chat", "prompt": "and now without it"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Nil(t, f.session.UploadedImage())
		require.Equal(t, 2, f.chat.calls)
		require.Len(t, f.chat.messages, 1)
		for _, part := range f.chat.messages[0].Parts {
			assert.Equal(t, studio.ContentPartTypeText, part.Type)
		}
	})

	t.Run("chat response is rendered as markdown", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "what is the answer"}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		event, data := terminalEvent(t, rec.Body.String())
		assert.Equal(t, "result", event)
		assert.Equal(t, "chat", data["kind"])
		assert.Contains(t, data["html"], "<strong>42</strong>")
		assert.Equal(t, "The answer is **42**.", data["rawText"])
		assert.Equal(t, true, data["canCopy"])
		assert.Equal(t, "The answer is **42**.", f.session.RawText())
	})

	t.Run("backend failure becomes a terminal error event", func(t *testing.T) {
		f := newFixture(t)
		f.chat.err = studio.NewTransportError("Could not reach the generation service.", 0, nil)
		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "hello"}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		event, data := terminalEvent(t, rec.Body.String())
		assert.Equal(t, "error", event)
		assert.Equal(t, "Could not reach the generation service.", data["message"])
	})
}

func TestHandleGenerateImage(t *testing.T) {
	f := newFixture(t)
	rec := f.generate(t, map[string]string{"mode": "image", "prompt": "A red fox, watercolor"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	event, data := terminalEvent(t, rec.Body.String())
	require.Equal(t, "result", event)
	assert.Equal(t, "image", data["kind"])
	assert.Equal(t, true, data["canDownload"])

	mediaURL, _ := data["mediaUrl"].(string)
	require.NotEmpty(t, mediaURL)

	// Serve the asset.
	req := httptest.NewRequest(http.MethodGet, mediaURL, nil)
	assetRec := httptest.NewRecorder()
	f.server.ServeHTTP(assetRec, req)
	require.Equal(t, http.StatusOK, assetRec.Code)
	assert.Equal(t, "image/jpeg", assetRec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("jpeg-bytes"), assetRec.Body.Bytes())

	// Download carries the prompt-derived filename.
	downloadURL, _ := data["downloadUrl"].(string)
	req = httptest.NewRequest(http.MethodGet, downloadURL, nil)
	dlRec := httptest.NewRecorder()
	f.server.ServeHTTP(dlRec, req)
	require.Equal(t, http.StatusOK, dlRec.Code)
	assert.Equal(t, `attachment; filename="A_red_fox_watercolor.jpg"`, dlRec.Header().Get("Content-Disposition"))
}

func TestHandleGenerateVideo(t *testing.T) {
	f := newFixture(t)
	rec := f.generate(t, map[string]string{"mode": "video", "prompt": "waves at sunset"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	event, data := terminalEvent(t, rec.Body.String())
	require.Equal(t, "result", event)
	assert.Equal(t, "video", data["kind"])
	assert.Equal(t, 1, f.videos.calls)

	downloadURL, _ := data["downloadUrl"].(string)
	req := httptest.NewRequest(http.MethodGet, downloadURL, nil)
	dlRec := httptest.NewRecorder()
	f.server.ServeHTTP(dlRec, req)
	require.Equal(t, http.StatusOK, dlRec.Code)
	assert.Equal(t, "video/mp4", dlRec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="waves_at_sunset.mp4"`, dlRec.Header().Get("Content-Disposition"))
}

func TestHandleGenerateValidation(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"session": "nope", "mode": "chat", "prompt": "hi"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "audio", "prompt": "hi"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("model from another mode", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "hi", "model": "veo-3.0-generate-001"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, f.chat.calls)
	})

	t.Run("unknown aspect ratio", func(t *testing.T) {
		f := newFixture(t)
		rec := f.generate(t, map[string]string{"mode": "image", "prompt": "hi", "aspectRatio": "2:1"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, f.images.calls)
	})

	t.Run("busy session", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.session.Begin(context.Background())
		require.NoError(t, err)

		rec := f.generate(t, map[string]string{"mode": "chat", "prompt": "hi"}, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, 0, f.chat.calls)
	})
}

func TestHandleMode(t *testing.T) {
	f := newFixture(t)

	body, _ := json.Marshal(map[string]string{"sessionId": f.session.ID, "mode": "image"})
	req := httptest.NewRequest(http.MethodPost, "/api/mode", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var state session.ModeState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, studio.ModeImage, state.Mode)
	assert.Equal(t, studio.ModeImage.Placeholder(), state.Placeholder)
	assert.Len(t, state.Models, len(studio.ModelsFor(studio.ModeImage)))
	assert.NotEmpty(t, state.AspectRatios)
	assert.False(t, state.AcceptsUpload)

	t.Run("unknown session", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"sessionId": "nope", "mode": "image"})
		req := httptest.NewRequest(http.MethodPost, "/api/mode", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"sessionId": f.session.ID, "mode": "audio"})
		req := httptest.NewRequest(http.MethodPost, "/api/mode", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleIndex(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	page, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<!doctype html>")
	// A fresh session is minted per page load.
	assert.Equal(t, 2, f.handler.Sessions.Len())
}

func TestHandleMediaNotFound(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/media/"+f.session.ID+"/unknown", nil)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/media/nope/unknown", nil)
	rec = httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func pngBytes() []byte {
	return []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
}
