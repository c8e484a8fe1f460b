package google

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spetersoncode/studio"
	"google.golang.org/genai"
)

// GenerateVideo starts a video generation job using Veo.
func (c *Client) GenerateVideo(ctx context.Context, prompt string, opts ...studio.VideoOption) (*studio.VideoOperation, error) {
	options := studio.ApplyVideoOptions(opts...)

	model := c.videoModel
	if options.Model != "" {
		model = options.Model
	}

	var image *genai.Image
	if options.Image != nil {
		image = &genai.Image{
			ImageBytes: options.Image.Data,
			MIMEType:   options.Image.MIMEType,
		}
	}

	config := &genai.GenerateVideosConfig{}
	n := options.Count
	if n <= 0 {
		n = 1
	}
	config.NumberOfVideos = int32(n)

	op, err := c.client.Models.GenerateVideos(ctx, model, prompt, image, config)
	if err != nil {
		return nil, wrapError(err)
	}

	c.rememberOperation(op)
	return convertOperation(op), nil
}

// PollVideo refreshes the remote job behind op.
func (c *Client) PollVideo(ctx context.Context, op *studio.VideoOperation) (*studio.VideoOperation, error) {
	handle, ok := c.operation(op.Name)
	if !ok {
		return nil, studio.NewInternalError(fmt.Sprintf("unknown video operation %q", op.Name), nil)
	}

	refreshed, err := c.client.Operations.GetVideosOperation(ctx, handle, nil)
	if err != nil {
		return nil, wrapError(err)
	}

	c.rememberOperation(refreshed)
	out := convertOperation(refreshed)
	if out.Done {
		c.forgetOperation(out.Name)
	}
	return out, nil
}

// FetchVideo reads the finished asset fully into memory. The API credential
// is appended as a query parameter, matching the backend's download
// contract. Inline bytes, when present, are returned as-is.
func (c *Client) FetchVideo(ctx context.Context, video *studio.GeneratedVideo) ([]byte, error) {
	if len(video.Data) > 0 {
		return video.Data, nil
	}
	if video.URI == "" {
		return nil, studio.NewBlockedError("The generated video has no retrievable reference.")
	}

	u, err := url.Parse(video.URI)
	if err != nil {
		return nil, studio.NewTransportError("invalid video URI", 0, err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, studio.NewTransportError("building video download request failed", 0, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, studio.NewTransportError("video download failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, studio.NewTransportError(
			fmt.Sprintf("video download failed: %s", resp.Status),
			resp.StatusCode, nil,
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, studio.NewTransportError("reading video download failed", 0, err)
	}
	return data, nil
}

func (c *Client) rememberOperation(op *genai.GenerateVideosOperation) {
	if op == nil || op.Name == "" {
		return
	}
	c.mu.Lock()
	c.ops[op.Name] = op
	c.mu.Unlock()
}

func (c *Client) operation(name string) (*genai.GenerateVideosOperation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	op, ok := c.ops[name]
	return op, ok
}

func (c *Client) forgetOperation(name string) {
	c.mu.Lock()
	delete(c.ops, name)
	c.mu.Unlock()
}

func convertOperation(op *genai.GenerateVideosOperation) *studio.VideoOperation {
	out := &studio.VideoOperation{
		Name: op.Name,
		Done: op.Done,
	}

	if p, ok := progressPercent(op.Metadata); ok {
		out.ProgressPercent = &p
	}
	if op.Error != nil {
		if msg, ok := op.Error["message"].(string); ok && msg != "" {
			out.ErrMessage = msg
		} else {
			out.ErrMessage = fmt.Sprintf("video generation failed: %v", op.Error)
		}
	}
	if op.Response != nil && len(op.Response.GeneratedVideos) > 0 {
		if v := op.Response.GeneratedVideos[0].Video; v != nil && (v.URI != "" || len(v.VideoBytes) > 0) {
			out.Video = &studio.GeneratedVideo{
				URI:      v.URI,
				MIMEType: v.MIMEType,
				Data:     v.VideoBytes,
			}
		}
	}
	return out
}

func progressPercent(metadata map[string]any) (float64, bool) {
	if metadata == nil {
		return 0, false
	}
	switch v := metadata["progressPercent"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
