package google

import (
	"context"
	"net/http"
	"sync"

	"github.com/spetersoncode/studio"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to implement the studio provider
// interfaces.
type Client struct {
	client *genai.Client
	apiKey string
	httpc  *http.Client

	chatModel  string
	imageModel string
	videoModel string

	// Live genai operation handles keyed by operation name, so polls can
	// refresh the remote job in place.
	mu  sync.Mutex
	ops map[string]*genai.GenerateVideosOperation
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client:     client,
		apiKey:     apiKey,
		httpc:      http.DefaultClient,
		chatModel:  DefaultChatModel,
		imageModel: DefaultImageModel,
		videoModel: DefaultVideoModel,
		ops:        make(map[string]*genai.GenerateVideosOperation),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used to fetch finished video assets.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithChatModel sets the default chat model.
func WithChatModel(model string) ClientOption {
	return func(c *Client) {
		c.chatModel = model
	}
}

// WithImageModel sets the default image model.
func WithImageModel(model string) ClientOption {
	return func(c *Client) {
		c.imageModel = model
	}
}

// WithVideoModel sets the default video model.
func WithVideoModel(model string) ClientOption {
	return func(c *Client) {
		c.videoModel = model
	}
}

// GenerateText sends a conversation and returns a complete response.
func (c *Client) GenerateText(ctx context.Context, messages []studio.Message, opts ...studio.Option) (*studio.ChatResponse, error) {
	options := studio.ApplyOptions(opts...)
	model := c.chatModel
	if options.Model != "" {
		model = options.Model
	}

	contents := convertMessages(messages)

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, wrapError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, blockedFromFeedback(resp.PromptFeedback)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, studio.NewBlockedError("The model returned no response. The prompt may have been blocked by content policy.")
	}

	candidate := resp.Candidates[0]
	text := ""
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return &studio.ChatResponse{
		Text:         text,
		FinishReason: string(candidate.FinishReason),
	}, nil
}

var _ studio.ChatProvider = (*Client)(nil)
var _ studio.ImageProvider = (*Client)(nil)
var _ studio.VideoProvider = (*Client)(nil)
