// Package client is the entry point for provider access. It wires the
// Google GenAI adapter behind the studio provider interfaces using a
// single pre-provisioned API credential.
package client

import (
	"context"
	"net/http"

	"github.com/spetersoncode/studio"
	"github.com/spetersoncode/studio/internal/provider/google"
)

// ErrMissingAPIKey is returned when no API key is configured.
type ErrMissingAPIKey struct{}

func (e *ErrMissingAPIKey) Error() string {
	return "no API key configured: set GEMINI_API_KEY"
}

// Config holds configuration for creating a client.
type Config struct {
	// APIKey is the Google GenAI API key. Required.
	APIKey string

	// HTTPClient is used to fetch finished video assets. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Defaults overrides the per-operation default models. Zero values
	// keep the catalog defaults.
	Defaults Defaults
}

// Defaults holds default model IDs per operation.
type Defaults struct {
	Chat  string
	Image string
	Video string
}

// Client provides access to all three generation operations.
type Client struct {
	studio.ChatProvider
	studio.ImageProvider
	studio.VideoProvider
}

// New creates a client backed by the Google GenAI API.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{}
	}

	var opts []google.ClientOption
	if cfg.HTTPClient != nil {
		opts = append(opts, google.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.Defaults.Chat != "" {
		opts = append(opts, google.WithChatModel(cfg.Defaults.Chat))
	}
	if cfg.Defaults.Image != "" {
		opts = append(opts, google.WithImageModel(cfg.Defaults.Image))
	}
	if cfg.Defaults.Video != "" {
		opts = append(opts, google.WithVideoModel(cfg.Defaults.Video))
	}

	g, err := google.New(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		ChatProvider:  g,
		ImageProvider: g,
		VideoProvider: g,
	}, nil
}
