// Package render converts generation outcomes into the payloads the page
// displays: markdown chat responses become HTML, media results carry the
// URLs of their served assets, and failures collapse into a single
// user-visible message.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Kind identifies what a result holds.
type Kind string

const (
	KindChat  Kind = "chat"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Result is a rendered generation outcome. Exactly one of HTML or MediaURL
// is populated, matching the invariant that at most one result is current.
type Result struct {
	Kind Kind `json:"kind"`
	// HTML is the markdown-rendered chat response.
	HTML string `json:"html,omitempty"`
	// RawText is the chat response's plain text, used by the copy action.
	RawText string `json:"rawText,omitempty"`
	// MediaURL locates the served image or video asset.
	MediaURL string `json:"mediaUrl,omitempty"`
	// DownloadURL serves the same asset with a download disposition.
	DownloadURL string `json:"downloadUrl,omitempty"`
	// CanCopy enables the copy control (chat only).
	CanCopy bool `json:"canCopy"`
	// CanDownload enables the download control (image/video only).
	CanDownload bool `json:"canDownload"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Chat renders a chat response: the text is parsed as markdown into HTML.
// The output's trust level mirrors what the markdown library provides; no
// additional sanitization is applied.
func Chat(text string) (*Result, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return nil, err
	}
	return &Result{
		Kind:    KindChat,
		HTML:    buf.String(),
		RawText: text,
		CanCopy: true,
	}, nil
}

// Image renders a generated image bound to its served asset URL.
func Image(mediaURL, downloadURL string) *Result {
	return &Result{
		Kind:        KindImage,
		MediaURL:    mediaURL,
		DownloadURL: downloadURL,
		CanDownload: true,
	}
}

// Video renders a generated video bound to its served asset URL.
func Video(mediaURL, downloadURL string) *Result {
	return &Result{
		Kind:        KindVideo,
		MediaURL:    mediaURL,
		DownloadURL: downloadURL,
		CanDownload: true,
	}
}
