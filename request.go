package studio

import "strings"

// Request is one assembled generation submission: the mode, the prompt, the
// selected model, and the mode-specific settings that go with them.
type Request struct {
	Mode        Mode
	Prompt      string
	Model       string
	AspectRatio AspectRatio    // image mode only
	Image       *UploadedImage // chat and video modes only
}

// Validate checks the submission against the prompt rules before any
// network call. The prompt must be non-empty, unless the mode is chat and
// an image is attached.
func (r *Request) Validate() error {
	if !r.Mode.Valid() {
		return NewValidationError("Please choose a generation mode.")
	}
	if strings.TrimSpace(r.Prompt) == "" {
		if r.Mode == ModeChat && r.Image != nil {
			return nil
		}
		return ErrEmptyPrompt
	}
	return nil
}

// Messages builds the chat payload. With an attached image the payload is a
// single user message holding the inline-image part followed by the text
// part; otherwise it is the prompt text alone.
func (r *Request) Messages() []Message {
	if r.Image != nil {
		parts := []ContentPart{NewImagePart(r.Image.Data, r.Image.MIMEType)}
		if r.Prompt != "" {
			parts = append(parts, NewTextPart(r.Prompt))
		}
		return []Message{{Role: RoleUser, Parts: parts}}
	}
	return []Message{{Role: RoleUser, Parts: []ContentPart{NewTextPart(r.Prompt)}}}
}

// ImageOptions builds the image-mode option list: one JPEG image at the
// selected aspect ratio.
func (r *Request) ImageOptions() []ImageOption {
	return []ImageOption{
		WithImageModel(r.Model),
		WithImageCount(1),
		WithAspectRatio(r.AspectRatio),
		WithImageOutputMIMEType("image/jpeg"),
	}
}

// VideoOptions builds the video-mode option list: one video, with the
// uploaded image as an optional starting reference.
func (r *Request) VideoOptions() []VideoOption {
	opts := []VideoOption{
		WithVideoModel(r.Model),
		WithVideoCount(1),
	}
	if r.Image != nil {
		opts = append(opts, WithReferenceImage(r.Image))
	}
	return opts
}
