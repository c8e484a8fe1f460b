package studio

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ContentPartType represents the type of content in a multimodal message part.
type ContentPartType string

const (
	ContentPartTypeText  ContentPartType = "text"
	ContentPartTypeImage ContentPartType = "image"
)

// ContentPart represents a single part of multimodal content. Use either
// Text (for text parts) or Data+MIMEType (for inline image parts).
type ContentPart struct {
	// Type indicates the content type: "text" or "image".
	Type ContentPartType `json:"type"`
	// Text contains the text content. Only used when Type is "text".
	Text string `json:"text,omitempty"`
	// Data contains raw image bytes. Only used when Type is "image".
	Data []byte `json:"data,omitempty"`
	// MIMEType specifies the image format (e.g. "image/jpeg", "image/png").
	// Required when Data is set.
	MIMEType string `json:"mimeType,omitempty"`
}

// NewTextPart creates a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{
		Type: ContentPartTypeText,
		Text: text,
	}
}

// NewImagePart creates an inline image content part.
func NewImagePart(data []byte, mimeType string) ContentPart {
	return ContentPart{
		Type:     ContentPartTypeImage,
		Data:     data,
		MIMEType: mimeType,
	}
}

// Message represents a single message in a conversation.
type Message struct {
	Role  Role          `json:"role"`
	Parts []ContentPart `json:"parts,omitempty"`
}

// UploadedImage is a user-selected image converted to a transport-ready
// payload. At most one uploaded image is live per session at a time.
type UploadedImage struct {
	MIMEType string
	Data     []byte
}
