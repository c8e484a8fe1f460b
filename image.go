package studio

import "context"

// ImageProvider defines the interface for still image generation providers.
type ImageProvider interface {
	// GenerateImage creates images from a text prompt. An empty result
	// list from the backend is a terminal blocked failure.
	GenerateImage(ctx context.Context, prompt string, opts ...ImageOption) (*ImageResponse, error)
}

// ImageResponse represents a complete response from an image provider.
type ImageResponse struct {
	Images []GeneratedImage
}

// GeneratedImage represents a single generated image.
type GeneratedImage struct {
	// MIMEType is the image format (e.g. "image/jpeg").
	MIMEType string
	// Data contains the raw image bytes.
	Data []byte
}

// AspectRatio is one of the fixed aspect ratio choices offered by the
// image-mode form.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"

	// DefaultAspectRatio is preselected when the studio loads.
	DefaultAspectRatio = AspectRatio1x1
)

// AspectRatios lists the choices offered by the aspect-ratio dropdown.
func AspectRatios() []AspectRatio {
	return []AspectRatio{
		AspectRatio1x1,
		AspectRatio16x9,
		AspectRatio9x16,
		AspectRatio4x3,
		AspectRatio3x4,
	}
}

// Valid reports whether r is one of the offered aspect ratios.
func (r AspectRatio) Valid() bool {
	for _, v := range AspectRatios() {
		if r == v {
			return true
		}
	}
	return false
}

// String returns the aspect ratio in "W:H" form.
func (r AspectRatio) String() string { return string(r) }
