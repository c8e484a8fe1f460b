package studio

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	Model          string
	Count          int
	AspectRatio    AspectRatio
	OutputMIMEType string
}

// ImageOption is a functional option for configuring image generation
// requests.
type ImageOption func(*ImageOptions)

// WithImageModel sets the model to use for image generation.
func WithImageModel(model string) ImageOption {
	return func(o *ImageOptions) {
		o.Model = model
	}
}

// WithImageCount sets the number of images to generate. Imagen supports
// 1-4; the studio always requests 1.
func WithImageCount(n int) ImageOption {
	return func(o *ImageOptions) {
		o.Count = n
	}
}

// WithAspectRatio sets the aspect ratio for generated images.
func WithAspectRatio(r AspectRatio) ImageOption {
	return func(o *ImageOptions) {
		o.AspectRatio = r
	}
}

// WithImageOutputMIMEType sets the output format for generated images
// (e.g. "image/jpeg").
func WithImageOutputMIMEType(mime string) ImageOption {
	return func(o *ImageOptions) {
		o.OutputMIMEType = mime
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
