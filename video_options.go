package studio

// VideoOptions contains configuration for a video generation request.
type VideoOptions struct {
	Model string
	Count int
	Image *UploadedImage
}

// VideoOption is a functional option for configuring video generation
// requests.
type VideoOption func(*VideoOptions)

// WithVideoModel sets the model to use for video generation.
func WithVideoModel(model string) VideoOption {
	return func(o *VideoOptions) {
		o.Model = model
	}
}

// WithVideoCount sets the number of videos to generate. The studio always
// requests 1.
func WithVideoCount(n int) VideoOption {
	return func(o *VideoOptions) {
		o.Count = n
	}
}

// WithReferenceImage sets the uploaded image used as the video's starting
// frame.
func WithReferenceImage(img *UploadedImage) VideoOption {
	return func(o *VideoOptions) {
		o.Image = img
	}
}

// ApplyVideoOptions applies functional options to a VideoOptions struct.
func ApplyVideoOptions(opts ...VideoOption) *VideoOptions {
	o := &VideoOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
