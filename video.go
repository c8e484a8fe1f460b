package studio

import "context"

// VideoProvider defines the interface for video generation providers.
// Video generation is asynchronous: GenerateVideo submits a remote job and
// returns an operation handle, PollVideo refreshes it, and FetchVideo
// retrieves the finished asset.
type VideoProvider interface {
	// GenerateVideo starts a video generation job.
	GenerateVideo(ctx context.Context, prompt string, opts ...VideoOption) (*VideoOperation, error)

	// PollVideo refreshes the operation's done flag, progress metadata,
	// result, and error.
	PollVideo(ctx context.Context, op *VideoOperation) (*VideoOperation, error)

	// FetchVideo reads the finished asset fully into memory. A non-OK
	// fetch status is a transport failure carrying the status text.
	FetchVideo(ctx context.Context, video *GeneratedVideo) ([]byte, error)
}

// VideoOperation is the handle for a long-running remote video job.
type VideoOperation struct {
	// Name is the remote operation identifier.
	Name string
	// Done reports whether the job reached a terminal state.
	Done bool
	// ProgressPercent is the reported completion percentage, when the
	// backend provides one.
	ProgressPercent *float64
	// ErrMessage carries the remote job's error message when the job
	// failed.
	ErrMessage string
	// Video is the first generated video once the job succeeds, nil while
	// running or when the job produced no retrievable video.
	Video *GeneratedVideo
}

// GeneratedVideo references a single generated video asset.
type GeneratedVideo struct {
	// URI locates the asset on the backend. Fetching it requires the API
	// credential as a query parameter.
	URI string
	// MIMEType is the video format (e.g. "video/mp4").
	MIMEType string
	// Data contains the asset bytes once fetched, or inline bytes when
	// the backend returned them directly.
	Data []byte
}
