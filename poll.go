package studio

import (
	"context"
	"fmt"
	"time"
)

// DefaultPollInterval is the fixed delay between video status polls.
const DefaultPollInterval = 10 * time.Second

// PollState is the poller's position in the video job lifecycle.
type PollState string

const (
	PollSubmitted PollState = "submitted"
	PollPolling   PollState = "polling"
	PollSucceeded PollState = "succeeded"
	PollFailed    PollState = "failed"
)

// Shown round-robin when the backend reports no progress number.
var placeholderStatuses = []string{
	"Generating video frames…",
	"This can take a few minutes…",
	"Still working on it…",
}

// Poller drives a video operation to completion at a fixed interval. There
// is no backoff, jitter, or retry cap; the loop runs until the operation
// reports done, a poll fails, or ctx is cancelled. Every suspension point
// honors ctx, so a mode switch or a new submission can abort an in-flight
// job.
type Poller struct {
	// Videos issues the poll and fetch calls.
	Videos VideoProvider

	// Interval between polls. Defaults to DefaultPollInterval.
	Interval time.Duration

	// OnStatus, if set, receives each status message as the loader label
	// changes. Called from the polling goroutine.
	OnStatus func(msg string)

	// after is replaced in tests to observe suspensions.
	after func(d time.Duration) <-chan time.Time

	state PollState
}

// State returns the poller's current state.
func (p *Poller) State() PollState {
	if p.state == "" {
		return PollSubmitted
	}
	return p.state
}

// Wait polls op until it reaches a terminal state, then fetches the asset
// bytes. It returns the generated video with Data populated, or the
// terminal error.
func (p *Poller) Wait(ctx context.Context, op *VideoOperation) (*GeneratedVideo, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	after := p.after
	if after == nil {
		after = time.After
	}

	p.state = PollPolling
	for tick := 0; !op.Done; tick++ {
		refreshed, err := p.Videos.PollVideo(ctx, op)
		if err != nil {
			p.state = PollFailed
			return nil, err
		}
		op = refreshed

		if !op.Done {
			p.status(statusMessage(op, tick))
			select {
			case <-ctx.Done():
				p.state = PollFailed
				return nil, ctx.Err()
			case <-after(interval):
			}
		}
	}

	if op.ErrMessage != "" {
		p.state = PollFailed
		return nil, NewInternalError(op.ErrMessage, nil)
	}
	if op.Video == nil {
		p.state = PollFailed
		return nil, NewBlockedError("No video was generated. The request may have been blocked by content policy.")
	}

	p.status("Downloading video…")
	data, err := p.Videos.FetchVideo(ctx, op.Video)
	if err != nil {
		p.state = PollFailed
		return nil, err
	}

	video := *op.Video
	video.Data = data
	if video.MIMEType == "" {
		video.MIMEType = "video/mp4"
	}
	p.state = PollSucceeded
	return &video, nil
}

func (p *Poller) status(msg string) {
	if p.OnStatus != nil {
		p.OnStatus(msg)
	}
}

// statusMessage selects the loader label for one poll. With a progress
// number the label is chosen by fixed thresholds and annotated with the
// literal percentage; without one the placeholder messages cycle, one per
// poll.
func statusMessage(op *VideoOperation, tick int) string {
	if op.ProgressPercent == nil {
		return placeholderStatuses[tick%len(placeholderStatuses)]
	}
	progress := *op.ProgressPercent
	var label string
	switch {
	case progress < 35:
		label = "Generating video frames…"
	case progress < 70:
		label = "Encoding video…"
	default:
		label = "Finalizing…"
	}
	return fmt.Sprintf("%s (%d%%)", label, int(progress))
}
