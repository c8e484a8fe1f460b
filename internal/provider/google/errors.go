package google

import (
	"context"
	"errors"

	"github.com/spetersoncode/studio"
	"google.golang.org/genai"
)

// wrapError converts a Google GenAI error into the studio taxonomy. API
// errors surface their provider message and status code as transport
// failures; context errors pass through untouched so cancellation stays
// detectable with errors.Is.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "The generation service returned an error."
		}
		return studio.NewTransportError(msg, apiErr.Code, err)
	}

	return studio.NewTransportError("Could not reach the generation service.", 0, err)
}

// blockedFromFeedback converts prompt feedback into a blocked error carrying
// the block reason and the non-negligible safety ratings.
func blockedFromFeedback(fb *genai.GenerateContentResponsePromptFeedback) error {
	blocked := &studio.BlockedError{
		Reason: string(fb.BlockReason),
	}
	for _, rating := range fb.SafetyRatings {
		if rating == nil {
			continue
		}
		blocked.Ratings = append(blocked.Ratings, studio.SafetyRating{
			Category:    string(rating.Category),
			Probability: string(rating.Probability),
		})
	}
	return blocked
}
