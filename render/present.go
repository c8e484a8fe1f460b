package render

import (
	"context"
	"errors"
	"regexp"

	"github.com/spetersoncode/studio"
)

// GenericErrorMessage is shown when a failure carries no usable message.
const GenericErrorMessage = "An unexpected error occurred. Please try again."

// CancelledMessage is shown when the user aborts a pending submission.
const CancelledMessage = "Generation was cancelled."

// Vendor SDK error envelopes occasionally leak through as raw message
// text; strip the known prefixes so the user never sees them.
var vendorPrefix = regexp.MustCompile(`^(?:(?:ApiError|ClientError|ServerError):\s*|googleapi:\s*Error\s+\d+:\s*)`)

// ErrorMessage converts any failure into the single user-visible message
// the page renders. Categorized errors speak for themselves; everything
// else falls back to a generic message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return CancelledMessage
	}

	var ce studio.CategorizedError
	if errors.As(err, &ce) {
		if msg := vendorPrefix.ReplaceAllString(ce.Error(), ""); msg != "" {
			return msg
		}
	}
	return GenericErrorMessage
}
