package studio

import "fmt"

// Mode identifies one of the three generation modes.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModeImage Mode = "image"
	ModeVideo Mode = "video"

	// DefaultMode is the mode selected when the studio first loads.
	DefaultMode = ModeChat
)

// String returns the mode identifier.
func (m Mode) String() string { return string(m) }

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeChat, ModeImage, ModeVideo:
		return true
	}
	return false
}

// AcceptsUpload reports whether the mode's form accepts an attached
// reference image. Image mode generates from the prompt alone.
func (m Mode) AcceptsUpload() bool {
	return m == ModeChat || m == ModeVideo
}

// Placeholder returns the prompt placeholder text shown for the mode.
func (m Mode) Placeholder() string {
	switch m {
	case ModeImage:
		return "Describe the image you want to generate…"
	case ModeVideo:
		return "Describe the video you want to generate…"
	default:
		return "Ask anything, or attach an image to talk about…"
	}
}

// ParseMode converts a mode identifier string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode: %q", s)
	}
	return m, nil
}
