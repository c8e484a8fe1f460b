package studio

import (
	"regexp"
	"strings"
)

const (
	maxFilenameBase = 50
	defaultBaseName = "generated_media"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonFilenameRun = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// DownloadFilename derives the download filename for a generated asset from
// its prompt text: whitespace runs become underscores, all characters
// outside [A-Za-z0-9_] are stripped, the result is truncated to 50
// characters, and an empty result falls back to "generated_media". The
// extension is "jpg" for images and "mp4" for videos.
func DownloadFilename(prompt string, mode Mode) string {
	base := whitespaceRuns.ReplaceAllString(strings.TrimSpace(prompt), "_")
	base = nonFilenameRun.ReplaceAllString(base, "")
	if len(base) > maxFilenameBase {
		base = base[:maxFilenameBase]
	}
	if base == "" {
		base = defaultBaseName
	}

	ext := "jpg"
	if mode == ModeVideo {
		ext = "mp4"
	}
	return base + "." + ext
}
