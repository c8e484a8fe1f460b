package studio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		mode     Mode
		expected string
	}{
		{
			name:     "punctuation stripped and spaces become underscores",
			prompt:   "Hello, World! 123",
			mode:     ModeImage,
			expected: "Hello_World_123.jpg",
		},
		{
			name:     "video extension",
			prompt:   "a paper boat",
			mode:     ModeVideo,
			expected: "a_paper_boat.mp4",
		},
		{
			name:     "whitespace runs collapse",
			prompt:   "foo \t\n  bar",
			mode:     ModeImage,
			expected: "foo_bar.jpg",
		},
		{
			name:     "empty prompt falls back",
			prompt:   "",
			mode:     ModeImage,
			expected: "generated_media.jpg",
		},
		{
			name:     "all-symbol prompt falls back",
			prompt:   "!?¡™£¢",
			mode:     ModeVideo,
			expected: "generated_media.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DownloadFilename(tt.prompt, tt.mode))
		})
	}

	t.Run("long prompts truncate to 50 characters", func(t *testing.T) {
		name := DownloadFilename(strings.Repeat("abcde ", 20), ModeImage)
		assert.Equal(t, maxFilenameBase+len(".jpg"), len(name))
		assert.True(t, strings.HasSuffix(name, ".jpg"))
	})
}
