package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "chat", want: ModeChat},
		{input: "image", want: ModeImage},
		{input: "video", want: ModeVideo},
		{input: "audio", wantErr: true},
		{input: "", wantErr: true},
		{input: "Chat", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeAcceptsUpload(t *testing.T) {
	assert.True(t, ModeChat.AcceptsUpload())
	assert.True(t, ModeVideo.AcceptsUpload())
	assert.False(t, ModeImage.AcceptsUpload())
}

func TestModePlaceholder(t *testing.T) {
	seen := map[string]Mode{}
	for _, mode := range []Mode{ModeChat, ModeImage, ModeVideo} {
		p := mode.Placeholder()
		assert.NotEmpty(t, p)
		if prev, ok := seen[p]; ok {
			t.Fatalf("modes %s and %s share placeholder %q", prev, mode, p)
		}
		seen[p] = mode
	}
}

func TestModelsFor(t *testing.T) {
	for _, mode := range []Mode{ModeChat, ModeImage, ModeVideo} {
		t.Run(mode.String(), func(t *testing.T) {
			models := ModelsFor(mode)
			require.NotEmpty(t, models)
			assert.Equal(t, models[0].ID, DefaultModelFor(mode))
			for _, m := range models {
				assert.True(t, ValidModelFor(mode, m.ID))
			}
		})
	}

	assert.False(t, ValidModelFor(ModeChat, "veo-3.0-generate-001"))
	assert.False(t, ValidModelFor(ModeImage, ""))
}

func TestModelsForCopies(t *testing.T) {
	a := ModelsFor(ModeChat)
	a[0].ID = "mutated"
	b := ModelsFor(ModeChat)
	assert.NotEqual(t, "mutated", b[0].ID)
}

func TestAspectRatios(t *testing.T) {
	ratios := AspectRatios()
	require.NotEmpty(t, ratios)
	assert.Equal(t, DefaultAspectRatio, ratios[0])
	for _, r := range ratios {
		assert.True(t, r.Valid())
	}
	assert.False(t, AspectRatio("2:1").Valid())
	assert.False(t, AspectRatio("").Valid())
}
