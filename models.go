package studio

// Model describes one selectable model in the studio's model dropdown.
type Model struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Per-mode model catalogs. The first entry of each list is the default.
var (
	chatModels = []Model{
		{ID: "gemini-2.5-flash", Label: "Gemini 2.5 Flash"},
		{ID: "gemini-2.5-pro", Label: "Gemini 2.5 Pro"},
		{ID: "gemini-2.5-flash-lite", Label: "Gemini 2.5 Flash Lite"},
	}
	imageModels = []Model{
		{ID: "imagen-4.0-generate-001", Label: "Imagen 4"},
		{ID: "imagen-4.0-fast-generate-001", Label: "Imagen 4 Fast"},
		{ID: "imagen-4.0-ultra-generate-001", Label: "Imagen 4 Ultra"},
	}
	videoModels = []Model{
		{ID: "veo-3.0-generate-001", Label: "Veo 3"},
		{ID: "veo-3.0-fast-generate-001", Label: "Veo 3 Fast"},
		{ID: "veo-2.0-generate-001", Label: "Veo 2"},
	}
)

// ModelsFor returns the models valid for the given mode.
func ModelsFor(mode Mode) []Model {
	var src []Model
	switch mode {
	case ModeImage:
		src = imageModels
	case ModeVideo:
		src = videoModels
	default:
		src = chatModels
	}
	out := make([]Model, len(src))
	copy(out, src)
	return out
}

// DefaultModelFor returns the default model ID for the given mode.
func DefaultModelFor(mode Mode) string {
	return ModelsFor(mode)[0].ID
}

// ValidModelFor reports whether id is in the catalog for the given mode.
func ValidModelFor(mode Mode, id string) bool {
	for _, m := range ModelsFor(mode) {
		if m.ID == id {
			return true
		}
	}
	return false
}
