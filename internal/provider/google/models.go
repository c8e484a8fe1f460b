package google

// Default models per operation. These match the first entry of each
// catalog in the root package, which feeds the studio's model dropdown.
const (
	DefaultChatModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"
	DefaultVideoModel = "veo-3.0-generate-001"
)
