package google

import (
	"github.com/spetersoncode/studio"
	"google.golang.org/genai"
)

func convertMessages(messages []studio.Message) []*genai.Content {
	var contents []*genai.Content

	for _, msg := range messages {
		role := genai.RoleUser
		if msg.Role == studio.RoleModel {
			role = genai.RoleModel
		}

		parts := convertParts(msg.Parts)
		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents
}

func convertParts(parts []studio.ContentPart) []*genai.Part {
	var result []*genai.Part
	for _, part := range parts {
		switch part.Type {
		case studio.ContentPartTypeText:
			if part.Text != "" {
				result = append(result, &genai.Part{Text: part.Text})
			}
		case studio.ContentPartTypeImage:
			if len(part.Data) == 0 {
				continue
			}
			mimeType := part.MIMEType
			if mimeType == "" {
				mimeType = "image/jpeg"
			}
			result = append(result, &genai.Part{
				InlineData: &genai.Blob{
					Data:     part.Data,
					MIMEType: mimeType,
				},
			})
		}
	}
	return result
}
