package google

import (
	"context"

	"github.com/spetersoncode/studio"
	"google.golang.org/genai"
)

// GenerateImage generates images from a text prompt using Imagen.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...studio.ImageOption) (*studio.ImageResponse, error) {
	options := studio.ApplyImageOptions(opts...)

	model := c.imageModel
	if options.Model != "" {
		model = options.Model
	}

	config := &genai.GenerateImagesConfig{}

	n := options.Count
	if n <= 0 {
		n = 1
	}
	config.NumberOfImages = int32(n)

	if options.AspectRatio != "" {
		config.AspectRatio = options.AspectRatio.String()
	}
	if options.OutputMIMEType != "" {
		config.OutputMIMEType = options.OutputMIMEType
	}

	resp, err := c.client.Models.GenerateImages(ctx, model, prompt, config)
	if err != nil {
		return nil, wrapError(err)
	}

	if len(resp.GeneratedImages) == 0 {
		return nil, studio.NewBlockedError("No images were generated, possibly blocked by content policy.")
	}

	images := make([]studio.GeneratedImage, 0, len(resp.GeneratedImages))
	for _, img := range resp.GeneratedImages {
		if img.Image == nil || len(img.Image.ImageBytes) == 0 {
			continue
		}
		mimeType := img.Image.MIMEType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		images = append(images, studio.GeneratedImage{
			MIMEType: mimeType,
			Data:     img.Image.ImageBytes,
		})
	}
	if len(images) == 0 {
		return nil, studio.NewBlockedError("No images were generated, possibly blocked by content policy.")
	}

	return &studio.ImageResponse{Images: images}, nil
}
