// Package media converts user-selected upload files into transport-ready
// payloads for the generation backend.
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/spetersoncode/studio"
)

// MaxUploadBytes bounds the size of an accepted image upload. The HTTP
// surface enforces the same bound on the whole multipart body.
const MaxUploadBytes = 10 << 20

// EncodeUpload reads a multipart upload fully into memory and returns it
// as a transport-ready payload. Non-image uploads are rejected with a
// validation error; the mime type is taken from the part header and
// verified against the content when the header is missing or generic.
func EncodeUpload(fh *multipart.FileHeader) (*studio.UploadedImage, error) {
	if fh.Size > MaxUploadBytes {
		return nil, studio.NewValidationError(
			fmt.Sprintf("Image is too large (limit %d MB).", MaxUploadBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, studio.NewInternalError("Could not read the uploaded image.", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, studio.NewInternalError("Could not read the uploaded image.", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, studio.NewValidationError(
			fmt.Sprintf("Image is too large (limit %d MB).", MaxUploadBytes>>20))
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, studio.NewValidationError("Please select an image file.")
	}

	return &studio.UploadedImage{
		MIMEType: mimeType,
		Data:     data,
	}, nil
}
