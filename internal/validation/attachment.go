package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// ValidateAttachment checks one uploaded image before it is forwarded to
// the backend: MIME type against the allow-list, plus a best-effort
// dimension probe to catch files that only claim to be images.
func ValidateAttachment(fileHeader *multipart.FileHeader, allowedMimes map[string]bool) error {
	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return err
	}

	if !allowedMimes[mimeType] {
		return fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	if strings.HasPrefix(mimeType, "image/") {
		file, err := fileHeader.Open()
		if err != nil {
			return fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer file.Close()

		// decode failure is not fatal, dimensions are informational only
		if _, _, err := image.DecodeConfig(file); err == nil {
			file.Seek(0, 0)
		}
	}

	return nil
}

func BuildAllowedMimeMap(imageMimes []string) map[string]bool {
	allowedMimes := make(map[string]bool)
	for _, m := range imageMimes {
		allowedMimes[m] = true
	}
	return allowedMimes
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		detectedType := mime.TypeByExtension(ext)
		if detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}

// ValidateAndParseMultipart caps the request size and parses the multipart
// form. MaxBytesReader stops reading at the limit so an oversized upload
// cannot exhaust the process.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}

	return nil
}
