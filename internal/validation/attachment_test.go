package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerFor(filename, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: filename, Header: h}
}

func TestDetectMimeTypeFromHeader(t *testing.T) {
	mimeType, err := DetectMimeType(headerFor("photo.bin", "image/png"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
}

func TestDetectMimeTypeFallsBackToExtension(t *testing.T) {
	mimeType, err := DetectMimeType(headerFor("photo.png", "application/octet-stream"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
}

func TestDetectMimeTypeUnknown(t *testing.T) {
	_, err := DetectMimeType(headerFor("mystery", ""))
	assert.Error(t, err)
}

func TestValidateAttachmentRejectsDisallowedType(t *testing.T) {
	allowed := BuildAllowedMimeMap([]string{"image/jpeg", "image/png"})

	err := ValidateAttachment(headerFor("report.pdf", "application/pdf"), allowed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}
