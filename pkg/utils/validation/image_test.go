package validation_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"courtier_backend/pkg/utils/validation"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: name,
		Size:     size,
	}
	if contentType != "" {
		h.Header = textproto.MIMEHeader{"Content-Type": []string{contentType}}
	}
	return h
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, validation.ValidateImage(header("photo.jpg", "image/jpeg", 1024)))
	assert.NoError(t, validation.ValidateImage(header("photo.JPEG", "image/jpeg", 1024)))
	assert.NoError(t, validation.ValidateImage(header("photo.webp", "image/webp", 1024)))
	// No declared MIME type falls back to the extension check alone.
	assert.NoError(t, validation.ValidateImage(header("photo.png", "", 1024)))

	assert.ErrorIs(t, validation.ValidateImage(nil), validation.ErrFileRequired)
	assert.ErrorIs(t, validation.ValidateImage(header("photo.gif", "image/gif", 1024)), validation.ErrFileType)
	assert.ErrorIs(t, validation.ValidateImage(header("script.exe", "application/octet-stream", 1024)), validation.ErrFileType)
	assert.ErrorIs(t, validation.ValidateImage(header("photo.jpg", "application/octet-stream", 1024)), validation.ErrFileType)
	assert.ErrorIs(t, validation.ValidateImage(header("photo.jpg", "image/jpeg", validation.MaxImageSize+1)), validation.ErrFileSize)
}

func TestValidateImageBatch(t *testing.T) {
	assert.ErrorIs(t, validation.ValidateImageBatch(nil), validation.ErrFileRequired)

	batch := make([]*multipart.FileHeader, 0, validation.MaxImageCount+1)
	for i := 0; i <= validation.MaxImageCount; i++ {
		batch = append(batch, header("photo.jpg", "image/jpeg", 1024))
	}
	assert.ErrorIs(t, validation.ValidateImageBatch(batch), validation.ErrTooManyFiles)

	assert.NoError(t, validation.ValidateImageBatch(batch[:validation.MaxImageCount]))

	mixed := []*multipart.FileHeader{
		header("photo.jpg", "image/jpeg", 1024),
		header("notes.txt", "text/plain", 1024),
	}
	assert.ErrorIs(t, validation.ValidateImageBatch(mixed), validation.ErrFileType)
}
