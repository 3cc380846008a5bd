package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrFileRequired = errors.New("no file provided")
	ErrTooManyFiles = errors.New("too many files. Maximum is 10 per upload")
)

const (
	MaxImageSize  = 10 * 1024 * 1024 // 10MB
	MaxImageCount = 10
)

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	// The extension check alone is easy to defeat; check the declared MIME
	// type too, as the browser sets it from the actual file.
	if contentType := file.Header.Get("Content-Type"); contentType != "" && !AllowedMimeTypes[contentType] {
		return ErrFileType
	}

	return nil
}

// ValidateImageBatch applies the per-file rules to a whole upload.
func ValidateImageBatch(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return ErrFileRequired
	}
	if len(files) > MaxImageCount {
		return ErrTooManyFiles
	}
	for _, file := range files {
		if err := ValidateImage(file); err != nil {
			return err
		}
	}
	return nil
}
