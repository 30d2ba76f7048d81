package validation

import (
	"errors"
	"fmt"
)

const (
	// MaxFileSize is the per-file upload cap.
	MaxFileSize int64 = 10 * 1024 * 1024
	// MaxFilesPerBatch caps a single upload batch.
	MaxFilesPerBatch = 5
)

var (
	ErrFileTooLarge       = fmt.Errorf("Ukuran file maksimal %dMB", MaxFileSize/1024/1024)
	ErrFileTypeNotAllowed = errors.New("Tipe file tidak diizinkan")
)

// AllowedMimeTypes lists accepted attachment types.
var AllowedMimeTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"text/plain":                   {},
	"application/zip":              {},
	"application/x-rar-compressed": {},
}

// FileMeta describes an uploaded file before it is stored.
type FileMeta struct {
	Name     string
	Size     int64
	MimeType string
}

// ValidateFile checks size then MIME type.
func ValidateFile(f FileMeta) error {
	if f.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	if _, ok := AllowedMimeTypes[f.MimeType]; !ok {
		return ErrFileTypeNotAllowed
	}
	return nil
}

// ValidateFiles checks a batch and collects every problem instead of stopping at the first.
// It returns nil when the batch is acceptable.
func ValidateFiles(files []FileMeta) []string {
	var errs []string
	if len(files) > MaxFilesPerBatch {
		errs = append(errs, fmt.Sprintf("Maksimal %d file yang dapat diunggah", MaxFilesPerBatch))
	}
	for i, f := range files {
		if err := ValidateFile(f); err != nil {
			errs = append(errs, fmt.Sprintf("File %d (%s): %s", i+1, f.Name, err))
		}
	}
	return errs
}
