package storage

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MaxImageSize is the upload size ceiling (10 MB).
const MaxImageSize = 10 * 1024 * 1024

// ErrNotFound is returned when deleting an image that does not exist.
var ErrNotFound = errors.New("image not found")

// StoredImage describes a persisted upload.
type StoredImage struct {
	Filename string
	URL      string
}

// ImageStorage persists uploaded catalog images. The local driver is
// the default; an S3 driver can be selected through configuration.
type ImageStorage interface {
	Save(filename string, data []byte, contentType string) (*StoredImage, error)
	Delete(filename string) error
}

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// ValidateContentType checks the upload MIME type against the
// image allow-list.
func ValidateContentType(contentType string) error {
	for _, allowed := range allowedImageTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}

// ValidateFileSize checks the upload against MaxImageSize.
func ValidateFileSize(size int64) error {
	if size > MaxImageSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size of %d bytes", size, MaxImageSize)
	}
	return nil
}

// ValidateFilename rejects path traversal in delete requests.
func ValidateFilename(filename string) error {
	if filename == "" || strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("invalid filename %q", filename)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// BuildFilename generates the stored name for an upload:
// <type>-<timestamp>-<sanitized original name>.
func BuildFilename(imageType, originalName string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(originalName, "_")
	return fmt.Sprintf("%s-%d-%s", imageType, time.Now().UnixMilli(), sanitized)
}
