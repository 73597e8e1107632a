package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// NewObjectKey builds a collision-free object-store key under folder,
// keeping the original file extension.
func NewObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(folder, "/"), uuid.NewString(), ext)
}

// ContentTypeForFile maps an image filename to its MIME type, defaulting to
// octet-stream for anything unrecognized.
func ContentTypeForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := imageContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsAllowedImage reports whether the filename carries a supported image
// extension.
func IsAllowedImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := imageContentTypes[ext]
	return ok
}
