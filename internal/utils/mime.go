package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

// DetectMime guesses a MIME type from the file extension of path, returning
// fallback when the extension is missing or unknown. Any parameters returned
// by the platform MIME registry (e.g. "; charset=utf-8") are stripped.
func DetectMime(path, fallback string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return fallback
	}
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return fallback
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}

// ExtensionForMime returns the preferred file extension (without a dot) for
// an image MIME type. Unknown image subtypes fall back to the subtype itself;
// anything unparseable yields "bin".
func ExtensionForMime(mimeType string) string {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	switch normalized {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	case "image/tiff":
		return "tiff"
	}

	if i := strings.IndexByte(normalized, '/'); i >= 0 && i+1 < len(normalized) {
		return normalized[i+1:]
	}
	return "bin"
}
