package constants

import (
	"path/filepath"
	"sort"
	"strings"
)

// AllowedExtensions holds the file extensions accepted for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tiff": {},
	"bmp":  {},
}

var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tiff": "image/tiff",
	"bmp":  "image/bmp",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedFileName reports whether the file name carries an accepted extension.
func AllowedFileName(name string) bool {
	ext := NormalizeExt(filepath.Ext(name))
	_, ok := AllowedExtensions[ext]
	return ok
}

// ContentTypeForFileName maps a file name to its MIME type,
// defaulting to application/octet-stream.
func ContentTypeForFileName(name string) string {
	if ct, ok := contentTypes[NormalizeExt(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AllowedExtensionList returns the accepted extensions with leading dots,
// for error messages.
func AllowedExtensionList() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, "."+ext)
	}
	sort.Strings(out)
	return out
}
