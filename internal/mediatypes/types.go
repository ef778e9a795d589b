package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents how a directory entry is treated by the gallery.
type FileType string

const (
	// FileTypeFolder represents a directory.
	FileTypeFolder FileType = "folder"
	// FileTypeImage represents an image file.
	FileTypeImage FileType = "image"
	// FileTypeDescription represents a gallery.md description file.
	FileTypeDescription FileType = "description"
	// FileTypeOther represents an unknown or unsupported file type.
	FileTypeOther FileType = "other"
)

// DescriptionFileName is the per-folder description file, matched case-insensitively.
const DescriptionFileName = "gallery.md"

// ImageExtensions maps file extensions to whether they are gallery images.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".md":   "text/markdown; charset=utf-8",
}

// Ext returns the lowercased extension of name, including the leading dot.
// A base name whose only dot is the first character, such as ".jpg", has no
// extension.
func Ext(name string) string {
	base := filepath.Base(name)
	if strings.LastIndex(base, ".") <= 0 {
		return ""
	}
	return strings.ToLower(filepath.Ext(base))
}

// IsImage reports whether filename has one of the gallery image extensions.
// The check is purely lexical.
func IsImage(filename string) bool {
	return ImageExtensions[Ext(filename)]
}

// IsDescriptionFile reports whether name is the folder description file.
func IsDescriptionFile(name string) bool {
	return strings.EqualFold(name, DescriptionFileName)
}

// Classify returns the FileType of a directory entry.
func Classify(name string, isDir bool) FileType {
	switch {
	case isDir:
		return FileTypeFolder
	case IsImage(name):
		return FileTypeImage
	case IsDescriptionFile(name):
		return FileTypeDescription
	default:
		return FileTypeOther
	}
}

// GetMimeType returns the MIME type for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".jpg").
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}
