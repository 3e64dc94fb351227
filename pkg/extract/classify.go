package extract

import (
	"path/filepath"
	"strings"
)

// File type labels returned to clients.
const (
	TypePDF   = "PDF Document"
	TypeWord  = "Word Document"
	TypeAudio = "Audio Recording"
	TypeImage = "Image"
)

var extensionTypes = map[string]string{
	".pdf":  TypePDF,
	".doc":  TypeWord,
	".docx": TypeWord,
	".wav":  TypeAudio,
	".mp3":  TypeAudio,
	".m4a":  TypeAudio,
	".ogg":  TypeAudio,
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".png":  TypeImage,
	".gif":  TypeImage,
}

// Classify maps a filename to its processing type by extension,
// case-insensitively. ok is false for unsupported extensions.
func Classify(filename string) (fileType string, ok bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	fileType, ok = extensionTypes[ext]
	return fileType, ok
}

// Ext returns the lowercase extension including the dot.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
