package berkas

import (
	"path/filepath"
	"strings"
)

// DetectContentType mendeteksi MIME content type file berdasarkan extension-nya.
// Case-insensitive extension matching, fallback ke "application/octet-stream"
// untuk extension yang tidak diketahui.
//
// Parameters:
//   - filename: nama file (boleh include path, extension di-extract otomatis)
//
// Returns:
//   - string: MIME type dalam format "type/subtype"
//
// Example:
//
//	DetectContentType("photo.jpg")    // "image/jpeg"
//	DetectContentType("unknown.xyz") // "application/octet-stream"
func DetectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	contentTypes := map[string]string{
		// Image types
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".svg":  "image/svg+xml",
		".ico":  "image/x-icon",
		".bmp":  "image/bmp",

		// Document types
		".pdf":  "application/pdf",
		".doc":  "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".xls":  "application/vnd.ms-excel",
		".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".ppt":  "application/vnd.ms-powerpoint",
		".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",

		// Text types
		".txt":  "text/plain",
		".csv":  "text/csv",
		".html": "text/html",
		".htm":  "text/html",
		".css":  "text/css",
		".js":   "application/javascript",
		".json": "application/json",
		".xml":  "application/xml",
		".md":   "text/markdown",
		".yaml": "text/yaml",
		".yml":  "text/yaml",

		// Archive types
		".zip": "application/zip",
		".rar": "application/x-rar-compressed",
		".7z":  "application/x-7z-compressed",
		".tar": "application/x-tar",
		".gz":  "application/gzip",

		// Media types
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".mp3":  "audio/mpeg",
		".wav":  "audio/wav",
		".ogg":  "audio/ogg",
	}

	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}

	return "application/octet-stream"
}
