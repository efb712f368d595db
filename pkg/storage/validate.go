package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures per allowed extension. Uploads must carry one of
// these prefixes so a renamed binary cannot slip past the extension check.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
	".docx": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
}

// MIME types accepted for resumes, photos and logos.
// application/octet-stream is deliberately absent.
var allowedMIMETypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/zip": true, // DOCX detection fallback
}

// ValidateFile enforces the upload allow-list: extension whitelist, magic
// byte verification, and MIME whitelist. Returns ErrUnsupportedType on any
// failure.
func ValidateFile(filename string, data []byte, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	signatures, ok := magicBytes[ext]
	if !ok {
		return ErrUnsupportedType
	}

	if !matchesMagicBytes(signatures, data) {
		return ErrUnsupportedType
	}

	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !allowedMIMETypes[mime] {
		// .doc/.docx sometimes detect as octet-stream; magic bytes already
		// vouched for them above.
		if mime == "application/octet-stream" && (ext == ".doc" || ext == ".docx") {
			return nil
		}
		return ErrUnsupportedType
	}
	return nil
}

func matchesMagicBytes(signatures [][]byte, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
