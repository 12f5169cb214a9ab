// Package document turns raw uploaded bytes into decoded UTF-8 text plus a
// best-effort file-type tag. The tag is informational only; the matching core
// never branches on it.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileType tags the likely format of an uploaded document.
type FileType string

// Recognized file-type tags.
const (
	TypePDF     FileType = "pdf"
	TypeDOCX    FileType = "docx"
	TypeTXT     FileType = "txt"
	TypeUnknown FileType = "unknown"
)

// DetectFileType determines the file-type tag from the filename extension.
func DetectFileType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return TypePDF
	case ".docx", ".doc":
		return TypeDOCX
	case ".txt":
		return TypeTXT
	default:
		return TypeUnknown
	}
}

// Decode converts raw document bytes to text along with the file-type tag.
// Content is decoded as UTF-8, falling back to Latin-1 for byte sequences that
// are not valid UTF-8. Binary container formats (PDF, DOCX) are expected to be
// extracted upstream; their bytes pass through the same decoding.
func Decode(content []byte, filename string) (string, FileType, error) {
	fileType := DetectFileType(filename)
	if len(content) == 0 {
		return "", fileType, nil
	}

	if utf8.Valid(content) {
		return string(content), fileType, nil
	}

	text, err := decodeLatin1(content)
	if err != nil {
		return "", fileType, fmt.Errorf("failed to decode document %s: %w", filename, err)
	}

	return text, fileType, nil
}

// decodeLatin1 maps each byte to the Unicode code point of the same value.
// Every byte sequence is valid Latin-1, so this cannot fail; the error return
// mirrors the Decode contract.
func decodeLatin1(content []byte) (string, error) {
	runes := make([]rune, len(content))
	for i, b := range content {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
