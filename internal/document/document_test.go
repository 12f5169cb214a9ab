package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     FileType
	}{
		{"cv.pdf", TypePDF},
		{"cv.PDF", TypePDF},
		{"cv.docx", TypeDOCX},
		{"cv.doc", TypeDOCX},
		{"cv.txt", TypeTXT},
		{"cv", TypeUnknown},
		{"cv.html", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.filename))
		})
	}
}

func TestDecode_UTF8(t *testing.T) {
	text, fileType, err := Decode([]byte("plain résumé text"), "cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain résumé text", text)
	assert.Equal(t, TypeTXT, fileType)
}

func TestDecode_Latin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	text, _, err := Decode([]byte{'c', 'a', 'f', 0xE9}, "cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestDecode_Empty(t *testing.T) {
	text, fileType, err := Decode(nil, "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "", text)
	assert.Equal(t, TypePDF, fileType)
}
