package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeFromMIME(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/png", MediaTypeImage},
		{"image/jpeg", MediaTypeImage},
		{"image/gif", MediaTypeImage},
		{"video/mp4", MediaTypeVideo},
		{"video/quicktime", MediaTypeVideo},
		// Everything outside image/ falls into the video bucket.
		{"audio/mpeg", MediaTypeVideo},
		{"application/pdf", MediaTypeVideo},
		{"", MediaTypeVideo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MediaTypeFromMIME(tt.contentType), "content type %q", tt.contentType)
	}
}
