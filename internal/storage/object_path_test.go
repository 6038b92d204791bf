package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectPath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		ext      string
		expected string
	}{
		{name: "flat", base: "abc-123", ext: "jpg", expected: "abc-123.jpg"},
		{name: "extension is normalised", base: "abc", ext: ".PNG", expected: "abc.png"},
		{name: "traversal is stripped", base: "../../etc/passwd", ext: "/../x", expected: "etcpasswd.x"},
		{name: "empty extension", base: "abc", ext: "", expected: "abc.bin"},
		{name: "unusable extension", base: "abc", ext: "!!", expected: "abc.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildObjectPath(tt.base, tt.ext))
		})
	}
}

func TestBuildObjectPathGeneratesBaseName(t *testing.T) {
	key := buildObjectPath("", "jpg")
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Greater(t, len(key), len(".jpg"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/png", detectContentType("png"))
	assert.Equal(t, "application/octet-stream", detectContentType("zzzunknown"))
}

func TestJoinPrefix(t *testing.T) {
	assert.Equal(t, "photos/a.jpg", joinPrefix("/photos/", "/a.jpg"))
	assert.Equal(t, "a.jpg", joinPrefix("  ", "a.jpg"))
}
