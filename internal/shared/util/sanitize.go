package util

import (
	"errors"
	"strings"
)

var ErrBadFileName = errors.New("invalid file name")

// SanitizeFileName makes a caller-supplied artifact name safe to embed
// in a storage key: traversal sequences are rejected, path separators
// replaced.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrBadFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrBadFileName
	}
	return s, nil
}
