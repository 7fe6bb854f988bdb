package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxFixedWidth bounds the width a document may request for a block.
const MaxFixedWidth = 4096

// ValidateDocumentPath validates a layout document path given on the
// command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be .toml or .json (case-insensitive)
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", ".json":
	default:
		return New(ErrCodeInvalidPath, "unsupported document extension %q (want .toml or .json)", ext)
	}

	return nil
}

// ValidateFixedWidth validates a block width requested by a document.
func ValidateFixedWidth(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidNode, "width must not be negative: %d", width)
	}
	if width > MaxFixedWidth {
		return New(ErrCodeInvalidNode, "width too large (max %d): %d", MaxFixedWidth, width)
	}
	return nil
}

// ValidatePattern validates a divider pattern given as plain text.
// Control characters would break the column accounting of every row.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return New(ErrCodeInvalidNode, "divider pattern cannot be empty")
	}
	for _, r := range pattern {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "divider pattern contains control characters")
		}
	}
	return nil
}
