package errors

import (
	"strings"
	"unicode"
)

// maxValueText bounds the raw text accepted for a node value. Anything longer
// cannot be a 64-bit integer literal anyway.
const maxValueText = 32

// ValidateValueText checks raw user input before it is parsed as an integer.
// The messages match the status lines shown by the interactive front end.
func ValidateValueText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return New(ErrCodeInvalidInput, "Enter a number")
	}
	if len(text) > maxValueText {
		return New(ErrCodeInvalidInput, "Invalid integer")
	}
	for _, r := range text {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "Invalid integer")
		}
	}
	return nil
}

// ValidateOutputPath validates a render output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
