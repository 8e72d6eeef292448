package errors

import (
	"strings"
	"unicode"
)

// MaxNodeIDLength bounds the length of a node identifier accepted from input.
const MaxNodeIDLength = 64

// ValidateNodeID validates a node identifier read from an edge list.
//
// Identifiers are opaque, but they must survive the text formats used on
// both sides of the engine: the "A-B" edge line and the comma-joined clique
// password. The rules are therefore:
//   - No empty identifiers
//   - No whitespace or control characters
//   - No '-' (edge separator) or ',' (clique separator)
//   - Maximum length of MaxNodeIDLength bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node identifier cannot be empty")
	}

	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidNode, "node identifier too long (max %d characters)", MaxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidNode, "node identifier %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, "-,") {
		return New(ErrCodeInvalidNode, "node identifier %q contains a reserved separator", id)
	}

	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > 4096 {
		return New(ErrCodeInvalidPath, "path too long (max 4096 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}
