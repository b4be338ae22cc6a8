package paths

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/stamp/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateEncoding rejects paths that are not valid UTF-8. Stored documents
// are TOML, which cannot carry such strings.
func ValidateEncoding(path string) error {
	if utf8.ValidString(path) {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "path %q is not valid UTF-8", path).
		WithDetail(errors.DetailPath, path)
}

// ValidatePresetName ensures a preset name can be used as a document name.
// Preset names must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not start with a dot (hidden documents are not listed)
// - Not contain control characters
// - Be valid UTF-8
func ValidatePresetName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "preset name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return errors.Newf(errors.ErrInvalidInput, "preset name %q is not valid UTF-8", name)
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput,
			"preset name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "preset name cannot be '.' or '..'")
	}

	if strings.HasPrefix(name, ".") {
		return errors.Newf(errors.ErrInvalidInput, "preset name %q cannot start with a dot", name)
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(name, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"preset name contains invalid characters: %s", invalidChars)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput,
				"preset name contains control characters")
		}
	}

	return nil
}
