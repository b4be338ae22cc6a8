// Package ui provides a unified interface for rendering command results in
// different formats: terminal (styled), text (plain), and the structured
// json, yaml and toml encodings.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stamp/pkg/ui/structured"
	"github.com/arthur-debert/stamp/pkg/ui/terminal"
	"github.com/arthur-debert/stamp/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result from pkg/types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output to choose between terminal and text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return structured.New(output, structured.JSON), nil
	case FormatYAML:
		return structured.New(output, structured.YAML), nil
	case FormatTOML:
		return structured.New(output, structured.TOML), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// IsStructured reports whether format is a machine-readable encoding
func IsStructured(format Format) bool {
	return format == FormatJSON || format == FormatYAML || format == FormatTOML
}
