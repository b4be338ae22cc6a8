// Package terminal provides styled output for interactive terminals
package terminal

import (
	"io"

	"github.com/arthur-debert/stamp/pkg/ui/styles"
	"github.com/arthur-debert/stamp/pkg/ui/text"
)

// New creates a text renderer that colors fragments with the registered styles
func New(output io.Writer) *text.Renderer {
	return text.NewStyled(output, styles.Render)
}
