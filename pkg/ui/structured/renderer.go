// Package structured provides machine-readable output in JSON, YAML or TOML
package structured

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/stamp/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encoding selects the output encoding
type Encoding int

const (
	JSON Encoding = iota
	YAML
	TOML
)

// Renderer encodes results as documents
type Renderer struct {
	output   io.Writer
	encoding Encoding
}

// New creates a structured renderer
func New(output io.Writer, encoding Encoding) *Renderer {
	return &Renderer{output: output, encoding: encoding}
}

// RenderResult encodes any result type
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError encodes an error with its code and details
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encode(obj)
}

// RenderMessage encodes a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	switch r.encoding {
	case JSON:
		enc := json.NewEncoder(r.output)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(r.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(r.output).Encode(v)
	default:
		return fmt.Errorf("unknown encoding: %d", r.encoding)
	}
}
