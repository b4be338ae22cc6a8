package structured_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/arthur-debert/stamp/pkg/ui/structured"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var show = &types.ShowResult{
	Preset: &types.Preset{
		Name:    "rust",
		Source:  "/src",
		Entries: []types.PresetEntry{{Path: "dir", IsDir: true}, {Path: "dir/a.rs"}},
	},
	Targets: []string{"/work"},
}

func TestRenderResult_Encodings(t *testing.T) {
	tests := []struct {
		name      string
		encoding  structured.Encoding
		unmarshal func([]byte, interface{}) error
	}{
		{name: "json", encoding: structured.JSON, unmarshal: json.Unmarshal},
		{name: "yaml", encoding: structured.YAML, unmarshal: yaml.Unmarshal},
		{name: "toml", encoding: structured.TOML, unmarshal: toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, structured.New(&buf, tt.encoding).RenderResult(show))

			var got types.ShowResult
			require.NoError(t, tt.unmarshal(buf.Bytes(), &got))
			assert.Equal(t, show, &got)
		})
	}
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrNotFound, "preset 'x' not found").WithDetail("preset", "x")

	require.NoError(t, structured.New(&buf, structured.JSON).RenderError(err))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, string(errors.ErrNotFound), got["code"])
	assert.Equal(t, map[string]interface{}{"preset": "x"}, got["details"])
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, structured.New(&buf, structured.YAML).RenderMessage("Cancelled."))
	assert.Equal(t, "message: Cancelled.\n", buf.String())
}
