// Package text renders command results as human-readable lines. The same
// layout serves plain text and, through a Styler, the styled terminal output.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/types"
)

// Styler decorates a fragment with a semantic style name
type Styler func(style, s string) string

func plain(_, s string) string { return s }

// Renderer provides line-oriented output
type Renderer struct {
	output io.Writer
	style  Styler
}

// New creates a plain text renderer
func New(output io.Writer) *Renderer {
	return NewStyled(output, plain)
}

// NewStyled creates a renderer that passes fragments through style
func NewStyled(output io.Writer, style Styler) *Renderer {
	return &Renderer{output: output, style: style}
}

// RenderResult renders any result type from pkg/types
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.LinkResult:
		r.link(&b, v)
	case *types.UnlinkResult:
		r.unlink(&b, v)
	case *types.CommitResult:
		r.commit(&b, v)
	case *types.ListResult:
		r.list(&b, v)
	case *types.ShowResult:
		r.show(&b, v)
	case *types.DeletePlan:
		r.deletePlan(&b, v)
	case *types.DeleteResult:
		r.deleteResult(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", r.style("Error", "Error:"), err)
	if werr != nil {
		return werr
	}
	if path, ok := errors.GetErrorDetails(err)[errors.DetailPath]; ok {
		_, werr = fmt.Fprintf(r.output, "  %s %v\n", r.style("Muted", "path:"), path)
	}
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) quoted(style, s string) string {
	return r.style(style, "'"+s+"'")
}

func (r *Renderer) link(b *strings.Builder, v *types.LinkResult) {
	if len(v.Created) > 0 {
		fmt.Fprintln(b, r.style("Header", "Created symlinks:"))
		for _, p := range v.Created {
			fmt.Fprintf(b, "  %s %s\n", r.style("Added", "+"), r.style("FilePath", p))
		}
		fmt.Fprintln(b)
	}

	detail := fmt.Sprintf("%d symlinks", len(v.Created))
	if v.Tracked {
		detail = "tracking enabled, " + detail
	}
	fmt.Fprintf(b, "Applied preset %s to %s. %s\n",
		r.quoted("Preset", v.Preset), r.quoted("FilePath", v.Target), r.style("Muted", "("+detail+")"))
}

func (r *Renderer) unlink(b *strings.Builder, v *types.UnlinkResult) {
	for _, p := range v.Removed {
		fmt.Fprintf(b, "  %s %s\n", r.style("Removed", "-"), r.style("FilePath", p))
	}
	fmt.Fprintf(b, "Removed %d symlinks from %s.", len(v.Removed), r.quoted("FilePath", v.Target))
	if v.Preset != "" {
		fmt.Fprintf(b, " %s", r.style("Muted", "(preset: "+v.Preset+")"))
	}
	fmt.Fprintln(b)
}

func (r *Renderer) commit(b *strings.Builder, v *types.CommitResult) {
	files := 0
	for _, e := range v.Entries {
		if !e.IsDir {
			files++
		}
	}

	fmt.Fprintf(b, "Saved %s as preset %s. %s\n",
		r.quoted("FilePath", v.Source), r.quoted("Preset", v.Preset),
		r.style("Muted", fmt.Sprintf("(%d entries, %d files)", len(v.Entries), files)))
	if len(v.Patterns) > 0 {
		fmt.Fprintf(b, "  %s %s\n", r.style("Muted", "filter:"), strings.Join(v.Patterns, ", "))
	}

	if !v.Synced {
		return
	}

	fmt.Fprintln(b)
	if v.Cleaned > 0 {
		fmt.Fprintf(b, "%s\n", r.style("Warning", fmt.Sprintf("Dropped %d broken link record(s).", v.Cleaned)))
	}
	if len(v.Targets) == 0 {
		fmt.Fprintln(b, r.style("Muted", "No linked locations to sync."))
		return
	}

	fmt.Fprintln(b, r.style("Header", "Synced locations:"))
	for _, o := range v.Targets {
		r.outcome(b, o, "symlinks")
	}
}

func (r *Renderer) outcome(b *strings.Builder, o types.TargetOutcome, unit string) {
	switch o.Status {
	case types.StatusSuccess:
		fmt.Fprintf(b, "  %s %s %s\n", r.style("Success", "✓"), r.style("FilePath", o.Target),
			r.style("Muted", fmt.Sprintf("(%d %s)", o.Count, unit)))
	case types.StatusSkipped:
		fmt.Fprintf(b, "  %s %s %s\n", r.style("Warning", "-"), r.style("FilePath", o.Target),
			r.style("Muted", "(skipped: "+o.Error+")"))
	default:
		fmt.Fprintf(b, "  %s %s: %s\n", r.style("Error", "✗"), r.style("FilePath", o.Target), o.Error)
	}
}

func (r *Renderer) list(b *strings.Builder, v *types.ListResult) {
	if len(v.Presets) == 0 {
		fmt.Fprintln(b, "No saved presets.")
		return
	}

	fmt.Fprintln(b, r.style("Header", "Saved presets:"))
	for _, p := range v.Presets {
		fmt.Fprintf(b, "  - %s", r.style("Preset", p.Name))
		if n := len(p.Targets); n > 0 {
			fmt.Fprintf(b, " %s", r.style("Muted", fmt.Sprintf("(linked at %d location(s))", n)))
		}
		fmt.Fprintln(b)
	}
}

func (r *Renderer) show(b *strings.Builder, v *types.ShowResult) {
	fmt.Fprintf(b, "%s %s\n", r.style("Header", "Preset:"), r.style("Preset", v.Preset.Name))
	fmt.Fprintf(b, "%s %s\n", r.style("Header", "Source:"), r.style("FilePath", v.Preset.Source))
	fmt.Fprintln(b, r.style("Header", "Files:"))
	for _, e := range v.Preset.Entries {
		if e.IsDir {
			fmt.Fprintf(b, "  %s\n", r.style("Muted", e.Path+"/"))
			continue
		}
		fmt.Fprintf(b, "  %s\n", e.Path)
	}

	if len(v.Targets) > 0 {
		fmt.Fprintln(b, r.style("Header", "Linked to:"))
		for _, t := range v.Targets {
			fmt.Fprintf(b, "  - %s\n", r.style("FilePath", t))
		}
	}
}

func (r *Renderer) deletePlan(b *strings.Builder, v *types.DeletePlan) {
	for _, p := range v.Presets {
		if len(p.Targets) == 0 {
			continue
		}
		fmt.Fprintf(b, "Preset %s is linked to:\n", r.quoted("Preset", p.Name))
		for _, t := range p.Targets {
			fmt.Fprintf(b, "  - %s\n", r.style("FilePath", t))
		}
		fmt.Fprintln(b)
	}
}

func (r *Renderer) deleteResult(b *strings.Builder, v *types.DeleteResult) {
	if len(v.Unlinked) > 0 {
		fmt.Fprintln(b, r.style("Header", "Unlinked locations:"))
		for _, o := range v.Unlinked {
			r.outcome(b, o, "removed")
		}
		fmt.Fprintln(b)
	}

	for _, name := range v.Deleted {
		fmt.Fprintf(b, "Deleted preset: %s\n", r.style("Preset", name))
	}
	fmt.Fprintf(b, "\n%s\n", r.style("Success", fmt.Sprintf("%d preset(s) deleted.", len(v.Deleted))))
}
