package scanner

import (
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/gobwas/glob"
)

// Matcher holds a compiled pattern set
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// NewMatcher compiles patterns. Compilation uses no separators, so '*' and
// '?' also match '/', and '{a,b}' is alternation. One invalid pattern fails
// the whole set with ErrInvalidInput rather than being dropped.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", p).
				WithDetail("pattern", p)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Patterns returns the source patterns
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return m.patterns
}

// Match reports whether relPath is included. A nil or empty matcher includes
// everything; otherwise any single matching pattern is enough.
func (m *Matcher) Match(relPath string) bool {
	if m == nil || len(m.globs) == 0 {
		return true
	}
	for _, g := range m.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
