// Package scanner enumerates a source tree and filters its entries.
//
// Walk visits every descendant of a root (never the root itself) in
// pre-order, with each directory's children in lexical order, so a parent is
// always reported before anything beneath it and the result is reproducible
// across machines. Symlinked directories are reported but not descended into.
//
// A Matcher restricts entries to those whose slash-separated relative path
// matches at least one glob pattern. Wildcards cross directory boundaries:
// "*.rs" matches both "a.rs" and "dir/c.rs". An empty pattern set matches
// everything.
package scanner
