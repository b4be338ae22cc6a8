// Package paths provides centralized path handling for stamp.
//
// It resolves the per-user base directory that holds preset documents and the
// link registry, and it implements the path resolver: every user-supplied path
// is canonicalized (absolute, symlink-free) before being persisted or compared.
package paths
