package types

// PathKind classifies a path by its own metadata. A symlink is reported as
// PathSymlink whether or not its target exists.
type PathKind int

const (
	PathMissing PathKind = iota
	PathFile
	PathDirectory
	PathSymlink
)

// String returns the string representation of the kind
func (k PathKind) String() string {
	switch k {
	case PathMissing:
		return "missing"
	case PathFile:
		return "file"
	case PathDirectory:
		return "directory"
	case PathSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Exists reports whether anything, including a dangling symlink, occupies the path.
func (k PathKind) Exists() bool {
	return k != PathMissing
}
