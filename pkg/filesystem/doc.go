// Package filesystem provides filesystem implementations for stamp.
//
// Every types.FS here is an afero adapter: NewOS wraps afero's OsFs and
// NewMemory its MemMapFs, which has no symlinks and backs document tests. The
// package also holds KindOf, the single lookup used wherever a path's kind
// matters, and atomic document writes.
package filesystem
