// Package types defines the data model shared by stamp's components: the
// persisted Preset and LinksRegistry documents, the filesystem interface the
// components operate through, and the PathKind classification used wherever a
// path's kind is inspected.
package types
