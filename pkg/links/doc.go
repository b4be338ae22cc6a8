// Package links persists the link registry: the single document recording
// which targets were materialized from which preset with tracking enabled.
//
// The registry is read, mutated in memory and rewritten wholesale on every
// mutating call. Writes are atomic (temp file and rename), and when locking is
// enabled each read-modify-write cycle holds an exclusive file lock so that
// concurrent invocations cannot lose each other's updates.
//
// A missing registry document is an empty registry, not an error.
package links
