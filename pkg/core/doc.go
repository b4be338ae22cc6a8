// Package core wires stamp's components together.
//
// An Env owns one filesystem, one base directory and the components built on
// them: the preset store, the link registry and the symlink builder. Commands
// receive an Env instead of constructing components themselves, so tests can
// point an entire command at an isolated base directory.
package core
