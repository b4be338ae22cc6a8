// Package symlink materializes presets at a target directory and removes
// symlinks from one.
//
// Apply mirrors a preset's entries beneath the target: directory entries
// become real directories, file entries become symlinks pointing back into
// the preset's source tree. Whatever already occupies a destination is
// replaced, including dangling symlinks, so applying twice converges on the
// same result.
//
// Unlink is preset-agnostic and removes every symlink beneath the target,
// leaving plain files and directories alone.
//
// Apply stops at the first failure. By default the links created before the
// failure stay in place; with rollback enabled the builder removes the links
// and directories it created during the failed call. Items it replaced are
// not restored.
package symlink
