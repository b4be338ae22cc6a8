package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Capture directory structures as presets and materialize them as symlinks"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgLinkShort    = "Create symlinks for a preset in a target directory"
	MsgUnlinkShort  = "Remove every symlink beneath a target directory"
	MsgCommitShort  = "Save a directory's structure as a preset"
	MsgListShort    = "List saved presets"
	MsgShowShort    = "Show the contents of a preset"
	MsgDeleteShort  = "Delete one or more presets"

	// Group titles
	MsgGroupPresets = "Presets:"
	MsgGroupLinks   = "Links:"

	// Prompts and notices
	MsgConfirmNonEmpty  = "Target directory '%s' is not empty. Do you want to continue?"
	MsgConfirmDelete    = "Delete %d preset(s)?"
	MsgOperationAborted = "Operation cancelled."
	MsgKeepSymlinks     = "Warning: These locations will keep their symlinks but lose their preset reference.\nUse --unlink to also remove symlinks from these locations.\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagHome     = "Directory holding presets and the link registry (default $STAMP_HOME or $XDG_CONFIG_HOME/stamp.env)"
	MsgFlagFormat   = "Output format: auto, text, term, json, yaml or toml"
	MsgFlagYes      = "Do not ask for confirmation"
	MsgFlagSync     = "Track the target so 'commit --sync' re-applies to it"
	MsgFlagQuiet    = "Do not print the created symlinks"
	MsgFlagPatterns = "Only keep entries matching at least one glob (e.g. \"*.rs\", \"src/**/*.toml\")"
	MsgFlagSource   = "Directory to capture"
	MsgFlagResync   = "Re-apply the preset to every location it is tracked at"
	MsgFlagUnlink   = "Also remove symlinks from every location the presets are tracked at"
	MsgFlagRollback = "Undo a partially applied link on failure"
)

// Long descriptions
const (
	MsgRootLong = `stamp saves the file and folder layout of a directory as a named preset and
recreates it elsewhere as symlinks pointing back to the original files.

Presets and the link registry live in $XDG_CONFIG_HOME/stamp.env unless
STAMP_HOME or --home says otherwise.`

	MsgLinkLong = `Link applies a preset to a target directory (the current directory by default).
Directories in the preset are created; files become symlinks to the preset's
source. Anything already at a destination is replaced.

With --sync the target is recorded so that 'stamp commit --sync' keeps it up
to date.`

	MsgUnlinkLong = `Unlink removes every symlink beneath the target directory, whichever preset
created it, and stops tracking the target. Regular files and directories are
left in place.`

	MsgCommitLong = `Commit walks the source directory (the current directory by default) and saves
its structure under the given name, replacing any preset of the same name.
Glob patterns match paths relative to the source, and '*' also matches '/'.

With --sync, records of locations that no longer exist are dropped and the
new preset is applied again to every remaining tracked location.`

	MsgDeleteLong = `Delete removes the named presets. Locations they are tracked at are listed
first. Without --unlink those locations keep their symlinks; with --unlink the
symlinks are removed as well.`
)

// Examples
const (
	MsgLinkExample = `  stamp link rust-workspace ./new-project
  stamp link rust-workspace --sync --yes`

	MsgCommitExample = `  stamp commit rust-workspace
  stamp commit rust-workspace -p "*.rs" -p "Cargo.toml"
  stamp commit rust-workspace --sync`

	MsgDeleteExample = `  stamp delete old-preset
  stamp delete a b --unlink --yes`
)
