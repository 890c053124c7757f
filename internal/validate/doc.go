// Package validate decides whether a path or path component is portable:
// usable simultaneously on POSIX, Windows/NTFS, HFS+/APFS and FAT32/exFAT
// file systems.
//
// Every function in this package is pure. Nothing touches the file system,
// so results can be computed for paths that do not exist yet (output files,
// directories about to be created). Checks that do touch the file system live
// in the probe package.
//
// # Validation Functions
//
// Filename validates a single component (no separators).
// Path decomposes a full path along native separators and validates every
// normal component plus the overall length.
// Components exposes that decomposition.
//
// # Verdicts
//
// A nil error means the input was accepted. A rejection is always a
// *RejectionError naming the rule that fired and carrying a human-readable
// reason suitable for printing to the user. Each RejectionError unwraps to
// one of the category sentinels in errors.go:
//
//	if errors.Is(err, validate.ErrTooLong) {
//	    // shorten and retry
//	}
//
// # Limitations
//
// A path that passes can still fail at use time: symlinks with longer
// targets, filesystems with tighter limits (eCryptfs 143 bytes, Joliet 64
// characters, UDF 1023-byte paths), or another process changing the tree
// between check and use. Open the file as early as possible and keep the
// handle for as long as it is needed.
package validate
