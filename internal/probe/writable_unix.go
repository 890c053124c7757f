//go:build linux || darwin || freebsd

package probe

import "golang.org/x/sys/unix"

// writable asks the kernel whether the effective uid/gid may write to p.
func writable(p string) error {
	return unix.Faccessat(unix.AT_FDCWD, p, unix.W_OK, unix.AT_EACCESS)
}
