//go:build unix && !linux && !darwin && !freebsd

package probe

import "golang.org/x/sys/unix"

// writable falls back to access(2), which checks the real rather than the
// effective uid. The two only differ for setuid binaries.
func writable(p string) error {
	return unix.Access(p, unix.W_OK)
}
