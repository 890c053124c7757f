//go:build windows

package probe

import "golang.org/x/sys/windows"

// fileAddFile is the directory access right to create a file (FILE_ADD_FILE).
const fileAddFile = 0x0002

// writable opens p requesting FILE_ADD_FILE, so the kernel evaluates the
// directory's DACL for the current token. Nothing is created. The read-only
// attribute is not consulted; Windows ignores it on directories.
func writable(p string) error {
	name, err := windows.UTF16PtrFromString(p)
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(
		name,
		fileAddFile,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return err
	}
	return windows.CloseHandle(h)
}
