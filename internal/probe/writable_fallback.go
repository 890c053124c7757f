//go:build !unix && !windows

package probe

import (
	"fmt"
	"os"
)

func writable(p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o200 == 0 {
		return fmt.Errorf("%s is not writable", p)
	}
	return nil
}
