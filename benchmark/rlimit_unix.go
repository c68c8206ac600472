//go:build unix

package benchmark

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SetMaxResources raises the open-file limit to the hard maximum so long
// runs do not exhaust descriptors on keep-alive connections.
func SetMaxResources() error {
	var rLimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("get rlimit: %w", err)
	}
	rLimit.Cur = rLimit.Max
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("set open file limit: %w", err)
	}
	return nil
}
