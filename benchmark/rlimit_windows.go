//go:build windows

package benchmark

// SetMaxResources is a no-op on Windows; open-file limits are not
// adjustable the way they are on unix systems.
func SetMaxResources() error {
	return nil
}
