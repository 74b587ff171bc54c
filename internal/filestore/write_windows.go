//go:build windows

package filestore

import (
	"io/fs"
	"os"
)

// renameio does not support Windows; fall back to a direct write.
func writeFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}
