// Where: cli/internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for template seeding.
// Why: Keep create-if-absent semantics in one place for seed and list.
package fileops

import (
	"errors"
	"io/fs"
	"os"
)

func EnsureDir(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateExclusive writes data to a new file at path. It reports false without
// touching the existing entry when anything already occupies path, including a
// dangling symlink: O_EXCL never follows the link.
// A failed write removes the partially written file.
func CreateExclusive(path string, data []byte, perm fs.FileMode) (bool, error) {
	//nolint:gosec // Path is built from a validated slug under the output dir.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		_ = os.Remove(path)
		return false, err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return false, err
	}
	return true, nil
}

// PathExists reports whether anything occupies path. Errors other than
// not-exist are returned so callers do not mistake a permission problem for
// an absent file.
func PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
