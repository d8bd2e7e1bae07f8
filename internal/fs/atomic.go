package fs

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// CreateExclusive creates a new file with O_EXCL so that creation is atomic.
// Returns an error if the file already exists.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// Move moves a file from src to dst. If rename fails (for example across
// devices) and fallbackCopy is true, it falls back to copy and delete.
func Move(src, dst string, fallbackCopy bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	// Try rename(2) first
	if err := os.Rename(src, dst); err != nil {
		if !fallbackCopy {
			return fmt.Errorf("failed to move file: %w", err)
		}

		if err := cp.Copy(src, dst); err != nil {
			return fmt.Errorf("failed to copy file: %w", err)
		}

		if err := os.RemoveAll(src); err != nil {
			// If we can't remove the source, drop the copy again
			_ = os.RemoveAll(dst)
			return fmt.Errorf("failed to remove source after copy: %w", err)
		}
	}

	return nil
}

// WriteAtomic writes data to path by writing a temporary sibling file first
// and renaming it into place. A partially written file never becomes visible
// under the final name.
func WriteAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	name := temp.Name()

	cleanup := func() {
		_ = temp.Close()
		_ = os.Remove(name)
	}

	if err := write(temp); err != nil {
		cleanup()
		return err
	}

	if err := temp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := temp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("failed to move temporary file: %w", err)
	}

	return nil
}
