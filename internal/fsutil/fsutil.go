// Package fsutil implements the filesystem primitives behind project
// materialization: recursive copy, and directory emptiness checks that treat
// a pre-existing .git directory as repository metadata rather than content.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitDir is the version-control subdirectory preserved by EmptyDir and
// ignored by IsEmptyDir.
const gitDir = ".git"

// Copy copies src to dst. Directories are copied recursively preserving
// relative structure; files are copied byte-verbatim with permissions
// preserved.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if info.IsDir() {
		return copyDir(src, dst, info)
	}
	return copyFile(src, dst)
}

// IsEmptyDir reports whether the directory at path has no entries, or
// exactly one entry that is the version-control subdirectory. The path is
// assumed to exist and be a directory.
func IsEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(entries) == 0 {
		return true, nil
	}
	return len(entries) == 1 && entries[0].Name() == gitDir, nil
}

// EmptyDir removes every entry inside path except the version-control
// subdirectory. Missing path is a no-op.
func EmptyDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, entry := range entries {
		if entry.Name() == gitDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// copyDir recursively copies the directory src to dst.
func copyDir(src, dst string, srcInfo os.FileInfo) error {
	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := copyDir(srcPath, dstPath, info); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type()&os.ModeSymlink != 0:
			// Follow the link so the copy holds real files, never links
			// back into the source tree.
			info, err := os.Stat(srcPath)
			if err != nil {
				return fmt.Errorf("resolving link %s: %w", srcPath, err)
			}
			if info.IsDir() {
				if err := copyDir(srcPath, dstPath, info); err != nil {
					return err
				}
			} else if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot copy %s: unsupported file type %v", srcPath, entry.Type())
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}
