// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated files and directories.
const (
	FilePerm fs.FileMode = 0o644
	DirPerm  fs.FileMode = 0o750
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory     = errors.New("not a directory")
	ErrOverlappingPaths = errors.New("source and destination overlap")
)

// CopyTree replaces dst with a recursive copy of src. Regular files are
// copied with FilePerm, directories created with DirPerm, and symlinks to
// regular files are copied as files. Other entries are skipped.
// Returns the number of files copied.
//
// A missing src returns an error wrapping fs.ErrNotExist. Nested or equal
// paths return ErrOverlappingPaths.
func CopyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("copying %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("copying %s: %w", src, ErrNotDirectory)
	}
	if err := CheckOverlap(src, dst); err != nil {
		return 0, err
	}

	if err := os.RemoveAll(dst); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", dst, err)
	}
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, DirPerm)
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil // broken symlink or special file
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return copied, nil
}

// CheckOverlap rejects paths that are equal or nested in either direction.
// CopyTree needs this: dst inside src recurses into itself and src inside
// dst is removed first.
func CheckOverlap(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if isWithin(absDst, absSrc) || isWithin(absSrc, absDst) {
		return fmt.Errorf("%w: %s and %s", ErrOverlappingPaths, src, dst)
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(path, dir string) bool {
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- walking a user-provided directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, so readers never observe a partial file. Parent directories
// are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".md2site-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2site/site.yaml" -> true (absolute)
//   - "C:\sites\blog.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
