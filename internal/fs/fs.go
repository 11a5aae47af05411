package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Git-compatible permissions (required for git operations)
const (
	DirGit   = 0o755 // rwxr-xr-x - git-compatible directory
	FileExec = 0o755 // rwxr-xr-x - executable file, required for hooks
	FileGit  = 0o644 // rw-r--r-- - git-compatible file
)

// DirectoryExists checks if a directory exists
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists checks if anything, including a dangling symlink, exists at path
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsSymlinkTo reports whether path is a symlink resolving to the same file
// as target.
func IsSymlinkTo(path, target string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	linked, err := os.Stat(path)
	if err != nil {
		return false
	}
	want, err := os.Stat(target)
	if err != nil {
		return false
	}
	return os.SameFile(linked, want)
}

// CopyFile copies src to dst, truncating dst if it exists
func CopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) // nolint:gosec // Path of the running executable
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm) // nolint:gosec // Path inside the hooks directory
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst) // Clean up partial/corrupt file
		return err
	}
	return out.Close()
}

// CopyFileAtomic copies src next to dst and renames it into place, so a
// running git never sees a half-written hook.
func CopyFileAtomic(src, dst string, perm os.FileMode) error {
	tmpPath := tempPath(dst)
	if err := CopyFile(src, tmpPath, perm); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// SymlinkAtomic points dst at target, replacing whatever dst was.
func SymlinkAtomic(target, dst string) error {
	tmpPath := tempPath(dst)
	if err := os.Symlink(target, tmpPath); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func tempPath(path string) string {
	return filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.tmp.%d.%d", filepath.Base(path), os.Getpid(), time.Now().UnixNano()))
}
