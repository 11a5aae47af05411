package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirectoryExists(t *testing.T) {
	t.Run("returns true for existing directory", func(t *testing.T) {
		if !DirectoryExists(t.TempDir()) {
			t.Error("DirectoryExists should return true for existing directory")
		}
	})

	t.Run("returns false for non-existent directory", func(t *testing.T) {
		if DirectoryExists(filepath.Join(t.TempDir(), "nonexistent")) {
			t.Error("DirectoryExists should return false for non-existent directory")
		}
	})

	t.Run("returns false for a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), FileGit); err != nil {
			t.Fatal(err)
		}
		if DirectoryExists(path) {
			t.Error("DirectoryExists should return false for a file")
		}
	})
}

func TestPathExists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	dir := t.TempDir()
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "missing"), dangling); err != nil {
		t.Fatal(err)
	}

	if !PathExists(dangling) {
		t.Error("PathExists should report dangling symlinks")
	}
	if PathExists(filepath.Join(dir, "missing")) {
		t.Error("PathExists should return false for missing path")
	}
}

func TestIsSymlinkTo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "ticketguard")
	other := filepath.Join(dir, "other")
	for _, p := range []string{target, other} {
		if err := os.WriteFile(p, []byte("#!/bin/sh\n"), FileExec); err != nil {
			t.Fatal(err)
		}
	}

	link := filepath.Join(dir, "commit-msg")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if !IsSymlinkTo(link, target) {
		t.Error("expected link to resolve to target")
	}
	if IsSymlinkTo(link, other) {
		t.Error("link should not match a different file")
	}
	if IsSymlinkTo(target, target) {
		t.Error("a regular file is not a symlink")
	}
}

func TestCopyFileAtomic(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "pre-push")
	if err := os.WriteFile(src, []byte("binary"), FileGit); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old hook"), FileGit); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileAtomic(src, dst, FileExec); err != nil {
		t.Fatalf("CopyFileAtomic failed: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "binary" {
		t.Errorf("expected copied content, got %q", content)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dst)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != FileExec {
			t.Errorf("expected mode %v, got %v", os.FileMode(FileExec), info.Mode().Perm())
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst")

	if err := CopyFileAtomic(filepath.Join(dir, "missing"), dst, FileExec); err == nil {
		t.Error("expected error for missing source")
	}
	if PathExists(dst) {
		t.Error("destination should not be created on failure")
	}
}

func TestSymlinkAtomic(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "ticketguard")
	dst := filepath.Join(dir, "commit-msg")
	if err := os.WriteFile(target, []byte("bin"), FileExec); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old hook"), FileExec); err != nil {
		t.Fatal(err)
	}

	if err := SymlinkAtomic(target, dst); err != nil {
		t.Fatalf("SymlinkAtomic failed: %v", err)
	}

	if !IsSymlinkTo(dst, target) {
		t.Error("expected dst to link to target")
	}
}
