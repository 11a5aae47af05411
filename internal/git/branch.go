package git

import (
	"os/exec"
	"strings"
	"unicode"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/logger"
)

// CurrentBranch returns the short name of the branch checked out in workDir
// (the process working directory when empty), as reported by
// `git symbolic-ref --short HEAD`. When git is not installed, HEAD is read
// from the repository directly.
func CurrentBranch(cmdr Commander, workDir string) (string, error) {
	stdout, _, err := cmdr.Run(workDir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			logger.Debug("git not found in PATH, reading HEAD from repository")
			return readHeadBranch(workDir)
		}
		return "", errors.ErrIO("git symbolic-ref", err)
	}

	if !utf8.Valid(stdout) {
		return "", errors.ErrEncoding("current branch")
	}

	branch := strings.TrimRightFunc(string(stdout), unicode.IsSpace)
	if branch == "" {
		return "", errors.ErrMissingData("current branch")
	}

	return branch, nil
}

// BranchReader binds CurrentBranch to a commander and directory.
func BranchReader(cmdr Commander, workDir string) BranchFunc {
	return func() (string, error) {
		return CurrentBranch(cmdr, workDir)
	}
}

// readHeadBranch resolves HEAD one level without requiring a commit, so it
// also works on an unborn branch.
func readHeadBranch(workDir string) (string, error) {
	if workDir == "" {
		workDir = "."
	}

	repo, err := gogit.PlainOpenWithOptions(workDir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", errors.ErrIO("open repository", err)
	}

	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", errors.ErrIO("read HEAD", err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", errors.ErrMissingData("current branch").WithContext("head", head.String())
	}

	return head.Target().Short(), nil
}
