// Package install places the ticketguard executable into a repository's
// hooks directory under each supported hook name.
package install

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/fs"
	"github.com/sqve/ticketguard/internal/git"
	"github.com/sqve/ticketguard/internal/hooks"
	"github.com/sqve/ticketguard/internal/logger"
)

// Options control how hooks are written.
type Options struct {
	// Force replaces hooks that ticketguard did not install.
	Force bool
	// Copy writes a copy of the executable instead of a symlink.
	Copy bool
}

// Action describes what happened to a single hook.
type Action string

const (
	ActionInstalled Action = "installed"
	ActionReplaced  Action = "replaced"
	ActionUpToDate  Action = "up to date"
	ActionSkipped   Action = "skipped"
)

// Result reports the outcome for one hook.
type Result struct {
	Hook   hooks.Name
	Path   string
	Action Action
}

// HooksDir returns the absolute hooks directory for the repository at
// workDir, honoring core.hooksPath.
func HooksDir(cmdr git.Commander, workDir string) (string, error) {
	stdout, _, err := cmdr.Run(workDir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", errors.ErrIO("git rev-parse --git-path hooks", err)
	}

	dir := strings.TrimSpace(string(stdout))
	if dir == "" {
		return "", errors.ErrMissingData("hooks directory")
	}

	if !filepath.IsAbs(dir) {
		base := workDir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", errors.ErrIO("get working directory", err)
			}
			base = wd
		}
		dir = filepath.Join(base, dir)
	}

	return filepath.Clean(dir), nil
}

// Install links or copies executable into the hooks directory of the
// repository at workDir, once per supported hook.
func Install(cmdr git.Commander, workDir, executable string, opts Options) ([]Result, error) {
	if err := cmdr.RunQuiet(workDir, "rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, errors.ErrIO("locate repository", err)
	}

	dir, err := HooksDir(cmdr, workDir)
	if err != nil {
		return nil, err
	}

	if !fs.DirectoryExists(dir) {
		logger.Debug("creating hooks directory %s", dir)
		if err := os.MkdirAll(dir, fs.DirGit); err != nil {
			return nil, errors.ErrIO("create hooks directory", err).WithContext("path", dir)
		}
	}

	results := make([]Result, 0, len(hooks.Names()))
	for _, hook := range hooks.Names() {
		result, err := installHook(dir, hook, executable, opts)
		if err != nil {
			return results, err
		}
		logger.Debug("%s: %s (%s)", hook, result.Action, result.Path)
		results = append(results, result)
	}

	return results, nil
}

func installHook(dir string, hook hooks.Name, executable string, opts Options) (Result, error) {
	path := filepath.Join(dir, string(hook))
	result := Result{Hook: hook, Path: path, Action: ActionInstalled}

	if fs.PathExists(path) {
		switch {
		case !opts.Copy && fs.IsSymlinkTo(path, executable):
			result.Action = ActionUpToDate
			return result, nil
		case !opts.Force:
			result.Action = ActionSkipped
			return result, nil
		default:
			result.Action = ActionReplaced
		}
	}

	var err error
	if opts.Copy {
		err = fs.CopyFileAtomic(executable, path, fs.FileExec)
	} else {
		err = fs.SymlinkAtomic(executable, path)
	}
	if err != nil {
		return result, errors.ErrIO("install "+string(hook)+" hook", err).WithContext("path", path)
	}

	return result, nil
}
