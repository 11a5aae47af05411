package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/logger"
)

// Commander abstracts Git command execution so hook logic can be tested
// without spawning git.
type Commander interface {
	// Run executes a Git command with the given arguments in the specified working directory.
	// Returns stdout, stderr, and any execution error.
	Run(workDir string, args ...string) (stdout, stderr []byte, err error)

	// RunQuiet executes a Git command without logging failures.
	// Used where failure is an expected answer rather than a problem.
	RunQuiet(workDir string, args ...string) error
}

// GitError represents an error from a git command execution.
type GitError struct {
	Command  string
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + ": " + stderr
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the exec error, so callers can detect a missing git binary.
func (e *GitError) Unwrap() error {
	return e.Err
}

// LiveGitCommander runs the real git binary.
type LiveGitCommander struct{}

// NewLiveGitCommander creates a new instance of LiveGitCommander.
func NewLiveGitCommander() *LiveGitCommander {
	return &LiveGitCommander{}
}

// Run executes a Git command, capturing stdout and stderr separately.
func (c *LiveGitCommander) Run(workDir string, args ...string) (stdout, stderr []byte, err error) {
	stdout, stderr, err = c.run(workDir, args)
	if err != nil {
		logger.GitResult(false, string(stderr))
		return stdout, stderr, err
	}

	logger.GitResult(true, string(stdout))
	return stdout, nil, nil
}

// RunQuiet executes a Git command without logging failures.
func (c *LiveGitCommander) RunQuiet(workDir string, args ...string) error {
	stdout, _, err := c.run(workDir, args)
	if err != nil {
		return err
	}

	logger.GitResult(true, string(stdout))
	return nil
}

func (c *LiveGitCommander) run(workDir string, args []string) (stdout, stderr []byte, err error) {
	logger.GitCommand(args)
	cmd := exec.Command("git", args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	stdout, err = cmd.Output()
	if err == nil {
		return stdout, nil, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr = exitErr.Stderr
	}

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return stdout, stderr, &GitError{
		Command:  "git",
		Args:     args,
		Stderr:   string(stderr),
		ExitCode: exitCode,
		Err:      err,
	}
}

// DefaultCommander provides a default instance of LiveGitCommander for production use.
var DefaultCommander Commander = NewLiveGitCommander()
