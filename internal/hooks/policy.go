package hooks

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/git"
	"github.com/sqve/ticketguard/internal/logger"
	"github.com/sqve/ticketguard/internal/match"
)

// protectedBranch may never receive commits directly.
const protectedBranch = "master"

// User-facing policy messages.
const (
	MsgProtectedBranch = "Current branch is master. Checkout a valid branch."
	MsgBranchNoTicket  = "Branch does not contain reference to a JIRA-issue."
	MsgCommitNoTicket  = "Commit message should include a reference to the JIRA-issue (%s)."
	MsgRemoteName      = "Remote branch must have the same name as the local."
	MsgRemoteNoTicket  = "Remote branch must contain the JIRA-issue (%s)."
)

// CheckCommit enforces the commit-msg policy for the message drafted in
// messageFile.
func (c *Checker) CheckCommit(messageFile string) error {
	branch, err := c.currentBranch()
	if err != nil {
		return err
	}

	protected, err := match.MatchesExactly(branch, protectedBranch)
	if err != nil {
		return err
	}
	if protected {
		return errors.ErrPolicyViolation(MsgProtectedBranch)
	}

	ticket, err := ticketFor(branch)
	if err != nil {
		return err
	}

	message, err := ReadMessage(messageFile)
	if err != nil {
		return err
	}

	referenced, err := match.StartsWith(message, ticket)
	if err != nil {
		return err
	}
	if !referenced {
		return errors.ErrPolicyViolation(fmt.Sprintf(MsgCommitNoTicket, ticket)).
			WithContext("ticket", ticket)
	}

	logger.Debug("commit-msg: message references %s", ticket)
	return nil
}

// CheckPush enforces the pre-push policy for the first ref update on stdin.
func (c *Checker) CheckPush() error {
	branch, err := c.currentBranch()
	if err != nil {
		return err
	}

	ticket, err := ticketFor(branch)
	if err != nil {
		return err
	}

	if c.Stdin == nil {
		return errors.ErrMissingData("push refs")
	}

	pair, err := git.ReadRefPair(c.Stdin)
	if err != nil {
		return err
	}
	logger.Debug("pre-push: %s (%s) -> %s (%s)", pair.Local, pair.LocalSHA, pair.Remote, pair.RemoteSHA)

	if pair.Local != pair.Remote {
		return errors.ErrPolicyViolation(MsgRemoteName).
			WithContext("local", pair.Local).
			WithContext("remote", pair.Remote)
	}

	referenced, err := match.StartsWith(pair.Remote, ticket)
	if err != nil {
		return err
	}
	if !referenced {
		return errors.ErrPolicyViolation(fmt.Sprintf(MsgRemoteNoTicket, ticket)).
			WithContext("ticket", ticket)
	}

	logger.Debug("pre-push: remote %s references %s", pair.Remote, ticket)
	return nil
}

// ReadMessage returns the commit message in path with trailing whitespace
// removed.
func ReadMessage(path string) (string, error) {
	data, err := os.ReadFile(path) // nolint:gosec // Path supplied by git
	if err != nil {
		return "", errors.ErrIO("read commit message", err).WithContext("path", path)
	}

	if !utf8.Valid(data) {
		return "", errors.ErrEncoding("commit message").WithContext("path", path)
	}

	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

func (c *Checker) currentBranch() (string, error) {
	if c.Branch == nil {
		return "", errors.ErrMissingData("branch source")
	}

	branch, err := c.Branch()
	if err != nil {
		return "", err
	}

	logger.Debug("current branch: %s", branch)
	return branch, nil
}

func ticketFor(branch string) (string, error) {
	ticket, ok := match.ExtractTicket(branch)
	if !ok {
		return "", errors.ErrPolicyViolation(MsgBranchNoTicket).WithContext("branch", branch)
	}
	return ticket, nil
}
