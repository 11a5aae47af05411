package hooks

import (
	"io"
	"strings"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/git"
)

// Name identifies a git hook ticketguard can be installed as.
type Name string

const (
	CommitMsg Name = "commit-msg"
	PrePush   Name = "pre-push"
)

// Names returns every supported hook in installation order.
func Names() []Name {
	return []Name{CommitMsg, PrePush}
}

// Parse maps a hook file name to a supported hook.
func Parse(name string) (Name, error) {
	for _, n := range Names() {
		if string(n) == name {
			return n, nil
		}
	}
	return "", errors.ErrUnsupportedHook(name)
}

// Checker evaluates the hook policies. It holds no state between calls, so
// running a check twice on the same inputs gives the same outcome.
type Checker struct {
	Branch git.BranchFunc
	Stdin  io.Reader
}

// NewChecker creates a Checker reading the current branch from branch and
// pre-push records from stdin.
func NewChecker(branch git.BranchFunc, stdin io.Reader) *Checker {
	return &Checker{Branch: branch, Stdin: stdin}
}

// Run executes the policy for hook with the arguments git passed to it.
func (c *Checker) Run(hook Name, args []string) error {
	switch hook {
	case CommitMsg:
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return errors.ErrMissingData("commit message file argument")
		}
		return c.CheckCommit(args[0])
	case PrePush:
		return c.CheckPush()
	default:
		return errors.ErrUnsupportedHook(string(hook))
	}
}
