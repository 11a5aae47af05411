package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/ticketguard/internal/errors"
)

func TestParse(t *testing.T) {
	t.Run("supported hooks", func(t *testing.T) {
		for _, name := range []string{"commit-msg", "pre-push"} {
			hook, err := Parse(name)
			require.NoError(t, err)
			assert.Equal(t, name, string(hook))
		}
	})

	t.Run("unsupported hooks", func(t *testing.T) {
		for _, name := range []string{"pre-commit", "post-checkout", "Commit-Msg", "", "ticketguard"} {
			_, err := Parse(name)
			require.Error(t, err)
			assert.True(t, errors.IsGuardError(err, errors.ErrCodeUnsupportedHook), name)
		}
	})
}

func TestNames(t *testing.T) {
	assert.Equal(t, []Name{CommitMsg, PrePush}, Names())
}

func TestCheckerRun(t *testing.T) {
	t.Run("commit-msg requires a message file", func(t *testing.T) {
		checker := NewChecker(branchOf("DA-1_feature"), nil)

		err := checker.Run(CommitMsg, nil)

		assert.True(t, errors.IsGuardError(err, errors.ErrCodeMissingData))
	})

	t.Run("commit-msg routes to the commit policy", func(t *testing.T) {
		checker := NewChecker(branchOf("DA-1_feature"), nil)

		err := checker.Run(CommitMsg, []string{writeMessage(t, "DA-1: fix bug")})

		assert.NoError(t, err)
	})

	t.Run("pre-push ignores remote name and url", func(t *testing.T) {
		stdin := strings.NewReader("refs/heads/DA-1_feature a refs/heads/DA-1_feature b\n")
		checker := NewChecker(branchOf("DA-1_feature"), stdin)

		err := checker.Run(PrePush, []string{"origin", "git@example.com:repo.git"})

		assert.NoError(t, err)
	})

	t.Run("unknown hook", func(t *testing.T) {
		checker := NewChecker(branchOf("DA-1_feature"), nil)

		err := checker.Run(Name("post-merge"), nil)

		assert.True(t, errors.IsGuardError(err, errors.ErrCodeUnsupportedHook))
	})
}
