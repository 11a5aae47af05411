//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Vars = append(env.Vars, "TICKETGUARD_PLAIN=true")
			homeDir := filepath.Join(env.WorkDir, ".home")
			if err := os.MkdirAll(homeDir, 0o755); err != nil {
				return err
			}
			env.Vars = append(env.Vars, "HOME="+homeDir)
			gitConfigPath := filepath.Join(homeDir, ".gitconfig")
			gitConfigContent := `[init]
	defaultBranch = master
[advice]
	defaultBranchName = false
	detachedHead = false
[user]
	name = Test
	email = test@example.com
[commit]
	gpgsign = false
`
			return os.WriteFile(gitConfigPath, []byte(gitConfigContent), 0o644)
		},
	})
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"ticketguard": main,
		"commit-msg":  main,
		"pre-push":    main,
	})
}
