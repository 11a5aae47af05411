package git

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqve/ticketguard/internal/fs"
	"github.com/sqve/ticketguard/internal/testutil"
)

// TestRepo provides a test git repository with proper configuration
type TestRepo struct {
	t    *testing.T
	Dir  string
	Path string
}

// NewTestRepo creates a new test repository with git config set up and an
// initial commit. Pass an optional branch name (default "main").
// Skips the test when git is not installed.
func NewTestRepo(t *testing.T, branchName ...string) *TestRepo {
	t.Helper()
	testutil.RequireGit(t)

	dir := testutil.TempDir(t)
	repo := &TestRepo{t: t, Dir: dir, Path: filepath.Join(dir, "repo")}

	branch := "main"
	if len(branchName) > 0 && branchName[0] != "" {
		branch = branchName[0]
	}

	testutil.MustExec(t, dir, "git", "init", "-b", branch, repo.Path)

	repo.Git("config", "commit.gpgsign", "false")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "user.name", "Test User")

	repo.WriteFile("test.txt", "test")
	repo.Add(".")
	repo.Commit("initial")

	return repo
}

// Git runs a git command in the repository and returns trimmed stdout.
func (r *TestRepo) Git(args ...string) string {
	r.t.Helper()
	return strings.TrimSpace(testutil.MustExec(r.t, r.Path, "git", args...))
}

// GitErr runs a git command and returns its combined output and error
// without failing the test. Used when a hook is expected to reject.
func (r *TestRepo) GitErr(args ...string) (string, error) {
	r.t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec
	cmd.Dir = r.Path
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// AddBareRemote creates a bare repository next to the test repo and
// registers it as a remote.
func (r *TestRepo) AddBareRemote(name string) string {
	r.t.Helper()
	remotePath := filepath.Join(r.Dir, name+".git")
	testutil.MustExec(r.t, r.Dir, "git", "init", "--bare", remotePath)
	r.Git("remote", "add", name, remotePath)
	return remotePath
}

// CreateBranch creates a new branch at the current HEAD
func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// Checkout switches to a branch, creating it when create is set
func (r *TestRepo) Checkout(name string, create ...bool) {
	r.t.Helper()
	if len(create) > 0 && create[0] {
		r.Git("checkout", "-b", name)
		return
	}
	r.Git("checkout", name)
}

// WriteFile writes content to a file in the repository
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	testutil.WriteFileMode(r.t, filepath.Join(r.Path, name), content, fs.FileGit)
}

// Add stages a file
func (r *TestRepo) Add(name string) {
	r.t.Helper()
	r.Git("add", name)
}

// Commit creates a commit with the given message
func (r *TestRepo) Commit(message string) {
	r.t.Helper()
	r.Git("commit", "-m", message)
}

// HooksDir returns the absolute hooks directory git uses for this repository.
func (r *TestRepo) HooksDir() string {
	r.t.Helper()
	hooks := r.Git("rev-parse", "--git-path", "hooks")
	if !filepath.IsAbs(hooks) {
		hooks = filepath.Join(r.Path, hooks)
	}
	return hooks
}
