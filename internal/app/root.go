package app

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqve/ticketguard/internal/completion"
	"github.com/sqve/ticketguard/internal/config"
	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/git"
	"github.com/sqve/ticketguard/internal/hooks"
	"github.com/sqve/ticketguard/internal/logger"
	"github.com/sqve/ticketguard/internal/styles"
)

// Version is stamped at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

const (
	// ExecutableName is the name under which the management CLI runs. Any
	// other invocation name is treated as a hook name.
	ExecutableName = "ticketguard"

	msgUnsupportedHook = "Unsupported hook."
)

// dispatcher owns the process streams and the final exit code.
type dispatcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// branch builds the branch lookup used by the hooks.
	branch func() git.BranchFunc

	code int
}

func newDispatcher(stdin io.Reader, stdout, stderr io.Writer) *dispatcher {
	return &dispatcher{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		branch: func() git.BranchFunc {
			return git.BranchReader(git.DefaultCommander, "")
		},
	}
}

// Main runs ticketguard as invoked by argv and returns the process exit
// code. It is the only place that reports outcomes to the user.
func Main(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newDispatcher(stdin, stdout, stderr).dispatch(argv)
}

func (d *dispatcher) dispatch(argv []string) int {
	logger.SetOutput(d.stderr)

	if len(argv) == 0 {
		fmt.Fprintln(d.stdout, msgUnsupportedHook)
		return 1
	}

	if err := config.Load(nil); err != nil {
		logger.Warning("Failed to load configuration: %v", err)
	}

	name := invokedName(argv[0])
	if name == ExecutableName {
		return d.runCLI(argv[1:])
	}

	hook, err := hooks.Parse(name)
	if err != nil {
		return d.report("", err)
	}

	return d.runHook(hook, argv[1:])
}

func (d *dispatcher) runHook(hook hooks.Name, args []string) int {
	logger.Debug("Running %s hook with args %v", hook, args)
	if hook == hooks.PrePush && len(args) >= 2 {
		logger.Debug("Pushing to remote %s (%s)", args[0], args[1])
	}

	checker := hooks.NewChecker(d.branch(), d.stdin)
	return d.report(hook, checker.Run(hook, args))
}

// report prints the outcome line for err and returns the exit code.
func (d *dispatcher) report(hook hooks.Name, err error) int {
	if err == nil {
		return 0
	}

	logger.Debug("%s failed: code=%s context=%v", hookLabel(hook), errors.GetErrorCode(err), errors.GetErrorContext(err))

	switch {
	case errors.IsViolation(err):
		fmt.Fprintln(d.stdout, styles.Render(&styles.Error, err.Error()))
	case errors.IsGuardError(err, errors.ErrCodeUnsupportedHook):
		fmt.Fprintln(d.stdout, msgUnsupportedHook)
	default:
		fmt.Fprintf(d.stdout, "%s: %v\n", failurePrefix(hook), err)
	}

	return 1
}

func failurePrefix(hook hooks.Name) string {
	switch hook {
	case hooks.CommitMsg:
		return "Failed to check commit"
	case hooks.PrePush:
		return "Failed to check push"
	default:
		return "Failed to check hook"
	}
}

func hookLabel(hook hooks.Name) string {
	if hook == "" {
		return "hook"
	}
	return string(hook)
}

// invokedName reduces argv[0] to the name the executable was called by.
func invokedName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	}
	return name
}

func (d *dispatcher) runCLI(args []string) int {
	rootCmd := NewRootCommand(d)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(d.stdin)
	rootCmd.SetOut(d.stdout)
	rootCmd.SetErr(d.stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		return 1
	}

	return d.code
}

// NewRootCommand creates the ticketguard management command. Hook outcomes
// are recorded on d rather than returned, so cobra never prints them.
func NewRootCommand(d *dispatcher) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     ExecutableName,
		Short:   "Git hooks that keep branches, commits and pushes tied to a ticket",
		Version: Version,
		Long: `ticketguard enforces a ticket policy from git hooks.

Installed as commit-msg, it rejects commits on master and commit messages that
do not start with the ticket in the branch name. Installed as pre-push, it
rejects pushes whose remote branch name differs from the local one or lacks
the ticket.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Load(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(newRunCmd(d))
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newVersionCmd())
	completion.CreateCompletionCommands(rootCmd)

	return rootCmd
}

func newRunCmd(d *dispatcher) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <hook> [args...]",
		Short: "Run a hook explicitly",
		Long: `Run a hook by name with the arguments git passes to it.

Use this from hook managers that call a command instead of an executable named
after the hook. Supported hooks: ` + strings.Join(completion.HookNames(), ", ") + ".",
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: completion.HookCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			hook, err := hooks.Parse(args[0])
			if err != nil {
				d.code = d.report("", err)
				return nil
			}
			d.code = d.runHook(hook, args[1:])
			return nil
		},
	}

	// Everything after the hook name belongs to the hook.
	runCmd.Flags().SetInterspersed(false)

	return runCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ExecutableName, Version)
		},
	}
}
