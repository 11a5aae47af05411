package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sqve/ticketguard/internal/errors"
	"github.com/sqve/ticketguard/internal/git"
	"github.com/sqve/ticketguard/internal/install"
	"github.com/sqve/ticketguard/internal/logger"
	"github.com/sqve/ticketguard/internal/styles"
)

func newInstallCmd() *cobra.Command {
	var opts install.Options

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install ticketguard as commit-msg and pre-push hooks",
		Long: `Install ticketguard into the hooks directory of the current repository.

Each hook is a symlink to this executable, or a copy with --copy. Hooks that
were not installed by ticketguard are left in place unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			executable, err := currentExecutable()
			if err != nil {
				return err
			}
			logger.Debug("Installing %s", executable)

			results, err := install.Install(git.DefaultCommander, "", executable, opts)
			for _, r := range results {
				hook := styles.Render(&styles.Hook, string(r.Hook))
				path := styles.Render(&styles.Dimmed, r.Path)
				switch r.Action {
				case install.ActionInstalled, install.ActionReplaced:
					logger.Success("%s hook %s: %s", hook, r.Action, path)
				case install.ActionUpToDate:
					logger.Info("%s hook is up to date", hook)
				case install.ActionSkipped:
					logger.Warning("%s hook already exists at %s, use --force to replace it", hook, path)
				}
			}
			if err != nil {
				return errors.Wrap(err, "failed to install hooks")
			}
			return nil
		},
	}

	installCmd.Flags().BoolVar(&opts.Force, "force", false, "Replace existing hooks")
	installCmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the executable instead of linking it")

	return installCmd
}

func currentExecutable() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", errors.ErrIO("locate executable", err)
	}
	resolved, err := filepath.EvalSymlinks(executable)
	if err != nil {
		return "", errors.ErrIO("resolve executable", err)
	}
	return resolved, nil
}
