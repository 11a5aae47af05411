package completion

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqve/ticketguard/internal/hooks"
	"github.com/sqve/ticketguard/internal/logger"
)

// HookNames returns the names ticketguard can run as.
func HookNames() []string {
	names := make([]string, 0, len(hooks.Names()))
	for _, n := range hooks.Names() {
		names = append(names, string(n))
	}
	return names
}

func FilterCompletions(completions []string, toComplete string) []string {
	if toComplete == "" {
		return completions
	}

	var filtered []string
	for _, completion := range completions {
		if strings.HasPrefix(completion, toComplete) {
			filtered = append(filtered, completion)
		}
	}

	return filtered
}

// HookCompletion completes the hook name of `ticketguard run` and falls back
// to file completion for the hook's own arguments, such as the commit
// message file.
func HookCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	result := FilterCompletions(HookNames(), toComplete)
	logger.Debug("hook completion results: %v (input %q)", result, toComplete)
	return result, cobra.ShellCompDirectiveNoFileComp
}

func CreateCompletionCommands(rootCmd *cobra.Command) {
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `Generate completion script for the ticketguard CLI.

To enable completion, run the appropriate command for your shell:

Bash:
  ticketguard completion bash > ~/.bash_completion.d/ticketguard

Zsh:
  ticketguard completion zsh > "${fpath[1]}/_ticketguard"

Fish:
  ticketguard completion fish > ~/.config/fish/completions/ticketguard.fish

PowerShell:
  ticketguard completion powershell > ticketguard.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			switch shell {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported shell: %s", shell)
			}
		},
	}

	rootCmd.AddCommand(completionCmd)
}
