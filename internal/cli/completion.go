package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for causalgo.

The script completes the learn and render subcommands and their flags,
including learn's --score, --prior, and --output.

To load it in the current session:

  Bash:        source <(causalgo completion bash)
  Zsh:         causalgo completion zsh > "${fpath[1]}/_causalgo"
  Fish:        causalgo completion fish | source
  PowerShell:  causalgo completion powershell | Out-String | Invoke-Expression

Write the output to your shell's completion directory to persist it across
sessions (e.g. /etc/bash_completion.d/causalgo for bash on Linux).
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
