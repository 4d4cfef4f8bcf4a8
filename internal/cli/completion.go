package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for prezicap.

Bash:
  # Add to ~/.bashrc:
  source <(prezicap completion bash)

  # Or install to system:
  prezicap completion bash > /etc/bash_completion.d/prezicap

Zsh:
  # Add to ~/.zshrc:
  source <(prezicap completion zsh)

  # Or install to fpath:
  prezicap completion zsh > "${fpath[1]}/_prezicap"

Fish:
  prezicap completion fish > ~/.config/fish/completions/prezicap.fish

PowerShell:
  prezicap completion powershell >> $PROFILE
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return cmd.Help()
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
