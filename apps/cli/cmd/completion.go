package cmd

import (
	"os"

	"github.com/abdul-hamid-achik/ycurl/packages/output"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell|legacy]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for ycurl.

To load completions:

Bash:
  $ source <(ycurl completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ycurl completion bash > /etc/bash_completion.d/ycurl
  # macOS:
  $ ycurl completion bash > $(brew --prefix)/etc/bash_completion.d/ycurl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ycurl completion zsh > "${fpath[1]}/_ycurl"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ ycurl completion fish | source

PowerShell:
  PS> ycurl completion powershell | Out-String | Invoke-Expression

Legacy (a single bash "complete" line built from the request names of the
current config file):
  $ eval "$(ycurl completion legacy)"
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell", "legacy"},
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
		case "legacy":
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return output.LegacyCompletion(cmd.OutOrStdout(), cfg, cmd.Root().Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
