package cmd

import (
	"github.com/abdul-hamid-achik/ycurl/packages/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config",
	Long: `Print the config with every variable substituted and every typed
literal cast, as indented JSON.

Examples:
  ycurl show
  ycurl -f api.yaml --env-file .env show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return output.ShowConfig(cmd.OutOrStdout(), cfg)
	},
}
