package cmd

import (
	"github.com/abdul-hamid-achik/ycurl/packages/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the enabled requests",
	Long: `List the enabled requests of the config file, one JSON object per line.

Examples:
  ycurl list
  ycurl -f api.json list`,
	Args: cobra.NoArgs,
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return output.ListRequests(cmd.OutOrStdout(), cfg)
}
