package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/ycurl/packages/history"
)

var (
	historyLimitFlag int
	historyNameFlag  string
	historyJSONFlag  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently sent requests",
	Long: `Show requests recorded in the history database, newest first.
Recording is enabled by --history-db (or YCURL_HISTORY_DB).

Examples:
  ycurl --history-db ~/.ycurl.db history
  ycurl --history-db ~/.ycurl.db history --name login --limit 5`,
	Args: cobra.NoArgs,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", getEnvInt("YCURL_HISTORY_LIMIT", 20), "Maximum number of entries (env: YCURL_HISTORY_LIMIT)")
	historyCmd.Flags().StringVar(&historyNameFlag, "name", "", "Only show entries for this request name")
	historyCmd.Flags().BoolVar(&historyJSONFlag, "json", false, "Print entries as JSON")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	if historyDBFlag == "" {
		return usageError(errors.New("history database not configured (use --history-db or YCURL_HISTORY_DB)"))
	}
	if historyLimitFlag <= 0 {
		return usageError(fmt.Errorf("--limit must be positive, got %d", historyLimitFlag))
	}

	store, err := history.OpenStore(cmd.Context(), historyDBFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), historyLimitFlag, historyNameFlag)
	if err != nil {
		return err
	}

	if historyJSONFlag {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dms\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), statusCell(e), e.Name, e.Method, e.URL, e.DurationMs)
	}
	return w.Flush()
}

// statusCellWidth fits a status code or "ERR".
const statusCellWidth = 3

// statusCell renders the status column. tabwriter counts color escapes as
// width, so the text is padded first and every cell carries exactly one
// color sequence of the same length.
func statusCell(e history.Entry) string {
	text := "ERR"
	colorize := color.New(color.FgRed).SprintFunc()
	if e.Error == "" {
		text = strconv.Itoa(e.StatusCode)
		if e.StatusCode >= 200 && e.StatusCode < 300 {
			colorize = color.New(color.FgGreen).SprintFunc()
		}
	}
	return colorize(fmt.Sprintf("%-*s", statusCellWidth, text))
}
