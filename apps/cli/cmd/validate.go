package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/output"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	watchFlag       bool
	printSchemaFlag bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the config file loads and resolves",
	Long: `Load the config file, validate its structure, resolve every variable
and typed literal, and report the first problem found. Nothing is sent.

Examples:
  ycurl validate
  ycurl -f api.json validate --watch
  ycurl validate --print-schema > ycurl.schema.json`,
	Args: cobra.NoArgs,
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the config file and re-validate on change")
	validateCmd.Flags().BoolVar(&printSchemaFlag, "print-schema", false, "Print the JSON Schema documents are checked against and exit")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	if printSchemaFlag {
		_, err := cmd.OutOrStdout().Write(config.Schema())
		return err
	}

	formatter := output.NewConsoleFormatter(output.WithWriter(cmd.OutOrStdout()))

	validate := func() error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s (%d requests, %d enabled)\n", fileFlag, len(cfg.Requests), len(cfg.Enabled()))
		return nil
	}

	err := validate()
	if !watchFlag {
		return err
	}
	if err != nil {
		formatter.FormatError(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	target, err := filepath.Abs(fileFlag)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	ctx, stop := withSignals(cmd.Context())
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce = time.After(WatchDebounceDelay)
			}

		case <-debounce:
			debounce = nil
			fmt.Fprintf(cmd.OutOrStdout(), "File changed: %s\n", fileFlag)
			if err := validate(); err != nil {
				formatter.FormatError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}
