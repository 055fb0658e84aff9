package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	fileFlag      string
	envFileFlag   string
	noColorFlag   bool
	historyDBFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ycurl [index|name]",
	Short: "Send named HTTP requests from a JSON config.",
	Long: `ycurl sends HTTP requests defined in a JSON (or YAML) document.
Requests are picked by index or name; without an argument the enabled
requests are listed. Strings may reference variables with ${name}.

Examples:
  ycurl                    # list requests
  ycurl login              # send the request named "login"
  ycurl 2 --show-headers   # send the third request, print headers
  ycurl -f api.json show   # print the resolved config`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeRequestNames,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.SetLevel(log.WarnLevel)
		if noColorFlag {
			color.NoColor = true
		}
	},
	RunE: runCommand,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if !errors.As(err, &exit) || !exit.silent {
			reportError(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", getEnvString("YCURL_FILE", config.DefaultFilename), "Config file (env: YCURL_FILE)")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", getEnvString("YCURL_ENV_FILE", ""), "Path to .env file whose entries are visible to global variables (env: YCURL_ENV_FILE)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("YCURL_NO_COLOR", false), "Disable colored output (env: YCURL_NO_COLOR)")
	rootCmd.PersistentFlags().StringVar(&historyDBFlag, "history-db", getEnvString("YCURL_HISTORY_DB", ""), "SQLite database recording every request (env: YCURL_HISTORY_DB)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads --file, seeding the global variables with --env-file.
func loadConfig() (*config.Config, error) {
	var opts []config.LoadOption
	if envFileFlag != "" {
		base, err := env.LoadDotEnv(envFileFlag)
		if err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
		opts = append(opts, config.WithBaseVariables(base))
	}

	cfg, err := config.Load(fileFlag, opts...)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file":     fileFlag,
		"requests": len(cfg.Requests),
		"enabled":  len(cfg.Enabled()),
	}).Debug("Loaded config")
	return cfg, nil
}

func completeRequestNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cfg.Names(), cobra.ShellCompDirectiveNoFileComp
}
