package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/runner"
	"github.com/abdul-hamid-achik/ycurl/packages/history"
	"github.com/abdul-hamid-achik/ycurl/packages/output"
)

var (
	showHeadersFlag     bool
	disableRedirectFlag bool
	verboseFlag         bool
	timeoutFlag         string
	logFileFlag         string
	noLogFlag           bool
	outputFlag          string
)

func init() {
	rootCmd.Flags().BoolVar(&showHeadersFlag, "show-headers", getEnvBool("YCURL_SHOW_HEADERS", false), "Print response headers (env: YCURL_SHOW_HEADERS)")
	rootCmd.Flags().BoolVar(&disableRedirectFlag, "disable-redirect", getEnvBool("YCURL_DISABLE_REDIRECT", false), "Do not follow redirects (env: YCURL_DISABLE_REDIRECT)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("YCURL_VERBOSE", false), "Print the request URL and timing (env: YCURL_VERBOSE)")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", getEnvString("YCURL_TIMEOUT", ""), "Request timeout (e.g., 30s, 500ms) (env: YCURL_TIMEOUT)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", getEnvString("YCURL_LOG_FILE", ""), "History log file (default $HOME/logs/ycurl.txt) (env: YCURL_LOG_FILE)")
	rootCmd.Flags().BoolVar(&noLogFlag, "no-log", getEnvBool("YCURL_NO_LOG", false), "Do not write the history log (env: YCURL_NO_LOG)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("YCURL_OUTPUT", "console"), "Output format: console, json (env: YCURL_OUTPUT)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatResult(result *runner.Result)
	FormatError(err error)
	FormatHeader(version string)
}

func newFormatter(w io.Writer, opts *config.Options) Formatter {
	switch strings.ToLower(outputFlag) {
	case "json":
		return output.NewJSONFormatter(output.JSONWithWriter(w))
	default: // "console"
		return output.NewConsoleFormatter(
			output.WithWriter(w),
			output.WithVerbose(opts.GetVerbose()),
			output.WithNoColor(opts.GetNoColor()),
			output.WithShowHeaders(opts.GetShowHeaders()),
		)
	}
}

// reportError prints err with the formatter --output selects.
func reportError(w io.Writer, err error) {
	newFormatter(w, &config.Options{NoColor: config.BoolPtr(noColorFlag)}).FormatError(err)
}

// flagOptions collects the options given on the command line. A flag counts
// as given when it was set explicitly or turned on through its environment
// variable, so document cli_options are only overridden on purpose.
func flagOptions(cmd *cobra.Command) (*config.Options, error) {
	opts := &config.Options{LogFile: logFileFlag}

	flag := func(name string, value bool) *bool {
		if cmd.Flags().Changed(name) || value {
			return config.BoolPtr(value)
		}
		return nil
	}
	opts.ShowHeaders = flag("show-headers", showHeadersFlag)
	opts.DisableRedirect = flag("disable-redirect", disableRedirectFlag)
	opts.Verbose = flag("verbose", verboseFlag)
	opts.NoColor = flag("no-color", noColorFlag)

	if timeoutFlag != "" {
		timeout, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return nil, usageError(fmt.Errorf("invalid timeout value %q: %w (use format like 30s, 1m, 500ms)", timeoutFlag, err))
		}
		opts.Timeout = int(timeout.Milliseconds())
	}

	return opts, nil
}

func runCommand(cmd *cobra.Command, args []string) error {
	switch strings.ToLower(outputFlag) {
	case "console", "json":
	default:
		return usageError(fmt.Errorf("unknown output format %q (expected console or json)", outputFlag))
	}

	fromFlags, err := flagOptions(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := config.DefaultOptions().Merge(cfg.Options).Merge(fromFlags)
	if opts.GetVerbose() {
		log.SetLevel(log.DebugLevel)
	}

	if len(args) == 0 {
		if len(cfg.Enabled()) == 0 {
			log.WithFields(log.Fields{"file": fileFlag}).Warn("No enabled requests")
		}
		return output.ListRequests(cmd.OutOrStdout(), cfg)
	}

	// Selection errors are reported before the log is touched.
	if _, err := cfg.Select(args[0]); err != nil {
		return err
	}

	ctx, stop := withSignals(cmd.Context())
	defer stop()

	runCfg := &runner.Config{
		Options:   opts,
		File:      fileFlag,
		UserAgent: "ycurl/" + version,
	}

	if !noLogFlag {
		hlog, err := openLog(opts)
		if err != nil {
			return err
		}
		defer hlog.Close()
		runCfg.Log = hlog
	}

	if historyDBFlag != "" {
		store, err := history.OpenStore(ctx, historyDBFlag)
		if err != nil {
			return err
		}
		defer store.Close()
		runCfg.Store = store
	}

	formatter := newFormatter(cmd.OutOrStdout(), opts)
	if opts.GetVerbose() {
		formatter.FormatHeader(version)
	}

	result, err := runner.NewRunner(runCfg).Run(ctx, cfg, args[0])
	if err != nil {
		if result == nil {
			return err
		}
		// The request went out; report it in the selected format.
		formatter.FormatResult(result)
		return &exitError{code: exitCode(err), err: err, silent: true}
	}

	formatter.FormatResult(result)
	if !result.Passed() {
		return &exitError{code: ExitRequestFailure, silent: true}
	}
	return nil
}

func openLog(opts *config.Options) (*history.Log, error) {
	path := opts.LogFile
	if path == "" {
		var err error
		path, err = history.DefaultLogPath()
		if err != nil {
			return nil, err
		}
	}
	return history.OpenLog(path)
}

func withSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
