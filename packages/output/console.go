package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/ycurl/packages/core/runner"
	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
	"github.com/abdul-hamid-achik/ycurl/packages/http"
)

// BodyIndent is used when pretty-printing JSON bodies and configs.
const BodyIndent = "    "

type ConsoleFormatter struct {
	writer      io.Writer
	verbose     bool
	noColor     bool
	showHeaders bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func WithShowHeaders(show bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.showHeaders = show
	}
}

// FormatResult prints the request URL (verbose only), the status line in
// green for 2xx and red otherwise, the response headers when enabled and the
// body. JSON bodies are re-indented, keeping the server's key order.
func (f *ConsoleFormatter) FormatResult(result *runner.Result) {
	if f.verbose && result.Request != nil {
		fmt.Fprintf(f.writer, "%s\n\n", result.Request.BuildURL())
	}

	resp := result.Response
	if resp == nil {
		if result.Error != nil {
			f.FormatError(result.Error)
		}
		return
	}

	status := color.New(color.FgRed).SprintFunc()
	if resp.IsSuccess() {
		status = color.New(color.FgGreen).SprintFunc()
	}
	fmt.Fprintln(f.writer, status(resp.Status))

	if f.verbose {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintln(f.writer, cyan(fmt.Sprintf("(%dms)", resp.DurationMs())))
	}

	if f.showHeaders {
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer, Highlight(headersJSON(resp), "json"))
	}

	if strings.TrimSpace(resp.BodyString()) == "" {
		return
	}

	body, language := prettyBody(resp)
	fmt.Fprintln(f.writer)
	fmt.Fprintln(f.writer, Highlight(body, language))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("ycurl"), version)
}

// headersJSON renders the response headers as one compact JSON object with
// lower-cased, sorted names.
func headersJSON(resp *http.Response) string {
	m := value.NewMap()
	headers := resp.HeaderMap()
	for _, name := range resp.HeaderNames() {
		m.Set(name, value.NewString(headers[name]))
	}
	return m.String()
}

// prettyBody returns the body ready for printing and the language to
// highlight it as ("" for none).
func prettyBody(resp *http.Response) (string, string) {
	body := strings.TrimSpace(resp.BodyString())

	if v, err := value.Parse([]byte(body)); err == nil {
		if pretty, err := value.MarshalIndent(v, BodyIndent); err == nil {
			return string(pretty), "json"
		}
	}
	if strings.HasPrefix(body, "<") {
		return body, "html"
	}
	return body, ""
}
