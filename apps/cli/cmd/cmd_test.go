package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
	"github.com/abdul-hamid-achik/ycurl/packages/core/typecast"
	"github.com/abdul-hamid-achik/ycurl/packages/history"
	yhttp "github.com/abdul-hamid-achik/ycurl/packages/http"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"parse", &config.ParseError{Problems: []string{"x"}}, ExitParseError},
		{"undefined", fmt.Errorf("request #0 (a): %w", &env.UndefinedVariableError{Name: "x"}), ExitConfigError},
		{"cast", &typecast.Error{Text: "maybe", Path: "body.f", Err: typecast.ErrNotBool}, ExitConfigError},
		{"duplicate", &config.DuplicateNameError{Name: "login"}, ExitConfigError},
		{"not found", fmt.Errorf("%w: x", config.ErrRequestNotFound), ExitConfigError},
		{"missing file", os.ErrNotExist, ExitConfigError},
		{"network", fmt.Errorf("%w: refused", yhttp.ErrNetwork), ExitNetworkError},
		{"invalid url", fmt.Errorf("building request %q: %w", "me", fmt.Errorf("%w: no host", yhttp.ErrInvalidURL)), ExitConfigError},
		{"silent network", &exitError{code: ExitNetworkError, err: yhttp.ErrNetwork, silent: true}, ExitNetworkError},
		{"usage", usageError(errors.New("bad flag")), ExitUsageError},
		{"request failure", &exitError{code: ExitRequestFailure, silent: true}, ExitRequestFailure},
		{"other", errors.New("boom"), ExitRequestFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	doc := `{
    # comment lines are allowed
    "base_url": "` + baseURL + `",
    "variables": {"token": "${TOKEN}"},
    "requests": [
        {"name": "ping", "url": "/ping", "method": "GET", "headers": {"Authorization": "Bearer ${token}"}},
        {"name": "off", "url": "/off", "method": "GET", "disabled": true}
    ]
}`
	dir := t.TempDir()
	path := filepath.Join(dir, "ycurl.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOKEN=s3cr3t\n"), 0644))
	return path
}

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level flag variables.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		reset(c.Flags())
		reset(c.PersistentFlags())
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	path := writeConfig(t, "http://localhost")
	envFile := filepath.Join(filepath.Dir(path), ".env")

	out, err := execute(t, "list", "-f", path, "--env-file", envFile, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, `{"index": 0, "name": "ping", "url": "/ping"}`+"\n", out)
}

func TestShowCommand(t *testing.T) {
	path := writeConfig(t, "http://localhost")
	envFile := filepath.Join(filepath.Dir(path), ".env")

	out, err := execute(t, "show", "-f", path, "--env-file", envFile, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, `"Authorization": "Bearer s3cr3t"`)
}

func TestValidateCommand_UndefinedVariable(t *testing.T) {
	path := writeConfig(t, "http://localhost")

	_, err := execute(t, "validate", "-f", path, "--env-file", "")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))

	var undefined *env.UndefinedVariableError
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "TOKEN", undefined.Name)
}

func TestRootCommand_SendsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "Bearer s3cr3t", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong": true}`))
	}))
	defer server.Close()

	path := writeConfig(t, server.URL)
	envFile := filepath.Join(filepath.Dir(path), ".env")
	logFile := filepath.Join(t.TempDir(), "ycurl.txt")

	out, err := execute(t, "ping", "-f", path, "--env-file", envFile, "--log-file", logFile, "-o", "json", "--no-color")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ping", got["name"])
	assert.Equal(t, true, got["passed"])

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "[response]")
}

func TestRootCommand_DisabledRequest(t *testing.T) {
	path := writeConfig(t, "http://localhost")
	envFile := filepath.Join(filepath.Dir(path), ".env")

	_, err := execute(t, "off", "-f", path, "--env-file", envFile, "--no-log")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrRequestDisabled))
	assert.Equal(t, ExitConfigError, exitCode(err))
}

func TestRootCommand_BadTimeout(t *testing.T) {
	path := writeConfig(t, "http://localhost")

	_, err := execute(t, "ping", "-f", path, "--timeout", "soon")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
	timeoutFlag = ""
}

func closedServerURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}

func TestRootCommand_NetworkErrorAsJSON(t *testing.T) {
	path := writeConfig(t, closedServerURL(t))
	envFile := filepath.Join(filepath.Dir(path), ".env")

	out, err := execute(t, "ping", "-f", path, "--env-file", envFile, "--no-log", "-o", "json")
	require.Error(t, err)
	assert.Equal(t, ExitNetworkError, exitCode(err))
	assert.True(t, errors.Is(err, yhttp.ErrNetwork))

	var exit *exitError
	require.True(t, errors.As(err, &exit))
	assert.True(t, exit.silent)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got), "stdout: %q", out)
	assert.Equal(t, "ping", got["name"])
	assert.Equal(t, false, got["passed"])
	assert.Contains(t, got["error"], "network error")
	assert.NotNil(t, got["request"])
	assert.Nil(t, got["response"])
}

func TestRootCommand_NetworkErrorOnConsole(t *testing.T) {
	path := writeConfig(t, closedServerURL(t))
	envFile := filepath.Join(filepath.Dir(path), ".env")

	out, err := execute(t, "ping", "-f", path, "--env-file", envFile, "--no-log", "--no-color")
	require.Error(t, err)
	assert.Equal(t, ExitNetworkError, exitCode(err))
	assert.Contains(t, out, "Error: network error")
}

func TestRootCommand_VerbosePrintsBanner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	path := writeConfig(t, server.URL)
	envFile := filepath.Join(filepath.Dir(path), ".env")

	out, err := execute(t, "ping", "-f", path, "--env-file", envFile, "--no-log", "--no-color", "-v")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ycurl "+version+"\n"+server.URL+"/ping\n"), "got %q", out)
	assert.Contains(t, out, "pong")
}

func TestReportError_FollowsOutputFormat(t *testing.T) {
	t.Cleanup(resetFlags)

	var buf bytes.Buffer
	outputFlag = "json"
	reportError(&buf, errors.New("boom"))
	assert.JSONEq(t, `{"error": "boom"}`, buf.String())

	buf.Reset()
	outputFlag = "console"
	noColorFlag = true
	color.NoColor = true
	reportError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestValidateCommand_PrintSchema(t *testing.T) {
	out, err := execute(t, "validate", "--print-schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, `"base_url"`)
}

func TestHistoryCommand_ColumnsAlignWithColor(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := history.OpenStore(context.Background(), dbPath)
	require.NoError(t, err)

	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, e := range []history.Entry{
		{Name: "ok", StatusCode: 200},
		{Name: "missing", StatusCode: 404},
		{Name: "down", Error: "network error"},
	} {
		e.CreatedAt = at.Add(time.Duration(i) * time.Second)
		e.Method = "GET"
		e.URL = "http://api.local/" + e.Name
		require.NoError(t, store.Record(context.Background(), &e))
	}
	require.NoError(t, store.Close())

	previous := color.NoColor
	t.Cleanup(func() { color.NoColor = previous })
	color.NoColor = false

	out, err := execute(t, "history", "--history-db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	ansi := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	lines := strings.Split(strings.TrimSpace(ansi.ReplaceAllString(out, "")), "\n")
	require.Len(t, lines, 3)

	col := -1
	for i, name := range []string{"down", "missing", "ok"} {
		idx := strings.Index(lines[i], " "+name+" ")
		require.NotEqual(t, -1, idx, "line %q", lines[i])
		if col == -1 {
			col = idx
		}
		assert.Equal(t, col, idx, "line %q", lines[i])
	}
}
