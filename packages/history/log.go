package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	yhttp "github.com/abdul-hamid-achik/ycurl/packages/http"
)

// HeaderLayout formats the per-invocation separator line.
const HeaderLayout = "2006/01/02(Mon)15:04:05"

// DefaultLogPath returns $HOME/logs/ycurl.txt.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating history log: %w", err)
	}
	return filepath.Join(home, "logs", "ycurl.txt"), nil
}

// Log appends invocation records to a text file. It is opened once per
// invocation and must be closed on every exit path.
type Log struct {
	file   *os.File
	logger *logrus.Logger
}

// OpenLog opens path for appending, creating it and its directory if needed.
func OpenLog(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening history log: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&sectionFormatter{order: []string{"id", "method", "url", "status", "duration", "headers", "body"}})

	return &Log{file: file, logger: logger}, nil
}

// Begin writes the timestamp separator for a new invocation.
func (l *Log) Begin(at time.Time, invocationID string) {
	header := fmt.Sprintf("\n-------------------- %s --------------------", at.Format(HeaderLayout))
	l.logger.WithField("id", invocationID).Info(header)
}

func (l *Log) Request(r *yhttp.Request) {
	body := "None"
	if r.Body != nil {
		body = string(r.Body)
	}
	l.logger.WithFields(logrus.Fields{
		"method":  r.Method,
		"url":     r.BuildURL(),
		"headers": formatHeaders(r.Headers),
		"body":    body,
	}).Info("[request]")
}

func (l *Log) Response(resp *yhttp.Response) {
	l.logger.WithFields(logrus.Fields{
		"status":   resp.Status,
		"duration": fmt.Sprintf("%dms", resp.DurationMs()),
		"headers":  formatHeaders(resp.HeaderMap()),
		"body":     resp.BodyString(),
	}).Info("\n[response]")
}

// Failure records an error that ended the invocation early.
func (l *Log) Failure(err error) {
	l.logger.WithError(err).Error("\n[error]")
}

func (l *Log) Close() error {
	return l.file.Close()
}

func formatHeaders(h map[string]string) string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q: %q", k, h[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// sectionFormatter writes the message on its own line followed by one
// "key: value" line per field. Fields named in order come first, the rest
// alphabetically.
type sectionFormatter struct {
	order []string
}

func (f *sectionFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	seen := make(map[string]bool, len(entry.Data))
	for _, k := range f.order {
		if v, ok := entry.Data[k]; ok {
			fmt.Fprintf(&b, "%s: %v\n", k, v)
			seen[k] = true
		}
	}

	rest := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		fmt.Fprintf(&b, "%s: %v\n", k, entry.Data[k])
	}

	return b.Bytes(), nil
}
