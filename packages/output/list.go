package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
)

// CompletionFlags are the flags offered by the legacy bash completion line.
var CompletionFlags = []string{"-f", "--file", "--show-headers", "--disable-redirect", "-v", "--verbose"}

// ListRequests writes one line per enabled request:
//
//	{"index": 0, "name": "login", "url": "/login"}
func ListRequests(w io.Writer, cfg *config.Config) error {
	lines := make([]string, 0, len(cfg.Requests))
	for _, e := range cfg.Enabled() {
		name := value.NewString(e.Request.Name).String()
		url := value.NewString(e.Request.URL).String()
		lines = append(lines, fmt.Sprintf(`{"index": %d, "name": %s, "url": %s}`, e.Index, name, url))
	}
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, Highlight(strings.Join(lines, "\n"), "json"))
	return err
}

// ShowConfig writes the resolved config as indented JSON, keeping document
// order for variables, params and bodies.
func ShowConfig(w io.Writer, cfg *config.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	tree, err := value.Parse(data)
	if err != nil {
		return err
	}
	pretty, err := value.MarshalIndent(tree, BodyIndent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, Highlight(string(pretty), "json"))
	return err
}

// LegacyCompletion writes a one-line bash "complete" command that offers
// the enabled request names and flags, plus *.json files. Disabled requests
// are left out since selecting one is an error.
func LegacyCompletion(w io.Writer, cfg *config.Config, program string) error {
	words := strings.Join(append(cfg.Names(), CompletionFlags...), " ")
	_, err := fmt.Fprintf(w, "complete -f -W '%s' -X '!@(%s|*.json)' %s\n",
		singleQuoted(words), singleQuoted(strings.ReplaceAll(words, " ", "|")), program)
	return err
}

// singleQuoted escapes s for use between single quotes in a shell word.
func singleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
