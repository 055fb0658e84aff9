package output

import (
	"bytes"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/runner"
	"github.com/abdul-hamid-achik/ycurl/packages/http"
)

func init() {
	color.NoColor = true
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadBytes([]byte(`{
		"base_url": "http://api.local",
		"variables": {"z": "1", "a": "2"},
		"requests": [
			{"name": "login", "url": "/login?a=1&b=2", "method": "POST", "body": {"z": "number:${z}", "a": "${a}"}},
			{"name": "hidden", "url": "/h", "method": "GET", "disabled": true},
			{"name": "users", "url": "/users", "method": "GET"}
		]
	}`), config.FormatJSON)
	require.NoError(t, err)
	return cfg
}

func TestListRequests(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ListRequests(&buf, testConfig(t)))

	assert.Equal(t,
		`{"index": 0, "name": "login", "url": "/login?a=1&b=2"}`+"\n"+
			`{"index": 2, "name": "users", "url": "/users"}`+"\n",
		buf.String())
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ShowConfig(&buf, testConfig(t)))

	out := buf.String()
	assert.Contains(t, out, "\"variables\": {\n        \"z\": \"1\",\n        \"a\": \"2\"\n    }")
	assert.Contains(t, out, "\"body\": {\n                \"z\": 1,\n                \"a\": \"2\"\n            }")
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestLegacyCompletion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LegacyCompletion(&buf, testConfig(t), "ycurl"))

	words := "login users -f --file --show-headers --disable-redirect -v --verbose"
	assert.Equal(t,
		"complete -f -W '"+words+"' -X '!@(login|users|-f|--file|--show-headers|--disable-redirect|-v|--verbose|*.json)' ycurl\n",
		buf.String())
}

func TestLegacyCompletion_QuotesNames(t *testing.T) {
	cfg, err := config.LoadBytes([]byte(`{
		"base_url": "http://api.local",
		"requests": [
			{"name": "it's", "url": "/a", "method": "GET"},
			{"name": "old", "url": "/b", "method": "GET", "disabled": true}
		]
	}`), config.FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, LegacyCompletion(&buf, cfg, "ycurl"))

	words := `it'\''s -f --file --show-headers --disable-redirect -v --verbose`
	assert.Equal(t,
		"complete -f -W '"+words+"' -X '!@("+strings.ReplaceAll(words, " ", "|")+"|*.json)' ycurl\n",
		buf.String())
	assert.NotContains(t, buf.String(), "old")
}

func sampleResult(status int, body string) *runner.Result {
	req := http.NewRequest("GET", "http://api.local/users").AddParam("page", "2")
	return &runner.Result{
		ID:      "abc",
		Index:   2,
		Name:    "users",
		Request: req,
		Response: &http.Response{
			StatusCode: status,
			Status:     nethttp.StatusText(status),
			Headers:    nethttp.Header{"Content-Type": {"application/json"}, "X-Trace": {"t1"}},
			Body:       []byte(body),
			Duration:   15 * time.Millisecond,
		},
	}
}

func TestConsoleFormatter_FormatResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithShowHeaders(true))

	f.FormatResult(sampleResult(200, `{"b":1,"a":[true]}`))

	assert.Equal(t, "OK\n\n"+
		`{"content-type":"application/json","x-trace":"t1"}`+"\n\n"+
		"{\n    \"b\": 1,\n    \"a\": [\n        true\n    ]\n}\n",
		buf.String())
}

func TestConsoleFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	f.FormatResult(sampleResult(404, "<html>nope</html>"))

	assert.Equal(t, "http://api.local/users?page=2\n\nNot Found\n(15ms)\n\n<html>nope</html>\n", buf.String())
}

func TestConsoleFormatter_EmptyBodyAndError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatResult(sampleResult(204, "  "))
	assert.Equal(t, "No Content\n", buf.String())

	buf.Reset()
	f.FormatResult(&runner.Result{Error: errors.New("network error: refused")})
	assert.Equal(t, "Error: network error: refused\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))
	f.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	require.NoError(t, f.Encode(sampleResult(201, `{"id": 7}`)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "users", got["name"])
	assert.Equal(t, true, got["passed"])
	assert.Equal(t, "2024-01-02T03:04:05Z", got["time"])

	resp := got["response"].(map[string]any)
	assert.Equal(t, float64(201), resp["statusCode"])
	assert.Equal(t, map[string]any{"id": float64(7)}, resp["body"])

	req := got["request"].(map[string]any)
	assert.Equal(t, "http://api.local/users?page=2", req["url"])
	assert.NotContains(t, req, "body")
}

func TestHighlight_NoColorPassesThrough(t *testing.T) {
	assert.Equal(t, `{"a":1}`, Highlight(`{"a":1}`, "json"))
}
