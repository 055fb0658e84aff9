package history

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yhttp "github.com/abdul-hamid-achik/ycurl/packages/http"
)

func TestLog_WritesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ycurl.txt")

	log, err := OpenLog(path)
	require.NoError(t, err)

	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.Local)
	log.Begin(at, "inv-1")

	req := yhttp.NewRequest("POST", "http://api.local/users").
		SetHeader("Content-Type", "application/json").
		AddParam("q", "1").
		SetBody([]byte(`{"a": 1}`))
	log.Request(req)

	log.Response(&yhttp.Response{
		StatusCode: 201,
		Status:     "201 Created",
		Headers:    http.Header{"X-Id": {"7"}},
		Body:       []byte(`{"id": 7}`),
		Duration:   12 * time.Millisecond,
	})
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "\n-------------------- 2024/03/09(Sat)14:05:06 --------------------\nid: inv-1\n")
	assert.Contains(t, out, "[request]\nmethod: POST\nurl: http://api.local/users?q=1\nheaders: {\"Content-Type\": \"application/json\"}\nbody: {\"a\": 1}\n")
	assert.Contains(t, out, "[response]\nstatus: 201 Created\nduration: 12ms\nheaders: {\"x-id\": \"7\"}\nbody: {\"id\": 7}\n")
}

func TestLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ycurl.txt")

	for i := 0; i < 2; i++ {
		log, err := OpenLog(path)
		require.NoError(t, err)
		log.Begin(time.Now(), "x")
		log.Request(yhttp.NewRequest("GET", "http://h/"))
		log.Failure(errors.New("boom"))
		require.NoError(t, log.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, countOf(string(data), "[request]"))
	assert.Equal(t, 2, countOf(string(data), "error: boom"))
	assert.Contains(t, string(data), "body: None")
}

func TestDefaultLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "ycurl.txt"), path)
}

func countOf(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
