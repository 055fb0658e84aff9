package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// HeaderMap flattens the headers, joining repeated values with ", ".
func (r *Response) HeaderMap() map[string]string {
	out := make(map[string]string, len(r.Headers))
	for k, vs := range r.Headers {
		out[strings.ToLower(k)] = strings.Join(vs, ", ")
	}
	return out
}

// HeaderNames returns the lower-cased header names in sorted order.
func (r *Response) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, strings.ToLower(k))
	}
	sort.Strings(names)
	return names
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsJSON reports whether the body parses as JSON, whatever the content type says.
func (r *Response) IsJSON() bool {
	return len(strings.TrimSpace(string(r.Body))) > 0 && json.Valid(r.Body)
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
