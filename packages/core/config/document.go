package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
)

// Method is an HTTP method accepted in a request definition.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
	MethodHead   Method = "HEAD"
)

// Methods lists the accepted methods in documentation order.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead}

func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m *Method) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("method must be a string: %w", err)
	}
	if !Method(s).Valid() {
		names := make([]string, len(Methods))
		for i, known := range Methods {
			names[i] = string(known)
		}
		return fmt.Errorf("unknown method %q (expected one of %s)", s, strings.Join(names, ", "))
	}
	*m = Method(s)
	return nil
}

// Document is a configuration file as written, before any placeholder is
// substituted. A resolved Config has the same shape.
type Document struct {
	Description    string            `json:"description,omitempty"`
	Options        *Options          `json:"cli_options,omitempty"`
	BaseURL        string            `json:"base_url"`
	Variables      *env.Table        `json:"variables,omitempty"`
	DefaultHeaders map[string]string `json:"default_headers,omitempty"`
	Requests       []Request         `json:"requests"`
}

// Request is one named request template.
type Request struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Disabled    bool              `json:"disabled,omitempty"`
	Variables   *env.Table        `json:"variables,omitempty"`
	URL         string            `json:"url"`
	Method      Method            `json:"method"`
	Headers     map[string]string `json:"headers,omitempty"`
	Params      *value.Map        `json:"params,omitempty"`
	Body        *value.Map        `json:"body,omitempty"`
}

// IsAbsoluteURL reports whether u already carries a scheme and must not be
// joined to the base URL.
func IsAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// ResolvedURL joins baseURL and the request URL unless the latter is absolute.
// Joining is plain concatenation, so "/v1/users" and "http://host" give
// "http://host/v1/users".
func (r *Request) ResolvedURL(baseURL string) string {
	if IsAbsoluteURL(r.URL) {
		return r.URL
	}
	return baseURL + r.URL
}

// MergedHeaders returns defaults overlaid with the request's own headers.
// Header names compare case-insensitively, so a request "content-type"
// replaces a default "Content-Type".
func (r *Request) MergedHeaders(defaults map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(r.Headers))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range r.Headers {
		for existing := range merged {
			if existing != k && strings.EqualFold(existing, k) {
				delete(merged, existing)
			}
		}
		merged[k] = v
	}
	return merged
}
