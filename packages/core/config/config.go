package config

import (
	"fmt"
	"strconv"

	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
)

// Config is a fully resolved document: every placeholder substituted, every
// typed literal in request bodies cast, request names unique. It is built once
// by Load and must be treated as read-only afterwards.
type Config struct {
	Description    string            `json:"description,omitempty"`
	Options        *Options          `json:"cli_options,omitempty"`
	BaseURL        string            `json:"base_url"`
	Variables      *env.Table        `json:"variables,omitempty"`
	DefaultHeaders map[string]string `json:"default_headers,omitempty"`
	Requests       []Request         `json:"requests"`
}

// Entry pairs a request with its position in the document.
type Entry struct {
	Index   int
	Request *Request
}

// Select finds a request by index or by name. A key that parses as a
// non-negative integer is always treated as an index. Disabled requests are
// found but rejected with ErrRequestDisabled.
func (c *Config) Select(key string) (Entry, error) {
	if i, err := strconv.ParseUint(key, 10, 0); err == nil {
		if i >= uint64(len(c.Requests)) {
			return Entry{}, fmt.Errorf("%w: %d (have %d requests)", ErrIndexOutOfRange, i, len(c.Requests))
		}
		return c.checkEnabled(int(i))
	}

	for i := range c.Requests {
		if c.Requests[i].Name == key {
			return c.checkEnabled(i)
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrRequestNotFound, key)
}

func (c *Config) checkEnabled(i int) (Entry, error) {
	r := &c.Requests[i]
	if r.Disabled {
		return Entry{}, fmt.Errorf("%w: %s", ErrRequestDisabled, r.Name)
	}
	return Entry{Index: i, Request: r}, nil
}

// Enabled returns the requests that are not disabled, in document order.
func (c *Config) Enabled() []Entry {
	var entries []Entry
	for i := range c.Requests {
		if c.Requests[i].Disabled {
			continue
		}
		entries = append(entries, Entry{Index: i, Request: &c.Requests[i]})
	}
	return entries
}

// Names returns the names of all enabled requests.
func (c *Config) Names() []string {
	entries := c.Enabled()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Request.Name
	}
	return names
}

// URLFor returns the absolute URL of r.
func (c *Config) URLFor(r *Request) string {
	return r.ResolvedURL(c.BaseURL)
}

// HeadersFor returns the document default headers overlaid with r's headers.
func (c *Config) HeadersFor(r *Request) map[string]string {
	return r.MergedHeaders(c.DefaultHeaders)
}
