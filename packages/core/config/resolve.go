package config

import (
	"fmt"

	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
	"github.com/abdul-hamid-achik/ycurl/packages/core/typecast"
)

// Resolve turns a parsed document into a Config: it compiles the global
// variables (seeded with base, usually nil), expands the default headers,
// resolves every request in document order and finally rejects duplicate
// names. The first error aborts the whole resolution.
func Resolve(doc *Document, base *env.Table) (*Config, error) {
	global, err := env.Compile(doc.Variables, base)
	if err != nil {
		return nil, fmt.Errorf("global variables: %w", err)
	}

	headers, err := env.Expand(doc.DefaultHeaders, global)
	if err != nil {
		return nil, fmt.Errorf("default headers: %w", err)
	}

	requests := make([]Request, 0, len(doc.Requests))
	for i, raw := range doc.Requests {
		req, err := resolveRequest(raw, global)
		if err != nil {
			return nil, fmt.Errorf("request #%d (%s): %w", i, raw.Name, err)
		}
		requests = append(requests, req)
	}

	if err := validateNames(requests); err != nil {
		return nil, err
	}

	return &Config{
		Description:    doc.Description,
		Options:        doc.Options,
		BaseURL:        doc.BaseURL,
		Variables:      global,
		DefaultHeaders: headers,
		Requests:       requests,
	}, nil
}

func resolveRequest(raw Request, global *env.Table) (Request, error) {
	scope := global
	if raw.Variables != nil {
		local, err := env.Compile(raw.Variables, global)
		if err != nil {
			return Request{}, err
		}
		scope = local
	}

	req, err := env.Expand(raw, scope)
	if err != nil {
		return Request{}, err
	}

	// Report the local variables with the values the request was expanded
	// with, not a re-expansion of their raw text against the final scope.
	if raw.Variables != nil {
		locals := env.NewTable()
		for _, name := range raw.Variables.Keys() {
			v, _ := scope.Get(name)
			locals.Set(name, v)
		}
		req.Variables = locals
	}

	body, err := typecast.CastMap(req.Body, "body")
	if err != nil {
		return Request{}, err
	}
	req.Body = body

	return req, nil
}

func validateNames(requests []Request) error {
	seen := make(map[string]bool, len(requests))
	for _, r := range requests {
		if seen[r.Name] {
			return &DuplicateNameError{Name: r.Name}
		}
		seen[r.Name] = true
	}
	return nil
}
