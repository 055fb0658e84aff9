package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
)

// DefaultFilename is the document read when no file is given.
const DefaultFilename = "./ycurl.json"

// Format is the syntax of a configuration document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the document format from the file extension. Anything
// that is not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type loadOptions struct {
	base *env.Table
}

type LoadOption func(*loadOptions)

// WithBaseVariables makes base visible to the document's global variable
// definitions, as if it were declared before them.
func WithBaseVariables(base *env.Table) LoadOption {
	return func(o *loadOptions) {
		o.base = base
	}
}

// Load reads, validates and resolves the document at path.
func Load(path string, opts ...LoadOption) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadBytes(data, FormatForPath(path), opts...)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// LoadBytes is Load for an in-memory document.
func LoadBytes(data []byte, format Format, opts ...LoadOption) (*Config, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return Resolve(doc, o.base)
}

// Parse strips comment lines, validates the document structure and decodes
// it. No placeholder is substituted.
func Parse(data []byte, format Format) (*Document, error) {
	text := StripComments(data)

	if format == FormatYAML {
		converted, err := yamlToJSON(text)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		text = converted
	}

	if err := validateSchema(text); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Requests == nil {
		doc.Requests = []Request{}
	}
	return &doc, nil
}

// StripComments drops every line whose first non-whitespace character is '#'.
// A '#' anywhere else on a line is kept.
func StripComments(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}
