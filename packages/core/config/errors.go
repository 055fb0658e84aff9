package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("index out of bounds")
	ErrRequestNotFound = errors.New("no entry found for the name")
	ErrRequestDisabled = errors.New("disabled request")
)

// ParseError reports a document that is not well-formed JSON/YAML or does not
// have the expected structure.
type ParseError struct {
	Path     string
	Problems []string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	switch {
	case len(e.Problems) > 0:
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateNameError reports two or more requests sharing a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("two or more entries have the same name: %s", e.Name)
}
