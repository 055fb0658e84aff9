package cmd

import (
	"errors"
	"io/fs"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/env"
	"github.com/abdul-hamid-achik/ycurl/packages/core/typecast"
	"github.com/abdul-hamid-achik/ycurl/packages/http"
)

// Exit codes for the ycurl CLI
const (
	// ExitSuccess indicates the request was sent and answered with 2xx
	ExitSuccess = 0

	// ExitRequestFailure indicates the server answered with a non-2xx status
	ExitRequestFailure = 1

	// ExitParseError indicates a malformed or structurally invalid document
	ExitParseError = 2

	// ExitConfigError indicates a resolution or selection error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries an explicit exit code. A silent exitError has already
// been reported to the user.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &exitError{code: ExitUsageError, err: err}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}

	var (
		undefined *env.UndefinedVariableError
		castErr   *typecast.Error
		dup       *config.DuplicateNameError
	)
	switch {
	case errors.As(err, &undefined),
		errors.As(err, &castErr),
		errors.As(err, &dup),
		errors.Is(err, config.ErrIndexOutOfRange),
		errors.Is(err, config.ErrRequestNotFound),
		errors.Is(err, config.ErrRequestDisabled),
		errors.Is(err, http.ErrInvalidURL),
		errors.Is(err, fs.ErrNotExist):
		return ExitConfigError
	case errors.Is(err, http.ErrNetwork):
		return ExitNetworkError
	}

	return ExitRequestFailure
}
