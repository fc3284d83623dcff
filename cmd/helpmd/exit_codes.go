package main

import (
	"errors"
	"os"

	helpmd "github.com/helpmd/go-helpmd"
	"github.com/helpmd/go-helpmd/internal/config"
	"github.com/helpmd/go-helpmd/internal/document"
	"github.com/helpmd/go-helpmd/internal/intercom"
	"github.com/helpmd/go-helpmd/internal/scan"
)

// Exit codes for the helpmd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitAPI     = 4 // Help-center API errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// API errors (exit 4)
	var apiErr *intercom.APIError
	if errors.As(err, &apiErr) ||
		errors.Is(err, intercom.ErrNotFound) ||
		errors.Is(err, intercom.ErrUnauthorized) {
		return ExitAPI
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, document.ErrEmptyBody) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoToken) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, config.ErrInvalidPerPage) ||
		errors.Is(err, scan.ErrNotDirectory) ||
		errors.Is(err, scan.ErrInvalidExtension) ||
		errors.Is(err, helpmd.ErrMissingToken) ||
		errors.Is(err, helpmd.ErrMissingWorkspace) ||
		errors.Is(err, helpmd.ErrMissingTitle) {
		return ExitUsage
	}

	return ExitGeneral
}
