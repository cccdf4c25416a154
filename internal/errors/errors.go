package errors

import (
	"errors"
	"fmt"
)

// Exit codes for hydra-pin
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitExternalTool        = 2
	ExitMalformedResponse   = 3
	ExitAPIError            = 4
	ExitNoPackagesFound     = 5
	ExitNoSuccessfulBuild   = 6
	ExitMissingNixpkgsInput = 7
	ExitUnrecognizedSource  = 8
	ExitMissingRevision     = 9
	ExitFileIO              = 10
	ExitConfigError         = 11
)

// PinError is the base error type for hydra-pin
type PinError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PinError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PinError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PinError) ExitCode() int {
	return e.Code
}

// New creates a new PinError
func New(code int, message string) *PinError {
	return &PinError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PinError
func Wrap(code int, message string, cause error) *PinError {
	return &PinError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ExternalTool returns an error for a failed external program invocation
func ExternalTool(tool string, cause error) *PinError {
	return Wrap(ExitExternalTool, fmt.Sprintf("%s failed", tool), cause)
}

// MalformedResponse returns an error for output that could not be decoded
func MalformedResponse(source string, cause error) *PinError {
	return Wrap(ExitMalformedResponse, fmt.Sprintf("malformed response from %s", source), cause)
}

// APIError returns an error for a failed Hydra API request
func APIError(endpoint string, cause error) *PinError {
	return Wrap(ExitAPIError, fmt.Sprintf("hydra request %s failed", endpoint), cause)
}

// NoPackagesFound returns an error when hydra-check reported nothing
func NoPackagesFound(pkg string) *PinError {
	return New(ExitNoPackagesFound, fmt.Sprintf("hydra-check response for %s contained no packages", pkg))
}

// NoSuccessfulBuild returns an error when none of the reported jobs succeeded
func NoSuccessfulBuild(pkg string) *PinError {
	return New(ExitNoSuccessfulBuild, fmt.Sprintf("there are no succeeding builds of %s on hydra", pkg))
}

// MissingNixpkgsInput returns an error for an evaluation without a nixpkgs input
func MissingNixpkgsInput(evalID uint64) *PinError {
	return New(ExitMissingNixpkgsInput, fmt.Sprintf("evaluation %d does not use nixpkgs as an input", evalID))
}

// UnrecognizedSource returns an error for a nixpkgs input URI that is not a GitHub repository
func UnrecognizedSource(uri string) *PinError {
	if uri == "" {
		return New(ExitUnrecognizedSource, "nixpkgs input does not have a uri")
	}
	return New(ExitUnrecognizedSource, fmt.Sprintf("nixpkgs input uri %q did not match a github.com repository", uri))
}

// MissingRevision returns an error for a nixpkgs input without a revision
func MissingRevision() *PinError {
	return New(ExitMissingRevision, "nixpkgs input does not have a revision")
}

// FileIO returns an error for overlay file operations
func FileIO(op, path string, cause error) *PinError {
	return Wrap(ExitFileIO, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *PinError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *PinError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var pinErr *PinError
	if errors.As(err, &pinErr) {
		return pinErr.ExitCode()
	}
	return ExitGeneralError
}

// HasCode reports whether err's chain contains a PinError with the given code
func HasCode(err error, code int) bool {
	var pinErr *PinError
	return errors.As(err, &pinErr) && pinErr.Code == code
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
