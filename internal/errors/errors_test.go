package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPinError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *PinError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestPinError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      *PinError
		wantCode int
		wantMsg  string
	}{
		{"external tool", ExternalTool("hydra-check", cause), ExitExternalTool, "hydra-check failed: boom"},
		{"malformed", MalformedResponse("hydra-check", cause), ExitMalformedResponse, "malformed response from hydra-check: boom"},
		{"api", APIError("/build/2", cause), ExitAPIError, "hydra request /build/2 failed: boom"},
		{"no packages", NoPackagesFound("hello"), ExitNoPackagesFound, "hydra-check response for hello contained no packages"},
		{"no success", NoSuccessfulBuild("hello"), ExitNoSuccessfulBuild, "there are no succeeding builds of hello on hydra"},
		{"missing nixpkgs", MissingNixpkgsInput(42), ExitMissingNixpkgsInput, "evaluation 42 does not use nixpkgs as an input"},
		{"no uri", UnrecognizedSource(""), ExitUnrecognizedSource, "nixpkgs input does not have a uri"},
		{"bad uri", UnrecognizedSource("https://example.com/x.tar.gz"), ExitUnrecognizedSource, `nixpkgs input uri "https://example.com/x.tar.gz" did not match a github.com repository`},
		{"missing revision", MissingRevision(), ExitMissingRevision, "nixpkgs input does not have a revision"},
		{"file io", FileIO("write", "/tmp/o.nix", cause), ExitFileIO, "failed to write /tmp/o.nix: boom"},
		{"config", ConfigError("bad config", cause), ExitConfigError, "bad config: boom"},
		{"validation", ValidationError("--package is required"), ExitGeneralError, "--package is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "PinError",
			err:      NoSuccessfulBuild("hello"),
			wantCode: ExitNoSuccessfulBuild,
		},
		{
			name:     "wrapped PinError",
			err:      fmt.Errorf("outer: %w", MissingRevision()),
			wantCode: ExitMissingRevision,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("resolve: %w", UnrecognizedSource("x"))

	if !HasCode(err, ExitUnrecognizedSource) {
		t.Error("HasCode should find the wrapped code")
	}
	if HasCode(err, ExitMissingRevision) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(fmt.Errorf("plain"), ExitGeneralError) {
		t.Error("HasCode should be false without a PinError")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !Is(outer, root) {
		t.Error("Is should find root cause")
	}

	var pinErr *PinError
	if !errors.As(outer, &pinErr) {
		t.Fatal("errors.As should find PinError")
	}

	if pinErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", pinErr.Code, ExitConfigError)
	}
}
