// Package errors provides typed errors with exit codes for hydra-pin.
//
// # Error Types
//
// PinError is the base error type that wraps an error with an exit code:
//
//	type PinError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Each failure kind maps to its own exit code:
//
//	ExitSuccess              = 0  // Success
//	ExitGeneralError         = 1  // General/unknown errors, invalid input
//	ExitExternalTool         = 2  // hydra-check or nix-prefetch-url failed
//	ExitMalformedResponse    = 3  // JSON from a tool or the API did not decode
//	ExitAPIError             = 4  // Hydra API request failed
//	ExitNoPackagesFound      = 5  // hydra-check reported no packages
//	ExitNoSuccessfulBuild    = 6  // No job succeeded
//	ExitMissingNixpkgsInput  = 7  // Evaluation has no nixpkgs input
//	ExitUnrecognizedSource   = 8  // nixpkgs input URI is not a GitHub repository
//	ExitMissingRevision      = 9  // nixpkgs input has no revision
//	ExitFileIO               = 10 // Reading or writing the overlay file failed
//	ExitConfigError          = 11 // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ExternalTool("hydra-check", err)
//	errors.NoSuccessfulBuild("hello")
//	errors.FileIO("write", path, err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
