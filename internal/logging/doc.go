// Package logging provides logging utilities for hydra-pin.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("running hydra-check", "argv", argv)
//	logging.Exec("hydra-check", argv)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Resolving %s on hydra...", name)
//	logging.UserSuccess("Pinned %s", name)
//	logging.UserWarning("%s was not pinned", name)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout (os.Stdout unless redirected)
//   - UserWarning: Stderr (os.Stderr unless redirected)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
package logging
