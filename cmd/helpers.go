package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/hydra-pin/internal/app"
	"github.com/firefly-engineering/hydra-pin/internal/config"
	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/overlay"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

// requirePackage returns the validated --package value.
func requirePackage() (string, error) {
	if packageName == "" {
		return "", errors.ValidationError("--package is required")
	}
	if err := config.ValidatePackageName(packageName); err != nil {
		return "", errors.ValidationError(err.Error())
	}
	return packageName, nil
}

// overlayStore returns the store for the --output file, resolved against overlay_dir.
func overlayStore() (*overlay.Store, error) {
	if outputPath == "" {
		return nil, errors.ValidationError("--output is required")
	}
	path, err := cfg.ResolveOutput(outputPath)
	if err != nil {
		return nil, errors.ConfigError("invalid output path", err)
	}
	return app.Default.Store(path), nil
}

// commandContext bounds external calls by the configured timeout, if any.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
