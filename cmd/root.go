package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/hydra-pin/internal/app"
	"github.com/firefly-engineering/hydra-pin/internal/config"
	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool

	packageName string
	outputPath  string
	hydraCheck  string
	prefetchCmd string
	hydraURL    string
	configPath  string
)

// cfg is resolved by the root command before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hydra-pin",
	Short: "Pin packages to their last successful Hydra build",
	Long: `hydra-pin pins packages to the nixpkgs revision of a successful Hydra build.

For each pinned package the overlay file records:
  - the nixpkgs tarball of the evaluation that built it
  - the tarball's sha256 from nix-prefetch-url
  - an overlay binding importing the package from that tarball

The list of pins is kept in the comment header of the overlay file, so the
file can be checked in and edited with pin and unpin.`,
	Example: `  hydra-pin -p hello -o overlays/pins.nix pin
  hydra-pin -p hello -o overlays/pins.nix unpin
  hydra-pin -o overlays/pins.nix list`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		logging.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return loadConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&packageName, "package", "p", "", "Package to pin or unpin")
	flags.StringVarP(&outputPath, "output", "o", "", "Overlay file to update")
	flags.StringVarP(&hydraCheck, "hydra-check", "b", "", "hydra-check command (env "+config.EnvHydraCheck+")")
	flags.StringVar(&prefetchCmd, "prefetch", "", "nix-prefetch-url command (env "+config.EnvPrefetch+")")
	flags.StringVar(&hydraURL, "hydra-url", "", "Hydra base URL (env "+config.EnvHydraURL+")")
	flags.StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig merges flags, environment and config file into cfg.
// The default config file is optional; one named with --config is not.
func loadConfig() error {
	path, required := configPath, configPath != ""
	if !required {
		path = config.DefaultPath()
	}

	file, err := config.LoadFile(path, required)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}

	resolved, err := config.Resolve(file, config.Overrides{
		HydraURL:   hydraURL,
		HydraCheck: hydraCheck,
		Prefetch:   prefetchCmd,
	}, app.Default.Getenv)
	if err != nil {
		return errors.ConfigError("invalid configuration", err)
	}

	logging.Debug("configuration",
		"path", path,
		"hydra_url", resolved.HydraURL,
		"hydra_check", resolved.HydraCheck,
		"prefetch", resolved.Prefetch,
		"overlay_dir", resolved.OverlayDir,
		"timeout", resolved.Timeout)

	cfg = resolved
	return nil
}
