package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/hydra-pin/internal/app"
	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/tui"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Pin a package to its last successful Hydra build",
	Long: `Resolves the package with hydra-check, looks up the nixpkgs revision of the
evaluation that built it, prefetches the nixpkgs tarball and appends the
pin to the overlay file.

The first successful build in hydra-check's output is used. With --pick,
choose among all successful builds interactively.

Pinning an already pinned package adds a second entry; unpin removes both.`,
	Args: cobra.NoArgs,
	RunE: runPin,
}

var (
	pinPick   bool
	pinDryRun bool
)

func init() {
	pinCmd.Flags().BoolVar(&pinPick, "pick", false, "Choose the build interactively")
	pinCmd.Flags().BoolVar(&pinDryRun, "dry-run", false, "Print the updated overlay instead of writing it")
	rootCmd.AddCommand(pinCmd)
}

func runPin(cmd *cobra.Command, args []string) error {
	name, err := requirePackage()
	if err != nil {
		return err
	}
	store, err := overlayStore()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	r := app.Default.Resolver(cfg)
	if pinPick {
		r.Select = tui.BuildPicker(name)
	}

	logInfo("Resolving %s on %s...", name, cfg.HydraURL)

	pkg, err := r.Resolve(ctx, name)
	if err != nil {
		return err
	}
	logging.Debug("resolved package", "name", pkg.Name, "url", pkg.URL, "sha256", pkg.SHA256)

	o, err := store.Load()
	if err != nil {
		return err
	}
	o.Append(pkg)

	if pinDryRun {
		text, err := o.Render()
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "failed to render overlay", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if err := store.Save(o); err != nil {
		return err
	}

	logSuccess("Pinned %s to %s", name, pkg.URL)
	return nil
}
