package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/hydra-pin/internal/logging"
)

var unpinCmd = &cobra.Command{
	Use:   "unpin",
	Short: "Remove every pin of a package",
	Long: `Removes all entries for the package from the overlay file and rewrites it.

Unpinning a package that is not pinned is not an error: the file is
rewritten with the same pins. A missing overlay file is treated as empty.`,
	Args: cobra.NoArgs,
	RunE: runUnpin,
}

func init() {
	rootCmd.AddCommand(unpinCmd)
}

func runUnpin(cmd *cobra.Command, args []string) error {
	name, err := requirePackage()
	if err != nil {
		return err
	}
	store, err := overlayStore()
	if err != nil {
		return err
	}

	o, err := store.Load()
	if err != nil {
		return err
	}

	removed := o.Remove(name)
	logging.Debug("unpin", "name", name, "removed", removed, "remaining", len(o.Packages))

	if err := store.Save(o); err != nil {
		return err
	}

	if removed == 0 {
		logWarning("%s is not pinned in %s", name, store.Path)
		return nil
	}
	logSuccess("Unpinned %s", name)
	return nil
}
