package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/hydra-pin/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pinned packages",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := overlayStore()
	if err != nil {
		return err
	}

	o, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.PackageList(store.Path, o.Packages))
	return nil
}
