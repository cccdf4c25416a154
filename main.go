package main

import (
	"os"

	"github.com/firefly-engineering/hydra-pin/cmd"
	"github.com/firefly-engineering/hydra-pin/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
