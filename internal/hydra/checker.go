package hydra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/system"
)

// Checker runs hydra-check.
type Checker struct {
	// Argv is the command prefix, e.g. ["hydra-check"] or
	// ["nix", "run", "nixpkgs#hydra-check", "--"].
	Argv     []string
	Executor system.CommandExecutor
}

// NewChecker creates a Checker using the given command prefix.
func NewChecker(argv []string, exec system.CommandExecutor) *Checker {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Checker{Argv: argv, Executor: exec}
}

// Query reports the known builds of pkg.
func (c *Checker) Query(ctx context.Context, pkg string) (Report, error) {
	if len(c.Argv) == 0 {
		return nil, errors.ExternalTool("hydra-check", fmt.Errorf("no command configured"))
	}

	argv := append(append([]string{}, c.Argv...), pkg, "--json")
	logging.Exec("hydra-check", argv)

	out, err := c.Executor.Execute(ctx, argv[0], argv[1:]...)
	if err != nil {
		return nil, errors.ExternalTool("hydra-check", err)
	}

	// The tool ran; output that does not decode is a malformed response, not a tool failure.
	if !json.Valid(out) {
		return nil, errors.MalformedResponse("hydra-check", fmt.Errorf("output is not JSON: %q", truncate(string(out), 80)))
	}

	report, err := ParseReport(out)
	if err != nil {
		return nil, errors.MalformedResponse("hydra-check", err)
	}

	logging.Debug("hydra-check report", "package", pkg, "keys", len(report), "successful", len(report.Successful()))
	return report, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
