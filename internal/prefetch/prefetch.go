// Package prefetch computes content hashes of unpacked tarballs with
// nix-prefetch-url.
package prefetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/system"
)

// Prefetcher runs "<argv...> --unpack <url>" and reads the hash from stdout.
type Prefetcher struct {
	Argv     []string
	Executor system.CommandExecutor
}

// New creates a Prefetcher using the given command prefix.
func New(argv []string, exec system.CommandExecutor) *Prefetcher {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Prefetcher{Argv: argv, Executor: exec}
}

// Hash downloads and unpacks url, returning the hash printed by the tool.
// A non-zero exit or an empty hash is an error; the hash is not otherwise
// validated.
func (p *Prefetcher) Hash(ctx context.Context, url string) (string, error) {
	if len(p.Argv) == 0 {
		return "", errors.ExternalTool("nix-prefetch-url", fmt.Errorf("no command configured"))
	}

	argv := append(append([]string{}, p.Argv...), "--unpack", url)
	logging.Exec("nix-prefetch-url", argv)

	out, err := p.Executor.Execute(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", errors.ExternalTool("nix-prefetch-url", err)
	}

	hash := strings.TrimSpace(string(out))
	if hash == "" {
		return "", errors.ExternalTool("nix-prefetch-url", fmt.Errorf("no hash printed for %s", url))
	}
	if strings.ContainsAny(hash, " \t\n") {
		return "", errors.ExternalTool("nix-prefetch-url", fmt.Errorf("unexpected output for %s: %q", url, hash))
	}

	return hash, nil
}
