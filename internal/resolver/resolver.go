// Package resolver turns a package name into a pinned overlay entry: the
// nixpkgs tarball of the evaluation that produced a successful Hydra build,
// plus its content hash.
package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/hydra"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/overlay"
)

// NixpkgsInput is the evaluation input whose revision gets pinned.
const NixpkgsInput = "nixpkgs"

// githubRepoRegex matches "https://github.com/<owner>/<repo>.git" with
// non-greedy owner and repo captures.
var githubRepoRegex = regexp.MustCompile(`https://github\.com/(.*?)/(.*?)\.git`)

// JobQuerier reports the builds of a package.
type JobQuerier interface {
	Query(ctx context.Context, pkg string) (hydra.Report, error)
}

// BuildAPI fetches build and evaluation metadata.
type BuildAPI interface {
	GetBuild(ctx context.Context, id hydra.BuildID) (*hydra.Build, error)
	GetEval(ctx context.Context, id uint64) (*hydra.Eval, error)
}

// Hasher computes the content hash of an unpacked tarball.
type Hasher interface {
	Hash(ctx context.Context, url string) (string, error)
}

// Selector chooses one of the successful builds. candidates is never empty.
type Selector func(candidates []hydra.Candidate) (hydra.Candidate, error)

// FirstSuccessful selects the first successful build in hydra-check's output order.
func FirstSuccessful(candidates []hydra.Candidate) (hydra.Candidate, error) {
	return candidates[0], nil
}

// Resolver resolves package names to pinned packages.
type Resolver struct {
	Jobs   JobQuerier
	API    BuildAPI
	Hasher Hasher
	Select Selector
}

// New creates a Resolver that pins the first successful build.
func New(jobs JobQuerier, api BuildAPI, hasher Hasher) *Resolver {
	return &Resolver{
		Jobs:   jobs,
		API:    api,
		Hasher: hasher,
		Select: FirstSuccessful,
	}
}

// Resolve pins name to the nixpkgs revision of one of its successful builds.
func (r *Resolver) Resolve(ctx context.Context, name string) (overlay.Package, error) {
	report, err := r.Jobs.Query(ctx, name)
	if err != nil {
		return overlay.Package{}, err
	}
	if len(report) == 0 {
		return overlay.Package{}, errors.NoPackagesFound(name)
	}

	candidates := report.Successful()
	if len(candidates) == 0 {
		return overlay.Package{}, errors.NoSuccessfulBuild(name)
	}

	sel := r.Select
	if sel == nil {
		sel = FirstSuccessful
	}
	chosen, err := sel(candidates)
	if err != nil {
		return overlay.Package{}, err
	}
	logging.Debug("selected build", "package", name, "key", chosen.Key, "build", chosen.Job.BuildID)

	url, err := r.TarballURL(ctx, chosen.Job.BuildID)
	if err != nil {
		return overlay.Package{}, err
	}

	hash, err := r.Hasher.Hash(ctx, url)
	if err != nil {
		return overlay.Package{}, err
	}

	return overlay.Package{Name: name, URL: url, SHA256: hash}, nil
}

// TarballURL returns the nixpkgs tarball URL for the evaluation that a build belongs to.
func (r *Resolver) TarballURL(ctx context.Context, buildID hydra.BuildID) (string, error) {
	build, err := r.API.GetBuild(ctx, buildID)
	if err != nil {
		return "", err
	}
	evalID, err := build.FirstEval()
	if err != nil {
		return "", errors.MalformedResponse(fmt.Sprintf("hydra /build/%s", buildID), err)
	}

	eval, err := r.API.GetEval(ctx, evalID)
	if err != nil {
		return "", err
	}
	input, ok := eval.Input(NixpkgsInput)
	if !ok {
		return "", errors.MissingNixpkgsInput(evalID)
	}
	logging.Debug("nixpkgs input", "eval", evalID, "uri", input.URI, "type", input.Type, "revision", input.Revision)

	return SourceTarballURL(input)
}

// SourceTarballURL returns the GitHub archive URL of a git input's revision.
func SourceTarballURL(input hydra.Input) (string, error) {
	m := githubRepoRegex.FindStringSubmatch(input.URI)
	if m == nil || hasSpace(m[1]) || hasSpace(m[2]) {
		return "", errors.UnrecognizedSource(input.URI)
	}
	if input.Revision == "" {
		return "", errors.MissingRevision()
	}
	// The URL is stored in a whitespace-separated prologue line.
	if hasSpace(input.Revision) {
		return "", errors.MalformedResponse("hydra nixpkgs input", fmt.Errorf("revision %q contains whitespace", input.Revision))
	}
	return fmt.Sprintf("https://github.com/%s/%s/archive/%s.tar.gz", m[1], m[2], input.Revision), nil
}

func hasSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}
