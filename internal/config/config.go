package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"
)

const (
	DefaultHydraURL   = "https://hydra.nixos.org"
	DefaultHydraCheck = "hydra-check"
	DefaultPrefetch   = "nix-prefetch-url"

	EnvHydraURL   = "HYDRA_URL"
	EnvHydraCheck = "HYDRA_CHECK"
	EnvPrefetch   = "NIX_PREFETCH_URL"
)

// packageNameRegex rejects whitespace, which would break the one-line-per-package prologue.
var packageNameRegex = regexp.MustCompile(`^\S+$`)

// ValidatePackageName checks that a package name can be pinned.
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("invalid package name %q: must not contain whitespace", name)
	}
	return nil
}

// File is the on-disk TOML representation.
type File struct {
	HydraURL   string `toml:"hydra_url"`
	HydraCheck string `toml:"hydra_check"`
	Prefetch   string `toml:"prefetch"`
	OverlayDir string `toml:"overlay_dir"`
	Timeout    string `toml:"timeout"`
}

// Overrides holds values given on the command line. Empty fields are unset.
type Overrides struct {
	HydraURL   string
	HydraCheck string
	Prefetch   string
}

// Config is the resolved configuration.
type Config struct {
	HydraURL   string
	HydraCheck []string // argv prefix for the build-status tool
	Prefetch   []string // argv prefix for the tarball prefetcher
	OverlayDir string
	Timeout    time.Duration // zero means no timeout
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hydra-pin", "config.toml")
}

// LoadFile reads a TOML configuration file. A missing file yields an empty
// File unless required is set.
func LoadFile(path string, required bool) (*File, error) {
	var f File
	if path == "" {
		return &f, nil
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Resolve merges flag overrides, environment and file into a Config.
func Resolve(f *File, flags Overrides, getenv func(string) string) (*Config, error) {
	if f == nil {
		f = &File{}
	}
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{
		HydraURL:   strings.TrimRight(first(flags.HydraURL, getenv(EnvHydraURL), f.HydraURL, DefaultHydraURL), "/"),
		OverlayDir: f.OverlayDir,
	}

	if u, err := url.Parse(cfg.HydraURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid hydra url %q", cfg.HydraURL)
	}

	var err error
	cfg.HydraCheck, err = splitCommand("hydra_check", first(flags.HydraCheck, getenv(EnvHydraCheck), f.HydraCheck, DefaultHydraCheck))
	if err != nil {
		return nil, err
	}
	cfg.Prefetch, err = splitCommand("prefetch", first(flags.Prefetch, getenv(EnvPrefetch), f.Prefetch, DefaultPrefetch))
	if err != nil {
		return nil, err
	}

	if f.Timeout != "" {
		cfg.Timeout, err = time.ParseDuration(f.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
		}
		if cfg.Timeout < 0 {
			return nil, fmt.Errorf("timeout cannot be negative (got %s)", f.Timeout)
		}
	}

	if cfg.OverlayDir != "" && !filepath.IsAbs(cfg.OverlayDir) {
		return nil, fmt.Errorf("overlay_dir must be an absolute path (got %q)", cfg.OverlayDir)
	}

	return cfg, nil
}

// ResolveOutput returns the path of the overlay file for the given --output value.
func (c *Config) ResolveOutput(output string) (string, error) {
	if output == "" {
		return "", fmt.Errorf("output path is required")
	}
	if filepath.IsAbs(output) || c.OverlayDir == "" {
		return output, nil
	}
	path, err := securejoin.SecureJoin(c.OverlayDir, output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s under %s: %w", output, c.OverlayDir, err)
	}
	return path, nil
}

func splitCommand(key, s string) ([]string, error) {
	argv, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s command %q: %w", key, s, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("%s command cannot be empty", key)
	}
	return argv, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
