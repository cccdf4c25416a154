// Package config provides configuration loading for hydra-pin.
//
// # Configuration File
//
// Settings are read from an optional TOML file, by default
// $XDG_CONFIG_HOME/hydra-pin/config.toml:
//
//	hydra_url   = "https://hydra.nixos.org"
//	hydra_check = "nix run nixpkgs#hydra-check --"
//	prefetch    = "nix-prefetch-url"
//	overlay_dir = "/etc/nixos/overlays"
//	timeout     = "2m"
//
// # Precedence
//
// Each setting is taken from the first source that provides it:
//
//  1. command-line flag
//  2. environment (HYDRA_URL, HYDRA_CHECK, NIX_PREFETCH_URL)
//  3. configuration file
//  4. built-in default
//
// Tool settings are shell-like command strings; they are split into argv
// with go-shellquote so wrappers with their own arguments can be used.
//
// # Output Paths
//
// ResolveOutput joins relative --output paths under overlay_dir using
// filepath-securejoin, so a relative path can never escape that directory.
package config
