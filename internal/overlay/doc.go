// Package overlay reads and writes the pinned-package overlay file.
//
// The file is a Nix expression. Its leading comment block is the only state
// that is read back; the expression below it is regenerated on every save:
//
//	#:hydra-pin v1
//	# hello https://github.com/NixOS/nixpkgs/archive/abc123.tar.gz 0v8s...ljz
//
//	{pkgs}: {
//	    overlay = (final: prev: {
//	hello = (import (fetchTarball {
//	            url = "https://github.com/NixOS/nixpkgs/archive/abc123.tar.gz";
//	            sha256 = "0v8s...ljz";
//	        }) { system = pkgs.system; }).hello;
//	        ...
//	    });
//	}
//
// The first line is a format marker. Files without it (written by older
// versions) are still read: every leading line starting with "#" is part of
// the comment block. Package lines are "# <name> <url> <sha256>"; lines with
// fewer than three fields are skipped.
package overlay
