package testutil

import (
	"embed"
	"testing"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// Values served by the hello fixtures.
const (
	HelloRevision = "5a1f2a9c0c4e1c2f7b0b9a6c8e3d4f5a6b7c8d9e"
	HelloURL      = "https://github.com/NixOS/nixpkgs/archive/" + HelloRevision + ".tar.gz"
	HelloSHA256   = "0ssi1wpaf7plaswqqjwigppsg5fyh99vdlb9kzl7c9lng89ndq1i"

	// Build 5 is the second successful hello build.
	Hello5Revision = "0d7c3f0a8b1e2d3c4b5a69788796a5b4c3d2e1f0"
	Hello5URL      = "https://github.com/NixOS/nixpkgs/archive/" + Hello5Revision + ".tar.gz"
)

// LoadFixture loads a JSON fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustFixture loads a fixture or fails the test.
func MustFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return data
}
