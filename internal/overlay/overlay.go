package overlay

import (
	"fmt"
	"strings"
)

// Marker is the first line of every overlay file this package writes.
const Marker = "#:hydra-pin v1"

const markerPrefix = "#:hydra-pin "

// Package is one pinned package.
type Package struct {
	Name   string
	URL    string
	SHA256 string
}

// Overlay is the ordered list of pinned packages. Names are not required to
// be unique.
type Overlay struct {
	Packages []Package
}

// Append adds pkg at the end without checking for an existing entry of the same name.
func (o *Overlay) Append(pkg Package) {
	o.Packages = append(o.Packages, pkg)
}

// Remove drops every package named name and returns how many were removed.
func (o *Overlay) Remove(name string) int {
	kept := o.Packages[:0]
	for _, pkg := range o.Packages {
		if pkg.Name != name {
			kept = append(kept, pkg)
		}
	}
	removed := len(o.Packages) - len(kept)
	o.Packages = kept
	return removed
}

// Parse reads the package list from the comment block at the top of data.
func Parse(data []byte) (*Overlay, error) {
	o := &Overlay{}
	lines := strings.Split(string(data), "\n")

	if len(lines) > 0 && strings.HasPrefix(lines[0], markerPrefix) {
		if strings.TrimRight(lines[0], "\r ") != Marker {
			return nil, fmt.Errorf("unsupported overlay format %q (want %q)", strings.TrimSpace(lines[0]), Marker)
		}
		lines = lines[1:]
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "#") {
			break
		}
		rest, ok := strings.CutPrefix(line, "# ")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 3 {
			continue
		}
		o.Packages = append(o.Packages, Package{Name: fields[0], URL: fields[1], SHA256: fields[2]})
	}

	return o, nil
}
