package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/hydra-pin/internal/overlay"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PackageList renders the pinned packages of an overlay file for the list command.
func PackageList(path string, pkgs []overlay.Package) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Pinned packages in %s\n", path))
	sb.WriteString(strings.Repeat("─", 60) + "\n")

	if len(pkgs) == 0 {
		sb.WriteString("No packages pinned.\n")
		sb.WriteString("Pin one with: hydra-pin -p <package> -o " + path + " pin\n")
		return sb.String()
	}

	for i, pkg := range pkgs {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, nameStyle.Render(pkg.Name)))
		sb.WriteString(fmt.Sprintf("   %s\n", pkg.URL))
		sb.WriteString(fmt.Sprintf("   %s\n", dimStyle.Render("sha256 "+pkg.SHA256)))
	}

	return sb.String()
}
