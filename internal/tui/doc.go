// Package tui provides terminal user interface components for hydra-pin.
//
// This package uses the Bubble Tea framework for the build picker shown by
// "hydra-pin pin --pick", and lipgloss styles for the "list" command.
//
// # Build Picker
//
// The picker lists every successful build hydra-check reported and lets the
// user choose which one to pin instead of the first:
//
//	r.Select = tui.BuildPicker(name)
//
// # Picker Features
//
//   - Keyboard navigation (j/k or arrows) and filtering (/)
//   - Enter pins the highlighted build, q or esc aborts
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
