package render

import "github.com/charmbracelet/lipgloss"

// DirectoryColor is the ANSI colour used for directory names.
const DirectoryColor = lipgloss.Color("12")

func newDirectoryStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(DirectoryColor).
		Bold(true).
		TabWidth(lipgloss.NoTabConversion)
}
