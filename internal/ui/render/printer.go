// Package render writes directory listings to an output stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/lsdir/internal/config"
	"github.com/Cyclone1070/lsdir/internal/tool/directory"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes one line per directory entry.
type Printer struct {
	out      io.Writer
	format   string
	color    bool
	dirStyle lipgloss.Style
}

// NewPrinter creates a Printer for the given format (config.FormatPlain or
// config.FormatJSON). Colour only affects plain output.
func NewPrinter(out io.Writer, format string, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:      out,
		format:   format,
		color:    color,
		dirStyle: newDirectoryStyle(r),
	}
}

// Print writes entries in the order given.
func (p *Printer) Print(entries []directory.DirectoryEntry) error {
	if p.format == config.FormatJSON {
		return p.printJSON(entries)
	}
	return p.printPlain(entries)
}

func (p *Printer) printPlain(entries []directory.DirectoryEntry) error {
	for _, e := range entries {
		name := e.Name
		if p.color && e.IsDir {
			name = p.dirStyle.Render(name)
		}
		if _, err := fmt.Fprintln(p.out, name); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}

func (p *Printer) printJSON(entries []directory.DirectoryEntry) error {
	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}

// ShouldColor resolves a config colour mode against the output stream.
// "auto" colours only terminals and honours NO_COLOR.
func ShouldColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
