package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the elements of a timer report.
type ColorScheme struct {
	Name  *color.Color
	Value *color.Color
	Count *color.Color
	Error *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Name:  color.New(color.FgCyan, color.Bold),
		Value: color.New(color.FgGreen),
		Count: color.New(color.FgYellow),
		Error: color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Name.DisableColor()
	scheme.Value.DisableColor()
	scheme.Count.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}

// IsTerminal reports whether f is an interactive terminal, for deciding
// whether colored output is appropriate.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
