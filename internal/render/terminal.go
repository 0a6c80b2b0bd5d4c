package render

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether colour output should be used on f.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
