package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is attached to a terminal
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsInteractive reports whether prompts are allowed: stdout must be a
// terminal and PRSHIP_NO_INTERACTIVE must be unset.
func IsInteractive() bool {
	if os.Getenv("PRSHIP_NO_INTERACTIVE") != "" {
		return false
	}
	return IsTTY()
}
