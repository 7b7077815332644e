package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"trivia/internal/config"
)

// uiModeDecision captures how to draw on the operator's terminal.
type uiModeDecision struct {
	color       bool
	clearScreen bool
	warning     string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines colour and screen clearing for stdout.
func resolveUIMode(mode string, clearScreen bool, stdout io.Writer) (uiModeDecision, error) {
	tty := isTerminal(stdout)
	decision := uiModeDecision{clearScreen: clearScreen && tty}
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.UIAuto
	}
	switch normalized {
	case config.UIAuto:
		decision.color = tty
	case config.UIColor:
		decision.color = true
		if !tty {
			decision.warning = "Colour output requested but stdout is not a TTY."
		}
	case config.UIPlain:
		decision.color = false
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|color|plain)", mode)
	}
	return decision, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
