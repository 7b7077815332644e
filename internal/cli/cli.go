package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var usageLines = []string{
	"trivia <question bank> <leaderboard> <rounds> <points per round> <penalty if wrong>",
	"trivia <question bank> <leaderboard> <rounds> <points per round> <penalty if wrong> <player>",
	"trivia <question bank> <leaderboard> <rounds> <points per round> <penalty if wrong> <player> <player>...",
}

// Run is the process entry point. It returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	inv, err := parseInvocation(args)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n\n", err)
		printUsage(stderr)
		return ExitUsage
	}
	return runGame(inv, stdin, stdout, stderr)
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  With yourself:         "+usageLines[0])
	fmt.Fprintln(w, "  With 1 player:         "+usageLines[1])
	fmt.Fprintln(w, "  With multiple players: "+usageLines[2])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Question bank lines are \"question|answer\"; asked questions are prefixed with \"x_\".")
	fmt.Fprintln(w, "Leaderboard lines are \"name score\".")
}
