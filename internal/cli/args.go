package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// invocation holds the parsed positional arguments.
type invocation struct {
	BankPath        string
	LeaderboardPath string
	Rounds          int
	PointsPerRound  int32
	WrongPenalty    int32
	Players         []string
}

const requiredArgs = 5

func parseInvocation(args []string) (invocation, error) {
	if len(args) < requiredArgs {
		return invocation{}, fmt.Errorf("expected at least %d arguments, got %d", requiredArgs, len(args))
	}
	inv := invocation{
		BankPath:        args[0],
		LeaderboardPath: args[1],
	}
	if strings.TrimSpace(inv.BankPath) == "" {
		return invocation{}, fmt.Errorf("question bank path is required")
	}
	if strings.TrimSpace(inv.LeaderboardPath) == "" {
		return invocation{}, fmt.Errorf("leaderboard path is required")
	}

	rounds, err := strconv.ParseUint(args[2], 10, 31)
	if err != nil {
		return invocation{}, fmt.Errorf("parse rounds %q: %w", args[2], err)
	}
	if rounds == 0 {
		return invocation{}, fmt.Errorf("rounds must be positive")
	}
	inv.Rounds = int(rounds)

	if inv.PointsPerRound, err = parseDelta("points per round", args[3]); err != nil {
		return invocation{}, err
	}
	if inv.WrongPenalty, err = parseDelta("penalty", args[4]); err != nil {
		return invocation{}, err
	}

	players, err := parsePlayers(args[requiredArgs:])
	if err != nil {
		return invocation{}, err
	}
	inv.Players = players
	return inv, nil
}

func parseDelta(label, raw string) (int32, error) {
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", label, raw, err)
	}
	return int32(value), nil
}

// parsePlayers rejects names the leaderboard format cannot store. Repeats
// stay in the roster and share one leaderboard entry.
func parsePlayers(names []string) ([]string, error) {
	players := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("player name must not be empty")
		}
		if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("player name %q must not contain whitespace", name)
		}
		players = append(players, name)
	}
	return players, nil
}
