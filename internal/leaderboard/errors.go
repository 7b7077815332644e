package leaderboard

import (
	"errors"
	"fmt"
)

// ErrIO marks failures reading or writing the leaderboard file.
var ErrIO = errors.New("leaderboard io")

// MalformedLeaderboardError reports a leaderboard line that could not be parsed.
type MalformedLeaderboardError struct {
	Line   int
	Reason string
}

// Error returns a readable message for the malformed line.
func (err *MalformedLeaderboardError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("malformed leaderboard: line %d: %s", err.Line, err.Reason)
}

// UnknownPlayerError reports a score change for a player that was never seeded.
type UnknownPlayerError struct {
	Name string
}

// Error returns a readable message for the missing player.
func (err *UnknownPlayerError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("unknown player %q", err.Name)
}

// ScoreOverflowError reports a score change that does not fit in 32 bits.
type ScoreOverflowError struct {
	Name  string
	Score int32
	Delta int32
}

// Error returns a readable message for the rejected change.
func (err *ScoreOverflowError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("score for %q overflows: %d%+d", err.Name, err.Score, err.Delta)
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
