package game

import (
	"errors"
	"fmt"

	"trivia/internal/config"
	"trivia/internal/leaderboard"
	"trivia/internal/question"
)

// DefaultPlayer receives every round when no roster is given.
const DefaultPlayer = "You"

// SkipPolicy decides where a skipped question goes.
type SkipPolicy int

const (
	// SkipDiscard drops the skipped question from both pools for the rest of the
	// session, so it is missing from the bank file once the session persists.
	SkipDiscard SkipPolicy = iota
	// SkipReturn puts the skipped question back into the unused pool.
	SkipReturn
)

// ParseSkipPolicy maps a config value onto a SkipPolicy.
func ParseSkipPolicy(value string) (SkipPolicy, error) {
	switch value {
	case "", config.SkipDiscard:
		return SkipDiscard, nil
	case config.SkipReturn:
		return SkipReturn, nil
	default:
		return SkipDiscard, fmt.Errorf("invalid skip policy %q (expected %s|%s)", value, config.SkipDiscard, config.SkipReturn)
	}
}

// Options are the per-run game parameters.
type Options struct {
	Roster         []string
	Rounds         int
	PointsPerRound int32
	WrongPenalty   int32
	SkipPolicy     SkipPolicy
}

// Session is the mutable state of one game run.
type Session struct {
	Questions      *question.Store
	Board          *leaderboard.Board
	Roster         []string
	Rounds         int
	PointsPerRound int32
	WrongPenalty   int32
	SkipPolicy     SkipPolicy

	// Skipped holds questions discarded by SkipDiscard.
	Skipped []question.Question
}

// NewSession validates opts and seeds every player the session can attribute
// rounds to, including DefaultPlayer for solo play.
func NewSession(questions *question.Store, board *leaderboard.Board, opts Options) (*Session, error) {
	if questions == nil {
		return nil, errors.New("question store is required")
	}
	if board == nil {
		return nil, errors.New("leaderboard is required")
	}
	if opts.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", opts.Rounds)
	}
	session := &Session{
		Questions:      questions,
		Board:          board,
		Roster:         append([]string(nil), opts.Roster...),
		Rounds:         opts.Rounds,
		PointsPerRound: opts.PointsPerRound,
		WrongPenalty:   opts.WrongPenalty,
		SkipPolicy:     opts.SkipPolicy,
	}
	for _, name := range session.Players() {
		board.EnsurePlayer(name)
	}
	return session, nil
}

// Players returns the names rounds can be attributed to.
func (s *Session) Players() []string {
	if len(s.Roster) == 0 {
		return []string{DefaultPlayer}
	}
	return s.Roster
}

// Delta returns the score change for an outcome.
func (s *Session) Delta(outcome Outcome) int32 {
	if outcome == Correct {
		return s.PointsPerRound
	}
	return s.WrongPenalty
}

// Commit persists the question bank and then the leaderboard.
func (s *Session) Commit() error {
	if err := s.Questions.Persist(); err != nil {
		return fmt.Errorf("persist question bank: %w", err)
	}
	if err := s.Board.Persist(); err != nil {
		return fmt.Errorf("persist leaderboard: %w", err)
	}
	return nil
}
