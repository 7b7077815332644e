package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia/internal/config"
	"trivia/internal/game"
	"trivia/internal/leaderboard"
	"trivia/internal/logger"
	"trivia/internal/question"
)

// loadSettings allows tests to replace config discovery.
var loadSettings = func() (config.Settings, error) {
	return config.Load(config.LoadOptions{Environ: os.Environ()})
}

// runGame loads both stores, plays the session, and prints the standings.
func runGame(inv invocation, stdin io.Reader, stdout, stderr io.Writer) int {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return ExitError
	}
	ui, err := resolveUIMode(settings.UI, settings.ClearScreen, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return ExitError
	}
	if ui.warning != "" {
		fmt.Fprintln(stderr, ui.warning)
	}
	policy, err := game.ParseSkipPolicy(settings.SkipPolicy)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return ExitError
	}

	log, err := logger.New(settings)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return ExitError
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("session", uuid.NewString()))

	board, err := leaderboard.Load(inv.LeaderboardPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load leaderboard: %v\n", err)
		return ExitError
	}
	questions, err := question.Load(inv.BankPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load question bank: %v\n", err)
		return ExitError
	}
	log.Info("stores loaded",
		zap.String("bank", inv.BankPath),
		zap.Int("unused", questions.Remaining()),
		zap.Int("used", questions.Asked()),
		zap.String("leaderboard", inv.LeaderboardPath),
		zap.Int("players", board.Len()),
	)

	session, err := game.NewSession(questions, board, game.Options{
		Roster:         inv.Players,
		Rounds:         inv.Rounds,
		PointsPerRound: inv.PointsPerRound,
		WrongPenalty:   inv.WrongPenalty,
		SkipPolicy:     policy,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start game: %v\n", err)
		return ExitError
	}
	if err := board.Persist(); err != nil {
		fmt.Fprintf(stderr, "Failed to save leaderboard: %v\n", err)
		return ExitError
	}

	engine := game.NewEngine(session, newConsole(stdin, stdout, ui.clearScreen), log)
	result, err := engine.Play(context.Background())
	fmt.Fprintln(stdout)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrInputClosed):
		fmt.Fprintln(stderr, "Input closed; progress saved.")
	default:
		fmt.Fprintf(stderr, "Game failed: %v\n", err)
		return ExitError
	}

	fmt.Fprintln(stdout, renderSummary(result, ui.color))
	fmt.Fprintln(stdout, renderStandings(board.Standings(), ui.color))
	return ExitOK
}
