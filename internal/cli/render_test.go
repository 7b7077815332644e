package cli

import (
	"strings"
	"testing"

	"trivia/internal/game"
	"trivia/internal/leaderboard"
)

func TestRenderStandingsPlain(t *testing.T) {
	players := []leaderboard.Player{{Name: "Carol", Score: 10}, {Name: "Bob", Score: 5}}
	got := renderStandings(players, false)
	want := "Leaderboard:\n  1. Carol 10\n  2. Bob 5"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderStandingsTable(t *testing.T) {
	players := []leaderboard.Player{{Name: "Carol", Score: 10}, {Name: "Bob", Score: -5}}
	got := renderStandings(players, true)
	for _, want := range []string{"Leaderboard", "Player", "Score", "Carol", "Bob", "-5"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in table, got %q", want, got)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	got := renderSummary(game.Result{Scored: 3, Correct: 2, Incorrect: 1, Skipped: 1}, false)
	if got != "Played 3 round(s): 2 correct, 1 wrong, 1 skipped" {
		t.Fatalf("unexpected summary %q", got)
	}
}
