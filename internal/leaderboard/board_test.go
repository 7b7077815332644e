package leaderboard

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func boardWith(t *testing.T, scores map[string]int32) *Board {
	t.Helper()
	board := New(filepath.Join(t.TempDir(), "leaderboard.txt"))
	for name, score := range scores {
		board.EnsurePlayer(name)
		if err := board.AddScore(name, score); err != nil {
			t.Fatalf("add score: %v", err)
		}
	}
	return board
}

// TestFormatOrdersByScoreThenName covers ties broken by descending name.
func TestFormatOrdersByScoreThenName(t *testing.T) {
	board := boardWith(t, map[string]int32{"Alice": 5, "Bob": 5, "Carol": 10})
	want := "Carol 10\nBob 5\nAlice 5"
	if got := string(board.Format()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	board := boardWith(t, map[string]int32{"Ann": -3, "Bo": 0, "Cy": 42})
	parsed, err := Parse(board.Path(), board.Format())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(parsed.Standings(), board.Standings()) {
		t.Fatalf("expected %+v, got %+v", board.Standings(), parsed.Standings())
	}
}

func TestEnsurePlayerKeepsExistingScore(t *testing.T) {
	board := boardWith(t, map[string]int32{"Ann": 7})
	board.EnsurePlayer("Ann")
	board.EnsurePlayer("You")
	if score, _ := board.Score("Ann"); score != 7 {
		t.Fatalf("expected Ann to keep 7, got %d", score)
	}
	if score, ok := board.Score("You"); !ok || score != 0 {
		t.Fatalf("expected You seeded at 0, got %d (present=%v)", score, ok)
	}
}

func TestAddScoreUnknownPlayer(t *testing.T) {
	board := New("leaderboard.txt")
	err := board.AddScore("ghost", 1)
	var unknown *UnknownPlayerError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPlayerError, got %v", err)
	}
	if unknown.Name != "ghost" {
		t.Fatalf("expected name ghost, got %q", unknown.Name)
	}
}

func TestAddScoreAcceptsNegativeDelta(t *testing.T) {
	board := boardWith(t, map[string]int32{"Ann": 2})
	if err := board.AddScore("Ann", -5); err != nil {
		t.Fatalf("add score: %v", err)
	}
	if score, _ := board.Score("Ann"); score != -3 {
		t.Fatalf("expected -3, got %d", score)
	}
}

func TestAddScoreRejectsOverflow(t *testing.T) {
	cases := map[string]struct {
		start int32
		delta int32
	}{
		"above max": {start: math.MaxInt32, delta: 1},
		"below min": {start: math.MinInt32, delta: -1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			board := boardWith(t, map[string]int32{"Ann": tc.start})
			err := board.AddScore("Ann", tc.delta)
			var overflow *ScoreOverflowError
			if !errors.As(err, &overflow) {
				t.Fatalf("expected ScoreOverflowError, got %v", err)
			}
			if score, _ := board.Score("Ann"); score != tc.start {
				t.Fatalf("expected score to stay %d, got %d", tc.start, score)
			}
		})
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	cases := map[string]string{
		"missing score":   "Ann 3\nBo",
		"non-integer":     "Ann three",
		"missing name":    " 4",
		"empty score":     "Ann ",
		"score too large": "Ann 99999999999",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("leaderboard.txt", []byte(body))
			var malformed *MalformedLeaderboardError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedLeaderboardError, got %v", err)
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	board, err := Parse("leaderboard.txt", []byte("\nAnn 3\n\nBo -2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if board.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", board.Len())
	}
	if score, _ := board.Score("Bo"); score != -2 {
		t.Fatalf("expected Bo -2, got %d", score)
	}
}

func TestLoadAndPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	if err := os.WriteFile(path, []byte("Ann 1\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	board, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	board.EnsurePlayer("Bo")
	if err := board.AddScore("Bo", 4); err != nil {
		t.Fatalf("add score: %v", err)
	}
	if err := board.Persist(); err != nil {
		t.Fatalf("persist: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "Bo 4\nAnn 1" {
		t.Fatalf("expected %q, got %q", "Bo 4\nAnn 1", string(data))
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
