package leaderboard

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"trivia/internal/textfile"
)

// Player is a leaderboard entry.
type Player struct {
	Name  string
	Score int32
}

// Board maps player names to cumulative scores for one leaderboard file.
type Board struct {
	path   string
	scores map[string]int32
}

// New returns an empty board bound to path.
func New(path string) *Board {
	return &Board{path: path, scores: map[string]int32{}}
}

// Path returns the leaderboard file path.
func (b *Board) Path() string {
	return b.path
}

// Len returns the number of players on the board.
func (b *Board) Len() int {
	return len(b.scores)
}

// EnsurePlayer adds name with a zero score unless it is already present.
func (b *Board) EnsurePlayer(name string) {
	if _, ok := b.scores[name]; ok {
		return
	}
	b.scores[name] = 0
}

// Has reports whether name is on the board.
func (b *Board) Has(name string) bool {
	_, ok := b.scores[name]
	return ok
}

// Score returns the current score for name.
func (b *Board) Score(name string) (int32, bool) {
	score, ok := b.scores[name]
	return score, ok
}

// AddScore applies delta to an existing player's score. A result outside the
// int32 range is rejected and the score is left unchanged.
func (b *Board) AddScore(name string, delta int32) error {
	score, ok := b.scores[name]
	if !ok {
		return &UnknownPlayerError{Name: name}
	}
	sum := int64(score) + int64(delta)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return &ScoreOverflowError{Name: name, Score: score, Delta: delta}
	}
	b.scores[name] = int32(sum)
	return nil
}

// Standings returns players ordered by descending score, then descending name.
func (b *Board) Standings() []Player {
	players := make([]Player, 0, len(b.scores))
	for name, score := range b.scores {
		players = append(players, Player{Name: name, Score: score})
	}
	slices.SortFunc(players, func(a, b Player) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Name, a.Name)
	})
	return players
}

// Format serializes the standings as "name score" lines without a trailing newline.
func (b *Board) Format() []byte {
	standings := b.Standings()
	lines := make([]string, 0, len(standings))
	for _, player := range standings {
		lines = append(lines, player.Name+" "+strconv.FormatInt(int64(player.Score), 10))
	}
	return []byte(strings.Join(lines, "\n"))
}

// Persist rewrites the leaderboard file, creating it when missing.
func (b *Board) Persist() error {
	if err := textfile.Overwrite(b.path, b.Format(), true); err != nil {
		return ioError("write", b.path, err)
	}
	return nil
}
