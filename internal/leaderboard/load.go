package leaderboard

import (
	"os"
	"strconv"
	"strings"

	"trivia/internal/textfile"
)

// Load reads and parses the leaderboard file at path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	board, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// Parse builds a board bound to path from "name score" lines.
// A name listed twice keeps the last score.
func Parse(path string, data []byte) (*Board, error) {
	board := New(path)
	err := textfile.Lines(data, func(number int, line string) error {
		name, rawScore, ok := strings.Cut(line, " ")
		if !ok {
			return &MalformedLeaderboardError{Line: number, Reason: "missing score"}
		}
		if name == "" {
			return &MalformedLeaderboardError{Line: number, Reason: "missing player name"}
		}
		score, err := strconv.ParseInt(rawScore, 10, 32)
		if err != nil {
			return &MalformedLeaderboardError{Line: number, Reason: "score " + strconv.Quote(rawScore) + " is not an integer"}
		}
		board.scores[name] = int32(score)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}
