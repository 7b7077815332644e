package question

import (
	"os"
	"strings"

	"trivia/internal/textfile"
)

// Load reads and parses a question bank file into a Store bound to path.
func Load(path string, opts ...Option) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	pools, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return NewStore(path, pools, opts...), nil
}

// Parse splits bank data into unused and used pools.
//
// Blank lines are skipped. A leading AskedMarker routes the record to the used
// pool. The remainder is split on the first Separator, so answers may contain
// the separator but question text may not.
func Parse(data []byte) (Pools, error) {
	var pools Pools
	err := textfile.Lines(data, func(number int, line string) error {
		asked := strings.HasPrefix(line, AskedMarker)
		if asked {
			line = strings.TrimPrefix(line, AskedMarker)
		}
		text, answer, ok := strings.Cut(line, Separator)
		if !ok {
			return &MalformedBankError{Line: number, Reason: "missing \"|\" between question and answer"}
		}
		if text == "" {
			return &MalformedBankError{Line: number, Reason: "empty question text"}
		}
		q := Question{Text: text, Answer: answer}
		if asked {
			pools.Used = append(pools.Used, q)
		} else {
			pools.Unused = append(pools.Unused, q)
		}
		return nil
	})
	if err != nil {
		return Pools{}, err
	}
	return pools, nil
}

// Format serializes pools back into bank file form.
//
// Unused records come first, then used records with the asked marker. The two
// sections are always joined by a newline, so a bank with no unused questions
// starts with a blank line.
func Format(pools Pools) []byte {
	var builder strings.Builder
	for i, q := range pools.Unused {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(q.record(false))
	}
	builder.WriteByte('\n')
	for i, q := range pools.Used {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(q.record(true))
	}
	return []byte(builder.String())
}
