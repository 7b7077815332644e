package question

import (
	"errors"
	"fmt"
)

// ErrIO marks failures reading or writing the question bank file.
var ErrIO = errors.New("question bank io")

// MalformedBankError reports a bank record that could not be parsed.
type MalformedBankError struct {
	Line   int
	Reason string
}

// Error returns a readable message for the malformed record.
func (err *MalformedBankError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("malformed question bank: line %d: %s", err.Line, err.Reason)
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
