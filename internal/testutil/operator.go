package testutil

import (
	"io"
	"strings"
)

// ScriptedOperator replays canned input lines and records everything printed.
type ScriptedOperator struct {
	lines  []string
	reads  int
	output strings.Builder
	clears int

	// BeforeRead, when set, runs before each read with the zero-based read index.
	BeforeRead func(index int)
}

// NewScriptedOperator returns an operator that answers reads with lines in order
// and then reports io.EOF.
func NewScriptedOperator(lines ...string) *ScriptedOperator {
	return &ScriptedOperator{lines: lines}
}

// ReadLine returns the next scripted line.
func (o *ScriptedOperator) ReadLine() (string, error) {
	if o.BeforeRead != nil {
		o.BeforeRead(o.reads)
	}
	if o.reads >= len(o.lines) {
		return "", io.EOF
	}
	line := o.lines[o.reads]
	o.reads++
	return line, nil
}

// Print records text.
func (o *ScriptedOperator) Print(text string) {
	o.output.WriteString(text)
}

// ClearScreen counts clear requests.
func (o *ScriptedOperator) ClearScreen() {
	o.clears++
}

// Output returns everything printed so far.
func (o *ScriptedOperator) Output() string {
	return o.output.String()
}

// Reads returns how many scripted lines were consumed.
func (o *ScriptedOperator) Reads() int {
	return o.reads
}

// Unread returns how many scripted lines were never consumed.
func (o *ScriptedOperator) Unread() int {
	return len(o.lines) - o.reads
}

// Clears returns how many times the screen was cleared.
func (o *ScriptedOperator) Clears() int {
	return o.clears
}
