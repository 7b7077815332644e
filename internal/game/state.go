package game

// State is a step of the round state machine.
type State int

const (
	AwaitingStart State = iota
	Presenting
	AwaitingOutcome
	AwaitingAttribution
	Scored
	Done
	Exhausted
)

var stateNames = map[State]string{
	AwaitingStart:       "awaiting_start",
	Presenting:          "presenting",
	AwaitingOutcome:     "awaiting_outcome",
	AwaitingAttribution: "awaiting_attribution",
	Scored:              "scored",
	Done:                "done",
	Exhausted:           "exhausted",
}

// String returns the snake_case state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transitions happen from s.
func (s State) Terminal() bool {
	return s == Done || s == Exhausted
}

// Outcome is the operator's judgment of an answer.
type Outcome int

const (
	Correct Outcome = iota
	Incorrect
	Skip
)

// Result summarizes a finished session.
type Result struct {
	Scored    int
	Correct   int
	Incorrect int
	Skipped   int
	Exhausted bool
}
