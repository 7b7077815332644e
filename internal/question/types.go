package question

// Question is a single trivia question and its expected answer.
type Question struct {
	Text   string
	Answer string
}

// Pools holds the two disjoint question collections of a bank.
//
// Every question sits in exactly one pool. Used is append-only in draw order.
type Pools struct {
	Unused []Question
	Used   []Question
}

// Len returns the number of questions across both pools.
func (p Pools) Len() int {
	return len(p.Unused) + len(p.Used)
}

const (
	// AskedMarker prefixes bank records that were already asked.
	AskedMarker = "x_"
	// Separator splits a bank record into question and answer.
	Separator = "|"
)

// record renders a question as a single bank line.
func (q Question) record(asked bool) string {
	prefix := ""
	if asked {
		prefix = AskedMarker
	}
	return prefix + q.Text + Separator + q.Answer
}
