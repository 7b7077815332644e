package question

import (
	"math/rand/v2"
	"slices"

	"trivia/internal/textfile"
)

// Store owns the question pools of one bank file.
type Store struct {
	path  string
	pools Pools
	rng   *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used by DrawRandom.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewStore wraps pools for the bank file at path.
func NewStore(path string, pools Pools, opts ...Option) *Store {
	store := &Store{
		path:  path,
		pools: pools,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Path returns the bank file path.
func (s *Store) Path() string {
	return s.path
}

// Remaining returns the number of unused questions.
func (s *Store) Remaining() int {
	return len(s.pools.Unused)
}

// Asked returns the number of used questions.
func (s *Store) Asked() int {
	return len(s.pools.Used)
}

// Pools returns a copy of the current pools.
func (s *Store) Pools() Pools {
	return Pools{
		Unused: slices.Clone(s.pools.Unused),
		Used:   slices.Clone(s.pools.Used),
	}
}

// DrawRandom removes and returns a uniformly chosen unused question.
// It panics when the unused pool is empty; callers check Remaining first.
func (s *Store) DrawRandom() Question {
	if len(s.pools.Unused) == 0 {
		panic("question: draw from empty unused pool")
	}
	index := s.rng.IntN(len(s.pools.Unused))
	q := s.pools.Unused[index]
	s.pools.Unused = slices.Delete(s.pools.Unused, index, index+1)
	return q
}

// MarkUsed appends a drawn question to the used pool.
func (s *Store) MarkUsed(q Question) {
	s.pools.Used = append(s.pools.Used, q)
}

// ReturnUnused puts a drawn question back at the end of the unused pool.
func (s *Store) ReturnUnused(q Question) {
	s.pools.Unused = append(s.pools.Unused, q)
}

// Persist rewrites the bank file from the in-memory pools.
// On failure the in-memory pools stay authoritative.
func (s *Store) Persist() error {
	if err := textfile.Overwrite(s.path, Format(s.pools), false); err != nil {
		return ioError("write", s.path, err)
	}
	return nil
}
