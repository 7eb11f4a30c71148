package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxActors bounds WithActors; the search is exponential in actors.
const MaxActors = 8

// Sentinel errors for search configuration.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilTable indicates a nil *distance.Table.
	ErrNilTable = errors.New("search: distance table is nil")

	// ErrBadActors indicates an actor count outside 1..MaxActors.
	ErrBadActors = errors.New("search: actor count out of range")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("search: time limit must be non-negative")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("search: workers must be non-negative")
)

// Step is one commitment in a schedule: Actor finishes opening Valve at
// minute Time.
type Step struct {
	Actor int
	Time  int
	Valve string
}

// Schedule is an ordered list of commitments. Only the relative order of
// steps that share an actor is meaningful.
type Schedule []Step

// String renders one step per line.
func (s Schedule) String() string {
	var b strings.Builder
	for i, st := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "minute %2d: actor %d opens %s", st.Time, st.Actor, st.Valve)
	}

	return b.String()
}

// Result is the outcome of MaximumRelease.
type Result struct {
	// Release is the maximum total pressure released within the budget.
	Release int

	// Schedule is the first leaf schedule found that achieves Release
	// (empty when nothing can be opened).
	Schedule Schedule

	// Leaves counts scored leaf schedules.
	Leaves int

	// Explored counts processed Explore actions.
	Explored int

	// Pruned counts nodes cut by the upper bound.
	Pruned int
}

// Options configures MaximumRelease.
type Options struct {
	Actors     int
	TimeLimit  int
	Workers    int
	UpperBound bool
	Logger     logrus.FieldLogger
	OnLeaf     func(s Schedule, release int)

	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns one actor, a 30-minute budget, a sequential run,
// no bound, and a logger that discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Actors:    1,
		TimeLimit: 30,
		Logger:    l,
	}
}

// WithActors sets the number of independent actors.
func WithActors(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxActors {
			o.err = fmt.Errorf("%w: %d (want 1..%d)", ErrBadActors, n, MaxActors)
			return
		}
		o.Actors = n
	}
}

// WithTimeLimit sets the shared budget in minutes.
func WithTimeLimit(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadTimeLimit, t)
			return
		}
		o.TimeLimit = t
	}
}

// WithWorkers splits the first moves across n goroutines.
// 0 and 1 both mean a sequential run.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithUpperBound enables branch-and-bound pruning.
func WithUpperBound() Option {
	return func(o *Options) {
		o.UpperBound = true
	}
}

// WithLogger routes run and incumbent messages to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLeaf registers fn to observe every scored leaf. With more than one
// worker fn is called from several goroutines and must synchronize itself.
func WithOnLeaf(fn func(s Schedule, release int)) Option {
	return func(o *Options) {
		o.OnLeaf = fn
	}
}
