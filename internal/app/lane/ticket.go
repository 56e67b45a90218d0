package lane

import "sync"

// Outcome is the lifecycle state of an enqueued command as seen by its
// submitter.
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeRunning   Outcome = "running"
	OutcomeComplete  Outcome = "complete"
	OutcomeAborted   Outcome = "aborted"
	OutcomeTimedOut  Outcome = "timed_out"
	OutcomeFailed    Outcome = "failed"
	OutcomeDiscarded Outcome = "discarded"
)

// Final reports whether the command has left its lane.
func (o Outcome) Final() bool {
	switch o {
	case OutcomeComplete, OutcomeAborted, OutcomeTimedOut, OutcomeFailed, OutcomeDiscarded:
		return true
	default:
		return false
	}
}

// Ticket tracks one enqueued command. It is safe for concurrent use.
type Ticket struct {
	title string

	mu      sync.Mutex
	outcome Outcome
	err     error
	done    chan struct{}
}

func newTicket(title string) *Ticket {
	return &Ticket{title: title, outcome: OutcomePending, done: make(chan struct{})}
}

// Title returns the command title.
func (t *Ticket) Title() string { return t.title }

// Outcome returns the current lifecycle state.
func (t *Ticket) Outcome() Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outcome
}

// Err returns the error the command ended with, if any.
func (t *Ticket) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Done reports whether the command has left its lane.
func (t *Ticket) Done() bool {
	return t.Outcome().Final()
}

// Wait returns a channel closed once the command has left its lane.
func (t *Ticket) Wait() <-chan struct{} {
	return t.done
}

func (t *Ticket) running() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.outcome == OutcomePending {
		t.outcome = OutcomeRunning
	}
}

// resolve records the final outcome. Only the first call has any effect.
func (t *Ticket) resolve(o Outcome, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.outcome.Final() {
		return
	}
	t.outcome = o
	t.err = err
	close(t.done)
}
