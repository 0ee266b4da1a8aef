package emitter

import (
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// Message is written verbatim, including the trailing line feed.
const Message = "Hello, World!\n"

// State is the lifecycle position of an Emitter.
type State int

const (
	StateNotStarted State = iota
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Emitter performs at most one write of Message. It is Done after the first
// attempt whether or not the write succeeded.
type Emitter struct {
	mu    sync.Mutex
	out   io.Writer
	state State
	err   error
}

// New returns an Emitter bound to out in StateNotStarted.
func New(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// State reports whether the write has been attempted.
func (e *Emitter) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the outcome of the completed attempt, nil before it.
func (e *Emitter) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Run makes the single write attempt. Later calls return ErrAlreadyDone
// without touching the writer.
func (e *Emitter) Run() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateDone {
		return ErrAlreadyDone
	}
	e.err = write(e.out)
	e.state = StateDone
	return e.err
}

// Run writes Message to out once.
func Run(out io.Writer) error {
	return New(out).Run()
}

func write(out io.Writer) error {
	if out == nil {
		return &WriteError{Err: io.ErrClosedPipe}
	}
	n, err := io.WriteString(out, Message)
	if err != nil {
		log.Debug().Msgf("emitter.write failed written=%d err=%v", n, err)
		return &WriteError{Written: n, Err: err}
	}
	if n != len(Message) {
		log.Debug().Msgf("emitter.write short written=%d", n)
		return &WriteError{Written: n, Err: io.ErrShortWrite}
	}
	return nil
}
