package emitter

import (
	"errors"
	"fmt"
)

var (
	ErrOutputWrite = errors.New("emitter: output write failure")
	ErrAlreadyDone = errors.New("emitter: already done")
)

// WriteError reports a sink that rejected the greeting. A short write with a
// nil error from the sink carries io.ErrShortWrite.
type WriteError struct {
	Written int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("emitter: output write failure written=%d/%d: %v", e.Written, len(Message), e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrOutputWrite
}
