package tsz

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by NewDecoder and Decoder.Next. Callers should test with
// errors.Is, since StreamError wraps bitio.ErrEOF rather than reusing it
// directly.
var (
	// ErrInvalidInitialTimestamp means the 64-bit header could not be read.
	ErrInvalidInitialTimestamp = errors.New("tsz: invalid initial timestamp")

	// ErrInvalidEndOfStream means a 36-bit code beginning with 1 was read
	// where the end marker was expected, but it did not match. This
	// indicates stream corruption.
	ErrInvalidEndOfStream = errors.New("tsz: invalid end-of-stream marker")

	// ErrEndOfStream is the terminal, non-error control condition signaling
	// that every point has been decoded. Callers iterate against it.
	ErrEndOfStream = errors.New("tsz: end of stream")
)

// StreamError wraps a bit-layer error (always bitio.ErrEOF) encountered while
// decoding. It unwraps to that underlying error via errors.Is/As.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("tsz: stream error: %v", e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func wrapStreamErr(err error) error {
	if err == nil {
		return nil
	}

	return &StreamError{Err: err}
}
