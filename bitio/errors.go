package bitio

import "errors"

// ErrEOF is returned when a read operation requests more bits than remain in
// the underlying buffer. It is the only error kind the bit layer produces.
var ErrEOF = errors.New("bitio: end of stream")
