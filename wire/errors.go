package wire

import "errors"

// ErrShortBuffer is returned when a decode function is given fewer bytes
// than its record size requires, or a byte count that is not an exact
// multiple of the record size.
var ErrShortBuffer = errors.New("wire: buffer too short or misaligned for record size")
