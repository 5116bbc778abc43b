// Package formats provides parsers for mesh interchange formats.
package formats

import (
	"errors"
	"fmt"
)

// Parse errors shared by the OBJ and STL parsers.
var (
	ErrBadRecord             = errors.New("malformed record")
	ErrNonNumeric            = errors.New("non-numeric field")
	ErrIndexOutOfRange       = errors.New("index out of range")
	ErrTruncatedSTL          = errors.New("truncated STL data")
	ErrTriangleCountMismatch = errors.New("declared triangle count does not match data length")
)

// ParseError describes a fatal parse failure. Line is 1-based and set for
// text input; Offset is a byte offset and set for binary input.
type ParseError struct {
	Line   int
	Offset int64
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("offset %d", e.Offset)
	if e.Line > 0 {
		where = fmt.Sprintf("line %d", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
