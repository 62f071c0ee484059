package head

import (
	"fmt"

	"github.com/pkg/errors"
)

// Limit violations are distinct, recoverable conditions: the caller may
// choose to drop the connection. They are never silently truncated.
var (
	ErrHeaderCountExceeded = errors.New("maximum header count exceeded")
	ErrLineLengthExceeded  = errors.New("maximum line length limit exceeded")
)

// ParseError reports a lexically malformed line. It is produced by a
// [LineParser] and never escapes [Parser.Parse]: see [ProtocolError].
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return e.Reason }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// ProtocolError reports a message head violating the message grammar.
// It carries the message of the lexical failure it was translated from,
// but not the failure itself.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return e.Reason }

// protocolViolation changes the kind of err, keeping its message.
func protocolViolation(err error) *ProtocolError {
	return &ProtocolError{Reason: err.Error()}
}
