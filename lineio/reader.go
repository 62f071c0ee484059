// Package lineio reads physical text lines off a connection's input
// stream, one at a time, into a caller-supplied buffer.
package lineio

import (
	"bufio"
	"io"
	"time"

	"http-head/rule"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type Options struct {
	// AllowSoleLF specifies whether a single LF character should be
	// recognized as a valid line terminator.
	//
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-3
	AllowSoleLF bool

	// Clock is used for idle accounting. Defaults to the real clock.
	Clock clock.Clock
}

var DefaultOptions = Options{}

// Reader yields one physical line at a time from an underlying stream.
// It satisfies the head.LineSource contract.
type Reader struct {
	br   *bufio.Reader
	opts Options

	clock    clock.Clock
	lastRead time.Time
}

func NewReader(r io.Reader, opts Options) *Reader {
	c := opts.Clock
	if c == nil {
		c = clock.New()
	}

	return &Reader{br: bufio.NewReader(r), opts: opts, clock: c}
}

var ErrMissingCRBeforeLF = errors.New("missing CR before LF")

// ReadLine appends the next line, stripped of its terminator, to dst and
// returns the extended slice. Appending nothing with a nil error is an
// empty line. A clean end of stream is reported as io.EOF; a stream
// ending mid-line as io.ErrUnexpectedEOF.
func (r *Reader) ReadLine(dst []byte) ([]byte, error) {
	line, err := r.br.ReadBytes(rule.LF)
	if err != nil {
		if err == io.EOF {
			if len(line) == 0 {
				return dst, io.EOF
			}
			return dst, io.ErrUnexpectedEOF
		}
		return dst, err
	}
	r.lastRead = r.clock.Now()

	line = line[:len(line)-1] // Remove LF.
	if len(line) > 0 && line[len(line)-1] == rule.CR {
		line = line[:len(line)-1] // Remove CR.
	} else if !r.opts.AllowSoleLF {
		return dst, ErrMissingCRBeforeLF
	}

	// A bare CR is not a terminator here. Treat it as whitespace.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-4
	for i, c := range line {
		if c == rule.CR {
			line[i] = rule.SP
		}
	}

	return append(dst, line...), nil
}

// LastRead reports when a line last completed. Zero until the first read.
func (r *Reader) LastRead() time.Time { return r.lastRead }

// IdleFor reports whether no line has completed within timeout.
func (r *Reader) IdleFor(timeout time.Duration) bool {
	if r.lastRead.IsZero() {
		return false
	}

	return r.clock.Since(r.lastRead) >= timeout
}

// Rest exposes whatever follows the last line read, typically the
// message body.
func (r *Reader) Rest() io.Reader { return r.br }
