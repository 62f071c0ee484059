package message

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrNegativeStatusCode = errors.New("status code may not be negative")

// StatusLine is the first line of a response. Immutable once constructed.
type StatusLine struct {
	Version Version
	Code    int
	Reason  string
}

func NewStatusLine(ver Version, code int, reason string) (StatusLine, error) {
	if code < 0 {
		return StatusLine{}, ErrNegativeStatusCode
	}

	return StatusLine{Version: ver, Code: code, Reason: reason}, nil
}

func (sl StatusLine) String() string {
	var sb strings.Builder
	sb.Write(sl.Version.Text())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(sl.Code))
	if sl.Reason != "" {
		sb.WriteByte(' ')
		sb.WriteString(sl.Reason)
	}
	return sb.String()
}
