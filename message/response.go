package message

import (
	"strconv"
	"strings"
)

// Response models the head of a response. Its status line is derived
// lazily: every mutator clears the cached line, every read repopulates
// it if absent. The cached line, when present, always agrees with the
// current version, code and reason.
//
// Not safe for concurrent mutation.
type Response struct {
	Headers []Header

	ver    Version
	code   int
	reason string

	catalog ReasonCatalog
	locale  string

	// nil whenever version/code/reason/locale changed since last derived.
	statusLine *StatusLine
}

// NewResponse creates a response from elements of a status line. The
// response has no reason phrase catalog.
func NewResponse(ver Version, code int, reason string) (*Response, error) {
	if code < 0 {
		return nil, ErrNegativeStatusCode
	}

	return &Response{ver: ver, code: code, reason: reason}, nil
}

// NewResponseFromStatusLine creates a response seeded with line, which
// also becomes the initial cached status line. catalog may be nil to
// disable reason phrase lookup; an empty locale falls back to
// [DefaultLocale].
func NewResponseFromStatusLine(line StatusLine, catalog ReasonCatalog, locale string) *Response {
	return &Response{
		ver:        line.Version,
		code:       line.Code,
		reason:     line.Reason,
		catalog:    catalog,
		locale:     locale,
		statusLine: &line,
	}
}

func (r *Response) Version() Version { return r.ver }
func (r *Response) Code() int        { return r.code }
func (r *Response) Reason() string   { return r.reason }
func (r *Response) Locale() string   { return r.locale }

// SetHeaders replaces the response's headers, preserving the given order.
func (r *Response) SetHeaders(headers []Header) { r.Headers = headers }

// StatusLine returns the cached status line, deriving it first if a
// mutation invalidated it. An absent version defaults to HTTP/1.1; an
// absent reason phrase is looked up in the catalog, if any.
func (r *Response) StatusLine() StatusLine {
	if r.statusLine == nil {
		ver := r.ver
		if ver == (Version{}) {
			ver = V11
		}

		reason := r.reason
		if reason == "" {
			reason, _ = r.lookupReason(r.code)
		}

		r.statusLine = &StatusLine{Version: ver, Code: r.code, Reason: reason}
	}

	return *r.statusLine
}

// SetStatusLine adopts line as-is and keeps it as the cached value.
func (r *Response) SetStatusLine(line StatusLine) {
	r.ver = line.Version
	r.code = line.Code
	r.reason = line.Reason
	r.statusLine = &line
}

// SetStatus replaces version, code and reason at once. A negative code
// fails before any field changes.
func (r *Response) SetStatus(ver Version, code int, reason string) error {
	if code < 0 {
		return ErrNegativeStatusCode
	}

	r.ver = ver
	r.code = code
	r.reason = reason
	r.statusLine = nil
	return nil
}

// SetStatusCode also resets the reason phrase, so the next read derives
// one matching the new code.
func (r *Response) SetStatusCode(code int) error {
	if code < 0 {
		return ErrNegativeStatusCode
	}

	r.code = code
	r.reason = ""
	r.statusLine = nil
	return nil
}

func (r *Response) SetReasonPhrase(reason string) {
	r.reason = reason
	r.statusLine = nil
}

func (r *Response) SetVersion(ver Version) {
	r.ver = ver
	r.statusLine = nil
}

// SetLocale invalidates the cache too: the derived reason depends on it.
func (r *Response) SetLocale(locale string) {
	r.locale = locale
	r.statusLine = nil
}

func (r *Response) lookupReason(code int) (string, bool) {
	if r.catalog == nil {
		return "", false
	}

	locale := r.locale
	if locale == "" {
		locale = DefaultLocale
	}

	return r.catalog.Reason(code, locale)
}

func (r *Response) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.code))
	if r.reason != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.reason)
	}
	return sb.String()
}
