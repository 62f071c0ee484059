package head

import (
	"bytes"
	"strconv"

	"http-head/message"
	"http-head/rule"
)

// LineParser turns one raw line into its structured form. Failures are
// lexical: implementations report them as [*ParseError], possibly
// wrapped.
type LineParser interface {
	ParseHeader(line []byte) (message.Header, error)
	ParseRequestLine(line []byte) (message.RequestLine, error)
	ParseStatusLine(line []byte) (message.StatusLine, error)
}

// BasicLineParser implements the strict RFC 9112 line grammar.
type BasicLineParser struct{}

var DefaultLineParser LineParser = BasicLineParser{}

func (BasicLineParser) ParseHeader(line []byte) (message.Header, error) {
	name, value, found := bytes.Cut(line, []byte{':'})
	if !found {
		return message.Header{}, parseErrorf("colon separator not found on header: %q", line)
	}

	// No whitespace is allowed between field name and colon.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.1-2
	for _, c := range rule.OWS {
		if bytes.HasSuffix(name, []byte{c}) {
			return message.Header{}, parseErrorf("field name has trailing whitespace: %q", name)
		}
	}

	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.1-3
	value = bytes.Trim(value, string(rule.OWS))

	return message.Header{Name: name, Value: value}, nil
}

func (BasicLineParser) ParseRequestLine(line []byte) (message.RequestLine, error) {
	parts := bytes.Split(line, []byte{rule.SP})
	if len(parts) != 3 {
		return message.RequestLine{}, parseErrorf("request line is malformed: %q", line)
	}

	method := string(parts[0])
	if !rule.IsValidToken(method) {
		return message.RequestLine{}, parseErrorf("method is not a valid token: %q", method)
	}

	target := string(parts[1])
	if len(target) == 0 {
		return message.RequestLine{}, parseErrorf("request target should not be empty")
	}

	ver, err := message.ParseVersion(parts[2])
	if err != nil {
		return message.RequestLine{}, parseErrorf("parsing version: %s", err)
	}

	return message.RequestLine{Method: method, Target: target, Version: ver}, nil
}

func (BasicLineParser) ParseStatusLine(line []byte) (message.StatusLine, error) {
	parts := bytes.SplitN(line, []byte{rule.SP}, 3)
	if len(parts) < 3 {
		return message.StatusLine{}, parseErrorf("status line is malformed: %q", line)
	}

	ver, err := message.ParseVersion(parts[0])
	if err != nil {
		return message.StatusLine{}, parseErrorf("parsing version: %s", err)
	}

	codeStr := string(parts[1])
	code, err := strconv.ParseUint(codeStr, 10, 64)
	if err != nil || len(codeStr) != 3 {
		return message.StatusLine{}, parseErrorf("status code is malformed: %q", codeStr)
	}

	// reason-phrase is optional.
	reason := string(parts[2])

	return message.StatusLine{Version: ver, Code: int(code), Reason: reason}, nil
}
