package head

import (
	"strings"
	"testing"

	"http-head/lineio"
	"http-head/message"
	"http-head/message/status"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type ParserTestSuite struct {
	suite.Suite
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

// Parsing is synchronous; a parse must not leave goroutines behind.
func (s *ParserTestSuite) TearDownTest() {
	goleak.VerifyNone(s.T())
}

func responseParser(raw string, opts Options) *ResponseParser {
	src := lineio.NewReader(strings.NewReader(raw), lineio.DefaultOptions)
	return NewResponseParser(src, status.Catalog{}, "", opts)
}

func (s *ParserTestSuite) TestParseResponse() {
	raw := "" +
		"HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n"

	resp, err := responseParser(raw, DefaultOptions).Parse()
	s.NoError(err)

	s.Equal(message.V11, resp.Version())
	s.Equal(200, resp.Code())
	s.Equal("OK", resp.Reason())
	s.Equal([]message.Header{
		{Name: []byte("Content-Type"), Value: []byte("text/plain")},
		{Name: []byte("Content-Length"), Value: []byte("5")},
	}, resp.Headers)
	s.Equal("HTTP/1.1 200 OK", resp.StatusLine().String())
}

func (s *ParserTestSuite) TestParseRequest() {
	raw := "" +
		"\r\n" + // Empty lines may precede the request line.
		"GET /abc HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"\r\n"

	src := lineio.NewReader(strings.NewReader(raw), lineio.DefaultOptions)
	req, err := NewRequestParser(src, DefaultOptions).Parse()
	s.NoError(err)

	s.Equal(message.RequestLine{
		Method:  "GET",
		Target:  "/abc",
		Version: message.V11,
	}, req.RequestLine)
	s.Equal([]message.Header{
		{Name: []byte("Host"), Value: []byte("example.com")},
	}, req.Headers)
}

func (s *ParserTestSuite) TestParseFoldedHeader() {
	raw := "" +
		"HTTP/1.1 200 OK\r\n" +
		"X-A: 1\r\n" +
		" continued\r\n" +
		"\tmore\r\n" +
		"\r\n"

	resp, err := responseParser(raw, DefaultOptions).Parse()
	s.NoError(err)

	s.Equal([]message.Header{
		{Name: []byte("X-A"), Value: []byte("1 continued more")},
	}, resp.Headers)
}

func (s *ParserTestSuite) TestHeadLexicalFailureBecomesProtocolError() {
	raw := "BOGUS\r\n\r\n"

	_, err := responseParser(raw, DefaultOptions).Parse()

	var pe *ProtocolError
	s.ErrorAs(err, &pe)

	var lexical *ParseError
	s.False(errors.As(err, &lexical), "lexical error type must not escape")
}

func (s *ParserTestSuite) TestHeaderCountLimit() {
	raw := "" +
		"HTTP/1.1 200 OK\r\n" +
		"A: 1\r\n" +
		"B: 2\r\n" +
		"\r\n"

	_, err := responseParser(raw, Options{MaxHeaderCount: 1}).Parse()
	s.ErrorIs(err, ErrHeaderCountExceeded)
}

func (s *ParserTestSuite) TestFoldedLineLengthLimit() {
	raw := "" +
		"HTTP/1.1 200 OK\r\n" +
		"X-A: 1234\r\n" +
		" 123456789012345678901234567890\r\n" +
		"\r\n"

	_, err := responseParser(raw, Options{MaxLineLength: 20}).Parse()
	s.ErrorIs(err, ErrLineLengthExceeded)
}

func (s *ParserTestSuite) TestIOErrorKeepsItsKind() {
	boom := errors.New("connection reset")
	src := &stubSource{
		lines:    []string{"HTTP/1.1 200 OK", "A: 1"},
		failWith: boom,
	}

	_, err := NewResponseParser(src, nil, "", DefaultOptions).Parse()
	s.ErrorIs(err, boom)

	var pe *ProtocolError
	s.False(errors.As(err, &pe))
}

func (s *ParserTestSuite) TestReasonDerivedFromCatalogAfterMutation() {
	// The parsed status line is cached as-is, empty reason included.
	raw := "HTTP/1.1 200 \r\n\r\n"

	resp, err := responseParser(raw, DefaultOptions).Parse()
	s.NoError(err)
	s.Equal("", resp.StatusLine().Reason)

	// Changing the code clears the cache; the next read consults the
	// catalog wired in at parse time.
	s.NoError(resp.SetStatusCode(204))
	s.Equal("No Content", resp.StatusLine().Reason)
}
