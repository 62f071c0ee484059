package head

import (
	"http-head/message"

	"github.com/pkg/errors"
)

// Options bound the resources one parsed head may consume. Values <= 0
// disable the respective check. Fixed for the lifetime of a parser.
type Options struct {
	MaxHeaderCount int
	MaxLineLength  int
}

var DefaultOptions = Options{}

// Message is the shell a head step produces; the parser attaches the
// assembled header block to it.
type Message interface {
	SetHeaders(headers []message.Header)
}

// HeadParser reads the minimal prefix of src needed to produce the
// message shell, usually just the start line.
type HeadParser interface {
	ParseHead(src LineSource, parser LineParser) (Message, error)
}

// Parser produces one complete message head per call from a line
// source. Not safe for concurrent use; callers serialize, one parser
// per connection.
type Parser struct {
	src    LineSource
	head   HeadParser
	parser LineParser
	opts   Options
}

func NewParser(src LineSource, head HeadParser, parser LineParser, opts Options) *Parser {
	if parser == nil {
		parser = DefaultLineParser
	}

	return &Parser{src: src, head: head, parser: parser, opts: opts}
}

// Parse reads one message head: the start line via the head step, then
// the header block. Lexical failures surface as [*ProtocolError]; I/O
// failures keep their kind; limit violations stay distinct. On failure
// no partial message is returned.
func (p *Parser) Parse() (Message, error) {
	msg, err := p.head.ParseHead(p.src, p.parser)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, protocolViolation(pe)
		}
		return nil, err
	}

	headers, err := ParseHeaders(p.src, p.opts.MaxHeaderCount, p.opts.MaxLineLength, p.parser)
	if err != nil {
		return nil, err
	}

	msg.SetHeaders(headers)

	return msg, nil
}

// readStartLine skips empty lines allowed before a message.
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-6
func readStartLine(src LineSource) ([]byte, error) {
	buf := make([]byte, 0, 64)
	for {
		line, err := src.ReadLine(buf[:0])
		if err != nil {
			return nil, err
		}
		if len(line) > 0 {
			return line, nil
		}
		buf = line
	}
}

// RequestHead parses a request line into a request shell.
type RequestHead struct{}

func (RequestHead) ParseHead(src LineSource, parser LineParser) (Message, error) {
	line, err := readStartLine(src)
	if err != nil {
		return nil, err
	}

	reqLine, err := parser.ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	return message.NewRequest(reqLine), nil
}

// ResponseHead parses a status line into a response shell. Catalog and
// Locale seed the response's lazy reason phrase lookup; Catalog may be
// nil to disable it.
type ResponseHead struct {
	Catalog message.ReasonCatalog
	Locale  string
}

func (h ResponseHead) ParseHead(src LineSource, parser LineParser) (Message, error) {
	line, err := readStartLine(src)
	if err != nil {
		return nil, err
	}

	statLine, err := parser.ParseStatusLine(line)
	if err != nil {
		return nil, err
	}

	return message.NewResponseFromStatusLine(statLine, h.Catalog, h.Locale), nil
}

// RequestParser is a [Parser] fixed to request heads.
type RequestParser struct{ Parser }

func NewRequestParser(src LineSource, opts Options) *RequestParser {
	return &RequestParser{Parser{
		src:    src,
		head:   RequestHead{},
		parser: DefaultLineParser,
		opts:   opts,
	}}
}

func (p *RequestParser) Parse() (*message.Request, error) {
	msg, err := p.Parser.Parse()
	if err != nil {
		return nil, err
	}

	return msg.(*message.Request), nil
}

// ResponseParser is a [Parser] fixed to response heads.
type ResponseParser struct{ Parser }

func NewResponseParser(src LineSource, catalog message.ReasonCatalog, locale string, opts Options) *ResponseParser {
	return &ResponseParser{Parser{
		src:    src,
		head:   ResponseHead{Catalog: catalog, Locale: locale},
		parser: DefaultLineParser,
		opts:   opts,
	}}
}

func (p *ResponseParser) Parse() (*message.Response, error) {
	msg, err := p.Parser.Parse()
	if err != nil {
		return nil, err
	}

	return msg.(*message.Response), nil
}
