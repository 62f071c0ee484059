package head

import (
	"io"

	"http-head/message"
	"http-head/rule"

	"github.com/pkg/errors"
)

// CollectHeaderLines reads raw lines from src until an empty line or the
// end of the stream, assembling them into ordered logical header lines.
// A line starting with SP or HTAB continues the value of the previous
// logical line, its leading whitespace collapsed to a single space. The
// very first line of a block is never a continuation: there is nothing
// to fold into. The terminating blank line is not stored.
//
// maxHeaderCount bounds the number of logical lines. maxLineLength
// bounds the growth of a folded line, continuation lines included;
// without it a single header folding forever would slip past the count
// cap. A value <= 0 disables the respective check. New non-folded lines
// are not measured against maxLineLength here; bounding physical line
// length is the line source's concern.
//
// On failure the partial result is discarded.
//
// Reference: https://www.rfc-editor.org/rfc/rfc2616#section-2.2
func CollectHeaderLines(src LineSource, maxHeaderCount, maxLineLength int) ([][]byte, error) {
	var lines [][]byte

	scratch := make([]byte, 0, 64)
	for {
		line, err := src.ReadLine(scratch)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "reading line")
		}
		if len(line) == 0 {
			// End of the header block.
			break
		}

		if (line[0] == rule.SP || line[0] == rule.HTAB) && len(lines) > 0 {
			i := 0
			for i < len(line) && (line[i] == rule.SP || line[i] == rule.HTAB) {
				i++
			}

			prev := lines[len(lines)-1]
			if maxLineLength > 0 && len(prev)+1+len(line)-i > maxLineLength {
				return nil, ErrLineLengthExceeded
			}

			prev = append(prev, rule.SP)
			prev = append(prev, line[i:]...)
			lines[len(lines)-1] = prev

			scratch = line[:0]
		} else {
			lines = append(lines, line)
			if maxHeaderCount > 0 && len(lines) > maxHeaderCount {
				return nil, ErrHeaderCountExceeded
			}

			// The sequence owns line now; continue with a fresh buffer.
			scratch = make([]byte, 0, 64)
		}
	}

	return lines, nil
}

// ParseHeaders assembles the header block from src and parses each
// logical line in order. Lexical failures surface as [*ProtocolError];
// limit and I/O failures pass through from [CollectHeaderLines].
func ParseHeaders(src LineSource, maxHeaderCount, maxLineLength int, parser LineParser) ([]message.Header, error) {
	if parser == nil {
		parser = DefaultLineParser
	}

	lines, err := CollectHeaderLines(src, maxHeaderCount, maxLineLength)
	if err != nil {
		return nil, err
	}

	headers := make([]message.Header, len(lines))
	for i, line := range lines {
		h, err := parser.ParseHeader(line)
		if err != nil {
			return nil, protocolViolation(err)
		}
		headers[i] = h
	}

	return headers, nil
}
