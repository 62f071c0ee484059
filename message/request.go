package message

// RequestLine is the first line of a request.
type RequestLine struct {
	Method  string
	Target  string
	Version Version
}

func (rl RequestLine) String() string {
	return rl.Method + " " + rl.Target + " " + rl.Version.String()
}

// Request models the head of a request.
type Request struct {
	RequestLine
	Headers []Header
}

func NewRequest(line RequestLine) *Request {
	return &Request{RequestLine: line}
}

// SetHeaders replaces the request's headers, preserving the given order.
func (r *Request) SetHeaders(headers []Header) { r.Headers = headers }
