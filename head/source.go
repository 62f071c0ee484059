package head

// LineSource supplies one physical line of input at a time.
//
// ReadLine appends the next line, stripped of its terminator, to dst
// and returns the extended slice. Appending nothing with a nil error is
// an empty line, never an error. io.EOF marks the end of the stream and
// is distinct from any I/O failure.
type LineSource interface {
	ReadLine(dst []byte) ([]byte, error)
}
