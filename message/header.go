package message

import "bytes"

// Header is one parsed header field. Insertion order of headers is
// significant and preserved wherever they travel; duplicate names keep
// their positions.
type Header struct {
	Name, Value []byte
}

func (h Header) Text() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(h.Name)+2+len(h.Value)))
	buf.Write(h.Name)
	buf.WriteString(": ")
	buf.Write(h.Value)
	return buf.Bytes()
}

func (h Header) String() string { return string(h.Text()) }
