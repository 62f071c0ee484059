// Package head parses the head of an HTTP/1.x message: the start line
// and the header block. It folds obsolete line continuations into their
// preceding header and enforces configured resource limits while doing
// so.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9112
//
// - https://www.rfc-editor.org/rfc/rfc2616#section-2.2
package head
