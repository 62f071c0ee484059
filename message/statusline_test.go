package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatusLine(t *testing.T) {
	line, err := NewStatusLine(V11, 200, "OK")
	assert.NoError(t, err)
	assert.Equal(t, StatusLine{Version: V11, Code: 200, Reason: "OK"}, line)

	_, err = NewStatusLine(V11, -1, "")
	assert.ErrorIs(t, err, ErrNegativeStatusCode)
}

func TestStatusLineString(t *testing.T) {
	testcases := []struct {
		input    StatusLine
		expected string
	}{
		{
			input:    StatusLine{Version: V11, Code: 200, Reason: "OK"},
			expected: "HTTP/1.1 200 OK",
		},
		{
			input:    StatusLine{Version: V10, Code: 404, Reason: "Not Found"},
			expected: "HTTP/1.0 404 Not Found",
		},
		{
			input:    StatusLine{Version: V11, Code: 204},
			expected: "HTTP/1.1 204",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.input.String())
		})
	}
}
