package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	n int
}

func (f *failingWriter) WriteByte(byte) error {
	if f.n == 0 {
		return errors.New("tx busy")
	}
	f.n--
	return nil
}

func TestWriteLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "banner", in: Banner, want: "Thermometer\r\n"},
		{name: "stops after newline", in: "one\ntwo\n", want: "one\n"},
		{name: "no newline", in: "abc", want: "abc"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteLine(&buf, tt.in))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteLine_Error(t *testing.T) {
	err := WriteLine(&failingWriter{n: 3}, Banner)
	assert.EqualError(t, err, "tx busy")
}
