package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a zerolog logger that forwards output to t.Log.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(testWriter{t})
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
