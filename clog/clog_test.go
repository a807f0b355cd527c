package clog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugIsFilteredWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("lexed %d tokens", 4)
	l.Info("compiling %s", "main.c")

	out := buf.String()
	assert.NotContains(t, out, "lexed 4 tokens")
	assert.Contains(t, out, "compiling main.c")
}

func TestDebugIsShownWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Debug("frame size %d", 8)

	assert.Contains(t, buf.String(), "frame size 8")
}

func TestErrorAlwaysShown(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Error("bad token at %q", "@")

	assert.Contains(t, buf.String(), "bad token")
}
