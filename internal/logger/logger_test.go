package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOnlyLogger(t *testing.T) {
	l := New("")
	l.Log("picked up piece at 1.00, 0.50, 1.00")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.Contains(t, lines[0], "picked up piece")
}

func TestLoggerAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.txt")
	l := New(path)
	l.Log("first")
	l.Log("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	got := l.Lines()
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Lines()[0])
}
