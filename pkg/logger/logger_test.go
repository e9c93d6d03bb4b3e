package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogFlushLogLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kestrel.log")

	require.NoError(t, InitLog(path))
	Info("started session %s", "abc123")
	FlushLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started session abc123")

	// After FlushLog, output is back on stderr and the file stays closed.
	Info("post-flush line")
	FlushLog() // no-op when no file is open

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "post-flush line")
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	require.NoError(t, SetLevel("info"))
	assert.Error(t, SetLevel("chatty"))
}
