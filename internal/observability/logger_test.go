package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesSessionTaggedJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("request finished", "id", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "request finished", rec["msg"])
	assert.Equal(t, float64(3), rec["id"])
	assert.NotEmpty(t, rec["session_id"])
}

func TestInit_CreatesLogFile(t *testing.T) {
	prev := logger
	t.Cleanup(func() {
		logger = prev
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "nested", "rorichat.log")
	closer, err := Init(path, slog.LevelInfo)
	require.NoError(t, err)

	WithFields("component", "test").Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
