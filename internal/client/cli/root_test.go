package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/iocli"
)

func TestNewRootCommand_Commands(t *testing.T) {
	mockIO, _ := newTestIO()
	root := NewRootCommand(BuildInfo{Version: "test"}, mockIO)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{
		"register", "login", "logout", "status",
		"articles", "comments", "reactions", "react", "bookmarks", "admin", "watch",
	} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"server", "db", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestDefaultOptions_Env(t *testing.T) {
	t.Setenv("UNIPRESS_SERVER", "https://news.example")
	t.Setenv("UNIPRESS_DB", "/tmp/news.db")

	opts := DefaultOptions()
	assert.Equal(t, "https://news.example", opts.ServerURL)
	assert.Equal(t, "/tmp/news.db", opts.DBPath)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("debug", &buf)
	require.NoError(t, err)
	logger.Debug("hello", "key", "value")
	assert.Contains(t, buf.String(), "key=value")

	_, err = NewLogger("loud", &buf)
	require.Error(t, err)
}

func TestExecute_StatusWithFreshDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	var out bytes.Buffer
	stdio := iocli.NewStream(strings.NewReader(""), &out)

	code := Execute(context.Background(), BuildInfo{Version: "test"}, stdio, []string{"--db", dbPath, "status"})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Not authenticated")
	assert.Contains(t, out.String(), "Anonymous ID: ")
}

func TestExecute_BadServerURL(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	var out bytes.Buffer
	stdio := iocli.NewStream(strings.NewReader(""), &out)

	code := Execute(context.Background(), BuildInfo{Version: "test"}, stdio, []string{"--db", dbPath, "--server", "gopher://x", "status"})
	assert.Equal(t, 1, code)
}
