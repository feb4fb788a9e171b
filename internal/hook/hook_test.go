package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireOrder(t *testing.T) {
	r := NewRegistry()
	var got []int
	r.Subscribe(Startup, func(context.Context) error { got = append(got, 1); return nil })
	r.Subscribe(Startup, func(context.Context) error { got = append(got, 2); return errors.New("boom") })
	r.Subscribe(Startup, func(context.Context) error { got = append(got, 3); return nil })
	r.Subscribe(Shutdown, func(context.Context) error { got = append(got, 99); return nil })

	assert.Equal(t, 3, r.Count(Startup))
	failed := r.Fire(context.Background(), Startup)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []int{1, 2, 3}, got)

	assert.Zero(t, r.Fire(context.Background(), StartupOnce))
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autostart.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestAutostartRunsScript(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	script := writeScript(t, "touch "+marker+"\n")

	require.NoError(t, Autostart(script)(context.Background()))
	assert.FileExists(t, marker)
}

func TestAutostartIgnoresExitStatus(t *testing.T) {
	script := writeScript(t, "exit 3\n")
	assert.NoError(t, Autostart(script)(context.Background()))
}

func TestAutostartMissingScript(t *testing.T) {
	err := Autostart(filepath.Join(t.TempDir(), "missing.sh"))(context.Background())
	assert.ErrorContains(t, err, "could not start")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/user")
	got, err := ExpandHome("~/.config/qtile/autostart.sh")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/qtile/autostart.sh", got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
