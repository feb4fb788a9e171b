package dispatch

import (
	"context"
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmconf/wmconf/internal/config"
	"github.com/wmconf/wmconf/internal/keysym"
	"github.com/wmconf/wmconf/internal/lazy"
	"github.com/wmconf/wmconf/internal/settings"
)

type recorder struct {
	calls []string
	fail  string
}

func (r *recorder) Execute(_ context.Context, c lazy.Call) error {
	if c.Method() == r.fail {
		return errors.New("failed")
	}
	r.calls = append(r.calls, c.String())
	return nil
}

func newTable(t *testing.T) *Table {
	t.Helper()
	c := config.Load(settings.Defaults())
	table, err := NewTable(c.Keys, c.Mouse)
	require.NoError(t, err)
	return table
}

func chord(t *testing.T, s string) keysym.Chord {
	t.Helper()
	c, err := keysym.ParseChord(s)
	require.NoError(t, err)
	return c
}

func TestNewTable(t *testing.T) {
	table := newTable(t)
	assert.Equal(t, 56, table.Len())

	k, ok := table.Lookup(chord(t, "mod4+shift+Return"))
	require.True(t, ok)
	assert.Equal(t, "Toggle between split and unsplit sides of stack", k.Desc)

	_, err := NewTable([]config.Key{
		{Name: "a", Commands: []lazy.Call{lazy.Layout("up")}},
		{Name: "A", Commands: []lazy.Call{lazy.Layout("down")}},
	}, nil)
	assert.ErrorContains(t, err, "bound twice")
}

func TestResolveVT(t *testing.T) {
	table := newTable(t)
	c := chord(t, "control+mod1+f2")

	calls, err := table.Resolve(c, Session{BackendName: "wayland"})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "core.change_vt(2).when(backend=wayland)", calls[0].String())

	calls, err = table.Resolve(c, Session{BackendName: "x11"})
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestResolveByLayout(t *testing.T) {
	table := newTable(t)
	c := chord(t, "mod4+minus")

	calls, err := table.Resolve(c, Session{Layout: "monadtall"})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "shrink", calls[0].Method())

	calls, err = table.Resolve(c, Session{Layout: "bsp"})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "grow_right", calls[0].Method())

	calls, err = table.Resolve(c, Session{Layout: "max"})
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestResolveUnbound(t *testing.T) {
	_, err := newTable(t).Resolve(chord(t, "mod4+z"), Session{})
	assert.ErrorIs(t, err, ErrUnbound)
}

func TestPress(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(newTable(t), rec)
	ctx := context.Background()

	n, err := d.Press(ctx, chord(t, "mod4+3"), Session{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = d.Press(ctx, chord(t, "mod4+shift+3"), Session{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = d.Press(ctx, chord(t, "control+mod1+f1"), Session{BackendName: "x11"})
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []string{
		`group["3"].toscreen()`,
		`window.togroup("3", switch_group=False)`,
	}, rec.calls)

	rec.fail = "kill"
	_, err = d.Press(ctx, chord(t, "mod4+w"), Session{})
	assert.ErrorContains(t, err, "window.kill()")
}

func TestClick(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(newTable(t), rec)
	ctx := context.Background()

	require.NoError(t, d.Click(ctx, xp.ModMask4, 1))
	require.NoError(t, d.Click(ctx, xp.ModMask4, 2))
	assert.Equal(t, []string{"window.get_position()", "window.bring_to_front()"}, rec.calls)

	assert.ErrorIs(t, d.Click(ctx, 0, 1), ErrUnbound)
}

func TestEnvSessionIsLazy(t *testing.T) {
	s := EnvSession{Layout: "max"}
	t.Setenv("XDG_SESSION_TYPE", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", ":0")
	assert.Equal(t, "x11", s.Backend())

	t.Setenv("WAYLAND_DISPLAY", "wayland-1")
	assert.Equal(t, "wayland", s.Backend())

	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", "")
	assert.Equal(t, "unknown", s.Backend())
}
