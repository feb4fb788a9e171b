// Package dispatch maps key and button presses to the configured commands,
// evaluating each command's guards at the time of the press.
package dispatch

import (
	"context"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/wmconf/wmconf/internal/config"
	"github.com/wmconf/wmconf/internal/keysym"
	"github.com/wmconf/wmconf/internal/lazy"
	wmlog "github.com/wmconf/wmconf/internal/log"
)

// ErrUnbound is returned for a press that no binding is grabbed on.
var ErrUnbound = errors.New("no binding for chord")

type buttonChord struct {
	mask   uint16
	button xp.Button
}

// Table indexes key and mouse bindings by chord.
type Table struct {
	keys  map[keysym.Chord]config.Key
	mouse map[buttonChord]config.Mouse
}

// NewTable resolves the bindings' names. It fails on unknown names and on two
// bindings for the same chord.
func NewTable(keys []config.Key, mouse []config.Mouse) (*Table, error) {
	t := &Table{
		keys:  make(map[keysym.Chord]config.Key, len(keys)),
		mouse: make(map[buttonChord]config.Mouse, len(mouse)),
	}
	for _, k := range keys {
		c, err := keysym.Parse(k.Modifiers, k.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", k.Desc)
		}
		if _, ok := t.keys[c]; ok {
			return nil, errors.Errorf("key %s bound twice", c)
		}
		t.keys[c] = k
	}
	for _, m := range mouse {
		mask, err := keysym.ModMask(m.Modifiers)
		if err != nil {
			return nil, errors.Wrapf(err, "mouse %s", m.Button)
		}
		b, err := keysym.Button(m.Button)
		if err != nil {
			return nil, err
		}
		bc := buttonChord{mask, b}
		if _, ok := t.mouse[bc]; ok {
			return nil, errors.Errorf("mouse %s bound twice", m.Button)
		}
		t.mouse[bc] = m
	}
	return t, nil
}

// Len returns the number of key bindings.
func (t *Table) Len() int { return len(t.keys) }

// Lookup returns the key bound to c.
func (t *Table) Lookup(c keysym.Chord) (config.Key, bool) {
	k, ok := t.keys[c]
	return k, ok
}

// LookupButton returns the mouse binding for a button press.
func (t *Table) LookupButton(mask uint16, button xp.Button) (config.Mouse, bool) {
	m, ok := t.mouse[buttonChord{mask, button}]
	return m, ok
}

// Resolve returns the commands bound to c whose guards pass against rt now.
func (t *Table) Resolve(c keysym.Chord, rt lazy.Runtime) ([]lazy.Call, error) {
	k, ok := t.keys[c]
	if !ok {
		return nil, errors.Wrap(ErrUnbound, c.String())
	}
	var out []lazy.Call
	for _, cmd := range k.Commands {
		if cmd.Check(rt) {
			out = append(out, cmd)
		}
	}
	return out, nil
}

// Executor runs commands. The host provides the real one.
type Executor interface {
	Execute(ctx context.Context, call lazy.Call) error
}

// Dispatcher runs the commands for presses.
type Dispatcher struct {
	table  *Table
	exec   Executor
	logger zerolog.Logger
}

// NewDispatcher returns a Dispatcher over table.
func NewDispatcher(table *Table, exec Executor) *Dispatcher {
	return &Dispatcher{table: table, exec: exec, logger: wmlog.WithComponent("dispatch")}
}

// Press runs the commands bound to c that pass their guards, in order, and
// returns how many ran. It stops at the first failing command.
func (d *Dispatcher) Press(ctx context.Context, c keysym.Chord, rt lazy.Runtime) (int, error) {
	calls, err := d.table.Resolve(c, rt)
	if err != nil {
		return 0, err
	}
	if len(calls) == 0 {
		d.logger.Debug().
			Str("event", "dispatch.filtered").
			Str("chord", c.String()).
			Str("layout", rt.CurrentLayout()).
			Str("backend", rt.Backend()).
			Msg("every command filtered out")
	}
	for i, call := range calls {
		if err := d.exec.Execute(ctx, call); err != nil {
			return i, errors.Wrapf(err, "%s: %s", c, call)
		}
	}
	return len(calls), nil
}

// Click runs a click binding, or the start command of a drag.
func (d *Dispatcher) Click(ctx context.Context, mask uint16, button xp.Button) error {
	m, ok := d.table.LookupButton(mask, button)
	if !ok {
		return ErrUnbound
	}
	calls := m.Commands
	if m.Kind == config.Drag && m.Start != nil {
		calls = []lazy.Call{*m.Start}
	}
	for _, call := range calls {
		if err := d.exec.Execute(ctx, call); err != nil {
			return errors.Wrapf(err, "%s", call)
		}
	}
	return nil
}
