// Package lazy describes host commands that bindings invoke later. A Call is
// an inert record of which command object and method to call, with what
// arguments, and under which conditions. Nothing is evaluated when a Call is
// built: guards run when the binding fires.
package lazy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Runtime is the host state that guards inspect when a binding fires.
type Runtime interface {
	// CurrentLayout is the name of the layout of the focused group.
	CurrentLayout() string
	// Backend is the display-server integration, such as "wayland" or "x11".
	Backend() string
}

// Predicate is a guard evaluated at trigger time.
type Predicate func(Runtime) bool

// Filter restricts when a Call runs.
type Filter struct {
	layouts []string
	pred    Predicate
	desc    string
}

// OnLayout lets the call run only while one of the named layouts is current.
func OnLayout(names ...string) Filter {
	return Filter{layouts: names}
}

// OnBackend lets the call run only on the named backend. The backend is read
// from the Runtime each time the binding fires, since it is unknown while the
// configuration is being evaluated.
func OnBackend(name string) Filter {
	return If("backend="+name, func(rt Runtime) bool {
		return rt.Backend() == name
	})
}

// If guards the call with an arbitrary predicate. desc is used when printing.
func If(desc string, p Predicate) Filter {
	return Filter{pred: p, desc: desc}
}

type kwarg struct {
	key   string
	value any
}

// Call is a deferred invocation of a host command.
type Call struct {
	object   string
	selector string
	method   string
	args     []any
	kwargs   []kwarg
	filters  []Filter
}

func newCall(object, method string, args []any) Call {
	return Call{object: object, method: method, args: args}
}

// Root calls a command on the window manager itself, e.g. "reload_config".
func Root(method string, args ...any) Call { return newCall("", method, args) }

// Layout calls a command on the current layout.
func Layout(method string, args ...any) Call { return newCall("layout", method, args) }

// Window calls a command on the focused window.
func Window(method string, args ...any) Call { return newCall("window", method, args) }

// Screen calls a command on the current screen.
func Screen(method string, args ...any) Call { return newCall("screen", method, args) }

// Core calls a command on the backend core.
func Core(method string, args ...any) Call { return newCall("core", method, args) }

// Group calls a command on the named group.
func Group(name, method string, args ...any) Call {
	c := newCall("group", method, args)
	c.selector = name
	return c
}

// Spawn runs cmd through the host's process launcher.
func Spawn(cmd string) Call { return Root("spawn", cmd) }

// Kwarg returns a copy of c with a keyword argument appended.
func (c Call) Kwarg(key string, value any) Call {
	c.kwargs = append(append([]kwarg(nil), c.kwargs...), kwarg{key, value})
	return c
}

// When returns a copy of c that only runs when every filter passes.
func (c Call) When(filters ...Filter) Call {
	c.filters = append(append([]Filter(nil), c.filters...), filters...)
	return c
}

// Object is the command object path, such as "layout" or "group".
func (c Call) Object() string { return c.object }

// Selector is the object selector, such as a group name. It may be empty.
func (c Call) Selector() string { return c.selector }

// Method is the command name.
func (c Call) Method() string { return c.method }

// Args returns the positional arguments.
func (c Call) Args() []any { return c.args }

// KwargValue returns the keyword argument named key.
func (c Call) KwargValue(key string) (any, bool) {
	for _, kw := range c.kwargs {
		if kw.key == key {
			return kw.value, true
		}
	}
	return nil, false
}

// Conditional reports whether c carries any filter.
func (c Call) Conditional() bool { return len(c.filters) > 0 }

// Check evaluates c's filters against the runtime state.
func (c Call) Check(rt Runtime) bool {
	for _, f := range c.filters {
		if len(f.layouts) > 0 && !contains(f.layouts, rt.CurrentLayout()) {
			return false
		}
		if f.pred != nil && !f.pred(rt) {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (c Call) String() string {
	var b strings.Builder
	if c.object != "" {
		b.WriteString(c.object)
		if c.selector != "" {
			b.WriteString("[")
			b.WriteString(strconv.Quote(c.selector))
			b.WriteString("]")
		}
		b.WriteString(".")
	}
	b.WriteString(c.method)
	b.WriteString("(")
	var params []string
	for _, a := range c.args {
		params = append(params, formatValue(a))
	}
	for _, kw := range c.kwargs {
		params = append(params, kw.key+"="+formatValue(kw.value))
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	for _, f := range c.filters {
		switch {
		case len(f.layouts) > 0:
			fmt.Fprintf(&b, ".when(layout=[%s])", strings.Join(f.layouts, ", "))
		case f.desc != "":
			fmt.Fprintf(&b, ".when(%s)", f.desc)
		default:
			b.WriteString(".when(func)")
		}
	}
	return b.String()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}

// MarshalYAML renders c in its String form.
func (c Call) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// MarshalJSON renders c in its String form.
func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
