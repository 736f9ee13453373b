// Package shelltypes defines the public contract of the cmdshell engine:
// the Command, Option, Filter, and Handler interfaces that host programs
// implement to donate functionality, and the Context surface through which
// running commands reach the interpreter.
package shelltypes

import "io"

// Command is a named, invocable operation exposed to the interpreter.
type Command interface {
	// Names returns the command's names; the first entry is the display
	// name used in listings. All names resolve case-insensitively.
	Names() []string

	// Description is a one-line summary shown in help output.
	Description() string

	// Category groups the command in help listings.
	Category() string

	// Hidden commands are excluded from listings but remain invocable.
	Hidden() bool

	// Execute runs the command with the already-expanded argument vector.
	Execute(ctx Context, args []string) error
}

// Option is a named, gettable/settable value exposed to the interpreter.
// Option values participate in $(Name) macro expansion and in the builtin
// get/set commands.
type Option interface {
	// Names returns the option's names; the first entry is the display
	// name. All names resolve case-insensitively.
	Names() []string

	// Description is a one-line summary shown in help output.
	Description() string

	// Get returns the current value in string form.
	Get() string

	// Set validates and applies a new value. An incompatible value is
	// rejected with an error and leaves the option unchanged.
	Set(value string) error
}

// Invoker is the remainder of a dispatch chain. The terminal invoker
// resolves and executes a command; every other invoker is a filter link.
type Invoker interface {
	Invoke(ctx Context, args []string) error
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx Context, args []string) error

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx Context, args []string) error {
	return f(ctx, args)
}

// Filter wraps command dispatch for cross-cutting behavior such as output
// redirection or piping. A filter receives the remaining argument vector
// and the rest of the chain, and decides whether, when, and with what
// arguments to invoke it: before, after, both, or not at all.
type Filter interface {
	// Keys returns the filter's precedence key characters. The filter's
	// rank is the earliest position of any of these characters in the
	// interpreter's precedence specification; filters with no matching key
	// run after all ranked filters.
	Keys() string

	Apply(ctx Context, args []string, next Invoker) error
}

// Handler is a bundle of commands and options a host program donates to an
// interpreter. Binding is a snapshot taken at registration; later changes
// to the handler are not observed. A donated command that also satisfies
// the Filter interface joins the dispatch chain instead of the command
// table.
type Handler interface {
	Commands() []Command
	Options() []Option
}

// HandlerSet is a declarative Handler built from descriptor slices.
type HandlerSet struct {
	Cmds []Command
	Opts []Option
}

// Commands returns the donated command descriptors.
func (h HandlerSet) Commands() []Command { return h.Cmds }

// Options returns the donated option descriptors.
func (h HandlerSet) Options() []Option { return h.Opts }

// Context is the interpreter surface visible to executing commands and
// filters. Streams are explicit fields of the context rather than ambient
// process state; a filter redirects output by deriving a new context with
// WithIO and passing it down the chain, so redirection is naturally scoped
// to one invocation.
type Context interface {
	In() io.Reader
	Out() io.Writer
	ErrOut() io.Writer

	// WithIO derives a context with the given streams. A nil argument
	// keeps the corresponding stream of the receiver.
	WithIO(in io.Reader, out, errOut io.Writer) Context

	// LookupCommand resolves a command name case-insensitively.
	LookupCommand(name string) (Command, bool)

	// Commands returns the registered commands, de-duplicated and sorted
	// by display name.
	Commands() []Command

	// LookupOption resolves an option name case-insensitively.
	LookupOption(name string) (Option, bool)

	// Options returns the registered options, de-duplicated and sorted by
	// display name.
	Options() []Option

	// Expand performs $(Name) macro expansion on text.
	Expand(text string) (string, error)

	// ErrorLevel is the interpreter's exit code, 0 until an error is
	// reported or a command sets it.
	ErrorLevel() int
	SetErrorLevel(code int)
}
