// Package shell implements the cmdshell interpreter: handler binding into
// the name registry, the precedence-ordered filter chain around every
// dispatch, one-shot execution, and the interactive read-eval loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"cmdshell/internal/chain"
	"cmdshell/internal/commands/builtin"
	"cmdshell/internal/expand"
	"cmdshell/internal/logger"
	"cmdshell/internal/registry"
	"cmdshell/pkg/shelltypes"
)

// DefaultPrompt is the initial prompt template. Like any prompt template
// it is macro-expanded before display.
const DefaultPrompt = "cmdshell> "

// Interpreter owns the registry of commands and options, the ordered
// filter set with its cached chain, the prompt template, and the error
// level. It is single-threaded: all mutation and dispatch happen on the
// goroutine that drives it.
type Interpreter struct {
	reg   *registry.Registry
	chain *chain.Chain

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	prompt     string
	errorLevel int

	log *log.Logger
}

// New constructs an interpreter with the builtin commands and options
// pre-registered, then binds each handler in order.
func New(handlers ...shelltypes.Handler) (*Interpreter, error) {
	i := &Interpreter{
		reg:    registry.New(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: DefaultPrompt,
		log:    logger.NewStyledLogger("Interpreter"),
	}
	i.chain = chain.New(shelltypes.InvokerFunc(i.dispatch))

	for _, cmd := range builtin.Commands() {
		if err := i.reg.AddCommand(cmd); err != nil {
			return nil, err
		}
	}
	for _, opt := range i.builtinOptions() {
		if err := i.reg.AddOption(opt); err != nil {
			return nil, err
		}
	}

	for _, h := range handlers {
		if err := i.AddHandler(h); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// builtinOptions binds the interpreter's own state to the option table so
// it participates in get/set and macro expansion like any other option.
func (i *Interpreter) builtinOptions() []shelltypes.Option {
	return []shelltypes.Option{
		shelltypes.StringOpt("Prompt", "prompt template, expanded before display", &i.prompt),
		shelltypes.IntOpt("ErrorLevel", "exit code; set on the first reported error", &i.errorLevel),
		&shelltypes.Opt{
			Name:    "FilterOrder",
			Desc:    "filter precedence specification",
			GetFunc: i.chain.Order,
			SetFunc: func(value string) error {
				i.chain.SetOrder(value)
				return nil
			},
		},
	}
}

// SetIO replaces the interpreter's streams. A nil argument keeps the
// current stream.
func (i *Interpreter) SetIO(in io.Reader, out, errOut io.Writer) {
	if in != nil {
		i.in = in
	}
	if out != nil {
		i.out = out
	}
	if errOut != nil {
		i.errOut = errOut
	}
}

// AddHandler binds a handler's donated commands and options. A donated
// command that satisfies the filter contract joins the dispatch chain
// instead of the command table. Binding is a snapshot: the handler's
// slices are read once, here.
func (i *Interpreter) AddHandler(h shelltypes.Handler) error {
	for _, cmd := range h.Commands() {
		if f, ok := cmd.(shelltypes.Filter); ok {
			i.AddFilter(f)
			continue
		}
		if err := i.reg.AddCommand(cmd); err != nil {
			return err
		}
	}
	for _, opt := range h.Options() {
		if err := i.reg.AddOption(opt); err != nil {
			return err
		}
	}
	return nil
}

// AddCommand registers one command.
func (i *Interpreter) AddCommand(cmd shelltypes.Command) error {
	return i.reg.AddCommand(cmd)
}

// RemoveCommand unregisters one command; unknown commands are a no-op.
func (i *Interpreter) RemoveCommand(cmd shelltypes.Command) {
	i.reg.RemoveCommand(cmd)
}

// AddOption registers one option.
func (i *Interpreter) AddOption(opt shelltypes.Option) error {
	return i.reg.AddOption(opt)
}

// AddFilter appends a filter to the chain, invalidating the cached build.
func (i *Interpreter) AddFilter(f shelltypes.Filter) {
	i.chain.Add(f)
}

// SetFilterOrder replaces the precedence specification.
func (i *Interpreter) SetFilterOrder(order string) {
	i.chain.SetOrder(order)
}

// ErrorLevel returns the interpreter's exit code.
func (i *Interpreter) ErrorLevel() int { return i.errorLevel }

// SetErrorLevel sets the interpreter's exit code.
func (i *Interpreter) SetErrorLevel(code int) { i.errorLevel = code }

// OptionValue implements expand.Source over the option table.
func (i *Interpreter) OptionValue(name string) (string, bool) {
	opt, ok := i.reg.Option(name)
	if !ok {
		return "", false
	}
	return opt.Get(), true
}

// Expand performs $(Name) macro expansion against the option table.
func (i *Interpreter) Expand(text string) (string, error) {
	return expand.Expand(text, i)
}

// Context returns a dispatch context bound to the interpreter's current
// streams. Filters derive scoped variants of it with WithIO.
func (i *Interpreter) Context() shelltypes.Context {
	return &cmdContext{interp: i, in: i.in, out: i.out, errOut: i.errOut}
}

// Run performs a single dispatch through the filter chain. The
// interpreter's streams are restored on every return path, so redirection
// performed during the call never outlives it. Errors are returned to the
// caller unreported.
func (i *Interpreter) Run(args []string) error {
	in, out, errOut := i.in, i.out, i.errOut
	defer func() { i.in, i.out, i.errOut = in, out, errOut }()

	return i.chain.Invoker().Invoke(i.Context(), args)
}

// dispatch is the terminal chain link: it resolves the first token as a
// command name, macro-expands the remaining tokens, and invokes the
// command. An empty vector lists the available commands.
func (i *Interpreter) dispatch(ctx shelltypes.Context, args []string) error {
	if len(args) == 0 {
		builtin.PrintCommands(ctx)
		return nil
	}

	cmd, ok := i.reg.Command(args[0])
	if !ok {
		return shelltypes.Statusf("command not found: %s", args[0])
	}

	expanded := make([]string, 0, len(args)-1)
	for _, tok := range args[1:] {
		value, err := ctx.Expand(tok)
		if err != nil {
			return err
		}
		expanded = append(expanded, value)
	}

	i.log.Debug("dispatching", "command", cmd.Names()[0], "args", expanded)
	return cmd.Execute(ctx, expanded)
}

// Report prints err according to its kind and flips ErrorLevel to 1 if it
// was still at its default. Status errors print message-only; anything
// else also goes to the component log with full context. ErrQuit is
// control flow and never reported.
func (i *Interpreter) Report(err error) {
	if err == nil || errors.Is(err, shelltypes.ErrQuit) {
		return
	}
	if shelltypes.IsStatus(err) {
		fmt.Fprintf(i.errOut, "error: %s\n", err)
	} else {
		i.log.Error("command failed", "error", err)
		fmt.Fprintf(i.errOut, "error: %v\n", err)
	}
	if i.errorLevel == 0 {
		i.errorLevel = 1
	}
}
