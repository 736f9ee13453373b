package shell

import (
	"io"

	"cmdshell/pkg/shelltypes"
)

// cmdContext is the shelltypes.Context handed to commands and filters.
// Stream fields are per-context, so a filter that derives a variant with
// WithIO redirects only the invocations below it in the chain.
type cmdContext struct {
	interp *Interpreter
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (c *cmdContext) In() io.Reader     { return c.in }
func (c *cmdContext) Out() io.Writer    { return c.out }
func (c *cmdContext) ErrOut() io.Writer { return c.errOut }

func (c *cmdContext) WithIO(in io.Reader, out, errOut io.Writer) shelltypes.Context {
	derived := *c
	if in != nil {
		derived.in = in
	}
	if out != nil {
		derived.out = out
	}
	if errOut != nil {
		derived.errOut = errOut
	}
	return &derived
}

func (c *cmdContext) LookupCommand(name string) (shelltypes.Command, bool) {
	return c.interp.reg.Command(name)
}

func (c *cmdContext) Commands() []shelltypes.Command {
	return c.interp.reg.Commands()
}

func (c *cmdContext) LookupOption(name string) (shelltypes.Option, bool) {
	return c.interp.reg.Option(name)
}

func (c *cmdContext) Options() []shelltypes.Option {
	return c.interp.reg.Options()
}

func (c *cmdContext) Expand(text string) (string, error) {
	return c.interp.Expand(text)
}

func (c *cmdContext) ErrorLevel() int { return c.interp.ErrorLevel() }

func (c *cmdContext) SetErrorLevel(code int) { c.interp.SetErrorLevel(code) }
