package filters

import (
	"bytes"
	"os/exec"

	"cmdshell/pkg/shelltypes"
)

// Pipe feeds command output through an external process when the argument
// vector carries a "|" token: everything before the bar dispatches
// normally into a buffer, everything after names the process and its
// arguments.
type Pipe struct{}

// NewPipe creates the pipe filter.
func NewPipe() *Pipe { return &Pipe{} }

// Keys ranks piping by the "|" precedence key.
func (p *Pipe) Keys() string { return "|" }

// Apply runs the rest of the chain with output captured, then streams the
// capture through the external process. A failure on the left side skips
// the process entirely.
func (p *Pipe) Apply(ctx shelltypes.Context, args []string, next shelltypes.Invoker) error {
	left, right, found := splitPipe(args)
	if !found {
		return next.Invoke(ctx, args)
	}
	if len(right) == 0 {
		return shelltypes.Statusf(`missing command after "|"`)
	}

	var buf bytes.Buffer
	if err := next.Invoke(ctx.WithIO(nil, &buf, nil), left); err != nil {
		return err
	}

	cmd := exec.Command(right[0], right[1:]...)
	cmd.Stdin = &buf
	cmd.Stdout = ctx.Out()
	cmd.Stderr = ctx.ErrOut()
	if err := cmd.Run(); err != nil {
		return shelltypes.Statusf("pipe to %s: %v", right[0], err)
	}
	return nil
}

// splitPipe cuts the vector at the first bare "|" token.
func splitPipe(args []string) (left, right []string, found bool) {
	for i, tok := range args {
		if tok == "|" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
