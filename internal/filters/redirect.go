// Package filters provides the stock cross-cutting filters: redirecting
// command output to a file and piping it through an external process.
// Both work by deriving a scoped context for the rest of the chain, so
// the rewiring never outlives one dispatch.
package filters

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	"cmdshell/pkg/shelltypes"
)

// Redirect sends command output to a file when the argument vector
// carries a ">" or ">>" token (or the attached ">file" form). The target
// name is macro-expanded before opening.
type Redirect struct {
	fs afero.Fs
}

// NewRedirect creates the redirect filter over fs; nil means the real
// filesystem.
func NewRedirect(fs afero.Fs) *Redirect {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Redirect{fs: fs}
}

// Keys ranks redirection by the ">" precedence key.
func (r *Redirect) Keys() string { return ">" }

// Apply strips the redirection tokens and runs the rest of the chain with
// standard output rewired to the target file.
func (r *Redirect) Apply(ctx shelltypes.Context, args []string, next shelltypes.Invoker) error {
	op, target, rest, err := splitRedirect(args)
	if err != nil {
		return err
	}
	if op == "" {
		return next.Invoke(ctx, args)
	}

	target, err = ctx.Expand(target)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if op == ">>" {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	file, err := r.fs.OpenFile(target, flags, 0o644)
	if err != nil {
		return shelltypes.Statusf("cannot redirect to %s: %v", target, err)
	}

	invokeErr := next.Invoke(ctx.WithIO(nil, file, nil), rest)
	if closeErr := file.Close(); invokeErr == nil {
		invokeErr = closeErr
	}
	return invokeErr
}

// splitRedirect finds the first redirection token. It returns op == ""
// when the vector has none; otherwise op is ">" or ">>", target the file
// name, and rest the vector with the redirection removed.
func splitRedirect(args []string) (op, target string, rest []string, err error) {
	for i, tok := range args {
		if !strings.HasPrefix(tok, ">") {
			continue
		}
		op, spec := ">", tok[1:]
		if strings.HasPrefix(spec, ">") {
			op, spec = ">>", spec[1:]
		}
		switch {
		case spec != "":
			target = spec
			rest = append(append([]string{}, args[:i]...), args[i+1:]...)
		case i+1 < len(args):
			target = args[i+1]
			rest = append(append([]string{}, args[:i]...), args[i+2:]...)
		default:
			return "", "", nil, shelltypes.Statusf("missing redirect target after %q", op)
		}
		return op, target, rest, nil
	}
	return "", "", args, nil
}
