package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"cmdshell/internal/commands/builtin"
	"cmdshell/internal/expand"
	"cmdshell/pkg/shelltypes"
)

// errInterrupted clears the current line without leaving the loop.
var errInterrupted = errors.New("interrupted")

// lineReader abstracts the blocking read at the heart of the loop so the
// loop logic is testable without a terminal.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// RunLoop drives the interactive read-eval loop until quit or end of
// input.
func (i *Interpreter) RunLoop() error {
	r, err := i.newLineReader()
	if err != nil {
		return err
	}
	defer r.Close()

	return i.runLoop(r)
}

// runLoop is the loop proper: render the expanded prompt, read one line,
// tokenize, push through the filter chain, report errors, repeat. Only
// quit and end of input end it; command failures are reported and the
// loop keeps accepting lines. The quit command exists only while the loop
// runs.
func (i *Interpreter) runLoop(r lineReader) error {
	quit := builtin.Quit()
	if err := i.reg.AddCommand(quit); err != nil {
		return err
	}
	defer i.reg.RemoveCommand(quit)

	for {
		prompt, err := i.Expand(i.prompt)
		if err != nil {
			// A broken template must not make the loop unusable.
			i.Report(err)
			prompt = i.prompt
		}

		line, err := r.ReadLine(prompt)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errInterrupted):
			continue
		case err != nil:
			return err
		}

		args, err := expand.Tokenize(line)
		if err != nil {
			i.Report(err)
			continue
		}

		err = i.Run(args)
		if errors.Is(err, shelltypes.ErrQuit) {
			return nil
		}
		i.Report(err)
	}
}

// newLineReader picks readline when standard input is a terminal and a
// plain buffered reader otherwise, so piped scripts work unchanged.
func (i *Interpreter) newLineReader() (lineReader, error) {
	if f, ok := i.in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return newTerminalReader(i)
	}
	return &plainReader{scanner: bufio.NewScanner(i.in), out: i.out}, nil
}

type terminalReader struct {
	rl *readline.Instance
}

func newTerminalReader(i *Interpreter) (*terminalReader, error) {
	stdin, ok := i.in.(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(i.in)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          i.prompt,
		Stdin:           stdin,
		Stdout:          i.out,
		Stderr:          i.errOut,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &terminalReader{rl: rl}, nil
}

func (t *terminalReader) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errInterrupted
	}
	return line, err
}

func (t *terminalReader) Close() error { return t.rl.Close() }

// plainReader reads lines from any reader, echoing the prompt itself.
type plainReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *plainReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *plainReader) Close() error { return nil }
