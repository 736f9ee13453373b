package filters

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdshell/internal/shell"
	"cmdshell/pkg/shelltypes"
)

func echoHandler() shelltypes.Handler {
	return shelltypes.HandlerSet{
		Cmds: []shelltypes.Command{
			&shelltypes.Cmd{
				Name:  "say",
				Group: "Test",
				Desc:  "print arguments",
				Run: func(ctx shelltypes.Context, args []string) error {
					_, err := fmt.Fprintln(ctx.Out(), strings.Join(args, " "))
					return err
				},
			},
		},
	}
}

func TestSplitRedirect(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		op     string
		target string
		rest   []string
	}{
		{"no redirect", []string{"say", "hi"}, "", "", nil},
		{"separate token", []string{"say", "hi", ">", "out.txt"}, ">", "out.txt", []string{"say", "hi"}},
		{"append token", []string{"say", "hi", ">>", "out.txt"}, ">>", "out.txt", []string{"say", "hi"}},
		{"attached target", []string{"say", "hi", ">out.txt"}, ">", "out.txt", []string{"say", "hi"}},
		{"attached append", []string{"say", ">>log"}, ">>", "log", []string{"say"}},
		{"mid-vector", []string{"say", ">", "f", "tail"}, ">", "f", []string{"say", "tail"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, target, rest, err := splitRedirect(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, tt.target, target)
			if tt.op != "" {
				assert.Equal(t, tt.rest, rest)
			}
		})
	}
}

func TestSplitRedirect_MissingTarget(t *testing.T) {
	_, _, _, err := splitRedirect([]string{"say", ">"})
	require.Error(t, err)
	assert.True(t, shelltypes.IsStatus(err))
}

func TestRedirect_WritesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)

	var out bytes.Buffer
	interp.SetIO(strings.NewReader(""), &out, &out)
	interp.AddFilter(NewRedirect(fs))

	require.NoError(t, interp.Run([]string{"say", "hello", ">", "greeting.txt"}))

	content, err := afero.ReadFile(fs, "greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
	assert.Empty(t, out.String(), "redirected output must not reach the interpreter's stream")
}

func TestRedirect_AppendAccumulates(t *testing.T) {
	fs := afero.NewMemMapFs()
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)
	interp.SetIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	interp.AddFilter(NewRedirect(fs))

	require.NoError(t, interp.Run([]string{"say", "one", ">>", "log"}))
	require.NoError(t, interp.Run([]string{"say", "two", ">>", "log"}))

	content, err := afero.ReadFile(fs, "log")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestRedirect_ScopedToOneInvocation(t *testing.T) {
	fs := afero.NewMemMapFs()
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)

	var out bytes.Buffer
	interp.SetIO(strings.NewReader(""), &out, &out)
	interp.AddFilter(NewRedirect(fs))

	require.NoError(t, interp.Run([]string{"say", "filed", ">", "f"}))
	require.NoError(t, interp.Run([]string{"say", "screened"}))

	assert.Equal(t, "screened\n", out.String())
}

func TestRedirect_PassThroughWithoutToken(t *testing.T) {
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)

	var out bytes.Buffer
	interp.SetIO(strings.NewReader(""), &out, &out)
	interp.AddFilter(NewRedirect(afero.NewMemMapFs()))

	require.NoError(t, interp.Run([]string{"say", "plain"}))
	assert.Equal(t, "plain\n", out.String())
}

func TestSplitPipe(t *testing.T) {
	left, right, found := splitPipe([]string{"say", "hi", "|", "sort", "-r"})
	assert.True(t, found)
	assert.Equal(t, []string{"say", "hi"}, left)
	assert.Equal(t, []string{"sort", "-r"}, right)

	_, _, found = splitPipe([]string{"say", "hi"})
	assert.False(t, found)
}

func TestPipe_PassThroughWithoutToken(t *testing.T) {
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)

	var out bytes.Buffer
	interp.SetIO(strings.NewReader(""), &out, &out)
	interp.AddFilter(NewPipe())

	require.NoError(t, interp.Run([]string{"say", "direct"}))
	assert.Equal(t, "direct\n", out.String())
}

func TestPipe_MissingProcess(t *testing.T) {
	interp, err := shell.New(echoHandler())
	require.NoError(t, err)
	interp.SetIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	interp.AddFilter(NewPipe())

	err = interp.Run([]string{"say", "hi", "|"})
	require.Error(t, err)
	assert.True(t, shelltypes.IsStatus(err))
}
