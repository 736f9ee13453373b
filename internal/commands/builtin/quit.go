package builtin

import "cmdshell/pkg/shelltypes"

// Quit returns the quit command. The interactive loop registers it on
// entry and removes it on exit; one-shot dispatch never sees it.
func Quit() shelltypes.Command {
	return &shelltypes.Cmd{
		Name:    "quit",
		Aliases: []string{"exit", "q"},
		Group:   "Shell",
		Desc:    "Leave the interpreter loop",
		Run: func(shelltypes.Context, []string) error {
			return shelltypes.ErrQuit
		},
	}
}
