package builtin

import (
	"strings"

	"cmdshell/pkg/shelltypes"
)

// Set returns the set command. With no arguments it lists every option
// like bare get; with a name and a value it assigns the option, joining
// multi-token values with single spaces.
func Set() shelltypes.Command {
	return &shelltypes.Cmd{
		Name:  "set",
		Group: "Shell",
		Desc:  "Assign an option value",
		Run:   runSet,
	}
}

func runSet(ctx shelltypes.Context, args []string) error {
	switch len(args) {
	case 0:
		printOptions(ctx)
		return nil
	case 1:
		return shelltypes.Statusf("usage: set <option> <value>")
	}

	opt, ok := ctx.LookupOption(args[0])
	if !ok {
		return shelltypes.Statusf("unknown option %q", args[0])
	}
	return opt.Set(strings.Join(args[1:], " "))
}
