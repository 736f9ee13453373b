package builtin

import (
	"fmt"

	"cmdshell/pkg/shelltypes"
)

// Get returns the get command: it prints the value of each named option,
// or every option when called bare.
func Get() shelltypes.Command {
	return &shelltypes.Cmd{
		Name:  "get",
		Group: "Shell",
		Desc:  "Print option values; all options when no name is given",
		Run:   runGet,
	}
}

func runGet(ctx shelltypes.Context, args []string) error {
	if len(args) == 0 {
		printOptions(ctx)
		return nil
	}
	for _, name := range args {
		opt, ok := ctx.LookupOption(name)
		if !ok {
			return shelltypes.Statusf("unknown option %q", name)
		}
		fmt.Fprintf(ctx.Out(), "%s=%s\n", opt.Names()[0], opt.Get())
	}
	return nil
}

func printOptions(ctx shelltypes.Context) {
	for _, opt := range ctx.Options() {
		fmt.Fprintf(ctx.Out(), "%s=%s\n", opt.Names()[0], opt.Get())
	}
}
