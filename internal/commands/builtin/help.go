// Package builtin provides the commands every interpreter instance is
// born with: help, get, and set, plus the loop-scoped quit command.
package builtin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cmdshell/pkg/shelltypes"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Commands returns the descriptors pre-registered by every interpreter.
// Quit is not among them; it is registered only for the duration of an
// interactive loop.
func Commands() []shelltypes.Command {
	return []shelltypes.Command{Help(), Get(), Set()}
}

// Help returns the help command: a category-grouped listing, or details
// for one command when a name is given.
func Help() shelltypes.Command {
	return &shelltypes.Cmd{
		Name:    "help",
		Aliases: []string{"?"},
		Group:   "Shell",
		Desc:    "List commands, or show details for one command",
		Run:     runHelp,
	}
}

func runHelp(ctx shelltypes.Context, args []string) error {
	if len(args) == 0 {
		PrintCommands(ctx)
		return nil
	}

	cmd, ok := ctx.LookupCommand(args[0])
	if !ok {
		return shelltypes.Statusf("command not found: %s", args[0])
	}

	names := cmd.Names()
	fmt.Fprintln(ctx.Out(), headingStyle.Render(names[0]))
	if len(names) > 1 {
		fmt.Fprintf(ctx.Out(), "  aliases: %s\n", strings.Join(names[1:], ", "))
	}
	if cmd.Category() != "" {
		fmt.Fprintf(ctx.Out(), "  category: %s\n", cmd.Category())
	}
	if cmd.Description() != "" {
		fmt.Fprintf(ctx.Out(), "  %s\n", cmd.Description())
	}
	return nil
}

// PrintCommands writes the visible commands grouped by category. The
// terminal dispatcher also uses it for empty input, which is defined to
// list rather than fail.
func PrintCommands(ctx shelltypes.Context) {
	byGroup := make(map[string][]shelltypes.Command)
	for _, cmd := range ctx.Commands() {
		if cmd.Hidden() {
			continue
		}
		group := cmd.Category()
		if group == "" {
			group = "Other"
		}
		byGroup[group] = append(byGroup[group], cmd)
	}

	groups := make([]string, 0, len(byGroup))
	for group := range byGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		fmt.Fprintln(ctx.Out(), headingStyle.Render(group))
		for _, cmd := range byGroup[group] {
			fmt.Fprintf(ctx.Out(), "  %-12s %s\n", cmd.Names()[0], cmd.Description())
		}
	}
}
