package shelltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// Cmd is a declarative command descriptor. Hosts build commands from
// literal tables instead of relying on runtime introspection of their
// types, which keeps registration statically checkable.
type Cmd struct {
	// Name is the display name; Aliases resolve to the same command.
	Name    string
	Aliases []string

	// Group is the help-listing category.
	Group string
	Desc  string

	// Hide excludes the command from listings without disabling it.
	Hide bool

	Run func(ctx Context, args []string) error
}

// Names returns the display name followed by any aliases.
func (c *Cmd) Names() []string { return append([]string{c.Name}, c.Aliases...) }

// Description returns the one-line summary.
func (c *Cmd) Description() string { return c.Desc }

// Category returns the help-listing group.
func (c *Cmd) Category() string { return c.Group }

// Hidden reports whether the command is excluded from listings.
func (c *Cmd) Hidden() bool { return c.Hide }

// Execute invokes the descriptor's Run function.
func (c *Cmd) Execute(ctx Context, args []string) error {
	if c.Run == nil {
		return fmt.Errorf("command %s has no body", c.Name)
	}
	return c.Run(ctx, args)
}

// Opt is a declarative option descriptor backed by get/set functions.
type Opt struct {
	Name    string
	Aliases []string
	Desc    string

	GetFunc func() string
	SetFunc func(value string) error
}

// Names returns the display name followed by any aliases.
func (o *Opt) Names() []string { return append([]string{o.Name}, o.Aliases...) }

// Description returns the one-line summary.
func (o *Opt) Description() string { return o.Desc }

// Get returns the current value, or the empty string for a nil GetFunc.
func (o *Opt) Get() string {
	if o.GetFunc == nil {
		return ""
	}
	return o.GetFunc()
}

// Set applies a new value through SetFunc.
func (o *Opt) Set(value string) error {
	if o.SetFunc == nil {
		return Statusf("option %s is read-only", o.Name)
	}
	return o.SetFunc(value)
}

// StringOpt binds an option to a string variable.
func StringOpt(name, desc string, target *string) *Opt {
	return &Opt{
		Name:    name,
		Desc:    desc,
		GetFunc: func() string { return *target },
		SetFunc: func(value string) error {
			*target = value
			return nil
		},
	}
}

// IntOpt binds an option to an int variable. A value that does not parse
// as an integer is rejected and the variable keeps its previous value.
func IntOpt(name, desc string, target *int) *Opt {
	return &Opt{
		Name:    name,
		Desc:    desc,
		GetFunc: func() string { return strconv.Itoa(*target) },
		SetFunc: func(value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return Statusf("option %s expects an integer, got %q", name, value)
			}
			*target = n
			return nil
		},
	}
}

// BoolOpt binds an option to a bool variable, accepting the forms
// strconv.ParseBool accepts.
func BoolOpt(name, desc string, target *bool) *Opt {
	return &Opt{
		Name:    name,
		Desc:    desc,
		GetFunc: func() string { return strconv.FormatBool(*target) },
		SetFunc: func(value string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return Statusf("option %s expects a boolean, got %q", name, value)
			}
			*target = b
			return nil
		},
	}
}
