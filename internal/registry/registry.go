// Package registry provides the interpreter's name registry: unique,
// case-insensitive mappings from name to command and from name to option.
// Commands and options live in separate tables, so a command and an option
// may share a name, but names are unique within each table.
package registry

import (
	"sort"
	"strings"
	"sync"

	"cmdshell/pkg/shelltypes"
)

// Registry holds the command and option tables for one interpreter.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]shelltypes.Command
	options  map[string]shelltypes.Option
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]shelltypes.Command),
		options:  make(map[string]shelltypes.Option),
	}
}

// AddCommand registers cmd under every one of its names. Registration
// fails without side effects if any name is empty or already taken.
func (r *Registry) AddCommand(cmd shelltypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := cmd.Names()
	if len(names) == 0 || names[0] == "" {
		return shelltypes.Statusf("command name cannot be empty")
	}
	for _, name := range names {
		if _, exists := r.commands[strings.ToLower(name)]; exists {
			return shelltypes.Statusf("command %q already registered", name)
		}
	}
	for _, name := range names {
		r.commands[strings.ToLower(name)] = cmd
	}
	return nil
}

// RemoveCommand unregisters every name of cmd. Removing a command that is
// not registered is a no-op.
func (r *Registry) RemoveCommand(cmd shelltypes.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range cmd.Names() {
		key := strings.ToLower(name)
		// Only drop names that actually resolve to this command, so an
		// unregistered command cannot evict another one's name.
		if existing, ok := r.commands[key]; ok && existing == cmd {
			delete(r.commands, key)
		}
	}
}

// AddOption registers opt under every one of its names. Registration
// fails without side effects if any name is empty or already taken.
func (r *Registry) AddOption(opt shelltypes.Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := opt.Names()
	if len(names) == 0 || names[0] == "" {
		return shelltypes.Statusf("option name cannot be empty")
	}
	for _, name := range names {
		if _, exists := r.options[strings.ToLower(name)]; exists {
			return shelltypes.Statusf("option %q already registered", name)
		}
	}
	for _, name := range names {
		r.options[strings.ToLower(name)] = opt
	}
	return nil
}

// Command resolves a name case-insensitively. Exact match only: no prefix
// or fuzzy matching.
func (r *Registry) Command(name string) (shelltypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Option resolves a name case-insensitively.
func (r *Registry) Option(name string) (shelltypes.Option, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	opt, ok := r.options[strings.ToLower(name)]
	return opt, ok
}

// Commands returns a snapshot of the registered commands, de-duplicated by
// identity and sorted by display name. A command registered under several
// names appears once.
func (r *Registry) Commands() []shelltypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shelltypes.Command]struct{}, len(r.commands))
	out := make([]shelltypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if _, dup := seen[cmd]; dup {
			continue
		}
		seen[cmd] = struct{}{}
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Names()[0]) < strings.ToLower(out[j].Names()[0])
	})
	return out
}

// Options returns a snapshot of the registered options, de-duplicated by
// identity and sorted by display name.
func (r *Registry) Options() []shelltypes.Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shelltypes.Option]struct{}, len(r.options))
	out := make([]shelltypes.Option, 0, len(r.options))
	for _, opt := range r.options {
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		out = append(out, opt)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Names()[0]) < strings.ToLower(out[j].Names()[0])
	})
	return out
}
