// Package chain builds the precedence-ordered filter chain that wraps
// every command dispatch. The chain ends in a terminal invoker that does
// the actual name resolution; each registered filter becomes a link ahead
// of it. The built chain is memoized and invalidated by any mutation.
package chain

import (
	"sort"
	"strings"

	"cmdshell/pkg/shelltypes"
)

// DefaultOrder ranks redirect filters ahead of pipe filters; filters whose
// keys appear in neither position run last.
const DefaultOrder = ">|"

// Chain owns the registered filters, the precedence specification, and the
// memoized dispatch chain.
type Chain struct {
	filters  []shelltypes.Filter
	order    string
	terminal shelltypes.Invoker
	memo     shelltypes.Invoker
}

// New creates a chain around the given terminal invoker, using
// DefaultOrder as the precedence specification.
func New(terminal shelltypes.Invoker) *Chain {
	return &Chain{terminal: terminal, order: DefaultOrder}
}

// Add registers a filter and invalidates the memoized chain.
func (c *Chain) Add(f shelltypes.Filter) {
	c.filters = append(c.filters, f)
	c.memo = nil
}

// Order returns the precedence specification.
func (c *Chain) Order() string { return c.order }

// SetOrder replaces the precedence specification, invalidating the
// memoized chain if the specification actually changed.
func (c *Chain) SetOrder(order string) {
	if order == c.order {
		return
	}
	c.order = order
	c.memo = nil
}

// Len returns the number of registered filters.
func (c *Chain) Len() int { return len(c.filters) }

// Invoker returns the dispatch chain, rebuilding it if a filter was added
// or the precedence order changed since the last build. The rebuild is
// pure: it depends only on the current filter set and order string.
func (c *Chain) Invoker() shelltypes.Invoker {
	if c.memo == nil {
		c.memo = c.build()
	}
	return c.memo
}

// rank is the earliest position in the order string of any of the
// filter's precedence keys; len(order) marks an unranked filter, which
// sorts after every ranked one.
func (c *Chain) rank(f shelltypes.Filter) int {
	keys := f.Keys()
	for pos, ch := range c.order {
		if strings.ContainsRune(keys, ch) {
			return pos
		}
	}
	return len(c.order)
}

func (c *Chain) build() shelltypes.Invoker {
	sorted := make([]shelltypes.Filter, len(c.filters))
	copy(sorted, c.filters)
	// Stable, so filters tied on rank keep registration order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.rank(sorted[i]) < c.rank(sorted[j])
	})

	// Assemble back to front: the highest-precedence filter ends up
	// outermost, so runtime traversal order equals ascending rank.
	inv := c.terminal
	for i := len(sorted) - 1; i >= 0; i-- {
		inv = &link{filter: sorted[i], next: inv}
	}
	return inv
}

// link pairs one filter with the rest of the chain.
type link struct {
	filter shelltypes.Filter
	next   shelltypes.Invoker
}

func (l *link) Invoke(ctx shelltypes.Context, args []string) error {
	return l.filter.Apply(ctx, args, l.next)
}
