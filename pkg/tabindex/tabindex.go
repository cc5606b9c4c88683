// Package tabindex hands out tab and list indexes to widgets. The host owns
// one Allocator and passes it to every widget it mounts.
package tabindex

import "sync/atomic"

// Allocator issues monotonically increasing indexes starting at 1.
type Allocator struct {
	tab  atomic.Int64
	list atomic.Int64
}

// New returns a fresh allocator.
func New() *Allocator { return &Allocator{} }

// NextTab returns the next tab index.
func (a *Allocator) NextTab() int { return int(a.tab.Add(1)) }

// NextList returns the next list index, used to name detached list nodes.
func (a *Allocator) NextList() int { return int(a.list.Add(1)) }
