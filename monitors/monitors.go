// Package monitors prepares the monitor list of a project for the
// automations drawer.
package monitors

import (
	"sync"

	"github.com/vistack/dashboard/model"
)

// Partition splits ms into the monitors connected to the current view
// and the rest. Relative order is kept on both sides, ms is not
// written to, and both results are non-nil.
func Partition(ms []model.Monitor) (connected, unconnected []model.Monitor) {
	connected = []model.Monitor{}
	unconnected = []model.Monitor{}
	for _, m := range ms {
		if m.Connected {
			connected = append(connected, m)
		} else {
			unconnected = append(unconnected, m)
		}
	}
	return connected, unconnected
}

// Partitioner memoizes Partition on the identity of the input slice.
// The drawer asks for the split far more often than the list changes,
// so a call with the unchanged slice returns the cached result. A
// slice with the same backing array and length counts as unchanged,
// element rewrites in place do not invalidate the cache.
type Partitioner struct {
	mu sync.Mutex

	cached   bool
	lastHead *model.Monitor
	lastLen  int

	connected   []model.Monitor
	unconnected []model.Monitor

	computes int
}

func (p *Partitioner) Partition(ms []model.Monitor) (connected, unconnected []model.Monitor) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var head *model.Monitor
	if len(ms) > 0 {
		head = &ms[0]
	}
	if p.cached && head == p.lastHead && len(ms) == p.lastLen {
		return p.connected, p.unconnected
	}

	p.connected, p.unconnected = Partition(ms)
	p.cached = true
	p.lastHead = head
	p.lastLen = len(ms)
	p.computes++
	return p.connected, p.unconnected
}

// Computes returns how many times the split was actually recomputed.
func (p *Partitioner) Computes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.computes
}

// Invalidate drops the cached result, the next call recomputes.
func (p *Partitioner) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = false
	p.lastHead = nil
	p.lastLen = 0
	p.connected = nil
	p.unconnected = nil
}
