package placement

import (
	"sync"

	"k8s.io/klog/v2"
)

// Archive keeps the distinct feasible placements found during a search run.
// Entries are kept in insertion order, which is the order the pruning pass
// walks them in.
//
// Archive is safe for concurrent use; updates are serialised.
type Archive struct {
	mu      sync.RWMutex
	entries []*Placement
	logger  klog.Logger
}

func NewArchive(logger klog.Logger) *Archive {
	return &Archive{
		logger: logger,
	}
}

// Offer runs one archive update for a feasible placement p and reports
// whether p was inserted.
//
// Starting from best = p.Obj, every stored entry whose Obj exceeds the running
// best is dropped, otherwise best becomes that entry's Obj. Then p is appended
// unless a retained entry has the same location sequence.
func (a *Archive) Offer(p *Placement) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	best := p.Obj
	retained := make([]*Placement, 0, len(a.entries)+1)
	for _, e := range a.entries {
		if e.Obj > best {
			continue
		}
		best = e.Obj
		retained = append(retained, e)
	}
	pruned := len(a.entries) - len(retained)

	inserted := true
	for _, e := range retained {
		if e.SameLocations(p) {
			inserted = false
			break
		}
	}
	if inserted {
		retained = append(retained, p)
	}
	a.entries = retained

	if pruned > 0 || inserted {
		a.logger.V(5).Info("archive updated", "obj", p.Obj, "inserted", inserted, "pruned", pruned, "size", len(retained))
	}
	return inserted
}

// Len is the number of stored placements.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Snapshot returns the stored placements in iteration order. The slice is a
// copy; the placements are shared and must not be modified.
func (a *Archive) Snapshot() []*Placement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Placement, len(a.entries))
	copy(out, a.entries)
	return out
}

// Best returns the entry with the lowest Obj, the earliest one on ties, or
// nil when the archive is empty.
func (a *Archive) Best() *Placement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var best *Placement
	for _, e := range a.entries {
		if best == nil || e.Obj < best.Obj {
			best = e
		}
	}
	return best
}

// Select returns the last entry whose Obj equals obj, as reported by the
// search engine for its best solution, falling back to Best.
func (a *Archive) Select(obj float64) *Placement {
	a.mu.RLock()
	var match *Placement
	for _, e := range a.entries {
		if e.Obj == obj {
			match = e
		}
	}
	a.mu.RUnlock()

	if match != nil {
		return match
	}
	return a.Best()
}

// Reset empties the archive.
func (a *Archive) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = nil
}
