package host

import (
	"context"
	"sync"

	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/ga"
	"github.com/evocore/evo/rng"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// A Host registers a set of islands (ga.Population) and routes migrants
// between them (spec.md §4.9). It implements ga.MigrationHost, so a
// Population only ever sees the small interface ga defines, never this
// package — host depends on ga, not the other way around.
type Host struct {
	mu          sync.RWMutex
	id          uuid.UUID
	populations map[uuid.UUID]*ga.Population
	topology    *Topology
}

// New returns an empty Host.
func New() *Host {
	return &Host{id: uuid.New(), populations: make(map[uuid.UUID]*ga.Population)}
}

// HostID returns the host's stable identifier.
func (h *Host) HostID() uuid.UUID { return h.id }

// SetTopology restricts migration to t's adjacency; nil reverts to the
// default "any other island" routing.
func (h *Host) SetTopology(t *Topology) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.topology = t
}

// Join registers p with the host and wires p to route emigrants through it.
func (h *Host) Join(p *ga.Population) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.populations[p.IslandID()] = p
	p.SetHost(h)
}

// Leave unregisters an island, e.g. once its Evolve has returned.
func (h *Host) Leave(islandID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.populations, islandID)
}

// Islands returns the ids of every registered island.
func (h *Host) Islands() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(h.populations))
	for id := range h.populations {
		out = append(out, id)
	}
	return out
}

// CanMigrate reports whether the host has at least two islands to route
// between.
func (h *Host) CanMigrate() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.populations) > 1
}

// MigrateEntity routes e, emigrating from the island identified by from, to
// a uniformly random eligible island (per the topology, if set), enqueueing
// it on that island's inbound migration queue. It returns whether a
// destination was found; the caller only detaches e from its own
// population once this returns true (spec.md §4.9).
func (h *Host) MigrateEntity(from uuid.UUID, e *entity.Entity) bool {
	h.mu.RLock()
	candidates := make([]uuid.UUID, 0, len(h.populations))
	for id := range h.populations {
		if id == from {
			continue
		}
		if !h.topology.Allows(from, id) {
			continue
		}
		candidates = append(candidates, id)
	}
	h.mu.RUnlock()
	if len(candidates) == 0 {
		return false
	}

	to := candidates[rng.NextIntn(len(candidates))]

	h.mu.RLock()
	dest := h.populations[to]
	h.mu.RUnlock()
	if dest == nil {
		return false
	}
	dest.Receive(ga.Migrant{From: from, Entity: e})
	return true
}

// AsyncHost is a Host that evolves every registered island concurrently
// (spec.md §5's "single-process with optional thread pools" extended to
// island level), using golang.org/x/sync/errgroup so the first island
// error cancels every other island's context (SPEC_FULL.md §10).
type AsyncHost struct {
	*Host
}

// NewAsync returns an empty AsyncHost.
func NewAsync() *AsyncHost {
	return &AsyncHost{Host: New()}
}

// EvolveAll runs Evolve on every registered island concurrently and blocks
// until all have returned or ctx is cancelled, returning the first error
// encountered.
func (a *AsyncHost) EvolveAll(ctx context.Context) error {
	a.mu.RLock()
	pops := make([]*ga.Population, 0, len(a.populations))
	for _, p := range a.populations {
		pops = append(pops, p)
	}
	a.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range pops {
		p := p
		g.Go(func() error {
			return p.Evolve(gctx)
		})
	}
	return g.Wait()
}
