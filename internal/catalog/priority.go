package catalog

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

// PriorityPool holds the curated high-popularity subset of the catalog.
// It is refreshed out of band from external popularity sources and read on
// every recommendation request, so reads take an atomic snapshot.
type PriorityPool struct {
	catalog *Catalog
	size    int
	log     *zap.Logger

	current atomic.Pointer[[]domain.Strain]
}

// NewPriorityPool builds a pool over catalog backfilled to size entries.
// The initial contents come from the static curated subset.
func NewPriorityPool(catalog *Catalog, size int, log *zap.Logger) *PriorityPool {
	p := &PriorityPool{catalog: catalog, size: size, log: log}

	seeded := make([]domain.Strain, 0, size)
	for _, id := range seedPriorityIDs() {
		if s, err := catalog.ByID(id); err == nil {
			seeded = append(seeded, s)
		}
	}
	p.store(p.backfill(seeded))
	return p
}

// Current returns the priority strains. The returned slice is a copy.
func (p *PriorityPool) Current() []domain.Strain {
	snap := *p.current.Load()
	out := make([]domain.Strain, len(snap))
	copy(out, snap)
	return out
}

// Update resolves the given strain names against the catalog and swaps in a
// new pool. Names resolve by exact match first, then by partial match in
// either direction; unresolved names are skipped. The result is deduplicated
// and backfilled with top-rated strains up to the pool size.
func (p *PriorityPool) Update(names []string) {
	resolved := make([]domain.Strain, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		s, ok := p.resolve(name)
		if !ok {
			p.log.Debug("priority name not in catalog", zap.String("name", name))
			continue
		}
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		resolved = append(resolved, s)
		if len(resolved) == p.size {
			break
		}
	}

	pool := p.backfill(resolved)
	p.store(pool)
	p.log.Info("priority pool updated",
		zap.Int("resolved", len(resolved)),
		zap.Int("total", len(pool)))
}

func (p *PriorityPool) resolve(name string) (domain.Strain, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return domain.Strain{}, false
	}

	all := p.catalog.All()
	for _, s := range all {
		if strings.ToLower(s.Name) == want {
			return s, true
		}
	}
	for _, s := range all {
		have := strings.ToLower(s.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return s, true
		}
	}
	return domain.Strain{}, false
}

// backfill pads pool with top-rated catalog strains not already present.
func (p *PriorityPool) backfill(pool []domain.Strain) []domain.Strain {
	if len(pool) >= p.size {
		return pool[:p.size]
	}
	present := make(map[string]struct{}, len(pool))
	for _, s := range pool {
		present[s.ID] = struct{}{}
	}
	for _, s := range p.catalog.TopRated(p.catalog.Len()) {
		if len(pool) == p.size {
			break
		}
		if _, ok := present[s.ID]; ok {
			continue
		}
		present[s.ID] = struct{}{}
		pool = append(pool, s)
	}
	return pool
}

func (p *PriorityPool) store(pool []domain.Strain) {
	p.current.Store(&pool)
}
