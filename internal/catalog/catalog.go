// Package catalog holds the read-mostly strain catalog and the curated
// priority pool. Both use swap-on-write snapshots: readers never observe a
// partially updated collection.
package catalog

import (
	"sort"
	"sync/atomic"

	"github.com/strainwise/strainwise/internal/domain"
)

// Catalog is the in-memory strain store. Loaded once at startup; replaced
// wholesale by an out-of-band refresh if one runs.
type Catalog struct {
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	strains []domain.Strain
	byID    map[string]int
}

// New creates a catalog from the given strains.
func New(strains []domain.Strain) *Catalog {
	c := &Catalog{}
	c.Replace(strains)
	return c
}

// NewSeeded creates a catalog loaded with the built-in seed dataset.
func NewSeeded() *Catalog {
	return New(seedStrains())
}

// Replace swaps the entire catalog contents. Safe under concurrent readers.
func (c *Catalog) Replace(strains []domain.Strain) {
	snap := &snapshot{
		strains: make([]domain.Strain, len(strains)),
		byID:    make(map[string]int, len(strains)),
	}
	copy(snap.strains, strains)
	for i, s := range snap.strains {
		snap.byID[s.ID] = i
	}
	c.snapshot.Store(snap)
}

// All returns every catalog strain. The returned slice is a copy; callers may
// reorder it freely.
func (c *Catalog) All() []domain.Strain {
	snap := c.snapshot.Load()
	out := make([]domain.Strain, len(snap.strains))
	copy(out, snap.strains)
	return out
}

// ByID returns the strain with the given id, or domain.ErrStrainNotFound.
func (c *Catalog) ByID(id string) (domain.Strain, error) {
	snap := c.snapshot.Load()
	i, ok := snap.byID[id]
	if !ok {
		return domain.Strain{}, domain.ErrStrainNotFound
	}
	return snap.strains[i], nil
}

// Len returns the number of catalog strains.
func (c *Catalog) Len() int {
	return len(c.snapshot.Load().strains)
}

// TopRated returns up to n strains ordered by rating desc.
func (c *Catalog) TopRated(n int) []domain.Strain {
	all := c.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rating > all[j].Rating
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
