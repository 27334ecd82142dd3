package recommend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/vector"
)

// prioritySource supplies the curated high-popularity subset (ISP).
type prioritySource interface {
	Current() []domain.Strain
}

// ratedSource supplies rating-ordered catalog strains (ISP).
type ratedSource interface {
	TopRated(n int) []domain.Strain
}

// similarityIndex answers nearest-neighbour queries over the catalog (ISP).
type similarityIndex interface {
	FindSimilar(ctx context.Context, query string, k int) ([]vector.Hit, error)
}

// PoolBuilder assembles the candidate set fed to the re-ranking chain:
// priority subset first, then similarity hits, then top-rated backfill.
// The pool is deduplicated by id and capped at poolSize.
type PoolBuilder struct {
	priority prioritySource
	index    similarityIndex
	rated    ratedSource
	poolSize int
	simK     int
	logger   *zap.Logger

	now func() time.Time
}

// NewPoolBuilder creates a pool builder producing at most poolSize candidates,
// of which up to simK come from the similarity index.
func NewPoolBuilder(
	priority prioritySource,
	index similarityIndex,
	rated ratedSource,
	poolSize, simK int,
	logger *zap.Logger,
) *PoolBuilder {
	return &PoolBuilder{
		priority: priority,
		index:    index,
		rated:    rated,
		poolSize: poolSize,
		simK:     simK,
		logger:   logger,
		now:      time.Now,
	}
}

// Build assembles the candidate pool for one request. A similarity index
// failure narrows the pool to priority plus backfill instead of failing the
// request.
func (b *PoolBuilder) Build(ctx context.Context, req domain.RecommendationRequest) []domain.Strain {
	pool := make([]domain.Strain, 0, b.poolSize)
	seen := make(map[string]struct{}, b.poolSize)

	add := func(s domain.Strain) bool {
		if len(pool) >= b.poolSize {
			return false
		}
		if _, dup := seen[s.ID]; dup {
			return true
		}
		seen[s.ID] = struct{}{}
		pool = append(pool, s)
		return true
	}

	for _, s := range b.priority.Current() {
		if !add(s) {
			return pool
		}
	}

	query := req.QueryText(b.now())
	hits, err := b.index.FindSimilar(ctx, query, b.simK)
	if err != nil {
		b.logger.Warn("Similarity search failed, pool built without it",
			zap.String("query", query),
			zap.Error(err))
	}
	for _, h := range hits {
		if !add(h.Strain) {
			return pool
		}
	}

	for _, s := range b.rated.TopRated(b.poolSize) {
		if !add(s) {
			return pool
		}
	}

	return pool
}
