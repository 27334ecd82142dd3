package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/metrics"
)

// initializer prepares shared read-only state before the first request (ISP).
type initializer interface {
	Build(ctx context.Context) error
}

// Service is the recommendation orchestrator: build the candidate pool, walk
// the re-ranking chain, return the first stage's output that succeeds. It
// never fails while the catalog is non-empty.
type Service struct {
	catalog   catalogSource
	pool      *PoolBuilder
	chain     []Reranker
	heuristic *HeuristicStage
	index     initializer
	logger    *zap.Logger
}

// NewService wires the orchestrator. chain is tried in order; heuristic is
// the terminal stage and must also be the chain's last element.
func NewService(
	catalog catalogSource,
	pool *PoolBuilder,
	chain []Reranker,
	heuristic *HeuristicStage,
	index initializer,
	logger *zap.Logger,
) *Service {
	return &Service{
		catalog:   catalog,
		pool:      pool,
		chain:     chain,
		heuristic: heuristic,
		index:     index,
		logger:    logger,
	}
}

// GetRecommendations runs the full pipeline for one request. The result is
// empty only when the catalog is empty; every other failure degrades to a
// lower-quality stage instead of surfacing.
func (s *Service) GetRecommendations(
	ctx context.Context,
	req domain.RecommendationRequest,
) ([]domain.AnnotatedStrain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(s.catalog.All()) == 0 {
		s.logger.Warn("Empty catalog, no recommendations possible")
		return []domain.AnnotatedStrain{}, nil
	}

	if err := s.index.Build(ctx); err != nil {
		s.logger.Warn("Index initialization failed, continuing without it", zap.Error(err))
	}

	pool := s.pool.Build(ctx, req)
	s.logger.Debug("Candidate pool built",
		zap.Int("size", len(pool)),
		zap.String("mood", req.Mood))

	for _, stage := range s.chain {
		result, err := stage.Rerank(ctx, req, pool)
		if err != nil {
			s.logger.Warn("Rerank stage failed, escalating",
				zap.String("stage", stage.Name()),
				zap.Error(err))
			continue
		}
		metrics.RecommendationsTotal.WithLabelValues(stage.Name()).Inc()
		s.logger.Info("Recommendations produced",
			zap.String("stage", stage.Name()),
			zap.Int("count", len(result)))
		return result, nil
	}

	// The heuristic stage cannot fail on a non-empty catalog, so reaching
	// this point means the chain was miswired. Serve it directly.
	result, err := s.heuristic.Rerank(ctx, req, pool)
	if err != nil {
		s.logger.Error("Terminal heuristic stage failed", zap.Error(err))
		return []domain.AnnotatedStrain{}, nil
	}
	metrics.RecommendationsTotal.WithLabelValues(s.heuristic.Name()).Inc()
	return result, nil
}
