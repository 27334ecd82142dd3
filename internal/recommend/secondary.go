package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

// singleScorer rates one strain per call (ISP).
type singleScorer interface {
	Score(ctx context.Context, req domain.RecommendationRequest, strain domain.Strain) (domain.Annotation, error)
}

// SecondaryStage scores up to maxResults pool candidates with one generative
// call each, in parallel. A failed call degrades that one item to a heuristic
// annotation; the stage as a whole fails only when every call failed.
type SecondaryStage struct {
	client  singleScorer
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	size    int
	logger  *zap.Logger
}

// NewSecondaryStage creates the second re-ranking stage.
func NewSecondaryStage(
	client singleScorer,
	breaker *gobreaker.CircuitBreaker,
	timeout time.Duration,
	size int,
	logger *zap.Logger,
) *SecondaryStage {
	return &SecondaryStage{
		client:  client,
		breaker: breaker,
		timeout: timeout,
		size:    size,
		logger:  logger,
	}
}

func (s *SecondaryStage) Name() string { return "secondary" }

// Rerank fans out one scoring call per candidate and collects every result
// before sorting. A sibling's failure never cancels the others; each call is
// bounded by its own timeout.
func (s *SecondaryStage) Rerank(
	ctx context.Context,
	req domain.RecommendationRequest,
	pool []domain.Strain,
) ([]domain.AnnotatedStrain, error) {
	items := pool
	if len(items) > s.size {
		items = items[:s.size]
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("secondary rerank: empty candidate pool: %w", domain.ErrRerankerUnavailable)
	}

	out := make([]domain.AnnotatedStrain, len(items))
	failures := make([]bool, len(items))

	var wg sync.WaitGroup
	for i, strain := range items {
		wg.Add(1)
		go func(i int, strain domain.Strain) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			res, err := s.breaker.Execute(func() (interface{}, error) {
				return s.client.Score(callCtx, req, strain)
			})
			if err != nil {
				failures[i] = true
				s.logger.Warn("Per-strain scoring failed, using heuristic annotation",
					zap.String("strain_id", strain.ID),
					zap.Error(err))
				out[i] = domain.Annotate(strain, heuristicAnnotation(req, strain, heuristicScore(req, strain)))
				return
			}
			out[i] = domain.Annotate(strain, res.(domain.Annotation))
		}(i, strain)
	}
	wg.Wait()

	allFailed := true
	for _, f := range failures {
		if !f {
			allFailed = false
			break
		}
	}
	if allFailed {
		return nil, fmt.Errorf("secondary rerank: all %d calls failed: %w", len(items), domain.ErrRerankerUnavailable)
	}

	domain.SortAnnotated(out)
	return out, nil
}
