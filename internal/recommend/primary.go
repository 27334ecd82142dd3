package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

// topUpScore is the fixed medium-confidence score attached to strains pulled
// in to reach the minimum result count.
const topUpScore = 60

// batchRanker ranks a whole candidate pool in one call (ISP).
type batchRanker interface {
	Rank(ctx context.Context, req domain.RecommendationRequest, pool []domain.Strain) (domain.BatchRanking, error)
}

// NewStageBreaker builds a circuit breaker that opens after maxFailures
// consecutive failures and stays open for openFor.
func NewStageBreaker(name string, maxFailures uint32, openFor time.Duration, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Reranker breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// PrimaryStage re-ranks the pool with one batched generative call. Any
// failure, including a malformed response, fails the whole stage; the
// breaker turns repeated provider failures into immediate escalation.
type PrimaryStage struct {
	client     batchRanker
	catalog    catalogSource
	breaker    *gobreaker.CircuitBreaker
	timeout    time.Duration
	minResults int
	maxResults int
	logger     *zap.Logger
}

// NewPrimaryStage creates the first re-ranking stage.
func NewPrimaryStage(
	client batchRanker,
	catalog catalogSource,
	breaker *gobreaker.CircuitBreaker,
	timeout time.Duration,
	minResults, maxResults int,
	logger *zap.Logger,
) *PrimaryStage {
	return &PrimaryStage{
		client:     client,
		catalog:    catalog,
		breaker:    breaker,
		timeout:    timeout,
		minResults: minResults,
		maxResults: maxResults,
		logger:     logger,
	}
}

func (p *PrimaryStage) Name() string { return "primary" }

// Rerank runs the batched call and rebuilds the result from the catalog.
// Only the four annotation fields are trusted from the model; everything
// else is re-fetched by id.
func (p *PrimaryStage) Rerank(
	ctx context.Context,
	req domain.RecommendationRequest,
	pool []domain.Strain,
) ([]domain.AnnotatedStrain, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.breaker.Execute(func() (interface{}, error) {
		return p.client.Rank(callCtx, req, pool)
	})
	if err != nil {
		return nil, fmt.Errorf("primary rerank: %w", err)
	}
	ranking := res.(domain.BatchRanking)

	out := make([]domain.AnnotatedStrain, 0, p.maxResults)
	included := make(map[string]struct{}, p.maxResults)
	for _, id := range ranking.RankedIDs {
		s, err := p.catalog.ByID(id)
		if err != nil {
			p.logger.Warn("Ranked id not in catalog, dropping", zap.String("strain_id", id))
			continue
		}
		included[id] = struct{}{}
		out = append(out, domain.Annotate(s, ranking.Annotations[id]))
	}

	out = p.topUp(req, out, included, pool)

	domain.SortAnnotated(out)
	if len(out) > p.maxResults {
		out = out[:p.maxResults]
	}
	return out, nil
}

// topUp pads the result with remaining pool candidates carrying a fixed
// medium-confidence annotation until minResults is reached or the pool runs
// out.
func (p *PrimaryStage) topUp(
	req domain.RecommendationRequest,
	out []domain.AnnotatedStrain,
	included map[string]struct{},
	pool []domain.Strain,
) []domain.AnnotatedStrain {
	for _, s := range pool {
		if len(out) >= p.minResults {
			break
		}
		if _, ok := included[s.ID]; ok {
			continue
		}
		included[s.ID] = struct{}{}
		out = append(out, domain.Annotate(s, heuristicAnnotation(req, s, topUpScore)))
	}
	return out
}
