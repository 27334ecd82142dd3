package recommend

import (
	"context"

	"github.com/strainwise/strainwise/internal/domain"
)

// Reranker turns a candidate pool into an ordered, annotated recommendation
// list. A failed stage returns an error and the chain escalates; there are no
// retries within a stage.
type Reranker interface {
	Name() string
	Rerank(ctx context.Context, req domain.RecommendationRequest, pool []domain.Strain) ([]domain.AnnotatedStrain, error)
}
