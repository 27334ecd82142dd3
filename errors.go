package strainwise

import "github.com/strainwise/strainwise/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStrainNotFound         = domain.ErrStrainNotFound
	ErrEmptyCatalog           = domain.ErrEmptyCatalog
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
	ErrRerankerUnavailable    = domain.ErrRerankerUnavailable
)
