package domain

import "errors"

var (
	// ErrStrainNotFound signals a missing catalog strain.
	ErrStrainNotFound = errors.New("strain not found")
	// ErrEmptyCatalog signals that the catalog holds no strains at all.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRerankerUnavailable signals a re-ranker transport/availability failure.
	ErrRerankerUnavailable = errors.New("reranker unavailable")
	// ErrMalformedRerankResponse signals a structured response that failed
	// strict parsing. Never partially trusted.
	ErrMalformedRerankResponse = errors.New("malformed rerank response")
)
