package strainwise

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	openAIKey     string
	openAIBaseURL string

	embeddingModel string
	embeddingDims  int

	primaryModel string

	secondaryKey     string
	secondaryBaseURL string
	secondaryModel   string

	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration

	strains []Strain

	breakerMaxFailures uint32
	breakerOpen        time.Duration
	stageTimeout       time.Duration

	poolSize     int
	similarityK  int
	filterTopN   int
	minResults   int
	maxResults   int
	prioritySize int

	logger *zap.Logger
}

// WithOpenAI sets the OpenAI API key used for embeddings and the primary
// batch re-ranker. Without it the pipeline runs in degraded mode.
func WithOpenAI(apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openAIKey = apiKey
	})
}

// WithOpenAIBaseURL overrides the OpenAI API base URL, for proxies and
// compatible providers.
func WithOpenAIBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openAIBaseURL = baseURL
	})
}

// WithEmbeddingModel sets the embedding model and vector dimensionality.
// Defaults: text-embedding-3-small, 1536.
func WithEmbeddingModel(model string, dimensions int) Option {
	return optionFunc(func(c *clientConfig) {
		c.embeddingModel = model
		c.embeddingDims = dimensions
	})
}

// WithPrimaryModel sets the chat model for the primary batch re-ranker.
// Default: gpt-4o.
func WithPrimaryModel(model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.primaryModel = model
	})
}

// WithSecondaryProvider configures the per-strain scoring fallback stage
// against an OpenAI-compatible endpoint. Without it the chain goes straight
// from the primary stage to the heuristic.
func WithSecondaryProvider(apiKey, baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.secondaryKey = apiKey
		c.secondaryBaseURL = baseURL
		c.secondaryModel = model
	})
}

// WithRedisCache enables the Redis-backed embedding cache.
func WithRedisCache(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
	})
}

// WithCacheTTL sets the embedding cache entry lifetime. Default: 168h.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithCatalog replaces the built-in seed catalog.
func WithCatalog(strains []Strain) Option {
	return optionFunc(func(c *clientConfig) {
		c.strains = strains
	})
}

// WithResultBounds sets the final list size bounds. Defaults: 3 and 5.
func WithResultBounds(minResults, maxResults int) Option {
	return optionFunc(func(c *clientConfig) {
		c.minResults = minResults
		c.maxResults = maxResults
	})
}

// WithBreaker tunes the circuit breaker shared by the external re-rank
// stages. Defaults: 3 consecutive failures, 30s open interval.
func WithBreaker(maxFailures uint32, open time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.breakerMaxFailures = maxFailures
		c.breakerOpen = open
	})
}

// WithLogger enables structured logging for pipeline operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

func (c *clientConfig) applyDefaults() {
	if c.embeddingModel == "" {
		c.embeddingModel = "text-embedding-3-small"
	}
	if c.embeddingDims <= 0 {
		c.embeddingDims = 1536
	}
	if c.primaryModel == "" {
		c.primaryModel = "gpt-4o"
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = 7 * 24 * time.Hour
	}
	if c.breakerMaxFailures == 0 {
		c.breakerMaxFailures = 3
	}
	if c.breakerOpen <= 0 {
		c.breakerOpen = 30 * time.Second
	}
	if c.stageTimeout <= 0 {
		c.stageTimeout = 20 * time.Second
	}
	if c.poolSize <= 0 {
		c.poolSize = 15
	}
	if c.similarityK <= 0 {
		c.similarityK = 15
	}
	if c.filterTopN <= 0 {
		c.filterTopN = 6
	}
	if c.minResults <= 0 {
		c.minResults = 3
	}
	if c.maxResults <= 0 {
		c.maxResults = 5
	}
	if c.prioritySize <= 0 {
		c.prioritySize = 10
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
}
