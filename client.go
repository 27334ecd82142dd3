package strainwise

import (
	"context"
	"fmt"
	"time"

	"github.com/strainwise/strainwise/internal/catalog"
	"github.com/strainwise/strainwise/internal/db"
	dbRedis "github.com/strainwise/strainwise/internal/db/redis"
	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/metrics"
	"github.com/strainwise/strainwise/internal/recommend"
	"github.com/strainwise/strainwise/internal/repository/embcache"
	openaiTransport "github.com/strainwise/strainwise/internal/transport/openai"
	"github.com/strainwise/strainwise/internal/vector"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the embedded recommendation pipeline entry point.
type Client struct {
	store    db.Store
	catalog  *catalog.Catalog
	priority *catalog.PriorityPool
	index    *vector.Index
	svc      *recommend.Service
}

// New assembles a Client. The provided context bounds the optional cache
// readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	cfg.applyDefaults()

	if cfg.minResults > cfg.maxResults {
		return nil, fmt.Errorf("strainwise: min results (%d) exceeds max results (%d)",
			cfg.minResults, cfg.maxResults)
	}
	if cfg.strains != nil && len(cfg.strains) == 0 {
		return nil, fmt.Errorf("strainwise: %w", domain.ErrEmptyCatalog)
	}

	var store db.Store
	if len(cfg.cacheAddrs) > 0 {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("strainwise: create cache store: %w", err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("strainwise: cache not ready: %w", err)
		}
		store = s
	}

	metrics.RegisterPipelineMetrics()

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	var cat *catalog.Catalog
	if cfg.strains != nil {
		strains := make([]domain.Strain, 0, len(cfg.strains))
		for _, s := range cfg.strains {
			strains = append(strains, toDomainStrain(s))
		}
		cat = catalog.New(strains)
	} else {
		cat = catalog.NewSeeded()
	}

	priority := catalog.NewPriorityPool(cat, cfg.prioritySize, cfg.logger)
	index := vector.NewIndex(buildEmbedder(store, cfg), cat, cfg.embeddingDims, cfg.logger)

	filter := recommend.NewFilter(cfg.filterTopN)
	heuristic := recommend.NewHeuristicStage(cat, filter, cfg.maxResults)

	var chain []recommend.Reranker
	if cfg.openAIKey != "" {
		chain = append(chain, buildPrimaryStage(cat, cfg))
	}
	if cfg.secondaryKey != "" {
		chain = append(chain, buildSecondaryStage(cfg))
	}
	chain = append(chain, heuristic)

	pool := recommend.NewPoolBuilder(priority, index, cat,
		cfg.poolSize, cfg.similarityK, cfg.logger)
	svc := recommend.NewService(cat, pool, chain, heuristic, index, cfg.logger)

	return &Client{
		store:    store,
		catalog:  cat,
		priority: priority,
		index:    index,
		svc:      svc,
	}
}

func buildEmbedder(store db.Store, cfg *clientConfig) domain.Embedder {
	base := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.openAIKey,
		BaseURL:    cfg.openAIBaseURL,
		Model:      cfg.embeddingModel,
		Dimensions: cfg.embeddingDims,
		Provider:   "openai",
		Logger:     cfg.logger,
	})
	if store == nil {
		return base
	}
	return embcache.New(base, store, cfg.cacheTTL, metrics.EmbeddingCacheTotal, cfg.logger)
}

func buildPrimaryStage(cat *catalog.Catalog, cfg *clientConfig) recommend.Reranker {
	client := openaiTransport.NewBatchReranker(&openaiTransport.RerankerConfig{
		APIKey:  cfg.openAIKey,
		BaseURL: cfg.openAIBaseURL,
		Model:   cfg.primaryModel,
		Stage:   "primary",
		Logger:  cfg.logger,
	})
	breaker := recommend.NewStageBreaker("primary", cfg.breakerMaxFailures, cfg.breakerOpen, cfg.logger)
	return recommend.NewPrimaryStage(client, cat, breaker,
		cfg.stageTimeout, cfg.minResults, cfg.maxResults, cfg.logger)
}

func buildSecondaryStage(cfg *clientConfig) recommend.Reranker {
	client := openaiTransport.NewSingleScorer(&openaiTransport.RerankerConfig{
		APIKey:  cfg.secondaryKey,
		BaseURL: cfg.secondaryBaseURL,
		Model:   cfg.secondaryModel,
		Stage:   "secondary",
		Logger:  cfg.logger,
	})
	breaker := recommend.NewStageBreaker("secondary", cfg.breakerMaxFailures, cfg.breakerOpen, cfg.logger)
	return recommend.NewSecondaryStage(client, breaker,
		cfg.stageTimeout, cfg.maxResults, cfg.logger)
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks embedding cache connectivity. Returns nil when no cache is
// configured.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WarmIndex vectorizes the catalog ahead of the first recommendation call.
// Per-strain embedding failures degrade to deterministic vectors, so this
// only errors on cancellation.
func (c *Client) WarmIndex(ctx context.Context) error {
	return c.index.Build(ctx)
}

// GetRecommendations runs the full pipeline for one request.
func (c *Client) GetRecommendations(ctx context.Context, req Request) ([]Recommendation, error) {
	ranked, err := c.svc.GetRecommendations(ctx, toDomainRequest(req))
	if err != nil {
		return nil, err
	}
	recs := make([]Recommendation, 0, len(ranked))
	for _, a := range ranked {
		recs = append(recs, fromAnnotated(a))
	}
	return recs, nil
}

// Strains returns the full catalog.
func (c *Client) Strains() []Strain {
	all := c.catalog.All()
	out := make([]Strain, 0, len(all))
	for _, s := range all {
		out = append(out, fromDomainStrain(s))
	}
	return out
}

// Strain looks up one catalog entry by id.
func (c *Client) Strain(id string) (Strain, error) {
	s, err := c.catalog.ByID(id)
	if err != nil {
		return Strain{}, err
	}
	return fromDomainStrain(s), nil
}

// TopStrains returns the n highest-rated catalog entries.
func (c *Client) TopStrains(n int) []Strain {
	top := c.catalog.TopRated(n)
	out := make([]Strain, 0, len(top))
	for _, s := range top {
		out = append(out, fromDomainStrain(s))
	}
	return out
}

// SetPriorityStrains replaces the priority subset by strain name. Unknown
// names are skipped; the subset is backfilled from top-rated strains.
func (c *Client) SetPriorityStrains(names []string) {
	c.priority.Update(names)
}

// ReplaceCatalog swaps the catalog snapshot and re-vectorizes it.
func (c *Client) ReplaceCatalog(ctx context.Context, strains []Strain) error {
	converted := make([]domain.Strain, 0, len(strains))
	for _, s := range strains {
		converted = append(converted, toDomainStrain(s))
	}
	c.catalog.Replace(converted)
	return c.index.Rebuild(ctx)
}
