package vector

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/metrics"
)

// source is the consumer interface for the strain catalog (ISP).
type source interface {
	All() []domain.Strain
}

// Hit is a similarity search result.
type Hit struct {
	Strain domain.Strain
	Score  float64
}

type entry struct {
	strain domain.Strain
	vec    []float32
}

// Index holds one embedding per catalog strain and answers cosine-similarity
// queries over them. Build is idempotent; a strain whose embedding call fails
// gets a deterministic degrade vector so the index stays complete.
type Index struct {
	embedder domain.Embedder
	source   source
	dims     int
	logger   *zap.Logger

	mu      sync.Mutex
	built   bool
	entries []entry
}

// NewIndex creates an index over the catalog. dims is the embedding width
// used for degrade vectors when the provider is unavailable.
func NewIndex(embedder domain.Embedder, src source, dims int, logger *zap.Logger) *Index {
	return &Index{
		embedder: embedder,
		source:   src,
		dims:     dims,
		logger:   logger,
	}
}

// Build embeds every catalog strain. Safe to call concurrently; only the
// first call does the work. Individual embedding failures degrade to a
// deterministic vector instead of failing the build.
func (i *Index) Build(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.built {
		return nil
	}

	strains := i.source.All()
	entries := make([]entry, 0, len(strains))
	var degraded int

	for _, s := range strains {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build index: %w", err)
		}

		text := s.EmbeddingText()
		vec, err := i.embed(ctx, text)
		if err != nil {
			degraded++
			i.logger.Warn("Embedding failed, using degrade vector",
				zap.String("strain_id", s.ID),
				zap.Error(err))
			vec = degradeVector(text, i.dims)
		}
		entries = append(entries, entry{strain: s, vec: vec})
	}

	i.entries = entries
	i.built = true
	i.logger.Info("Vector index built",
		zap.Int("strains", len(entries)),
		zap.Int("degraded", degraded))
	return nil
}

// Rebuild discards the current index and re-embeds the catalog. Used after a
// catalog refresh.
func (i *Index) Rebuild(ctx context.Context) error {
	i.mu.Lock()
	i.built = false
	i.mu.Unlock()
	return i.Build(ctx)
}

// FindSimilar returns the k catalog strains closest to the query text by
// cosine similarity, best first. An embedding failure on the query degrades
// to a deterministic vector so the search still returns results.
func (i *Index) FindSimilar(ctx context.Context, query string, k int) ([]Hit, error) {
	if err := i.Build(ctx); err != nil {
		return nil, err
	}

	qvec, err := i.embed(ctx, query)
	if err != nil {
		metrics.EmbeddingDegradeTotal.Inc()
		i.logger.Warn("Query embedding failed, degrading", zap.Error(err))
		qvec = degradeVector(query, i.dims)
	}

	i.mu.Lock()
	entries := i.entries
	i.mu.Unlock()

	hits := make([]Hit, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, Hit{
			Strain: e.strain,
			Score:  domain.CosineSimilarity(qvec, e.vec),
		})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })

	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func (i *Index) embed(ctx context.Context, text string) ([]float32, error) {
	res, err := i.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(res.Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding: %w", domain.ErrEmbeddingProviderError)
	}
	return res.Embedding, nil
}

// degradeVector derives a unit vector from the text itself, so the same text
// always maps to the same point and repeated degraded queries stay stable.
func degradeVector(text string, dims int) []float32 {
	h := sha256.Sum256([]byte(text))
	seed := int64(binary.LittleEndian.Uint64(h[:8]))
	rng := rand.New(rand.NewSource(seed))

	vec := make([]float32, dims)
	var norm float64
	for i := range vec {
		v := rng.Float64()*2 - 1
		vec[i] = float32(v)
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= inv
	}
	return vec
}
