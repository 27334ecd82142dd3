package vector

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

type stubSource struct{ strains []domain.Strain }

func (s *stubSource) All() []domain.Strain { return s.strains }

// stubEmbedder returns a fixed vector per text, or an error.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (e *stubEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	e.calls++
	if e.err != nil {
		return domain.EmbeddingResult{}, e.err
	}
	if v, ok := e.vectors[text]; ok {
		return domain.EmbeddingResult{Embedding: v}, nil
	}
	return domain.EmbeddingResult{Embedding: []float32{0, 0, 1}}, nil
}

func testSource() *stubSource {
	return &stubSource{strains: []domain.Strain{
		{ID: "x", Name: "X", Description: "one"},
		{ID: "y", Name: "Y", Description: "two"},
		{ID: "z", Name: "Z", Description: "three"},
	}}
}

func TestFindSimilarOrdersByCosine(t *testing.T) {
	src := testSource()
	emb := &stubEmbedder{vectors: map[string][]float32{
		src.strains[0].EmbeddingText(): {1, 0, 0},
		src.strains[1].EmbeddingText(): {0.9, 0.1, 0},
		src.strains[2].EmbeddingText(): {0, 1, 0},
		"query":                        {1, 0, 0},
	}}
	idx := NewIndex(emb, src, 3, zap.NewNop())

	hits, err := idx.FindSimilar(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("len = %d, want 2", len(hits))
	}
	if hits[0].Strain.ID != "x" || hits[1].Strain.ID != "y" {
		t.Errorf("order = %s, %s; want x, y", hits[0].Strain.ID, hits[1].Strain.ID)
	}
	if hits[0].Score < hits[1].Score {
		t.Errorf("scores not descending: %v, %v", hits[0].Score, hits[1].Score)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	src := testSource()
	emb := &stubEmbedder{}
	idx := NewIndex(emb, src, 3, zap.NewNop())

	ctx := context.Background()
	if err := idx.Build(ctx); err != nil {
		t.Fatal(err)
	}
	after := emb.calls
	if err := idx.Build(ctx); err != nil {
		t.Fatal(err)
	}
	if emb.calls != after {
		t.Errorf("second Build re-embedded: %d calls, want %d", emb.calls, after)
	}
}

func TestFindSimilarDegradesOnEmbedderFailure(t *testing.T) {
	src := testSource()
	emb := &stubEmbedder{err: errors.New("provider down")}
	idx := NewIndex(emb, src, 8, zap.NewNop())

	ctx := context.Background()
	first, err := idx.FindSimilar(ctx, "query", 3)
	if err != nil {
		t.Fatalf("expected degraded search, got error: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("len = %d, want 3", len(first))
	}

	// Same query degrades to the same vector, so the order is stable.
	second, err := idx.FindSimilar(ctx, "query", 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i].Strain.ID != second[i].Strain.ID {
			t.Fatalf("degraded order unstable: %v vs %v", first, second)
		}
	}
}

func TestDegradeVectorDeterministic(t *testing.T) {
	a := degradeVector("same text", 16)
	b := degradeVector("same text", 16)
	c := degradeVector("other text", 16)

	if len(a) != 16 {
		t.Fatalf("len = %d, want 16", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same text produced different vectors at %d", i)
		}
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts produced identical vectors")
	}

	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	if norm < 0.99 || norm > 1.01 {
		t.Errorf("degrade vector not unit length: %v", norm)
	}
}

func TestRebuildPicksUpNewCatalog(t *testing.T) {
	src := testSource()
	emb := &stubEmbedder{}
	idx := NewIndex(emb, src, 3, zap.NewNop())

	ctx := context.Background()
	if err := idx.Build(ctx); err != nil {
		t.Fatal(err)
	}

	src.strains = append(src.strains, domain.Strain{ID: "w", Name: "W"})
	if err := idx.Rebuild(ctx); err != nil {
		t.Fatal(err)
	}

	hits, err := idx.FindSimilar(ctx, "query", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 4 {
		t.Errorf("len = %d, want 4 after rebuild", len(hits))
	}
}
