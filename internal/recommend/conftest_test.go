package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/vector"
)

// fixtureStrains is a small catalog with a clear indica/sativa split: only
// indicas carry relaxing-family effects, only sativas carry energizing ones.
func fixtureStrains() []domain.Strain {
	return []domain.Strain{
		{ID: "i1", Name: "Night Cap", Type: domain.TypeIndica, THCContent: "12-18%",
			Effects: []string{"Relaxing", "Sleepy", "Sleep Aid"}, Flavors: []string{"Berry"},
			Terpenes: []string{"Myrcene"}, Rating: 4.9},
		{ID: "i2", Name: "Deep Couch", Type: domain.TypeIndica, THCContent: "14-19%",
			Effects: []string{"Relaxing", "Calming"}, Flavors: []string{"Grape"},
			Terpenes: []string{"Myrcene"}, Rating: 4.7},
		{ID: "i3", Name: "Slumber", Type: domain.TypeIndica, THCContent: "10-16%",
			Effects: []string{"Sleepy", "Relaxing"}, Flavors: []string{"Earthy"},
			Terpenes: []string{"Caryophyllene"}, Rating: 4.5},
		{ID: "i4", Name: "Quiet Hours", Type: domain.TypeIndicaDominant, THCContent: "13-17%",
			Effects: []string{"Calming", "Pain Relief"}, Flavors: []string{"Sweet"},
			Terpenes: []string{"Myrcene"}, Rating: 4.4},
		{ID: "i5", Name: "Moonset", Type: domain.TypeIndica, THCContent: "11-15%",
			Effects: []string{"Relaxing", "Peaceful"}, Flavors: []string{"Pine"},
			Terpenes: []string{"Pinene"}, Rating: 4.2},
		{ID: "i6", Name: "Heavy Hitter", Type: domain.TypeIndica, THCContent: "22-28%",
			Effects: []string{"Relaxing", "Sleepy"}, Flavors: []string{"Diesel"},
			Terpenes: []string{"Myrcene"}, Rating: 4.8},
		{ID: "s1", Name: "Daybreak", Type: domain.TypeSativa, THCContent: "15-20%",
			Effects: []string{"Energetic", "Creative"}, Flavors: []string{"Citrus"},
			Terpenes: []string{"Limonene"}, Rating: 4.6},
		{ID: "s2", Name: "Morning Run", Type: domain.TypeSativaDominant, THCContent: "16-22%",
			Effects: []string{"Uplifting", "Focused"}, Flavors: []string{"Lemon"},
			Terpenes: []string{"Terpinolene"}, Rating: 4.3},
		{ID: "h1", Name: "Middle Ground", Type: domain.TypeHybrid, THCContent: "15-20%",
			Effects: []string{"Happy", "Creative"}, Flavors: []string{"Sweet"},
			Terpenes: []string{"Limonene"}, Rating: 4.1},
		{ID: "h2", Name: "Even Keel", Type: domain.TypeHybrid, THCContent: "unknown",
			Effects: []string{"Happy", "Euphoric"}, Flavors: []string{"Vanilla"},
			Terpenes: []string{"Caryophyllene"}, Rating: 4.0},
	}
}

// stubCatalog implements catalogSource and ratedSource over a fixed slice.
type stubCatalog struct {
	strains []domain.Strain
}

func (c *stubCatalog) All() []domain.Strain {
	out := make([]domain.Strain, len(c.strains))
	copy(out, c.strains)
	return out
}

func (c *stubCatalog) ByID(id string) (domain.Strain, error) {
	for _, s := range c.strains {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Strain{}, domain.ErrStrainNotFound
}

func (c *stubCatalog) TopRated(n int) []domain.Strain {
	out := c.All()
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Rating > out[j-1].Rating; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

type stubPriority struct {
	strains []domain.Strain
}

func (p *stubPriority) Current() []domain.Strain { return p.strains }

type stubSimIndex struct {
	hits  []vector.Hit
	err   error
	built bool
}

func (i *stubSimIndex) FindSimilar(_ context.Context, _ string, k int) ([]vector.Hit, error) {
	if i.err != nil {
		return nil, i.err
	}
	hits := i.hits
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func (i *stubSimIndex) Build(_ context.Context) error {
	i.built = true
	return nil
}

type stubBatchRanker struct {
	ranking domain.BatchRanking
	err     error
	calls   int
}

func (r *stubBatchRanker) Rank(_ context.Context, _ domain.RecommendationRequest, _ []domain.Strain) (domain.BatchRanking, error) {
	r.calls++
	if r.err != nil {
		return domain.BatchRanking{}, r.err
	}
	return r.ranking, nil
}

type stubScorer struct {
	fn func(strain domain.Strain) (domain.Annotation, error)
}

func (s *stubScorer) Score(_ context.Context, _ domain.RecommendationRequest, strain domain.Strain) (domain.Annotation, error) {
	if s.fn != nil {
		return s.fn(strain)
	}
	return domain.Annotation{MatchScore: 75, MatchReason: "stub"}, nil
}

var errProviderDown = errors.New("provider down")

// newTestService wires a full pipeline over the fixture catalog with the
// given external clients.
func newTestService(t *testing.T, batch *stubBatchRanker, scorer *stubScorer) (*Service, *stubCatalog) {
	t.Helper()

	cat := &stubCatalog{strains: fixtureStrains()}
	log := zap.NewNop()
	filter := NewFilter(6)
	idx := &stubSimIndex{}

	pool := NewPoolBuilder(&stubPriority{}, idx, cat, 15, 15, log)

	primary := NewPrimaryStage(batch, cat,
		NewStageBreaker("primary-test", 3, time.Second, log),
		time.Second, 3, 5, log)
	secondary := NewSecondaryStage(scorer,
		NewStageBreaker("secondary-test", 3, time.Second, log),
		time.Second, 5, log)
	heuristic := NewHeuristicStage(cat, filter, 5)

	svc := NewService(cat, pool, []Reranker{primary, secondary, heuristic}, heuristic, idx, log)
	return svc, cat
}
