package recommend

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

func newTestPrimary(t *testing.T, client batchRanker) *PrimaryStage {
	t.Helper()
	cat := &stubCatalog{strains: fixtureStrains()}
	return NewPrimaryStage(client, cat,
		NewStageBreaker("test", 3, time.Second, zap.NewNop()),
		time.Second, 3, 5, zap.NewNop())
}

func TestPrimaryRerank(t *testing.T) {
	client := &stubBatchRanker{ranking: domain.BatchRanking{
		RankedIDs: []string{"i2", "i1", "s1"},
		Annotations: map[string]domain.Annotation{
			"i2": {MatchScore: 95, MatchReason: "great fit"},
			"i1": {MatchScore: 90, MatchReason: "good fit"},
			"s1": {MatchScore: 70, MatchReason: "ok fit"},
		},
	}}
	stage := newTestPrimary(t, client)

	out, err := stage.Rerank(context.Background(), domain.RecommendationRequest{}, fixtureStrains())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].ID != "i2" || out[0].MatchScore != 95 {
		t.Errorf("top = %s/%d, want i2/95", out[0].ID, out[0].MatchScore)
	}
	// Strain fields come from the catalog, not the model.
	if out[0].Name != "Deep Couch" {
		t.Errorf("Name = %q, want catalog value", out[0].Name)
	}
}

func TestPrimaryDropsUnknownIDsAndTopsUp(t *testing.T) {
	// Two valid ids from a 10-item pool: the stage must top up to 3.
	client := &stubBatchRanker{ranking: domain.BatchRanking{
		RankedIDs: []string{"i1", "ghost", "s1"},
		Annotations: map[string]domain.Annotation{
			"i1":    {MatchScore: 88},
			"ghost": {MatchScore: 99},
			"s1":    {MatchScore: 77},
		},
	}}
	stage := newTestPrimary(t, client)
	pool := fixtureStrains()

	out, err := stage.Rerank(context.Background(), domain.RecommendationRequest{}, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) < 3 {
		t.Fatalf("len = %d, want at least 3 after top-up", len(out))
	}
	for _, r := range out {
		if r.ID == "ghost" {
			t.Error("unknown id survived into the result")
		}
	}
	// The topped-up entry carries the fixed medium-confidence score.
	var found bool
	for _, r := range out {
		if r.MatchScore == topUpScore {
			found = true
		}
	}
	if !found {
		t.Error("no top-up annotation present")
	}
}

func TestPrimaryTruncatesToMax(t *testing.T) {
	ranked := domain.BatchRanking{Annotations: map[string]domain.Annotation{}}
	for _, s := range fixtureStrains() {
		ranked.RankedIDs = append(ranked.RankedIDs, s.ID)
		ranked.Annotations[s.ID] = domain.Annotation{MatchScore: 80}
	}
	stage := newTestPrimary(t, &stubBatchRanker{ranking: ranked})

	out, err := stage.Rerank(context.Background(), domain.RecommendationRequest{}, fixtureStrains())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
}

func TestPrimaryFailureEscalates(t *testing.T) {
	stage := newTestPrimary(t, &stubBatchRanker{err: errProviderDown})

	_, err := stage.Rerank(context.Background(), domain.RecommendationRequest{}, fixtureStrains())
	if err == nil {
		t.Fatal("expected stage failure")
	}
}

func TestPrimaryBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client := &stubBatchRanker{err: errProviderDown}
	stage := newTestPrimary(t, client)

	ctx := context.Background()
	for n := 0; n < 5; n++ {
		_, _ = stage.Rerank(ctx, domain.RecommendationRequest{}, fixtureStrains())
	}

	// Threshold is 3: the open breaker must fast-fail without calling out.
	if client.calls != 3 {
		t.Fatalf("client calls = %d, want 3 before the breaker opens", client.calls)
	}
}
