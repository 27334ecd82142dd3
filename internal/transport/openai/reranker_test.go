package openai

import (
	"errors"
	"strings"
	"testing"

	"github.com/strainwise/strainwise/internal/domain"
)

func rerankPool() []domain.Strain {
	return []domain.Strain{
		{ID: "a1", Name: "Alpha", Type: domain.TypeIndica, Rating: 4.5},
		{ID: "b2", Name: "Beta", Type: domain.TypeSativa, Rating: 4.2},
		{ID: "c3", Name: "Gamma", Type: domain.TypeHybrid, Rating: 4.8},
	}
}

func TestParseBatchResponse(t *testing.T) {
	content := `{
		"recommendations": ["c3", "a1"],
		"reasons": {"c3": "balanced pick", "a1": "deeply relaxing"},
		"perfect_match_score": {"c3": 92, "a1": 85},
		"usage_tips": {"c3": "start small", "a1": "evening only"},
		"effects_explanation": {"c3": "calm focus", "a1": "heavy body"}
	}`

	res, err := parseBatchResponse(content, rerankPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.RankedIDs) != 2 || res.RankedIDs[0] != "c3" || res.RankedIDs[1] != "a1" {
		t.Fatalf("RankedIDs = %v", res.RankedIDs)
	}
	a := res.Annotations["c3"]
	if a.MatchScore != 92 || a.MatchReason != "balanced pick" || a.UsageTips != "start small" {
		t.Errorf("annotation for c3 = %+v", a)
	}
}

func TestParseBatchResponse_UnknownAndDuplicateIDs(t *testing.T) {
	content := `{
		"recommendations": ["zz", "a1", "a1", "b2"],
		"perfect_match_score": {"a1": 80, "b2": 75}
	}`

	res, err := parseBatchResponse(content, rerankPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.RankedIDs) != 2 || res.RankedIDs[0] != "a1" || res.RankedIDs[1] != "b2" {
		t.Fatalf("RankedIDs = %v, want [a1 b2]", res.RankedIDs)
	}
}

func TestParseBatchResponse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":        "the best strain is Alpha",
		"empty list":      `{"recommendations": []}`,
		"all unknown ids": `{"recommendations": ["xx", "yy"]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseBatchResponse(content, rerankPool())
			if !errors.Is(err, domain.ErrMalformedRerankResponse) {
				t.Fatalf("err = %v, want ErrMalformedRerankResponse", err)
			}
		})
	}
}

func TestParseBatchResponse_CodeFenced(t *testing.T) {
	content := "```json\n{\"recommendations\": [\"b2\"], \"perfect_match_score\": {\"b2\": 70}}\n```"

	res, err := parseBatchResponse(content, rerankPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.RankedIDs) != 1 || res.RankedIDs[0] != "b2" {
		t.Fatalf("RankedIDs = %v", res.RankedIDs)
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{87.6, 87},
		{100, 100},
		{250, 100},
	}
	for _, c := range cases {
		if got := clampScore(c.in); got != c.want {
			t.Errorf("clampScore(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBuildBatchPrompt(t *testing.T) {
	req := domain.RecommendationRequest{
		Mood:              domain.MoodRelaxed,
		ExperienceLevel:   domain.ExperienceBeginner,
		Effects:           []string{"Sleepy"},
		Flavors:           []string{"Berry"},
		ConsumptionMethod: []string{"vape", "edible"},
	}

	prompt := buildBatchPrompt(req, rerankPool())

	for _, want := range []string{"relaxed", "beginner", "Sleepy", "Berry", "vape, edible", "id=a1", "id=b2", "id=c3", "recommendations"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildBatchPromptOmitsEmptyFields(t *testing.T) {
	req := domain.RecommendationRequest{
		Mood:            domain.MoodRelaxed,
		ExperienceLevel: domain.ExperienceBeginner,
	}

	prompt := buildBatchPrompt(req, rerankPool())

	for _, absent := range []string{"Wanted effects", "Preferred flavors", "Consumption method"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("prompt should omit %q for an unconstrained request", absent)
		}
	}
}

func TestBuildSinglePrompt(t *testing.T) {
	req := domain.RecommendationRequest{
		Mood:              domain.MoodSleepy,
		ExperienceLevel:   domain.ExperienceExperienced,
		ConsumptionMethod: []string{"flower"},
	}
	strain := rerankPool()[0]

	prompt := buildSinglePrompt(req, strain)

	for _, want := range []string{"sleepy", "experienced", "Alpha", "flower", "matchScore"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
