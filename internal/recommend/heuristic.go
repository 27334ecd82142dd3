package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/strainwise/strainwise/internal/domain"
)

// moodTypeMap maps a mood to the strain types that usually deliver it.
var moodTypeMap = map[string][]string{
	domain.MoodRelaxed:   {"indica", "indica-dominant"},
	domain.MoodSleepy:    {"indica", "indica-dominant"},
	domain.MoodEnergetic: {"sativa", "sativa-dominant"},
	domain.MoodCreative:  {"sativa", "sativa-dominant"},
	domain.MoodFocused:   {"hybrid", "sativa-dominant"},
	domain.MoodHappy:     {"hybrid", "sativa-dominant"},
}

// heuristicScore rates a strain against the request without external calls.
// Base 50, plus 20 for a mood-compatible type, plus up to 15 each for effect
// and flavor overlap, capped at 100.
func heuristicScore(req domain.RecommendationRequest, s domain.Strain) int {
	score := 50

	strainType := strings.ToLower(string(s.Type))
	for _, t := range moodTypeMap[strings.ToLower(req.Mood)] {
		if strings.Contains(strainType, t) {
			score += 20
			break
		}
	}

	var effectMatches int
	for _, e := range req.Effects {
		if s.HasEffect(e) {
			effectMatches++
		}
	}
	score += min(15, effectMatches*5)

	var flavorMatches int
	for _, f := range req.Flavors {
		if s.HasFlavor(f) {
			flavorMatches++
		}
	}
	score += min(15, flavorMatches*5)

	return min(100, score)
}

// heuristicAnnotation builds a templated annotation from the strain's own
// fields. Used when no generative provider produced one.
func heuristicAnnotation(req domain.RecommendationRequest, s domain.Strain, score int) domain.Annotation {
	mood := req.Mood
	if mood == "" {
		mood = "desired"
	}
	level := req.ExperienceLevel
	if level == "" {
		level = domain.ExperienceIntermediate
	}

	return domain.Annotation{
		MatchScore: score,
		MatchReason: fmt.Sprintf(
			"%s is a %s strain that may provide %s effects, which aligns with your %s mood preference. With %s THC content, it's suitable for %s users.",
			s.Name, s.Type, joinFirst(s.Effects, 2), mood, s.THCContent, level),
		UsageTips: fmt.Sprintf(
			"For best results with %s, start with a small amount and gradually increase as needed. %s %s",
			s.Name, timeBasedTip(s), experienceTip(level)),
		EffectsExplanation: fmt.Sprintf(
			"%s typically provides effects including %s. The dominant terpenes (%s) contribute to its %s flavor profile and enhance its therapeutic properties.",
			s.Name, strings.Join(s.Effects, ", "), strings.Join(s.Terpenes, ", "), strings.Join(s.Flavors, ", ")),
	}
}

func timeBasedTip(s domain.Strain) string {
	switch {
	case s.Type.IsIndica():
		return "This indica strain is typically better for evening or nighttime use due to its relaxing properties."
	case s.Type.IsSativa():
		return "This sativa strain is typically better for daytime use due to its energizing properties."
	default:
		return "This hybrid strain can be used throughout the day, depending on your specific needs."
	}
}

func experienceTip(level domain.ExperienceLevel) string {
	switch level {
	case domain.ExperienceBeginner:
		return "As a beginner, start with a very small amount and wait at least 15-30 minutes before considering more. Consider using a method with controllable dosing like a vaporizer."
	case domain.ExperienceIntermediate:
		return "With your intermediate experience, you likely understand your tolerance, but still exercise caution with this particular strain as effects can vary."
	default:
		return "With your veteran background, you'll likely appreciate the nuanced effects of this strain, but still start with a standard dose to assess its specific impact on you."
	}
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, " and ")
}

// catalogSource is the consumer interface for the strain catalog (ISP).
type catalogSource interface {
	All() []domain.Strain
	ByID(id string) (domain.Strain, error)
}

// HeuristicStage is the terminal re-ranking stage. It makes no external
// calls and cannot fail while the catalog is non-empty.
type HeuristicStage struct {
	catalog catalogSource
	filter  *Filter
	size    int
}

// NewHeuristicStage builds the terminal stage producing size results.
func NewHeuristicStage(catalog catalogSource, filter *Filter, size int) *HeuristicStage {
	return &HeuristicStage{catalog: catalog, filter: filter, size: size}
}

func (h *HeuristicStage) Name() string { return "heuristic" }

// Rerank ignores the candidate pool and re-derives matches from the full
// catalog, so it stays usable even when the pool builder itself misbehaved.
// Scores descend positionally from 90 with a floor of 50.
func (h *HeuristicStage) Rerank(
	_ context.Context,
	req domain.RecommendationRequest,
	_ []domain.Strain,
) ([]domain.AnnotatedStrain, error) {
	sorted := h.filter.Apply(req, h.catalog.All())

	if len(sorted) > h.size {
		sorted = sorted[:h.size]
	}
	sorted = h.backfill(sorted)

	out := make([]domain.AnnotatedStrain, 0, len(sorted))
	for i, s := range sorted {
		score := max(50, min(90, 90-10*i))
		out = append(out, domain.Annotate(s, heuristicAnnotation(req, s, score)))
	}
	return out, nil
}

// backfill pads an underfull result with top-rated strains so the stage
// always yields size entries on a non-empty catalog.
func (h *HeuristicStage) backfill(strains []domain.Strain) []domain.Strain {
	if len(strains) >= h.size {
		return strains
	}
	present := make(map[string]struct{}, len(strains))
	for _, s := range strains {
		present[s.ID] = struct{}{}
	}
	all := h.catalog.All()
	sort.SliceStable(all, func(a, b int) bool { return all[a].Rating > all[b].Rating })
	for _, s := range all {
		if len(strains) >= h.size {
			break
		}
		if _, ok := present[s.ID]; ok {
			continue
		}
		present[s.ID] = struct{}{}
		strains = append(strains, s)
	}
	return strains
}
