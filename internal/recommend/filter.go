package recommend

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/strainwise/strainwise/internal/domain"
)

// moodPrimaryEffects maps a mood to the effects that directly satisfy it.
var moodPrimaryEffects = map[string][]string{
	domain.MoodRelaxed:   {"Relaxing", "Calming", "Peaceful", "Relaxation", "Stress Relief", "Pain Relief"},
	domain.MoodEnergetic: {"Energetic", "Uplifting", "Active", "Energy", "Social Uplift"},
	domain.MoodCreative:  {"Creative", "Inspired", "Creativity", "Euphoric"},
	domain.MoodFocused:   {"Focused", "Clear-headed", "Productive", "Focus", "Clear"},
	domain.MoodSleepy:    {"Sleepy", "Sedative", "Restful", "Sleep Aid", "Relaxing"},
	domain.MoodHappy:     {"Happy", "Euphoric", "Giggly", "Euphoria", "Uplifting"},
}

// moodSecondaryEffects lists effects that partially satisfy a mood. Unioned
// in only when primary matches are too few.
var moodSecondaryEffects = map[string][]string{
	domain.MoodRelaxed:   {"Happy", "Pain Relief"},
	domain.MoodEnergetic: {"Happy", "Euphoric", "Focus"},
	domain.MoodCreative:  {"Happy", "Uplifting", "Energetic"},
	domain.MoodFocused:   {"Uplifting", "Energy", "Creativity"},
	domain.MoodSleepy:    {"Pain Relief", "Calming"},
	domain.MoodHappy:     {"Relaxing", "Creative", "Social Uplift"},
}

// minPrimaryMatches is the primary-lexicon yield below which the secondary
// lexicon is unioned in.
const minPrimaryMatches = 3

// beginnerTHCMax is the exclusive upper bound on a strain's top-of-range THC
// for beginner users.
const beginnerTHCMax = 20

var thcRangeRe = regexp.MustCompile(`(\d+)-(\d+)`)

// Filter narrows the catalog by mood, effects, flavors and experience level.
// No stage is allowed to end with zero candidates: an empty outcome reverts
// to that stage's input set.
type Filter struct {
	topN int
}

// NewFilter creates a filter returning at most topN strains from Apply.
func NewFilter(topN int) *Filter {
	return &Filter{topN: topN}
}

// Apply narrows strains for the request, sorts by descending rating and
// returns the top N. Never returns an empty slice for non-empty input.
func (f *Filter) Apply(req domain.RecommendationRequest, strains []domain.Strain) []domain.Strain {
	out := f.Narrow(req, strains)

	sorted := make([]domain.Strain, len(out))
	copy(sorted, out)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Rating > sorted[b].Rating })

	if f.topN > 0 && len(sorted) > f.topN {
		sorted = sorted[:f.topN]
	}
	return sorted
}

// Narrow runs the filtering stages without sorting or truncation.
func (f *Filter) Narrow(req domain.RecommendationRequest, strains []domain.Strain) []domain.Strain {
	out := strains

	if mood := strings.ToLower(strings.TrimSpace(req.Mood)); mood != "" {
		out = relax(filterByMood(mood, out), out)
	}

	if len(req.Effects) > 0 {
		kept := keep(out, func(s domain.Strain) bool {
			for _, e := range req.Effects {
				if s.HasEffect(e) {
					return true
				}
			}
			return false
		})
		out = relax(kept, out)
	}

	if len(req.Flavors) > 0 {
		kept := keep(out, func(s domain.Strain) bool {
			for _, fl := range req.Flavors {
				if s.HasFlavor(fl) {
					return true
				}
			}
			return false
		})
		out = relax(kept, out)
	}

	if req.ExperienceLevel == domain.ExperienceBeginner {
		kept := keep(out, func(s domain.Strain) bool {
			return beginnerSafeTHC(s.THCContent)
		})
		out = relax(kept, out)
	}

	return out
}

// filterByMood keeps strains whose effects match the mood's primary lexicon.
// Under minPrimaryMatches results, the secondary lexicon is unioned in and
// the original set re-filtered. A mood outside the lexicon yields nothing,
// which the caller relaxes back to the input set.
func filterByMood(mood string, strains []domain.Strain) []domain.Strain {
	primary := moodPrimaryEffects[mood]
	if len(primary) == 0 {
		return nil
	}

	matched := keep(strains, effectsMatch(primary))
	if len(matched) >= minPrimaryMatches {
		return matched
	}

	combined := append(append([]string{}, primary...), moodSecondaryEffects[mood]...)
	return keep(strains, effectsMatch(combined))
}

func effectsMatch(desired []string) func(domain.Strain) bool {
	return func(s domain.Strain) bool {
		for _, d := range desired {
			if s.HasEffect(d) {
				return true
			}
		}
		return false
	}
}

// beginnerSafeTHC reports whether the top of the THC range is below the
// beginner cap. A string without a parsable "low-high" range passes; an
// unreadable label must not hide a strain entirely.
func beginnerSafeTHC(thc string) bool {
	m := thcRangeRe.FindStringSubmatch(thc)
	if m == nil {
		return true
	}
	upper, err := strconv.Atoi(m[2])
	if err != nil {
		return true
	}
	return upper < beginnerTHCMax
}

// relax reverts to the stage's input when filtering emptied the set.
func relax(filtered, before []domain.Strain) []domain.Strain {
	if len(filtered) == 0 {
		return before
	}
	return filtered
}

func keep(strains []domain.Strain, pred func(domain.Strain) bool) []domain.Strain {
	out := make([]domain.Strain, 0, len(strains))
	for _, s := range strains {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
