package domain

import (
	"sort"
	"strings"
)

// StrainType is the broad indica/sativa classification of a strain.
type StrainType string

const (
	TypeIndica         StrainType = "Indica"
	TypeSativa         StrainType = "Sativa"
	TypeHybrid         StrainType = "Hybrid"
	TypeSativaDominant StrainType = "Sativa-dominant"
	TypeIndicaDominant StrainType = "Indica-dominant"
)

// IsIndica reports whether the type is indica-leaning.
func (t StrainType) IsIndica() bool {
	return strings.Contains(strings.ToLower(string(t)), "indica")
}

// IsSativa reports whether the type is sativa-leaning.
func (t StrainType) IsSativa() bool {
	return strings.Contains(strings.ToLower(string(t)), "sativa")
}

// Strain is an immutable catalog entry. The pipeline never mutates catalog
// strains; annotated results are always value copies.
type Strain struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Breeder     string     `json:"breeder"`
	Type        StrainType `json:"type"`
	THCContent  string     `json:"thcContent"` // free-form range, e.g. "17-24%"
	CBDContent  string     `json:"cbdContent"`
	Terpenes    []string   `json:"terpenes"`
	Effects     []string   `json:"effects"`
	Flavors     []string   `json:"flavors"`
	Rating      float64    `json:"rating"` // 0-5
	ReviewCount int        `json:"reviewCount"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
}

// HasEffect reports whether any strain effect matches the given effect by
// case-insensitive substring.
func (s Strain) HasEffect(effect string) bool {
	return anyContains(s.Effects, effect)
}

// HasFlavor reports whether any strain flavor matches the given flavor by
// case-insensitive substring.
func (s Strain) HasFlavor(flavor string) bool {
	return anyContains(s.Flavors, flavor)
}

// EmbeddingText builds the descriptive text used to vectorize a strain.
func (s Strain) EmbeddingText() string {
	parts := []string{
		string(s.Type) + " strain",
		"Effects: " + strings.Join(s.Effects, ", "),
		"Flavors: " + strings.Join(s.Flavors, ", "),
		"Terpenes: " + strings.Join(s.Terpenes, ", "),
		s.Description,
	}
	return strings.Join(parts, ". ")
}

func anyContains(haystack []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		lh := strings.ToLower(h)
		if strings.Contains(lh, needle) || strings.Contains(needle, lh) {
			return true
		}
	}
	return false
}

// Annotation carries the per-request match metadata attached by a re-ranker.
type Annotation struct {
	MatchScore         int    `json:"matchScore"` // 0-100
	MatchReason        string `json:"matchReason"`
	UsageTips          string `json:"usageTips"`
	EffectsExplanation string `json:"effectsExplanation"`
}

// AnnotatedStrain is a pipeline output: a value copy of a catalog strain plus
// optional annotation fields. Scored distinguishes a real score from the zero
// value so unscored entries can sort after scored ones.
type AnnotatedStrain struct {
	Strain
	Annotation
	Scored bool `json:"-"`
}

// Annotate copies a catalog strain and attaches an annotation.
func Annotate(s Strain, a Annotation) AnnotatedStrain {
	return AnnotatedStrain{Strain: s, Annotation: a, Scored: true}
}

// SortAnnotated orders results score-desc; unscored entries sort after all
// scored ones; ties (and unscored pairs) break by rating desc. Stable.
func SortAnnotated(list []AnnotatedStrain) {
	sort.SliceStable(list, func(i, j int) bool {
		return annotatedLess(list[i], list[j])
	})
}

func annotatedLess(a, b AnnotatedStrain) bool {
	switch {
	case a.Scored && !b.Scored:
		return true
	case !a.Scored && b.Scored:
		return false
	case a.Scored && b.Scored && a.MatchScore != b.MatchScore:
		return a.MatchScore > b.MatchScore
	default:
		return a.Rating > b.Rating
	}
}
