package strainwise

import "github.com/strainwise/strainwise/internal/domain"

// Strain is a catalog entry.
type Strain struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Breeder     string   `json:"breeder"`
	Type        string   `json:"type"` // Indica, Sativa, Hybrid, Sativa-dominant, Indica-dominant
	THCContent  string   `json:"thcContent"`
	CBDContent  string   `json:"cbdContent"`
	Terpenes    []string `json:"terpenes"`
	Effects     []string `json:"effects"`
	Flavors     []string `json:"flavors"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// Request describes what the user is looking for. Absent fields mean
// unconstrained.
type Request struct {
	Mood              string   `json:"mood,omitempty"`
	ExperienceLevel   string   `json:"experienceLevel,omitempty"` // beginner, intermediate, experienced
	Effects           []string `json:"effects,omitempty"`
	Flavors           []string `json:"flavors,omitempty"`
	ConsumptionMethod []string `json:"consumptionMethod,omitempty"`
}

// Recommendation is one ranked result: a strain plus match metadata.
type Recommendation struct {
	Strain
	MatchScore         int    `json:"matchScore"` // 0-100
	MatchReason        string `json:"matchReason"`
	UsageTips          string `json:"usageTips"`
	EffectsExplanation string `json:"effectsExplanation"`
}

func toDomainStrain(s Strain) domain.Strain {
	return domain.Strain{
		ID:          s.ID,
		Name:        s.Name,
		Breeder:     s.Breeder,
		Type:        domain.StrainType(s.Type),
		THCContent:  s.THCContent,
		CBDContent:  s.CBDContent,
		Terpenes:    s.Terpenes,
		Effects:     s.Effects,
		Flavors:     s.Flavors,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func fromDomainStrain(s domain.Strain) Strain {
	return Strain{
		ID:          s.ID,
		Name:        s.Name,
		Breeder:     s.Breeder,
		Type:        string(s.Type),
		THCContent:  s.THCContent,
		CBDContent:  s.CBDContent,
		Terpenes:    s.Terpenes,
		Effects:     s.Effects,
		Flavors:     s.Flavors,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func toDomainRequest(r Request) domain.RecommendationRequest {
	return domain.RecommendationRequest{
		Mood:              r.Mood,
		ExperienceLevel:   domain.ExperienceLevel(r.ExperienceLevel),
		Effects:           r.Effects,
		Flavors:           r.Flavors,
		ConsumptionMethod: r.ConsumptionMethod,
	}
}

func fromAnnotated(a domain.AnnotatedStrain) Recommendation {
	return Recommendation{
		Strain:             fromDomainStrain(a.Strain),
		MatchScore:         a.MatchScore,
		MatchReason:        a.MatchReason,
		UsageTips:          a.UsageTips,
		EffectsExplanation: a.EffectsExplanation,
	}
}
