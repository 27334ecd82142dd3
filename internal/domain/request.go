package domain

import (
	"strings"
	"time"
)

// ExperienceLevel is the user's self-reported cannabis experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExperienced  ExperienceLevel = "experienced"
)

// Known mood values. The pipeline tolerates arbitrary strings; these are the
// vocabulary the mood lexicon covers.
const (
	MoodRelaxed   = "relaxed"
	MoodEnergetic = "energetic"
	MoodCreative  = "creative"
	MoodFocused   = "focused"
	MoodSleepy    = "sleepy"
	MoodHappy     = "happy"
)

// RecommendationRequest is the input to one recommendation call. An absent
// field means unconstrained, never "constrained to empty".
type RecommendationRequest struct {
	Mood              string          `json:"mood,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experienceLevel,omitempty"`
	Effects           []string        `json:"effects,omitempty"`
	Flavors           []string        `json:"flavors,omitempty"`
	ConsumptionMethod []string        `json:"consumptionMethod,omitempty"`
}

// QueryText synthesizes the similarity-search sentence from the request:
// a time-of-day-adjusted mood phrase, an experience phrase, prioritized
// effects, flavor descriptors, and the consumption method.
func (r RecommendationRequest) QueryText(now time.Time) string {
	var parts []string

	if m := strings.TrimSpace(r.Mood); m != "" {
		parts = append(parts, "Cannabis for feeling "+strings.ToLower(m)+" in the "+TimeOfDay(now))
	}
	if r.ExperienceLevel != "" {
		parts = append(parts, "Experience level: "+string(r.ExperienceLevel))
	}
	if len(r.Effects) > 0 {
		parts = append(parts, "Desired effects: "+strings.Join(r.Effects, ", "))
	}
	if len(r.Flavors) > 0 {
		parts = append(parts, "Preferred flavors: "+strings.Join(r.Flavors, ", "))
	}
	if len(r.ConsumptionMethod) > 0 {
		parts = append(parts, "Consumption method: "+strings.Join(r.ConsumptionMethod, ", "))
	}
	if len(parts) == 0 {
		return "Popular well-rated cannabis strains"
	}
	return strings.Join(parts, ". ")
}

// TimeOfDay buckets a wall-clock time into morning/afternoon/evening/night.
func TimeOfDay(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "morning"
	case h < 17:
		return "afternoon"
	case h < 21:
		return "evening"
	default:
		return "night"
	}
}
