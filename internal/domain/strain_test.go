package domain

import (
	"strings"
	"testing"
)

func TestStrainTypeClassification(t *testing.T) {
	cases := []struct {
		typ    StrainType
		indica bool
		sativa bool
	}{
		{TypeIndica, true, false},
		{TypeIndicaDominant, true, false},
		{TypeSativa, false, true},
		{TypeSativaDominant, false, true},
		{TypeHybrid, false, false},
	}
	for _, tc := range cases {
		if got := tc.typ.IsIndica(); got != tc.indica {
			t.Errorf("%s.IsIndica() = %v, want %v", tc.typ, got, tc.indica)
		}
		if got := tc.typ.IsSativa(); got != tc.sativa {
			t.Errorf("%s.IsSativa() = %v, want %v", tc.typ, got, tc.sativa)
		}
	}
}

func TestHasEffectSubstring(t *testing.T) {
	s := Strain{Effects: []string{"Relaxing", "Sleep Aid"}}

	cases := []struct {
		effect string
		want   bool
	}{
		{"Relaxing", true},
		{"relax", true},     // query is substring of effect
		{"Sleep Aid X", true}, // effect is substring of query
		{"Energetic", false},
		{"", true}, // empty matches everything
	}
	for _, tc := range cases {
		if got := s.HasEffect(tc.effect); got != tc.want {
			t.Errorf("HasEffect(%q) = %v, want %v", tc.effect, got, tc.want)
		}
	}
}

func TestHasFlavor(t *testing.T) {
	s := Strain{Flavors: []string{"Citrus", "Pine"}}
	if !s.HasFlavor("citrus") {
		t.Error("expected case-insensitive flavor match")
	}
	if s.HasFlavor("berry") {
		t.Error("unexpected flavor match")
	}
}

func TestEmbeddingText(t *testing.T) {
	s := Strain{
		Type:        TypeIndica,
		Effects:     []string{"Relaxing", "Sleepy"},
		Flavors:     []string{"Grape"},
		Terpenes:    []string{"Myrcene"},
		Description: "Classic nighttime strain.",
	}
	text := s.EmbeddingText()
	for _, want := range []string{"Indica strain", "Relaxing, Sleepy", "Grape", "Myrcene", "Classic nighttime strain."} {
		if !strings.Contains(text, want) {
			t.Errorf("EmbeddingText() missing %q: %s", want, text)
		}
	}
}

func TestAnnotateMarksScored(t *testing.T) {
	s := Strain{ID: "a", Name: "Alpha"}
	got := Annotate(s, Annotation{MatchScore: 88, MatchReason: "fits"})
	if !got.Scored {
		t.Error("Annotate should set Scored")
	}
	if got.MatchScore != 88 || got.ID != "a" {
		t.Errorf("unexpected annotated strain: %+v", got)
	}
}

func TestSortAnnotatedOrdering(t *testing.T) {
	list := []AnnotatedStrain{
		{Strain: Strain{ID: "unscored-hi", Rating: 4.9}},
		Annotate(Strain{ID: "low", Rating: 4.0}, Annotation{MatchScore: 60}),
		Annotate(Strain{ID: "tie-b", Rating: 4.2}, Annotation{MatchScore: 80}),
		{Strain: Strain{ID: "unscored-lo", Rating: 3.5}},
		Annotate(Strain{ID: "tie-a", Rating: 4.8}, Annotation{MatchScore: 80}),
		Annotate(Strain{ID: "high", Rating: 3.0}, Annotation{MatchScore: 95}),
	}
	SortAnnotated(list)

	want := []string{"high", "tie-a", "tie-b", "low", "unscored-hi", "unscored-lo"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, list[i].ID, id)
		}
	}
}
