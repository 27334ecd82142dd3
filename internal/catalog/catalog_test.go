package catalog

import (
	"errors"
	"testing"

	"github.com/strainwise/strainwise/internal/domain"
)

func testStrains() []domain.Strain {
	return []domain.Strain{
		{ID: "a", Name: "Alpha", Type: domain.TypeIndica, Rating: 4.2},
		{ID: "b", Name: "Beta", Type: domain.TypeSativa, Rating: 4.9},
		{ID: "c", Name: "Gamma Haze", Type: domain.TypeHybrid, Rating: 4.5},
	}
}

func TestCatalogByID(t *testing.T) {
	c := New(testStrains())

	s, err := c.ByID("b")
	if err != nil {
		t.Fatalf("ByID(b): %v", err)
	}
	if s.Name != "Beta" {
		t.Errorf("got %q, want Beta", s.Name)
	}

	if _, err := c.ByID("nope"); !errors.Is(err, domain.ErrStrainNotFound) {
		t.Errorf("ByID(nope) = %v, want ErrStrainNotFound", err)
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := New(testStrains())

	all := c.All()
	all[0].Name = "mutated"

	s, err := c.ByID("a")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Alpha" {
		t.Errorf("catalog mutated through All(): got %q", s.Name)
	}
}

func TestCatalogTopRated(t *testing.T) {
	c := New(testStrains())

	top := c.TopRated(2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].ID != "b" || top[1].ID != "c" {
		t.Errorf("order = %s, %s; want b, c", top[0].ID, top[1].ID)
	}

	if got := c.TopRated(10); len(got) != 3 {
		t.Errorf("TopRated(10) len = %d, want 3", len(got))
	}
}

func TestCatalogReplace(t *testing.T) {
	c := New(testStrains())

	c.Replace([]domain.Strain{{ID: "x", Name: "Xray", Rating: 3.0}})

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if _, err := c.ByID("a"); !errors.Is(err, domain.ErrStrainNotFound) {
		t.Errorf("old entry still resolvable after Replace")
	}
	if _, err := c.ByID("x"); err != nil {
		t.Errorf("ByID(x): %v", err)
	}
}

func TestSeededCatalog(t *testing.T) {
	c := NewSeeded()

	if c.Len() < 20 {
		t.Fatalf("seed catalog has %d strains, want at least 20", c.Len())
	}

	seen := make(map[string]struct{}, c.Len())
	for _, s := range c.All() {
		if s.ID == "" || s.Name == "" || s.Type == "" {
			t.Errorf("strain %q missing required fields", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			t.Errorf("duplicate seed id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Rating < 0 || s.Rating > 5 {
			t.Errorf("strain %q rating %v out of range", s.ID, s.Rating)
		}
	}
}
