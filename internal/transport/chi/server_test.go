package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

type mockRecommender struct {
	result []domain.AnnotatedStrain
	err    error
	last   domain.RecommendationRequest
}

func (m *mockRecommender) GetRecommendations(_ context.Context, req domain.RecommendationRequest) ([]domain.AnnotatedStrain, error) {
	m.last = req
	return m.result, m.err
}

type mockCatalog struct {
	strains []domain.Strain
}

func (m *mockCatalog) All() []domain.Strain { return m.strains }

func (m *mockCatalog) ByID(id string) (domain.Strain, error) {
	for _, s := range m.strains {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Strain{}, domain.ErrStrainNotFound
}

func (m *mockCatalog) TopRated(n int) []domain.Strain {
	if n > len(m.strains) {
		n = len(m.strains)
	}
	return m.strains[:n]
}

type mockPriority struct {
	strains []domain.Strain
}

func (m *mockPriority) Current() []domain.Strain { return m.strains }

func newTestRouter(rec *mockRecommender, cat *mockCatalog) http.Handler {
	s := NewServer(rec, cat, &mockPriority{strains: cat.strains}, nil, zap.NewNop())
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

func TestPostRecommendations(t *testing.T) {
	rec := &mockRecommender{result: []domain.AnnotatedStrain{
		domain.Annotate(
			domain.Strain{ID: "a", Name: "Alpha"},
			domain.Annotation{MatchScore: 90, MatchReason: "fits"},
		),
	}}
	router := newTestRouter(rec, &mockCatalog{})

	body := `{"mood":"relaxed","experienceLevel":"beginner","effects":["Sleepy"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if rec.last.Mood != "relaxed" || rec.last.ExperienceLevel != domain.ExperienceBeginner {
		t.Errorf("request not passed through: %+v", rec.last)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(got) != 1 || got[0]["matchScore"].(float64) != 90 {
		t.Errorf("unexpected body: %v", got)
	}
}

func TestPostRecommendations_MissingFields(t *testing.T) {
	router := newTestRouter(&mockRecommender{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(`{"mood":"relaxed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != CodeBadRequest {
		t.Errorf("code = %s, want %s", resp.Code, CodeBadRequest)
	}
}

func TestPostRecommendations_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockRecommender{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetStrain(t *testing.T) {
	cat := &mockCatalog{strains: []domain.Strain{{ID: "a", Name: "Alpha"}}}
	router := newTestRouter(&mockRecommender{}, cat)

	req := httptest.NewRequest(http.MethodGet, "/api/strains/a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got domain.Strain
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "Alpha" {
		t.Errorf("Name = %q, want Alpha", got.Name)
	}
}

func TestGetStrain_NotFound(t *testing.T) {
	router := newTestRouter(&mockRecommender{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/api/strains/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != CodeNotFound {
		t.Errorf("code = %s, want %s", resp.Code, CodeNotFound)
	}
}

func TestTopStrains_Limit(t *testing.T) {
	cat := &mockCatalog{strains: []domain.Strain{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	router := newTestRouter(&mockRecommender{}, cat)

	req := httptest.NewRequest(http.MethodGet, "/api/strains/top?limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []domain.Strain
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestTopStrains_LimitBeyondPrioritySubset(t *testing.T) {
	cat := &mockCatalog{strains: []domain.Strain{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	router := newTestRouter(&mockRecommender{}, cat)

	req := httptest.NewRequest(http.MethodGet, "/api/strains/top?limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []domain.Strain
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestTopStrains_BadLimit(t *testing.T) {
	router := newTestRouter(&mockRecommender{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/api/strains/top?limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&mockRecommender{}, &mockCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
