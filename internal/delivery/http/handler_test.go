package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/backend/config"
	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/registry"
	"github.com/nutrilens/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeBrandedStore serves a fixed product
type fakeBrandedStore struct {
	results []domain.SearchResult
	food    *domain.BrandedFood
}

func (f *fakeBrandedStore) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	return f.results, nil
}

func (f *fakeBrandedStore) GetByCode(ctx context.Context, code string) (*domain.BrandedFood, error) {
	if f.food != nil && f.food.Code == code {
		return f.food, nil
	}
	return nil, domain.ErrFoodNotFound
}

type fakeFoundationStore struct{}

func (f *fakeFoundationStore) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	return nil, nil
}

func (f *fakeFoundationStore) GetByID(ctx context.Context, fdcID string) (*domain.FoundationFood, error) {
	return nil, domain.ErrFoodNotFound
}

// fakeUserStore keeps everything in maps, standing in for the SQLite store
type fakeUserStore struct {
	foods map[string]*domain.CustomFood
	goals map[string]domain.GoalSet
	logs  []domain.LogEntry
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		foods: make(map[string]*domain.CustomFood),
		goals: make(map[string]domain.GoalSet),
	}
}

func (f *fakeUserStore) Search(ctx context.Context, userID, query string, limit int) ([]domain.SearchResult, error) {
	var out []domain.SearchResult
	for _, food := range f.foods {
		if food.UserID == userID && strings.Contains(strings.ToLower(food.Name), strings.ToLower(query)) {
			out = append(out, domain.SearchResult{Code: food.ID, Name: food.Name, Source: domain.SourceUser})
		}
	}
	return out, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, userID, id string) (*domain.CustomFood, error) {
	if food, ok := f.foods[id]; ok && food.UserID == userID {
		return food, nil
	}
	return nil, domain.ErrFoodNotFound
}

func (f *fakeUserStore) Create(ctx context.Context, food *domain.CustomFood) error {
	if food.ID == "" {
		food.ID = "custom-1"
	}
	f.foods[food.ID] = food
	return nil
}

func (f *fakeUserStore) Load(ctx context.Context, userID string) (domain.GoalSet, error) {
	return f.goals[userID], nil
}

func (f *fakeUserStore) Save(ctx context.Context, userID string, goals domain.GoalSet) error {
	f.goals[userID] = goals
	return nil
}

func (f *fakeUserStore) Add(ctx context.Context, entries []domain.LogEntry) error {
	f.logs = append(f.logs, entries...)
	return nil
}

func (f *fakeUserStore) ListByDate(ctx context.Context, userID, date string) ([]domain.LogEntry, error) {
	var out []domain.LogEntry
	for _, e := range f.logs {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, userID, id string) error {
	for i, e := range f.logs {
		if e.ID == id && e.UserID == userID {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return domain.ErrFoodNotFound
}

func setupTestRouter(branded *fakeBrandedStore, users *fakeUserStore) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	reg := registry.MustNew()
	foundation := &fakeFoundationStore{}

	handler := NewHandler(
		usecase.NewSearchService(branded, foundation, users),
		usecase.NewNutritionService(reg, branded, foundation, users, users),
		usecase.NewGoalService(reg, users),
	)
	return SetupRouter(cfg, handler)
}

func doRequest(router *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(&fakeBrandedStore{}, newFakeUserStore())

	w := doRequest(router, http.MethodGet, "/health", "", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestSearchFoodsEndpoint(t *testing.T) {
	branded := &fakeBrandedStore{results: []domain.SearchResult{
		{Code: "111", Name: "Granola Crunch", Source: domain.SourceBranded},
	}}
	router := setupTestRouter(branded, newFakeUserStore())

	t.Run("returns ranked results", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/foods/search", "", `{"query": "granola"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var body struct {
			Results []domain.SearchResult `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if len(body.Results) != 1 || body.Results[0].Code != "111" {
			t.Errorf("results = %v", body.Results)
		}
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/foods/search", "", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestGetFoodEndpoint(t *testing.T) {
	branded := &fakeBrandedStore{food: &domain.BrandedFood{
		Code: "111",
		Name: "Granola Crunch",
		Nutrients: []domain.RawNutrient{
			{Name: "Energy-kcal", Per100g: ptrFloat(450), Unit: "kcal"},
		},
	}}
	router := setupTestRouter(branded, newFakeUserStore())

	t.Run("found", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/foods/111", "", "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var profile domain.NutrientProfile
		if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
			t.Fatal(err)
		}
		if profile.Name != "Granola Crunch" {
			t.Errorf("name = %q", profile.Name)
		}
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/foods/999", "", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestLogEndpoints(t *testing.T) {
	users := newFakeUserStore()
	router := setupTestRouter(&fakeBrandedStore{}, users)

	t.Run("anonymous logging is a 401", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/logs", "", `{"entries": [{"date": "2026-08-30", "foodCode": "111", "quantity": 100, "unit": "g"}]}`)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("log then list", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/logs", "user-1",
			`{"entries": [{"date": "2026-08-30", "foodCode": "111", "dataSource": "branded", "quantity": 100, "unit": "g"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}

		w = doRequest(router, http.MethodGet, "/api/v1/logs?date=2026-08-30", "user-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var body struct {
			Entries []domain.LogEntry `json:"entries"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if len(body.Entries) != 1 {
			t.Fatalf("entries = %v", body.Entries)
		}
		if body.Entries[0].ID == "" {
			t.Error("entry id missing")
		}
	})

	t.Run("list without a date is a 400", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/logs", "user-1", "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		id := users.logs[0].ID
		w := doRequest(router, http.MethodDelete, "/api/v1/logs/"+id, "user-1", "")

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}

func TestGoalEndpoints(t *testing.T) {
	router := setupTestRouter(&fakeBrandedStore{}, newFakeUserStore())

	t.Run("anonymous goals access is a 401", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/goals", "", "")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("accepted update returns the new overlay", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/api/v1/goals", "user-1",
			`{"key": "protein", "goal": {"target": 140}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var result domain.GoalUpdateResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatal(err)
		}
		if result.Goals["protein"].Target == nil || *result.Goals["protein"].Target != 140 {
			t.Errorf("goals = %v", result.Goals)
		}
	})

	t.Run("validation rejection is a 422 with the reason", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/api/v1/goals", "user-1",
			`{"key": "protein", "goal": {"min": 100, "max": 50}}`)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["error"] != "Minimum cannot be greater than Maximum." {
			t.Errorf("error = %q", body["error"])
		}
	})

	t.Run("macro goals replace the four targets", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/goals/macros", "user-1",
			`{"energy": 2200, "carbs": 250, "protein": 140, "fat": 70}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestRebalanceMacrosEndpoint(t *testing.T) {
	router := setupTestRouter(&fakeBrandedStore{}, newFakeUserStore())

	w := doRequest(router, http.MethodPost, "/api/v1/goals/macros/rebalance", "",
		`{"state": {"energy": 2000, "carbs": {"pct": 50}, "protein": {"pct": 30}, "fat": {"pct": 20}}, "base": "energy", "changed": "carbs"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var state usecase.MacroState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.Carbs.Grams != 250 {
		t.Errorf("carbs grams = %v, want 250", state.Carbs.Grams)
	}
}

func TestCalculateMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(&fakeBrandedStore{}, newFakeUserStore())

	t.Run("computes metrics", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/profile/metrics", "user-1",
			`{"sex": "male", "age": 30, "weight": 80, "height": 180, "activityLevel": "active"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var metrics domain.DRIMetrics
		if err := json.Unmarshal(w.Body.Bytes(), &metrics); err != nil {
			t.Fatal(err)
		}
		if metrics.BMR != 1780 {
			t.Errorf("BMR = %v, want 1780", metrics.BMR)
		}
	})

	t.Run("incomplete profile is a 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/profile/metrics", "", `{"sex": "male"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCreateCustomFoodEndpoint(t *testing.T) {
	users := newFakeUserStore()
	router := setupTestRouter(&fakeBrandedStore{}, users)

	w := doRequest(router, http.MethodPost, "/api/v1/foods/custom", "user-1",
		`{"name": "Trail Mix", "nutriments": {"energy": 480}}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if len(users.foods) != 1 {
		t.Errorf("stored %d foods, want 1", len(users.foods))
	}

	t.Run("anonymous creation is a 401", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/foods/custom", "", `{"name": "X"}`)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func ptrFloat(v float64) *float64 { return &v }
