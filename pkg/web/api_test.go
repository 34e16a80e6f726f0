package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mkrugly/nr-frequency/pkg/database"
	"github.com/mkrugly/nr-frequency/pkg/logger"
)

func testAPI() *API {
	log := logger.New(logger.Config{Level: "error"})
	return NewAPI(log, APIDeps{})
}

// testAPIWithPlans builds an API backed by a throwaway plan database.
func testAPIWithPlans(t *testing.T, dbPath string) (*API, *database.CellPlanRepository) {
	t.Helper()
	log := logger.New(logger.Config{Level: "error"})

	db, err := database.NewDB(database.Config{Path: dbPath}, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})

	repo := database.NewCellPlanRepository(db.GetDB())
	return NewAPI(log, APIDeps{Plans: repo}), repo
}

func TestAPI_Status(t *testing.T) {
	api := testAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()

	api.HandleStatus(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	// Check response is valid JSON
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Should contain status field
	if _, ok := result["status"]; !ok {
		t.Error("Response doesn't contain status field")
	}
}

func TestAPI_Resolve(t *testing.T) {
	api := testAPI()

	body := `{"name":"macro1","band":77,"bw":50,"scs_carrier":30,"scs_common":30,"scs_ssb":30,"fc_channel":3750000,"pdcch_config_sib1":24,"offset_to_carrier":102}`
	req := httptest.NewRequest(http.MethodPost, "/api/resolve", strings.NewReader(body))
	w := httptest.NewRecorder()

	api.HandleResolve(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if band, ok := result["band"].(float64); !ok || int(band) != 77 {
		t.Errorf("Expected band 77 in response, got %v", result["band"])
	}
	if gscn, ok := result["gscn"].(float64); !ok || int(gscn) != 8006 {
		t.Errorf("Expected gscn 8006 in response, got %v", result["gscn"])
	}
}

func TestAPI_Resolve_UnknownBand(t *testing.T) {
	api := testAPI()

	req := httptest.NewRequest(http.MethodPost, "/api/resolve", strings.NewReader(`{"band":999}`))
	w := httptest.NewRecorder()

	api.HandleResolve(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["error"] == "" {
		t.Error("Expected error message in response")
	}
}

func TestAPI_Resolve_BadBody(t *testing.T) {
	api := testAPI()

	req := httptest.NewRequest(http.MethodPost, "/api/resolve", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	api.HandleResolve(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestAPI_Plans_EmptyWithoutRepository(t *testing.T) {
	api := testAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	w := httptest.NewRecorder()

	api.HandlePlans(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty plan list, got %d entries", len(result))
	}
}

func TestAPI_Plans_Paginated(t *testing.T) {
	api, repo := testAPIWithPlans(t, "/tmp/test_api_plans_paginated.db")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		plan := &database.CellPlan{
			Name:      "cell",
			Band:      1 + i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(plan); err != nil {
			t.Fatalf("Failed to create cell plan %d: %v", i, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/plans?page=2&per_page=2", nil)
	w := httptest.NewRecorder()

	api.HandlePlans(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var page plansPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("Expected total 5, got %d", page.Total)
	}
	if page.Page != 2 || page.PerPage != 2 {
		t.Errorf("Expected page 2 per_page 2, got page %d per_page %d", page.Page, page.PerPage)
	}
	if len(page.Plans) != 2 {
		t.Fatalf("Expected 2 plans on page 2, got %d", len(page.Plans))
	}
	// Newest first: page 1 holds bands 5 and 4, page 2 holds 3 and 2
	if page.Plans[0].Band != 3 {
		t.Errorf("Expected band 3 first on page 2, got %d", page.Plans[0].Band)
	}
}

func TestAPI_Plans_BadPage(t *testing.T) {
	api, _ := testAPIWithPlans(t, "/tmp/test_api_plans_bad_page.db")

	req := httptest.NewRequest(http.MethodGet, "/api/plans?page=0", nil)
	w := httptest.NewRecorder()

	api.HandlePlans(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for page=0, got %d", resp.StatusCode)
	}
}

func TestAPI_Plans_FilterByName(t *testing.T) {
	api, repo := testAPIWithPlans(t, "/tmp/test_api_plans_by_name.db")

	for _, name := range []string{"macro1", "macro2", "macro1"} {
		if err := repo.Create(&database.CellPlan{Name: name, Band: 77}); err != nil {
			t.Fatalf("Failed to create cell plan: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/plans?name=macro1", nil)
	w := httptest.NewRecorder()

	api.HandlePlans(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var plans []database.CellPlan
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans for macro1, got %d", len(plans))
	}
	for _, p := range plans {
		if p.Name != "macro1" {
			t.Errorf("Expected only macro1 plans, got %s", p.Name)
		}
	}
}

func TestAPI_Bands(t *testing.T) {
	api := testAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/bands", nil)
	w := httptest.NewRecorder()

	api.HandleBands(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Expected non-empty band list")
	}

	// List is sorted ascending, band 1 comes first
	if band, ok := result[0]["band"].(float64); !ok || int(band) != 1 {
		t.Errorf("Expected first band 1, got %v", result[0]["band"])
	}
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	api := testAPI()

	// GET on the POST-only resolve endpoint
	req := httptest.NewRequest(http.MethodGet, "/api/resolve", nil)
	w := httptest.NewRecorder()

	api.HandleResolve(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", resp.StatusCode)
	}
}
