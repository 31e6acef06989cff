package main

import (
	"net/http"
	"testing"
)

func TestWeightLog_CreateAndLatest(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.do("POST", "/api/weight-log", `{"date":"2024-01-01","weight_kg":62.5,"note":"아침 공복"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	tc.do("POST", "/api/weight-log", `{"date":"2024-01-03","weight_kg":61.8}`)
	tc.do("POST", "/api/weight-log", `{"date":"2024-01-02","weight_kg":62.1}`)

	w = tc.do("GET", "/api/weight-log", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if latest := resp["latest_kg"].(float64); latest != 61.8 {
		t.Errorf("expected latest_kg 61.8 (max date, not insertion order), got %v", latest)
	}
	entries := resp["entries"].([]any)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if first := entries[0].(map[string]any)["date"]; first != "2024-01-01" {
		t.Errorf("expected entries sorted by date, first is %v", first)
	}
}

func TestWeightLog_RangeValidation(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	for _, body := range []string{
		`{"date":"2024-01-01","weight_kg":29.9}`,
		`{"date":"2024-01-01","weight_kg":200.1}`,
		`{"date":"2024-01-01"}`,
	} {
		if w := tc.do("POST", "/api/weight-log", body); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestWeightLog_NoLatestWhenEmpty(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.do("GET", "/api/weight-log", "")
	if _, present := decode(t, w)["latest_kg"]; present {
		t.Error("expected no latest_kg field for an empty weight log")
	}
}

/* ─── Daily dashboard ────────────────────────────────────────────────── */

func TestDashboard_DailyBalance(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	tc.do("POST", "/api/meal-log/items",
		`{"date":"2024-01-01","meal":"아침","food":"사과","servings":2}`)
	tc.do("POST", "/api/exercise-log/items",
		`{"date":"2024-01-01","activity":"걷기(보통)","minutes":30,"weight_kg":60}`)
	tc.do("POST", "/api/weight-log", `{"date":"2024-01-01","weight_kg":62.5}`)

	w := tc.do("GET", "/api/dashboard/daily?date=2024-01-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["kcal_in"].(float64) != 190 {
		t.Errorf("expected kcal_in 190, got %v", resp["kcal_in"])
	}
	if !almostEqual(resp["kcal_out"].(float64), 110.25) {
		t.Errorf("expected kcal_out 110.25, got %v", resp["kcal_out"])
	}
	if !almostEqual(resp["energy_balance"].(float64), 79.75) {
		t.Errorf("expected energy_balance 79.75, got %v", resp["energy_balance"])
	}
	if resp["current_weight"].(float64) != 62.5 {
		t.Errorf("expected current_weight 62.5, got %v", resp["current_weight"])
	}
	if trend := resp["weight_trend"].([]any); len(trend) != 1 {
		t.Errorf("expected 1 trend point, got %d", len(trend))
	}
}

// An untouched day reads as all zeros with a null current weight, not an error.
func TestDashboard_EmptyDay(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.do("GET", "/api/dashboard/daily?date=2024-01-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["kcal_in"].(float64) != 0 || resp["kcal_out"].(float64) != 0 {
		t.Errorf("expected zero totals, got in=%v out=%v", resp["kcal_in"], resp["kcal_out"])
	}
	if resp["current_weight"] != nil {
		t.Errorf("expected null current_weight, got %v", resp["current_weight"])
	}
}

func TestDashboard_InvalidDate(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	if w := tc.do("GET", "/api/dashboard/daily?date=notadate", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
