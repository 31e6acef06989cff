package main

import (
	"net/http"
	"testing"
)

func TestExerciseLog_CreateWithDefaults(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	// No activity, minutes, or weight supplied: moderate pace, 30 minutes,
	// fallback weight of 60 kg.
	w := tc.do("POST", "/api/exercise-log/items", `{"date":"2024-01-01"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	entry := decode(t, w)
	if entry["activity"] != "걷기(보통)" {
		t.Errorf("expected default activity 걷기(보통), got %v", entry["activity"])
	}
	if entry["minutes"].(float64) != 30 {
		t.Errorf("expected default minutes 30, got %v", entry["minutes"])
	}
	if entry["weight_kg"].(float64) != 60 {
		t.Errorf("expected fallback weight 60, got %v", entry["weight_kg"])
	}
	if !almostEqual(entry["kcal_burned"].(float64), 110.25) {
		t.Errorf("expected kcal_burned 110.25, got %v", entry["kcal_burned"])
	}
}

// TestExerciseLog_UsesLatestLoggedWeight verifies the weight default follows
// the weight log once entries exist.
func TestExerciseLog_UsesLatestLoggedWeight(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	tc.do("POST", "/api/weight-log", `{"date":"2024-01-01","weight_kg":70}`)

	w := tc.do("POST", "/api/exercise-log/items", `{"date":"2024-01-02"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	entry := decode(t, w)
	if entry["weight_kg"].(float64) != 70 {
		t.Errorf("expected latest logged weight 70, got %v", entry["weight_kg"])
	}
	if !almostEqual(entry["kcal_burned"].(float64), 128.625) {
		t.Errorf("expected kcal_burned 128.625, got %v", entry["kcal_burned"])
	}
}

func TestExerciseLog_CreateValidation(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	cases := []struct {
		name string
		body string
	}{
		{"minutes too low", `{"date":"2024-01-01","minutes":4}`},
		{"minutes too high", `{"date":"2024-01-01","minutes":241}`},
		{"weight too low", `{"date":"2024-01-01","weight_kg":29}`},
		{"weight too high", `{"date":"2024-01-01","weight_kg":201}`},
		{"bad date", `{"date":"2024/01/01"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := tc.do("POST", "/api/exercise-log/items", c.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

// Unknown activity labels are priced at the moderate MET rather than rejected.
func TestExerciseLog_UnknownActivityFallsBack(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.do("POST", "/api/exercise-log/items",
		`{"date":"2024-01-01","activity":"달리기","minutes":30,"weight_kg":60}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	entry := decode(t, w)
	if entry["activity"] != "달리기" {
		t.Errorf("expected the label kept as-is, got %v", entry["activity"])
	}
	if !almostEqual(entry["kcal_burned"].(float64), 110.25) {
		t.Errorf("expected moderate-MET kcal 110.25, got %v", entry["kcal_burned"])
	}
}

func TestExerciseLog_Preview(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.do("GET", "/api/exercise-log/preview?activity=걷기(빠름)&minutes=60&weight_kg=60", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	// 4.5 × 3.5 × 60 / 200 × 60
	if !almostEqual(resp["kcal_burned"].(float64), 283.5) {
		t.Errorf("expected 283.5, got %v", resp["kcal_burned"])
	}
}

func TestExerciseLog_DailySum(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	tc.do("POST", "/api/exercise-log/items",
		`{"date":"2024-01-01","activity":"걷기(보통)","minutes":30,"weight_kg":60}`)
	tc.do("POST", "/api/exercise-log/items",
		`{"date":"2024-01-01","activity":"걷기(느림)","minutes":10,"weight_kg":60}`)
	tc.do("POST", "/api/exercise-log/items",
		`{"date":"2024-01-02","activity":"걷기(보통)","minutes":30,"weight_kg":60}`)

	w := tc.do("GET", "/api/exercise-log?date=2024-01-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if !almostEqual(resp["total_kcal_burned"].(float64), 139.65) {
		t.Errorf("expected day total 139.65, got %v", resp["total_kcal_burned"])
	}
	if entries := resp["entries"].([]any); len(entries) != 3 {
		t.Errorf("expected all 3 entries in the sorted list, got %d", len(entries))
	}
}

func TestExerciseLog_Import(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	// First row has no kcal_burned and gets recomputed; second keeps its value.
	csv := "date,activity,minutes,weight_kg,kcal_burned\n" +
		"2024-01-01,걷기(보통),30,60,\n" +
		"2024-01-01,걷기(빠름),60,60,555\n"
	w := tc.doUpload("/api/exercise-log/import", "sample_exercise_log.csv", csv)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if imported := decode(t, w)["imported"].(float64); imported != 2 {
		t.Errorf("expected 2 imported, got %v", imported)
	}

	w = tc.do("GET", "/api/exercise-log?date=2024-01-01", "")
	if total := decode(t, w)["total_kcal_burned"].(float64); !almostEqual(total, 665.25) {
		t.Errorf("expected total 665.25 (110.25 recomputed + 555 kept), got %v", total)
	}
}

func TestExerciseLog_ImportMissingDateColumn(t *testing.T) {
	_, router := newTestHandler(true)
	tc := newTestClient(router)

	w := tc.doUpload("/api/exercise-log/import", "bad.csv", "activity,minutes\n걷기(보통),30\n")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing date column, got %d: %s", w.Code, w.Body.String())
	}
}
