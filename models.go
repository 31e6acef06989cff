package main

import (
	"time"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// String returns the ISO date form used as the grouping key for per-day sums.
func (d DateOnly) String() string {
	return d.Time.Format("2006-01-02")
}

// parseDateOnly parses a "YYYY-MM-DD" string into a DateOnly.
func parseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// foodItem is one row of the food catalog: per-serving calories and macros.
// Food is the lookup key; Serving is a human-readable quantity description.
type foodItem struct {
	Food     string  `json:"food"`
	Serving  string  `json:"serving"`
	Kcal     float64 `json:"kcal"`
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
}

// mealEntry is one logged meal row. Kcal is derived from (Food, Servings)
// against the catalog at the time the row was created or last recomputed —
// it is not kept in sync if the catalog is later replaced.
type mealEntry struct {
	ID       int64    `json:"id"`
	Date     DateOnly `json:"date"`
	Meal     string   `json:"meal"`
	Food     string   `json:"food"`
	Servings float64  `json:"servings"`
	Kcal     float64  `json:"kcal"`
}

// exerciseEntry is one logged walking activity. KcalBurned is derived from
// (Activity, Minutes, WeightKg) via the MET formula.
type exerciseEntry struct {
	ID         int64    `json:"id"`
	Date       DateOnly `json:"date"`
	Activity   string   `json:"activity"`
	Minutes    float64  `json:"minutes"`
	WeightKg   float64  `json:"weight_kg"`
	KcalBurned float64  `json:"kcal_burned"`
}

// weightEntry is one logged body weight. Append-only; the entry with the
// latest date defines the session's "current weight".
type weightEntry struct {
	ID       int64    `json:"id"`
	Date     DateOnly `json:"date"`
	WeightKg float64  `json:"weight_kg"`
	Note     string   `json:"note"`
}

/* ─── Request / Response types ───────────────────────────────────────── */

// createMealRequest is the request body for POST /api/meal-log/items.
type createMealRequest struct {
	Date     string  `json:"date"`
	Meal     string  `json:"meal"`
	Food     string  `json:"food"`
	Servings float64 `json:"servings"`
}

// editMealRow is one row of the PUT /api/meal-log replacement list. A Kcal
// value may be present (the edit grid shows it) but is always discarded and
// recomputed server-side.
type editMealRow struct {
	Date     string  `json:"date"`
	Meal     string  `json:"meal"`
	Food     string  `json:"food"`
	Servings float64 `json:"servings"`
	Kcal     float64 `json:"kcal"`
}

// copyDayRequest is the request body for POST /api/meal-log/copy-day.
// SourceDate defaults to the day before TargetDate when omitted.
type copyDayRequest struct {
	SourceDate string `json:"source_date"`
	TargetDate string `json:"target_date"`
}

// createExerciseRequest is the request body for POST /api/exercise-log/items.
// WeightKg defaults to the latest logged weight (or 60 with no weight log);
// Minutes defaults to 30.
type createExerciseRequest struct {
	Date     string   `json:"date"`
	Activity string   `json:"activity"`
	Minutes  *float64 `json:"minutes"`
	WeightKg *float64 `json:"weight_kg"`
}

// createWeightRequest is the request body for POST /api/weight-log.
type createWeightRequest struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Note     string  `json:"note"`
}

// weightPoint is one point of the weight trend line chart.
type weightPoint struct {
	Date     DateOnly `json:"date"`
	WeightKg float64  `json:"weight_kg"`
}

// dailySummary is the response shape for GET /api/dashboard/daily: the day's
// intake and burn totals, their balance, and the weight trend series.
type dailySummary struct {
	Date          string        `json:"date"`
	KcalIn        float64       `json:"kcal_in"`
	KcalOut       float64       `json:"kcal_out"`
	EnergyBalance float64       `json:"energy_balance"`
	CurrentWeight *float64      `json:"current_weight"`
	WeightTrend   []weightPoint `json:"weight_trend"`
}
