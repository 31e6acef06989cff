package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// defaultExerciseWeightKg is used when the session has no weight log to pull
// a current weight from.
const defaultExerciseWeightKg = 60.0

// defaultExerciseMinutes matches the form's initial duration value.
const defaultExerciseMinutes = 30.0

// getExerciseLog returns all exercise rows sorted by (date, activity) and,
// when a date is given, that day's burned-kcal sum.
// GET /api/exercise-log?date=YYYY-MM-DD.
func (h *Handler) getExerciseLog(c *gin.Context) {
	store := sessionStore(c)

	resp := gin.H{"entries": store.exercisesSorted()}
	if s := c.Query("date"); s != "" {
		date, err := parseDateOnly(s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		resp["total_kcal_burned"] = store.exerciseKcalForDate(date)
	}
	c.JSON(http.StatusOK, resp)
}

// createExerciseEntry adds one walking entry with its burned kcal derived via
// the MET formula. Weight defaults to the latest logged weight, minutes to 30.
// Unrecognized activity labels are accepted and priced at the moderate MET.
// POST /api/exercise-log/items.
func (h *Handler) createExerciseEntry(c *gin.Context) {
	store := sessionStore(c)

	var body createExerciseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	date, err := parseDateOnly(body.Date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.Activity == "" {
		body.Activity = activityModerate
	}

	minutes := defaultExerciseMinutes
	if body.Minutes != nil {
		minutes = *body.Minutes
	}
	if minutes < 5 || minutes > 240 {
		apiError(c, http.StatusBadRequest, "minutes must be between 5 and 240")
		return
	}

	weightKg := defaultExerciseWeightKg
	if w, ok := store.latestWeight(); ok {
		weightKg = w
	}
	if body.WeightKg != nil {
		weightKg = *body.WeightKg
	}
	if weightKg < 30 || weightKg > 200 {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 30 and 200")
		return
	}

	entry := store.addExercise(exerciseEntry{
		Date:       date,
		Activity:   body.Activity,
		Minutes:    minutes,
		WeightKg:   weightKg,
		KcalBurned: walkCalories(body.Activity, minutes, weightKg),
	})
	c.JSON(http.StatusCreated, entry)
}

// previewWalkCalories estimates the burned kcal for a walk before it is
// logged, mirroring the live figure the form shows.
// GET /api/exercise-log/preview?activity=A&minutes=M&weight_kg=W.
func (h *Handler) previewWalkCalories(c *gin.Context) {
	store := sessionStore(c)

	activity := c.DefaultQuery("activity", activityModerate)

	minutes := defaultExerciseMinutes
	if s := c.Query("minutes"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			apiError(c, http.StatusBadRequest, "minutes must be a number")
			return
		}
		minutes = v
	}

	weightKg := defaultExerciseWeightKg
	if w, ok := store.latestWeight(); ok {
		weightKg = w
	}
	if s := c.Query("weight_kg"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			apiError(c, http.StatusBadRequest, "weight_kg must be a number")
			return
		}
		weightKg = v
	}

	c.JSON(http.StatusOK, gin.H{
		"kcal_burned": walkCalories(activity, minutes, weightKg),
		"weight_kg":   weightKg,
	})
}

// importExerciseLog bulk-appends rows from an uploaded exercise CSV.
// POST /api/exercise-log/import, multipart field "file". Expected columns:
// date, activity (default 걷기(보통)), minutes (default 30), weight_kg
// (default 60), and optionally kcal_burned. Rows with a missing or zero
// kcal_burned get it recomputed; rows with a nonzero value keep theirs.
func (h *Handler) importExerciseLog(c *gin.Context) {
	rows, _, err := readUpload(c, parseExerciseCSV)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	imported := sessionStore(c).importExercise(rows)
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// parseExerciseCSV parses an uploaded exercise log CSV into entries, applying
// the per-column defaults. The second return mirrors parseMealCSV's shape for
// readUpload; importExercise decides recomputation per row, so it is unused.
func parseExerciseCSV(r io.Reader) ([]exerciseEntry, bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, false, fmt.Errorf("read exercise CSV header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	if _, ok := colIdx["date"]; !ok {
		return nil, false, fmt.Errorf("exercise CSV missing required column: date")
	}
	_, hasKcal := colIdx["kcal_burned"]

	var rows []exerciseEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read exercise CSV row: %w", err)
		}
		cell := func(name string) string {
			i, ok := colIdx[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		date, err := parseDateOnly(cell("date"))
		if err != nil {
			return nil, false, fmt.Errorf("exercise CSV row %d: invalid date %q", len(rows)+1, cell("date"))
		}
		activity := cell("activity")
		if activity == "" {
			activity = activityModerate
		}
		minutes := defaultExerciseMinutes
		if s := cell("minutes"); s != "" {
			minutes = lenientFloat(s)
		}
		weightKg := defaultExerciseWeightKg
		if s := cell("weight_kg"); s != "" {
			weightKg = lenientFloat(s)
		}
		rows = append(rows, exerciseEntry{
			Date:       date,
			Activity:   activity,
			Minutes:    minutes,
			WeightKg:   weightKg,
			KcalBurned: lenientFloat(cell("kcal_burned")),
		})
	}
	return rows, hasKcal, nil
}
