package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// validMealSlots is the set of allowed meal slot values. Reject unknown slots
// with 400 — the slot enum is fixed.
var validMealSlots = map[string]bool{
	"아침": true,
	"점심": true,
	"저녁": true,
	"간식": true,
}

// validServings enforces the form constraint on serving counts: 0.25–5 in
// steps of 0.25.
func validServings(s float64) bool {
	if s < 0.25 || s > 5 {
		return false
	}
	steps := s * 4
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// getMealLog returns the meal rows for a given date and their kcal sum,
// or the whole log when no date is given (the editable table view).
// GET /api/meal-log?date=YYYY-MM-DD.
func (h *Handler) getMealLog(c *gin.Context) {
	store := sessionStore(c)

	if s := c.Query("date"); s != "" {
		date, err := parseDateOnly(s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"entries":    store.mealsForDate(date),
			"total_kcal": store.mealKcalForDate(date),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": store.allMeals()})
}

// createMealEntry adds one meal row, deriving its kcal from the catalog.
// POST /api/meal-log/items. Defaults date to today if omitted.
func (h *Handler) createMealEntry(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}

	var body createMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Food == "" {
		apiError(c, http.StatusBadRequest, "food is required")
		return
	}
	if !validMealSlots[body.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: 아침, 점심, 저녁, 간식")
		return
	}
	if !validServings(body.Servings) {
		apiError(c, http.StatusBadRequest, "servings must be between 0.25 and 5 in steps of 0.25")
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

	// Unknown foods log as 0 kcal rather than failing — the catalog is the
	// user's to fix.
	kcal, found := mealCalories(table, body.Food, body.Servings)
	if !found {
		h.log.Infow("meal logged with unknown food", "food", body.Food)
	}

	entry := sessionStore(c).addMeal(mealEntry{
		Date:     date,
		Meal:     body.Meal,
		Food:     body.Food,
		Servings: body.Servings,
		Kcal:     kcal,
	})
	c.JSON(http.StatusCreated, entry)
}

// previewMealCalories computes the kcal a meal row would get before it is
// logged, mirroring the live figure the form shows next to the add button.
// GET /api/meal-log/preview?food=NAME&servings=N.
func (h *Handler) previewMealCalories(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}

	food := c.Query("food")
	if food == "" {
		apiError(c, http.StatusBadRequest, "food query param is required")
		return
	}
	servings := 1.0
	if s := c.Query("servings"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			apiError(c, http.StatusBadRequest, "servings must be a non-negative number")
			return
		}
		servings = v
	}

	kcal, found := mealCalories(table, food, servings)
	c.JSON(http.StatusOK, gin.H{"kcal": kcal, "found": found})
}

// importMealLog bulk-appends rows from an uploaded meal CSV.
// POST /api/meal-log/import, multipart field "file". Expected columns:
// date, meal, food, servings (default 1), and optionally kcal — when the
// kcal column is absent every row's value is derived from the catalog.
func (h *Handler) importMealLog(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}

	rows, hasKcal, err := readUpload(c, parseMealCSV)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	imported := sessionStore(c).importMeals(table, rows, !hasKcal)
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// copyPreviousDay duplicates a whole day's meals onto the target date.
// POST /api/meal-log/copy-day. Source defaults to the day before the target.
// An empty source day is not an error: copied=0 plus a message.
func (h *Handler) copyPreviousDay(c *gin.Context) {
	store := sessionStore(c)

	var body copyDayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.TargetDate == "" {
		apiError(c, http.StatusBadRequest, "target_date is required")
		return
	}
	target, err := parseDateOnly(body.TargetDate)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid target_date, expected YYYY-MM-DD")
		return
	}
	source := DateOnly{target.AddDate(0, 0, -1)}
	if body.SourceDate != "" {
		source, err = parseDateOnly(body.SourceDate)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid source_date, expected YYYY-MM-DD")
			return
		}
	}

	copied := store.copyDay(source, target)
	if copied == 0 {
		c.JSON(http.StatusOK, gin.H{
			"copied":  0,
			"message": fmt.Sprintf("no meals logged on %s", source),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"copied": copied})
}

// applyMealPreset batch-inserts the fixed morning preset for a date.
// POST /api/meal-log/preset. Body: { "date": "YYYY-MM-DD" }.
func (h *Handler) applyMealPreset(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}

	var body struct {
		Date string `json:"date"`
	}
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

	added := sessionStore(c).applyMorningPreset(table, date)
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// replaceMealLog applies an edit of the whole meal table: the supplied rows
// become the new log, with every kcal recomputed from its row's food and
// servings. Any kcal value in the payload is ignored.
// PUT /api/meal-log.
func (h *Handler) replaceMealLog(c *gin.Context) {
	table := h.requireCatalog(c)
	if table == nil {
		return
	}

	var body struct {
		Entries []editMealRow `json:"entries"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	edits := make([]mealEntry, 0, len(body.Entries))
	for i, row := range body.Entries {
		date, err := parseDateOnly(row.Date)
		if err != nil {
			apiError(c, http.StatusBadRequest, fmt.Sprintf("row %d: invalid date, expected YYYY-MM-DD", i))
			return
		}
		if !validMealSlots[row.Meal] {
			apiError(c, http.StatusBadRequest, fmt.Sprintf("row %d: meal must be one of: 아침, 점심, 저녁, 간식", i))
			return
		}
		if row.Servings < 0 {
			apiError(c, http.StatusBadRequest, fmt.Sprintf("row %d: servings must be non-negative", i))
			return
		}
		edits = append(edits, mealEntry{
			Date:     date,
			Meal:     row.Meal,
			Food:     row.Food,
			Servings: row.Servings,
		})
	}

	replaced := sessionStore(c).replaceMeals(table, edits)
	c.JSON(http.StatusOK, gin.H{"entries": replaced})
}

// deleteMealEntries removes meal rows by id. Ids that no longer exist are
// ignored rather than failing the batch.
// DELETE /api/meal-log/items. Body: { "ids": [1, 2, 3] }.
func (h *Handler) deleteMealEntries(c *gin.Context) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	deleted := sessionStore(c).deleteMeals(body.IDs)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

/* ─── CSV parsing ────────────────────────────────────────────────────── */

// readUpload opens the multipart "file" field and runs the given parser on it.
func readUpload[T any](c *gin.Context, parse func(io.Reader) ([]T, bool, error)) ([]T, bool, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, false, fmt.Errorf("file upload is required")
	}
	var f multipart.File
	if f, err = fileHeader.Open(); err != nil {
		return nil, false, fmt.Errorf("could not open uploaded file")
	}
	defer f.Close()
	return parse(f)
}

// parseMealCSV parses an uploaded meal log CSV into entries. Returns whether
// the file carried a kcal column; when it did not, the store derives the
// values at import time.
func parseMealCSV(r io.Reader) ([]mealEntry, bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, false, fmt.Errorf("read meal CSV header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"date", "meal", "food"} {
		if _, ok := colIdx[name]; !ok {
			return nil, false, fmt.Errorf("meal CSV missing required column: %s", name)
		}
	}
	_, hasKcal := colIdx["kcal"]

	var rows []mealEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read meal CSV row: %w", err)
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
			return nil, false, fmt.Errorf("meal CSV row %d: invalid date %q", len(rows)+1, cell("date"))
		}
		servings := 1.0
		if s := cell("servings"); s != "" {
			servings = lenientFloat(s)
		}
		rows = append(rows, mealEntry{
			Date:     date,
			Meal:     cell("meal"),
			Food:     cell("food"),
			Servings: servings,
			Kcal:     lenientFloat(cell("kcal")),
		})
	}
	return rows, hasKcal, nil
}
