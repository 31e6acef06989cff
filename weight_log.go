package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getWeightLog returns all weight entries sorted by date, plus the latest
// weight when one exists.
// GET /api/weight-log.
func (h *Handler) getWeightLog(c *gin.Context) {
	store := sessionStore(c)

	resp := gin.H{"entries": store.weightsSorted()}
	if w, ok := store.latestWeight(); ok {
		resp["latest_kg"] = w
	}
	c.JSON(http.StatusOK, resp)
}

// createWeightEntry appends a weight entry. The weight log is append-only:
// no edit, no delete, same date twice just logs twice and the later entry
// wins as "current weight".
// POST /api/weight-log. Body: { "date"?, "weight_kg", "note"? }.
func (h *Handler) createWeightEntry(c *gin.Context) {
	var body createWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.WeightKg < 30 || body.WeightKg > 200 {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 30 and 200")
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

	entry := sessionStore(c).addWeight(weightEntry{
		Date:     date,
		WeightKg: body.WeightKg,
		Note:     body.Note,
	})
	c.JSON(http.StatusCreated, entry)
}
