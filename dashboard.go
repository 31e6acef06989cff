package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getDailySummary returns the day's intake and burn totals, their balance,
// the current weight, and the weight trend series for the line chart.
// GET /api/dashboard/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailySummary(c *gin.Context) {
	store := sessionStore(c)

	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := parseDateOnly(dateStr)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	kcalIn := store.mealKcalForDate(date)
	kcalOut := store.exerciseKcalForDate(date)

	summary := dailySummary{
		Date:          dateStr,
		KcalIn:        kcalIn,
		KcalOut:       kcalOut,
		EnergyBalance: kcalIn - kcalOut,
		WeightTrend:   []weightPoint{},
	}
	if w, ok := store.latestWeight(); ok {
		summary.CurrentWeight = &w
	}
	for _, e := range store.weightsSorted() {
		summary.WeightTrend = append(summary.WeightTrend, weightPoint{Date: e.Date, WeightKg: e.WeightKg})
	}

	c.JSON(http.StatusOK, summary)
}
