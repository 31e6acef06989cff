package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds shared dependencies (session registry, catalog, logger) for
// all route handlers.
type Handler struct {
	sessions *sessionManager
	catalog  *catalogHolder
	log      *zap.SugaredLogger
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requireCatalog returns the current food table, or replies 503 and returns
// nil when no valid catalog has been loaded yet. Without a catalog no meal
// calorie can be derived, so every core route is gated on it.
func (h *Handler) requireCatalog(c *gin.Context) *foodTable {
	t := h.catalog.get()
	if t == nil {
		apiError(c, http.StatusServiceUnavailable, "catalog not loaded")
		return nil
	}
	return t
}

/* ─── Routes ─────────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", h.sessionMiddleware())

	api.GET("/foods", h.getFoods)
	api.POST("/foods", h.replaceFoods)
	api.GET("/foods/export", h.exportFoods)

	api.GET("/meal-log", h.getMealLog)
	api.POST("/meal-log/items", h.createMealEntry)
	api.GET("/meal-log/preview", h.previewMealCalories)
	api.POST("/meal-log/import", h.importMealLog)
	api.POST("/meal-log/copy-day", h.copyPreviousDay)
	api.POST("/meal-log/preset", h.applyMealPreset)
	api.PUT("/meal-log", h.replaceMealLog)
	api.DELETE("/meal-log/items", h.deleteMealEntries)

	api.GET("/exercise-log", h.getExerciseLog)
	api.POST("/exercise-log/items", h.createExerciseEntry)
	api.GET("/exercise-log/preview", h.previewWalkCalories)
	api.POST("/exercise-log/import", h.importExerciseLog)

	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.createWeightEntry)

	api.GET("/dashboard/daily", h.getDailySummary)
}
