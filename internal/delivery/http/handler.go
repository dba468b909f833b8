package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/backend/internal/clinical"
	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search    *usecase.SearchService
	nutrition *usecase.NutritionService
	goals     *usecase.GoalService

	// Per-user clinical metrics, computed when a profile is submitted.
	// Goal baselines resolve against these; missing metrics mean every
	// baseline is simply absent.
	mu      sync.RWMutex
	metrics map[string]*domain.DRIMetrics
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService, nutrition *usecase.NutritionService, goals *usecase.GoalService) *Handler {
	return &Handler{
		search:    search,
		nutrition: nutrition,
		goals:     goals,
		metrics:   make(map[string]*domain.DRIMetrics),
	}
}

func (h *Handler) userMetrics(userID string) *domain.DRIMetrics {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.metrics[userID]
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrilens-backend",
		"version": "1.0.0",
	})
}

// SearchFoods handles food search requests
func (h *Handler) SearchFoods(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	req.UserID = currentUser(c)

	results, err := h.search.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetFood returns the full nutrient profile for one food
func (h *Handler) GetFood(c *gin.Context) {
	dataSource := domain.DataSource(c.DefaultQuery("source", string(domain.DataSourceBranded)))

	profile, err := h.nutrition.GetFood(c.Request.Context(), currentUser(c), c.Param("id"), dataSource)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateCustomFood stores a user-private food
func (h *Handler) CreateCustomFood(c *gin.Context) {
	userID := currentUser(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	var food domain.CustomFood
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food payload"})
		return
	}
	food.UserID = userID

	if err := h.nutrition.CreateCustomFood(c.Request.Context(), &food); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// AddLogs appends food log entries for the current user
func (h *Handler) AddLogs(c *gin.Context) {
	userID := currentUser(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	var body struct {
		Entries []domain.LogEntry `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entries are required"})
		return
	}

	if err := h.nutrition.LogFoods(c.Request.Context(), userID, body.Entries); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"logged": len(body.Entries)})
}

// ListLogs returns the current user's log entries for one day
func (h *Handler) ListLogs(c *gin.Context) {
	userID := currentUser(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}

	entries, err := h.nutrition.DailyLogs(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteLog removes one log entry
func (h *Handler) DeleteLog(c *gin.Context) {
	userID := currentUser(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.nutrition.DeleteLog(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DailyNutrition returns aggregated canonical nutrient totals for one day
func (h *Handler) DailyNutrition(c *gin.Context) {
	userID := currentUser(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}

	totals, err := h.nutrition.DailyNutrition(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "nutrients": totals})
}

// CalculateMetrics computes clinical baselines from a user profile and
// remembers them for the session
func (h *Handler) CalculateMetrics(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sex, age, weight and height are required"})
		return
	}

	metrics := clinical.CalculateDRI(profile)

	if userID := currentUser(c); userID != "" {
		h.mu.Lock()
		h.metrics[userID] = metrics
		h.mu.Unlock()
	}
	c.JSON(http.StatusOK, metrics)
}

// GetGoals returns the current user's goal overlay
func (h *Handler) GetGoals(c *gin.Context) {
	userID := currentUser(c)

	goals, err := h.goals.Goals(c.Request.Context(), userID, h.userMetrics(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoal validates and applies one goal change
func (h *Handler) UpdateGoal(c *gin.Context) {
	userID := currentUser(c)

	var body struct {
		Key  domain.CanonicalKey `json:"key" binding:"required"`
		Goal domain.Goal         `json:"goal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	result, err := h.goals.UpdateGoal(c.Request.Context(), userID, h.userMetrics(userID), body.Key, body.Goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RebalanceMacros runs the pure macro editor and returns the new state
func (h *Handler) RebalanceMacros(c *gin.Context) {
	var body struct {
		State   usecase.MacroState    `json:"state"`
		Base    usecase.RebalanceBase `json:"base" binding:"required"`
		Changed usecase.MacroName     `json:"changed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base and changed are required"})
		return
	}

	c.JSON(http.StatusOK, usecase.Rebalance(body.State, body.Base, body.Changed))
}

// ApplyMacroGoals persists the macro editor's output as goal targets
func (h *Handler) ApplyMacroGoals(c *gin.Context) {
	userID := currentUser(c)

	var body struct {
		Energy  float64 `json:"energy" binding:"required"`
		Carbs   float64 `json:"carbs" binding:"required"`
		Protein float64 `json:"protein" binding:"required"`
		Fat     float64 `json:"fat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "energy, carbs, protein and fat are required"})
		return
	}

	goals, err := h.goals.ApplyMacroRatios(c.Request.Context(), userID, h.userMetrics(userID),
		body.Energy, body.Carbs, body.Protein, body.Fat)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	if validation := domain.AsGoalValidation(err); validation != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validation.Reason,
			"key":   validation.Key,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, domain.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
