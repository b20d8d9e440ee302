package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ScoringHandler struct {
	*BaseHandler
	scoringService services.ScoringService
}

func NewScoringHandler(base *BaseHandler, scoringService services.ScoringService) *ScoringHandler {
	return &ScoringHandler{
		BaseHandler:    base,
		scoringService: scoringService,
	}
}

func (h *ScoringHandler) RegisterRoutes(r *gin.RouterGroup) {
	scores := r.Group("/scores")
	{
		scores.GET("/eligibility", h.GetEligibilityScore)
		scores.GET("/readiness", h.GetReadinessScore)
	}
}

func (h *ScoringHandler) GetEligibilityScore(c *gin.Context) {
	userID := c.Query("user_id")
	jobID := c.Query("job_id")
	if userID == "" || jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and job_id are required"})
		return
	}

	result, err := h.scoringService.CalculateEligibilityScore(userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":     result.Score,
		"breakdown": result.Breakdown,
	})
}

func (h *ScoringHandler) GetReadinessScore(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	score, err := h.scoringService.CalculateReadinessScore(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score})
}
