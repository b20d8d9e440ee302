package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService         services.SearchService
	recommendationService services.RecommendationService
}

func NewSearchHandler(
	base *BaseHandler,
	searchService services.SearchService,
	recommendationService services.RecommendationService,
) *SearchHandler {
	return &SearchHandler{
		BaseHandler:           base,
		searchService:         searchService,
		recommendationService: recommendationService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("/search", h.SearchJobs)
		jobs.GET("/recommendations", h.GetRecommendedJobs)
	}
}

func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	response, err := h.searchService.SearchJobs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SearchHandler) GetRecommendedJobs(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	limit := ParseQueryInt(c, "limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	jobs, err := h.recommendationService.GetRecommendedJobs(c.Request.Context(), userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}
