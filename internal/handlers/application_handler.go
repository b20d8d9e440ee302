package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	{
		applications.POST("", h.CreateApplication)
		applications.GET("/:id", h.GetApplication)
		applications.PATCH("/:id/status", h.UpdateStatus)
		applications.POST("/bulk-status", h.BulkUpdateStatus)
	}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.CreateApplication(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": application})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applicationService.GetApplication(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateApplicationStatus(c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkUpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.applicationService.BulkUpdateApplicationStatus(req.IDs, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": updated,
		"updated":      len(updated),
	})
}
