package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	*BaseHandler
	orgService services.OrganizationService
}

func NewOrganizationHandler(base *BaseHandler, orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler: base,
		orgService:  orgService,
	}
}

func (h *OrganizationHandler) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/organizations")
	{
		orgs.POST("", h.CreateOrganization)
		orgs.GET("", h.ListOrganizations)
		orgs.GET("/:id", h.GetOrganization)
		orgs.PUT("/:id", h.UpdateOrganization)
	}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	org, err := h.orgService.CreateOrganization(&models.Organization{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.orgService.GetOrganization(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	org, err := h.orgService.GetOrganization(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Website != nil {
		org.Website = *req.Website
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.Industry != nil {
		org.Industry = *req.Industry
	}
	if req.Location != nil {
		org.Location = *req.Location
	}

	org, err = h.orgService.UpdateOrganization(org)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 20)
	offset := ParseQueryInt(c, "offset", 0)

	orgs, total, err := h.orgService.ListOrganizations(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs, "total": total})
}
