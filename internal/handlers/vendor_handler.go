package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	*BaseHandler
	vendorService services.VendorService
}

func NewVendorHandler(base *BaseHandler, vendorService services.VendorService) *VendorHandler {
	return &VendorHandler{
		BaseHandler:   base,
		vendorService: vendorService,
	}
}

func (h *VendorHandler) RegisterRoutes(r *gin.RouterGroup) {
	vendors := r.Group("/vendors")
	{
		vendors.POST("", h.CreateVendor)
		vendors.GET("", h.ListVendors)
		vendors.GET("/:id", h.GetVendor)
		vendors.PUT("/:id", h.UpdateVendor)
		vendors.POST("/:id/activate", h.ActivateVendor)
		vendors.POST("/:id/deactivate", h.DeactivateVendor)
	}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.CreateVendor(&models.Vendor{
		Name:           req.Name,
		ContactEmail:   req.ContactEmail,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendor(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = *req.ContactEmail
	}
	if req.CommissionRate != nil {
		vendor.CommissionRate = req.CommissionRate
	}

	vendor, err = h.vendorService.UpdateVendor(vendor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

func (h *VendorHandler) ActivateVendor(c *gin.Context) {
	h.setActive(c, true)
}

func (h *VendorHandler) DeactivateVendor(c *gin.Context) {
	h.setActive(c, false)
}

func (h *VendorHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if err := h.vendorService.SetVendorActive(id, active); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	vendor, err := h.vendorService.GetVendor(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 20)
	offset := ParseQueryInt(c, "offset", 0)

	vendors, total, err := h.vendorService.ListVendors(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "total": total})
}
