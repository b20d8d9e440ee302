package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/candidates")
	{
		users.POST("", h.CreateCandidate)
		users.GET("/:id", h.GetCandidate)
		users.PUT("/:id", h.UpdateCandidate)
	}
}

func (h *UserHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(&models.User{
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		ResumeURL:          req.ResumeURL,
		LinkedinURL:        req.LinkedinURL,
		PortfolioURL:       req.PortfolioURL,
		Location:           req.Location,
		ExperienceYears:    req.ExperienceYears,
		Skills:             req.Skills,
		PreferredLocations: req.PreferredLocations,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"candidate": user})
}

func (h *UserHandler) GetCandidate(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidate": user})
}

func (h *UserHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ResumeURL != nil {
		user.ResumeURL = *req.ResumeURL
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = *req.LinkedinURL
	}
	if req.PortfolioURL != nil {
		user.PortfolioURL = *req.PortfolioURL
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.ExperienceYears != nil {
		user.ExperienceYears = req.ExperienceYears
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.PreferredLocations != nil {
		user.PreferredLocations = req.PreferredLocations
	}

	user, err = h.userService.UpdateUser(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidate": user})
}
