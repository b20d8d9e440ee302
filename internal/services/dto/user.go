package dto

type CreateUserRequest struct {
	Email              string   `json:"email" binding:"required,email"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Phone              string   `json:"phone"`
	ResumeURL          string   `json:"resume_url"`
	LinkedinURL        string   `json:"linkedin_url"`
	PortfolioURL       string   `json:"portfolio_url"`
	Location           string   `json:"location"`
	ExperienceYears    *int     `json:"experience_years" binding:"omitempty,min=0"`
	Skills             []string `json:"skills"`
	PreferredLocations []string `json:"preferred_locations"`
}

type UpdateUserRequest struct {
	FirstName          *string  `json:"first_name"`
	LastName           *string  `json:"last_name"`
	Phone              *string  `json:"phone"`
	ResumeURL          *string  `json:"resume_url"`
	LinkedinURL        *string  `json:"linkedin_url"`
	PortfolioURL       *string  `json:"portfolio_url"`
	Location           *string  `json:"location"`
	ExperienceYears    *int     `json:"experience_years" binding:"omitempty,min=0"`
	Skills             []string `json:"skills"`
	PreferredLocations []string `json:"preferred_locations"`
}
