package dto

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
}
