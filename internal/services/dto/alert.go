package dto

type CreateAlertRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
}

type UpdateAlertRequest struct {
	Keyword  *string `json:"keyword"`
	Location *string `json:"location"`
	IsActive *bool   `json:"is_active"`
}
