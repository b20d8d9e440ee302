package dto

type CreateVendorRequest struct {
	Name           string   `json:"name" binding:"required"`
	ContactEmail   string   `json:"contact_email" binding:"omitempty,email"`
	CommissionRate *float64 `json:"commission_rate"`
}

type UpdateVendorRequest struct {
	Name           *string  `json:"name"`
	ContactEmail   *string  `json:"contact_email" binding:"omitempty,email"`
	CommissionRate *float64 `json:"commission_rate"`
}
