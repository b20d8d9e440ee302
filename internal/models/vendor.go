package models

// Vendor is a recruitment agency. Deactivated vendors stay readable so
// historical vendor-path applications keep a valid reference.
type Vendor struct {
	BaseModel
	Name           string   `gorm:"not null" json:"name"`
	ContactEmail   string   `json:"contact_email"`
	CommissionRate *float64 `json:"commission_rate"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
}
