package models

import (
	"github.com/lib/pq"
)

// User is a candidate profile. Text fields use "" for absent; ExperienceYears
// distinguishes nil (never set) from an explicit 0.
type User struct {
	BaseModel
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	FirstName          string         `json:"first_name"`
	LastName           string         `json:"last_name"`
	Phone              string         `json:"phone"`
	ResumeURL          string         `json:"resume_url"`
	LinkedinURL        string         `json:"linkedin_url"`
	PortfolioURL       string         `json:"portfolio_url"`
	Location           string         `json:"location"`
	ExperienceYears    *int           `json:"experience_years"`
	Skills             pq.StringArray `gorm:"type:text[];default:'{}'" json:"skills"`
	PreferredLocations pq.StringArray `gorm:"type:text[];default:'{}'" json:"preferred_locations"`
}

func (u *User) HasName() bool {
	return u.FirstName != "" && u.LastName != ""
}
