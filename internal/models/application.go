package models

import (
	"time"

	"gorm.io/datatypes"
)

// Application links a candidate to a job. The composite unique index backs the
// one-application-per-(job, candidate) invariant at the storage layer so a
// concurrent duplicate fails on insert, not only on the pre-check.
type Application struct {
	BaseModel
	JobID            string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID           string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	Path             ApplicationPath   `gorm:"not null" json:"application_path"`
	VendorID         *string           `gorm:"type:uuid" json:"vendor_id"`
	CoverLetter      string            `json:"cover_letter"`
	ResumeURL        string            `json:"resume_url"`
	CustomResponses  datatypes.JSON    `gorm:"type:jsonb" json:"custom_responses"`
	EligibilityScore float64           `json:"eligibility_score"`
	ReadinessScore   float64           `json:"readiness_score"`
	SkillsMatchScore float64           `json:"skills_match_score"`
	Status           ApplicationStatus `gorm:"default:pending;index" json:"status"`
	ConsentGiven     bool              `json:"consent_given"`
	ConsentTimestamp *time.Time        `json:"consent_timestamp"`
}
