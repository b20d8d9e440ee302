package models

import (
	"time"

	"github.com/lib/pq"
)

// Job is a posted requisition. Salary bounds are stored in minor currency
// units (e.g. cents) so no decimal-string round-tripping is involved.
type Job struct {
	BaseModel
	OrganizationID   string          `gorm:"type:uuid;not null;index" json:"organization_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Location         string          `json:"location"`
	RemoteAllowed    bool            `json:"remote_allowed"`
	EmploymentType   string          `json:"employment_type"`
	SalaryMin        *int64          `json:"salary_min"`
	SalaryMax        *int64          `json:"salary_max"`
	VisibilityLevel  VisibilityLevel `gorm:"default:public" json:"visibility_level"`
	AllowedPaths     pq.StringArray  `gorm:"type:text[];default:'{direct}'" json:"allowed_paths"`
	Status           JobStatus       `gorm:"default:draft;index" json:"status"`
	PublishedAt      *time.Time      `json:"published_at"`
	Deadline         *time.Time      `json:"deadline"`
}

// AllowsPath reports whether the given application path is open for this job.
func (j *Job) AllowsPath(p ApplicationPath) bool {
	for _, allowed := range j.AllowedPaths {
		if ApplicationPath(allowed) == p {
			return true
		}
	}
	return false
}

// ReadyToPublish requires every text section to be filled before a draft can
// go active.
func (j *Job) ReadyToPublish() bool {
	return j.Title != "" && j.Description != "" && j.Requirements != "" && j.Responsibilities != ""
}
