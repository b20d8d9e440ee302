package dto

import "time"

type CreateJobRequest struct {
	OrganizationID   string     `json:"organization_id" binding:"required"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Location         string     `json:"location"`
	RemoteAllowed    bool       `json:"remote_allowed"`
	EmploymentType   string     `json:"employment_type"`
	SalaryMin        *int64     `json:"salary_min"`
	SalaryMax        *int64     `json:"salary_max"`
	VisibilityLevel  string     `json:"visibility_level"`
	AllowedPaths     []string   `json:"allowed_paths"`
	Deadline         *time.Time `json:"deadline"`
}

type UpdateJobRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Requirements     *string    `json:"requirements"`
	Responsibilities *string    `json:"responsibilities"`
	Location         *string    `json:"location"`
	RemoteAllowed    *bool      `json:"remote_allowed"`
	EmploymentType   *string    `json:"employment_type"`
	SalaryMin        *int64     `json:"salary_min"`
	SalaryMax        *int64     `json:"salary_max"`
	VisibilityLevel  *string    `json:"visibility_level"`
	AllowedPaths     []string   `json:"allowed_paths"`
	Deadline         *time.Time `json:"deadline"`
}
