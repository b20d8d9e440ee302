package dto

// SearchJobsRequest mirrors the filter pipeline's optional criteria. Criteria
// left at their zero value add no predicate.
type SearchJobsRequest struct {
	Keywords        string   `form:"keywords" json:"keywords"`
	Location        string   `form:"location" json:"location"`
	RemoteAllowed   *bool    `form:"remote_allowed" json:"remote_allowed"`
	EmploymentTypes []string `form:"employment_types" json:"employment_types"`
	SalaryMin       *int64   `form:"salary_min" json:"salary_min"`
	SalaryMax       *int64   `form:"salary_max" json:"salary_max"`
	OrganizationID  string   `form:"organization_id" json:"organization_id"`
	Skills          []string `form:"skills" json:"skills"`
	Page            int      `form:"page,default=1" json:"page"`
	Limit           int      `form:"limit,default=20" json:"limit"`
}

// PaginatedJobsResponse is the search envelope: total counts every matching
// row regardless of the requested page.
type PaginatedJobsResponse struct {
	Jobs    interface{} `json:"jobs"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	HasMore bool        `json:"hasMore"`
}
