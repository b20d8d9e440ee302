package dto

// CreateApplicationRequest is the single input of the admission-control flow.
type CreateApplicationRequest struct {
	JobID           string            `json:"job_id" binding:"required"`
	UserID          string            `json:"user_id" binding:"required"`
	ApplicationPath string            `json:"application_path" binding:"required"`
	VendorID        *string           `json:"vendor_id"`
	CoverLetter     string            `json:"cover_letter"`
	ResumeURL       string            `json:"resume_url"`
	CustomResponses map[string]string `json:"custom_responses"`
	ConsentGiven    bool              `json:"consent_given"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkUpdateApplicationStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status" binding:"required"`
}
