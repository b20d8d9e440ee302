package models

type JobStatus string
type VisibilityLevel string
type ApplicationPath string
type ApplicationStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusActive   JobStatus = "active"
	JobStatusPaused   JobStatus = "paused"
	JobStatusClosed   JobStatus = "closed"
	JobStatusArchived JobStatus = "archived"

	VisibilityPublic     VisibilityLevel = "public"
	VisibilityInternal   VisibilityLevel = "internal"
	VisibilityRestricted VisibilityLevel = "restricted"
	VisibilityPrivate    VisibilityLevel = "private"

	PathDirect       ApplicationPath = "direct"
	PathVendor       ApplicationPath = "vendor"
	PathConsentBased ApplicationPath = "consent_based"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ValidApplicationPaths is the closed set a job's allowed_paths may draw from.
var ValidApplicationPaths = []ApplicationPath{PathDirect, PathVendor, PathConsentBased}

// ValidApplicationStatuses lists every lifecycle state an application may hold.
var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusInterviewed,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
	ApplicationStatusWithdrawn,
}

func IsValidApplicationPath(p ApplicationPath) bool {
	for _, v := range ValidApplicationPaths {
		if v == p {
			return true
		}
	}
	return false
}

func IsValidApplicationStatus(s ApplicationStatus) bool {
	for _, v := range ValidApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
