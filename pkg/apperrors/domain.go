package apperrors

import (
	"net/http"
)

// Domain failure taxonomy. NotFound surfaces as 404, validation conflicts
// (duplicate application, disallowed path, inactive vendor) as 409, and
// disallowed lifecycle transitions as 400. Scorers never return these; they
// degrade to a zero score instead, since scores are advisory.

func ErrJobNotFound() *AppError {
	return New(CodeNotFound, "job", "Job not found", http.StatusNotFound)
}

func ErrCandidateNotFound() *AppError {
	return New(CodeNotFound, "candidate", "Candidate not found", http.StatusNotFound)
}

func ErrApplicationNotFound() *AppError {
	return New(CodeNotFound, "application", "Application not found", http.StatusNotFound)
}

func ErrVendorNotFound() *AppError {
	return New(CodeNotFound, "vendor", "Vendor not found", http.StatusNotFound)
}

func ErrOrganizationNotFound() *AppError {
	return New(CodeNotFound, "organization", "Organization not found", http.StatusNotFound)
}

// ErrVendorInvalid covers both a missing vendor reference and a deactivated
// one; new vendor-path applications require an active vendor.
func ErrVendorInvalid() *AppError {
	return New(CodeConflict, "vendor", "Vendor is missing or inactive", http.StatusConflict)
}

func ErrDuplicateApplication() *AppError {
	return New(CodeConflict, "application", "Candidate has already applied to this job", http.StatusConflict)
}

func ErrPathNotAllowed() *AppError {
	return New(CodeConflict, "application", "Application path is not allowed for this job", http.StatusConflict)
}

// ErrNotEligibleForTransition rejects a lifecycle change the job's current
// state does not permit (e.g. publishing a non-draft or an incomplete draft).
func ErrNotEligibleForTransition(message string) *AppError {
	return New(CodeInvalidStatus, "job", message, http.StatusBadRequest)
}

func ErrNotFoundFromStore(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}
