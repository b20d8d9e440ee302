package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// SearchService maps request criteria onto the repository filter pipeline and
// wraps results in the pagination envelope. The active/public restriction is
// enforced a layer down and cannot be bypassed from here.
type SearchService interface {
	SearchJobs(req *dto.SearchJobsRequest) (*dto.PaginatedJobsResponse, error)
}

type searchService struct {
	jobRepo repositories.JobRepository
}

func NewSearchService(jobRepo repositories.JobRepository) SearchService {
	return &searchService{jobRepo: jobRepo}
}

func (s *searchService) SearchJobs(req *dto.SearchJobsRequest) (*dto.PaginatedJobsResponse, error) {
	if req.Page < 1 {
		return nil, apperrors.NewBadRequestError("page must be at least 1")
	}
	if req.Limit < 1 || req.Limit > 100 {
		return nil, apperrors.NewBadRequestError("limit must be between 1 and 100")
	}

	criteria := repositories.JobSearchCriteria{
		Keywords:        req.Keywords,
		Location:        req.Location,
		RemoteAllowed:   req.RemoteAllowed,
		EmploymentTypes: req.EmploymentTypes,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		OrganizationID:  req.OrganizationID,
		Skills:          req.Skills,
		Page:            req.Page,
		PageSize:        req.Limit,
	}

	jobs, total, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.Limit
	return &dto.PaginatedJobsResponse{
		Jobs:    jobs,
		Total:   total,
		Page:    req.Page,
		Limit:   req.Limit,
		HasMore: int64(offset+len(jobs)) < total,
	}, nil
}
