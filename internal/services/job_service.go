package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/lib/pq"
)

// JobService is requisition lifecycle management. Search and recommendation
// discovery live in their own services; this one owns writes and transitions.
type JobService interface {
	CreateJob(req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(id string) (*models.Job, error)
	UpdateJob(id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(id string) error
	ListByOrganization(organizationID string, limit, offset int) ([]models.Job, error)

	PublishJob(id string) (*models.Job, error)
	PauseJob(id string) (*models.Job, error)
	CloseJob(id string) (*models.Job, error)
	ArchiveJob(id string) (*models.Job, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
	orgRepo repositories.OrganizationRepository
}

func NewJobService(jobRepo repositories.JobRepository, orgRepo repositories.OrganizationRepository) JobService {
	return &jobService{jobRepo: jobRepo, orgRepo: orgRepo}
}

func (s *jobService) CreateJob(req *dto.CreateJobRequest) (*models.Job, error) {
	if _, err := s.orgRepo.FindByID(req.OrganizationID); err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrOrganizationNotFound()
		}
		return nil, err
	}

	paths := req.AllowedPaths
	if len(paths) == 0 {
		paths = []string{string(models.PathDirect)}
	}
	for _, p := range paths {
		if !models.IsValidApplicationPath(models.ApplicationPath(p)) {
			return nil, apperrors.NewBadRequestError("Unknown application path: " + p)
		}
	}

	visibility := models.VisibilityLevel(req.VisibilityLevel)
	if req.VisibilityLevel == "" {
		visibility = models.VisibilityPublic
	}

	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	job := &models.Job{
		OrganizationID:   req.OrganizationID,
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		RemoteAllowed:    req.RemoteAllowed,
		EmploymentType:   req.EmploymentType,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		VisibilityLevel:  visibility,
		AllowedPaths:     pq.StringArray(paths),
		Status:           models.JobStatusDraft,
		Deadline:         req.Deadline,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateJob(id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.RemoteAllowed != nil {
		job.RemoteAllowed = *req.RemoteAllowed
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.VisibilityLevel != nil {
		job.VisibilityLevel = models.VisibilityLevel(*req.VisibilityLevel)
	}
	if req.AllowedPaths != nil {
		for _, p := range req.AllowedPaths {
			if !models.IsValidApplicationPath(models.ApplicationPath(p)) {
				return nil, apperrors.NewBadRequestError("Unknown application path: " + p)
			}
		}
		job.AllowedPaths = pq.StringArray(req.AllowedPaths)
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) DeleteJob(id string) error {
	if _, err := s.GetJob(id); err != nil {
		return err
	}
	return s.jobRepo.Delete(id)
}

func (s *jobService) ListByOrganization(organizationID string, limit, offset int) ([]models.Job, error) {
	return s.jobRepo.ListByOrganization(organizationID, limit, offset)
}

// PublishJob moves draft -> active. Only complete drafts qualify: every text
// section must be filled. A second publish on an already-active job is a
// no-op failure that leaves the row untouched.
func (s *jobService) PublishJob(id string) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusDraft {
		return nil, apperrors.ErrNotEligibleForTransition("Only draft jobs can be published")
	}
	if !job.ReadyToPublish() {
		return nil, apperrors.ErrNotEligibleForTransition("Job is missing required text fields")
	}

	now := time.Now()
	job.Status = models.JobStatusActive
	job.PublishedAt = &now

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) PauseJob(id string) (*models.Job, error) {
	return s.transition(id, models.JobStatusPaused, models.JobStatusActive)
}

func (s *jobService) CloseJob(id string) (*models.Job, error) {
	return s.transition(id, models.JobStatusClosed, models.JobStatusActive, models.JobStatusPaused)
}

func (s *jobService) ArchiveJob(id string) (*models.Job, error) {
	return s.transition(id, models.JobStatusArchived, models.JobStatusClosed)
}

func (s *jobService) transition(id string, target models.JobStatus, from ...models.JobStatus) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if job.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.ErrNotEligibleForTransition("Job cannot move to " + string(target) + " from " + string(job.Status))
	}

	job.Status = target
	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}
