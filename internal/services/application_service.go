package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// ApplicationService owns admission control: a candidate's application is
// validated against job, vendor and duplicate state, scored, and persisted as
// exactly one row. Creation is atomic accept/reject with no in-between state.
type ApplicationService interface {
	CreateApplication(req *dto.CreateApplicationRequest) (*models.Application, error)
	GetApplication(id string) (*models.Application, error)
	UpdateApplicationStatus(id string, status models.ApplicationStatus) (*models.Application, error)
	BulkUpdateApplicationStatus(ids []string, status models.ApplicationStatus) ([]models.Application, error)
	ListByJob(jobID string, limit, offset int) ([]models.Application, int64, error)
	ListByUser(userID string, limit, offset int) ([]models.Application, int64, error)
}

type applicationService struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	vendorRepo       repositories.VendorRepository
	notificationRepo repositories.NotificationRepository
	scoring          ScoringService
	cache            *cache.Cache
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorRepository,
	notificationRepo repositories.NotificationRepository,
	scoring ScoringService,
	c *cache.Cache,
) ApplicationService {
	return &applicationService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		vendorRepo:       vendorRepo,
		notificationRepo: notificationRepo,
		scoring:          scoring,
		cache:            c,
	}
}

func (s *applicationService) CreateApplication(req *dto.CreateApplicationRequest) (*models.Application, error) {
	// Existence checks come first so later steps may dereference freely.
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrCandidateNotFound()
		}
		return nil, err
	}

	if req.VendorID != nil && *req.VendorID != "" {
		vendor, err := s.vendorRepo.FindByID(*req.VendorID)
		if err != nil {
			if errors.Is(err, repositories.ErrVendorNotFound) {
				return nil, apperrors.ErrVendorInvalid()
			}
			return nil, err
		}
		if !vendor.IsActive {
			return nil, apperrors.ErrVendorInvalid()
		}
	}

	exists, err := s.applicationRepo.ExistsForJobAndUser(req.JobID, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication()
	}

	path := models.ApplicationPath(req.ApplicationPath)
	if !models.IsValidApplicationPath(path) || !job.AllowsPath(path) {
		return nil, apperrors.ErrPathNotAllowed()
	}

	if path == models.PathVendor && (req.VendorID == nil || *req.VendorID == "") {
		return nil, apperrors.ErrVendorInvalid()
	}

	eligibility, _ := s.scoring.EligibilityScore(user, job)
	readiness := s.scoring.ReadinessScore(user)
	skillsMatch := s.scoring.SkillsMatchScore(user, job)

	application := &models.Application{
		JobID:            req.JobID,
		UserID:           req.UserID,
		Path:             path,
		VendorID:         req.VendorID,
		CoverLetter:      req.CoverLetter,
		ResumeURL:        req.ResumeURL,
		EligibilityScore: eligibility,
		ReadinessScore:   readiness,
		SkillsMatchScore: skillsMatch,
		Status:           models.ApplicationStatusPending,
		ConsentGiven:     req.ConsentGiven,
	}

	// Consent is captured once, at creation, and never re-evaluated.
	if req.ConsentGiven {
		now := time.Now()
		application.ConsentTimestamp = &now
	}

	if len(req.CustomResponses) > 0 {
		raw, err := json.Marshal(req.CustomResponses)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal custom responses: %w", err)
		}
		application.CustomResponses = datatypes.JSON(raw)
	}

	if err := s.applicationRepo.Create(application); err != nil {
		// The pre-check has a race window; the unique index closes it.
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication()
		}
		return nil, err
	}

	s.cache.Delete(context.Background(), recommendationCacheKey(req.UserID))
	s.notifyNewApplication(job, application)

	return application, nil
}

func (s *applicationService) GetApplication(id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound()
		}
		return nil, err
	}
	return application, nil
}

func (s *applicationService) UpdateApplicationStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.NewBadRequestError("Unknown application status: " + string(status))
	}

	application, err := s.applicationRepo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound()
		}
		return nil, err
	}

	s.notifyStatusChange(application)
	return application, nil
}

// BulkUpdateApplicationStatus applies each id independently: one missing id
// must not abort the rest. Only the successfully updated subset is returned.
func (s *applicationService) BulkUpdateApplicationStatus(ids []string, status models.ApplicationStatus) ([]models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.NewBadRequestError("Unknown application status: " + string(status))
	}

	updated := make([]models.Application, 0, len(ids))
	for _, id := range ids {
		application, err := s.applicationRepo.UpdateStatus(id, status)
		if err != nil {
			logger.Warn("bulk status update skipped one application", "id", id, "error", err)
			continue
		}
		s.notifyStatusChange(application)
		updated = append(updated, *application)
	}
	return updated, nil
}

func (s *applicationService) ListByJob(jobID string, limit, offset int) ([]models.Application, int64, error) {
	return s.applicationRepo.ListByJob(jobID, limit, offset)
}

func (s *applicationService) ListByUser(userID string, limit, offset int) ([]models.Application, int64, error) {
	return s.applicationRepo.ListByUser(userID, limit, offset)
}

// Notification rows record that something notification-worthy happened;
// delivery belongs to another system.

func (s *applicationService) notifyNewApplication(job *models.Job, application *models.Application) {
	data, _ := json.Marshal(map[string]string{
		"job_id":         job.ID,
		"application_id": application.ID,
		"user_id":        application.UserID,
	})

	err := s.notificationRepo.Create(&models.Notification{
		UserID:  job.OrganizationID,
		Type:    repositories.NotificationTypeNewApplication,
		Title:   "New application received",
		Message: fmt.Sprintf("A candidate applied to %q", job.Title),
		Data:    datatypes.JSON(data),
	})
	if err != nil {
		logger.Warn("failed to record new-application notification", "application_id", application.ID, "error", err)
	}
}

func (s *applicationService) notifyStatusChange(application *models.Application) {
	data, _ := json.Marshal(map[string]string{
		"application_id": application.ID,
		"job_id":         application.JobID,
		"status":         string(application.Status),
	})

	err := s.notificationRepo.Create(&models.Notification{
		UserID:  application.UserID,
		Type:    repositories.NotificationTypeApplicationStatus,
		Title:   "Application status updated",
		Message: fmt.Sprintf("Your application is now %s", application.Status),
		Data:    datatypes.JSON(data),
	})
	if err != nil {
		logger.Warn("failed to record status-change notification", "application_id", application.ID, "error", err)
	}
}
