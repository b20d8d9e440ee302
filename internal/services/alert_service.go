package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// AlertService manages saved job alerts; the worker in internal/workers
// consumes them on a schedule.
type AlertService interface {
	CreateAlert(alert *models.JobAlert) (*models.JobAlert, error)
	ListUserAlerts(userID string) ([]models.JobAlert, error)
	UpdateAlert(id string, req *dto.UpdateAlertRequest) (*models.JobAlert, error)
	DeleteAlert(id string) error
}

type alertService struct {
	alertRepo repositories.JobAlertRepository
	userRepo  repositories.UserRepository
}

func NewAlertService(alertRepo repositories.JobAlertRepository, userRepo repositories.UserRepository) AlertService {
	return &alertService{alertRepo: alertRepo, userRepo: userRepo}
}

func (s *alertService) CreateAlert(alert *models.JobAlert) (*models.JobAlert, error) {
	if _, err := s.userRepo.FindByID(alert.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrCandidateNotFound()
		}
		return nil, err
	}
	if alert.Keyword == "" && alert.Location == "" {
		return nil, apperrors.NewBadRequestError("An alert needs a keyword or a location")
	}

	alert.IsActive = true
	if err := s.alertRepo.Create(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *alertService) ListUserAlerts(userID string) ([]models.JobAlert, error) {
	return s.alertRepo.ListByUser(userID)
}

func (s *alertService) UpdateAlert(id string, req *dto.UpdateAlertRequest) (*models.JobAlert, error) {
	alert, err := s.alertRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobAlertNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "alert", "Job alert not found", 404)
		}
		return nil, err
	}

	if req.Keyword != nil {
		alert.Keyword = *req.Keyword
	}
	if req.Location != nil {
		alert.Location = *req.Location
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}
	if alert.Keyword == "" && alert.Location == "" {
		return nil, apperrors.NewBadRequestError("An alert needs a keyword or a location")
	}

	if err := s.alertRepo.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *alertService) DeleteAlert(id string) error {
	if _, err := s.alertRepo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrJobAlertNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "alert", "Job alert not found", 404)
		}
		return err
	}
	return s.alertRepo.Delete(id)
}
