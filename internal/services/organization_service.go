package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// OrganizationService is straightforward persistence glue.
type OrganizationService interface {
	CreateOrganization(org *models.Organization) (*models.Organization, error)
	GetOrganization(id string) (*models.Organization, error)
	UpdateOrganization(org *models.Organization) (*models.Organization, error)
	ListOrganizations(limit, offset int) ([]models.Organization, int64, error)
}

type organizationService struct {
	orgRepo repositories.OrganizationRepository
}

func NewOrganizationService(orgRepo repositories.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

func (s *organizationService) CreateOrganization(org *models.Organization) (*models.Organization, error) {
	if org.Name == "" {
		return nil, apperrors.NewBadRequestError("Organization name is required")
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) GetOrganization(id string) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrOrganizationNotFound()
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) UpdateOrganization(org *models.Organization) (*models.Organization, error) {
	if _, err := s.GetOrganization(org.ID); err != nil {
		return nil, err
	}
	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) ListOrganizations(limit, offset int) ([]models.Organization, int64, error) {
	return s.orgRepo.FindAll(limit, offset)
}
