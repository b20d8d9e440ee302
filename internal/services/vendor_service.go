package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// VendorService manages recruitment agencies. Deactivation blocks new
// vendor-path applications only; existing applications keep their reference.
type VendorService interface {
	CreateVendor(vendor *models.Vendor) (*models.Vendor, error)
	GetVendor(id string) (*models.Vendor, error)
	UpdateVendor(vendor *models.Vendor) (*models.Vendor, error)
	SetVendorActive(id string, active bool) error
	ListVendors(limit, offset int) ([]models.Vendor, int64, error)
}

type vendorService struct {
	vendorRepo repositories.VendorRepository
}

func NewVendorService(vendorRepo repositories.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) CreateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	if vendor.Name == "" {
		return nil, apperrors.NewBadRequestError("Vendor name is required")
	}
	if vendor.CommissionRate != nil && (*vendor.CommissionRate < 0 || *vendor.CommissionRate > 100) {
		return nil, apperrors.NewBadRequestError("Commission rate must be between 0 and 100")
	}
	vendor.IsActive = true
	if err := s.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) GetVendor(id string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound()
		}
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) UpdateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	if _, err := s.GetVendor(vendor.ID); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) SetVendorActive(id string, active bool) error {
	err := s.vendorRepo.SetActive(id, active)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return apperrors.ErrVendorNotFound()
		}
		return err
	}
	return nil
}

func (s *vendorService) ListVendors(limit, offset int) ([]models.Vendor, int64, error) {
	return s.vendorRepo.FindAll(limit, offset)
}
