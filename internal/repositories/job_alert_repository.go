package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobAlertNotFound = errors.New("job alert not found")

type JobAlertRepository interface {
	Create(alert *models.JobAlert) error
	FindByID(id string) (*models.JobAlert, error)
	FindActive() ([]models.JobAlert, error)
	ListByUser(userID string) ([]models.JobAlert, error)
	Update(alert *models.JobAlert) error
	TouchLastRun(id string, at time.Time) error
	Delete(id string) error
}

type jobAlertRepository struct {
	db *gorm.DB
}

func NewJobAlertRepository(db *gorm.DB) JobAlertRepository {
	return &jobAlertRepository{db: db}
}

func (r *jobAlertRepository) Create(alert *models.JobAlert) error {
	return r.db.Create(alert).Error
}

func (r *jobAlertRepository) FindByID(id string) (*models.JobAlert, error) {
	var alert models.JobAlert
	err := r.db.First(&alert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *jobAlertRepository) FindActive() ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := r.db.Where("is_active = ?", true).Find(&alerts).Error
	return alerts, err
}

func (r *jobAlertRepository) ListByUser(userID string) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *jobAlertRepository) Update(alert *models.JobAlert) error {
	return r.db.Save(alert).Error
}

func (r *jobAlertRepository) TouchLastRun(id string, at time.Time) error {
	return r.db.Model(&models.JobAlert{}).Where("id = ?", id).Update("last_run_at", at).Error
}

func (r *jobAlertRepository) Delete(id string) error {
	return r.db.Delete(&models.JobAlert{}, "id = ?", id).Error
}
