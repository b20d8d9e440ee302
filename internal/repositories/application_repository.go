package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

type ApplicationRepository interface {
	// Create inserts one application. A unique-index collision on
	// (job_id, user_id) is reported as ErrDuplicateApplication so a racing
	// duplicate fails even after passing the service pre-check.
	Create(application *models.Application) error

	FindByID(id string) (*models.Application, error)
	ExistsForJobAndUser(jobID, userID string) (bool, error)
	AppliedJobIDs(userID string) ([]string, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error)
	ListByJob(jobID string, limit, offset int) ([]models.Application, int64, error)
	ListByUser(userID string, limit, offset int) ([]models.Application, int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ExistsForJobAndUser(jobID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) AppliedJobIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Application{}).
		Where("user_id = ?", userID).
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *applicationRepository) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	application, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	application.Status = status
	if err := r.db.Save(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (r *applicationRepository) ListByJob(jobID string, limit, offset int) ([]models.Application, int64, error) {
	return r.list("job_id = ?", jobID, limit, offset)
}

func (r *applicationRepository) ListByUser(userID string, limit, offset int) ([]models.Application, int64, error) {
	return r.list("user_id = ?", userID, limit, offset)
}

func (r *applicationRepository) list(cond, arg string, limit, offset int) ([]models.Application, int64, error) {
	var applications []models.Application
	var total int64

	query := r.db.Model(&models.Application{}).Where(cond, arg)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&applications).Error
	return applications, total, err
}
