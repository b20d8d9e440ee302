package repositories

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria is the conjunctive filter set for the public search
// pipeline. Every field is optional; zero values add no predicate.
type JobSearchCriteria struct {
	Keywords        string
	Location        string
	RemoteAllowed   *bool
	EmploymentTypes []string
	SalaryMin       *int64
	SalaryMax       *int64
	OrganizationID  string
	Skills          []string
	Page            int
	PageSize        int
}

// RecommendationCriteria carries exactly one active filter branch; the
// recommendation service decides which. ExcludeJobIDs anti-joins jobs the
// candidate already applied to.
type RecommendationCriteria struct {
	SkillTerms    []string
	LocationTerms []string
	RemoteOnly    bool
	ExcludeJobIDs []string
	Limit         int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	ListByOrganization(organizationID string, limit, offset int) ([]models.Job, error)

	// Search applies the active/public hard invariant plus the criteria's
	// predicates, ordered by published_at descending.
	Search(criteria JobSearchCriteria) ([]models.Job, int64, error)

	FindRecommended(criteria RecommendationCriteria) ([]models.Job, error)

	// FindPublishedMatching serves the alert worker: active/public jobs
	// published after `since` matching the keyword/location substrings.
	FindPublishedMatching(since time.Time, keyword, location string, limit int) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id string) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}

func (r *jobRepository) ListByOrganization(organizationID string, limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("organization_id = ?", organizationID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, err
}

// searchableJobs restricts any discovery query to jobs the public may see.
// No caller reaches drafts or internal/restricted/private postings this way.
func (r *jobRepository) searchableJobs() *gorm.DB {
	return r.db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Where("visibility_level = ?", models.VisibilityPublic)
}

func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

func (r *jobRepository) Search(criteria JobSearchCriteria) ([]models.Job, int64, error) {
	query := r.searchableJobs()

	if criteria.Keywords != "" {
		pattern := likePattern(criteria.Keywords)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ? OR LOWER(responsibilities) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if criteria.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", likePattern(criteria.Location))
	}

	if criteria.RemoteAllowed != nil {
		query = query.Where("remote_allowed = ?", *criteria.RemoteAllowed)
	}

	if len(criteria.EmploymentTypes) > 0 {
		query = query.Where("employment_type IN ?", criteria.EmploymentTypes)
	}

	// NULL salary bounds fail the comparison: a job without a stated maximum
	// never satisfies a minimum-salary filter, and vice versa.
	if criteria.SalaryMin != nil {
		query = query.Where("salary_max IS NOT NULL AND salary_max >= ?", *criteria.SalaryMin)
	}

	if criteria.SalaryMax != nil {
		query = query.Where("salary_min IS NOT NULL AND salary_min <= ?", *criteria.SalaryMax)
	}

	if criteria.OrganizationID != "" {
		query = query.Where("organization_id = ?", criteria.OrganizationID)
	}

	if len(criteria.Skills) > 0 {
		skillMatch := r.db.Session(&gorm.Session{NewDB: true})
		for i, skill := range criteria.Skills {
			if i == 0 {
				skillMatch = skillMatch.Where("LOWER(requirements) LIKE ?", likePattern(skill))
			} else {
				skillMatch = skillMatch.Or("LOWER(requirements) LIKE ?", likePattern(skill))
			}
		}
		query = query.Where(skillMatch)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.Order("published_at DESC").Limit(criteria.PageSize).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) FindRecommended(criteria RecommendationCriteria) ([]models.Job, error) {
	query := r.searchableJobs()

	if len(criteria.ExcludeJobIDs) > 0 {
		query = query.Where("id NOT IN ?", criteria.ExcludeJobIDs)
	}

	switch {
	case len(criteria.SkillTerms) > 0:
		terms := r.db.Session(&gorm.Session{NewDB: true})
		for i, term := range criteria.SkillTerms {
			if i == 0 {
				terms = terms.Where("LOWER(requirements) LIKE ?", likePattern(term))
			} else {
				terms = terms.Or("LOWER(requirements) LIKE ?", likePattern(term))
			}
		}
		query = query.Where(terms)
	case len(criteria.LocationTerms) > 0:
		terms := r.db.Session(&gorm.Session{NewDB: true})
		for i, term := range criteria.LocationTerms {
			if i == 0 {
				terms = terms.Where("LOWER(location) LIKE ?", likePattern(term))
			} else {
				terms = terms.Or("LOWER(location) LIKE ?", likePattern(term))
			}
		}
		query = query.Where(terms)
	case criteria.RemoteOnly:
		query = query.Where("remote_allowed = ?", true)
	}

	var jobs []models.Job
	err := query.Order("published_at DESC").Limit(criteria.Limit).Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindPublishedMatching(since time.Time, keyword, location string, limit int) ([]models.Job, error) {
	query := r.searchableJobs().Where("published_at > ?", since)

	if keyword != "" {
		pattern := likePattern(keyword)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", likePattern(location))
	}

	var jobs []models.Job
	err := query.Order("published_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}
