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
)

const defaultRecommendationLimit = 10

// RecommendationService picks jobs for a candidate by strict branch priority:
// skills, then preferred locations, then current location, then remote-only.
// Exactly one branch drives the query per call; branches are never unioned.
type RecommendationService interface {
	GetRecommendedJobs(ctx context.Context, userID string, limit int) ([]models.Job, error)
}

type recommendationService struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	cache           *cache.Cache
	cacheTTL        time.Duration
}

func NewRecommendationService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	c *cache.Cache,
	cacheTTL time.Duration,
) RecommendationService {
	return &recommendationService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		cache:           c,
		cacheTTL:        cacheTTL,
	}
}

func recommendationCacheKey(userID string) string {
	return fmt.Sprintf("recommendations:%s", userID)
}

func (s *recommendationService) GetRecommendedJobs(ctx context.Context, userID string, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return []models.Job{}, nil
		}
		return nil, err
	}

	// The cache is advisory; a stale or missing entry just means a query.
	if cached, ok := s.cache.Get(ctx, recommendationCacheKey(userID)); ok {
		var jobs []models.Job
		if err := json.Unmarshal([]byte(cached), &jobs); err == nil && len(jobs) >= limit {
			return jobs[:limit], nil
		}
	}

	appliedIDs, err := s.applicationRepo.AppliedJobIDs(userID)
	if err != nil {
		return nil, err
	}

	criteria := repositories.RecommendationCriteria{
		ExcludeJobIDs: appliedIDs,
		Limit:         limit,
	}

	switch {
	case len(user.Skills) > 0:
		criteria.SkillTerms = user.Skills
	case len(user.PreferredLocations) > 0:
		criteria.LocationTerms = user.PreferredLocations
	case user.Location != "":
		criteria.LocationTerms = []string{user.Location}
	default:
		criteria.RemoteOnly = true
	}

	jobs, err := s.jobRepo.FindRecommended(criteria)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	if raw, err := json.Marshal(jobs); err == nil {
		s.cache.Set(ctx, recommendationCacheKey(userID), string(raw), s.cacheTTL)
	} else {
		logger.Debug("skipping recommendation cache write", "user_id", userID, "error", err)
	}

	return jobs, nil
}
