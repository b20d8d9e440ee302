package services

import (
	"errors"
	"math"
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

// ScoringService computes the three heuristic scores. Scores are advisory:
// lookups that miss degrade to 0 instead of failing, while unexpected storage
// errors still propagate.
type ScoringService interface {
	CalculateReadinessScore(userID string) (float64, error)
	CalculateEligibilityScore(userID, jobID string) (*dto.EligibilityResult, error)

	// Pure variants over already-loaded entities, used by admission control.
	ReadinessScore(user *models.User) float64
	SkillsMatchScore(user *models.User, job *models.Job) float64
	EligibilityScore(user *models.User, job *models.Job) (float64, *dto.EligibilityBreakdown)
}

type scoringService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewScoringService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) ScoringService {
	return &scoringService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

func (s *scoringService) CalculateReadinessScore(userID string) (float64, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return s.ReadinessScore(user), nil
}

func (s *scoringService) CalculateEligibilityScore(userID, jobID string) (*dto.EligibilityResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return &dto.EligibilityResult{Score: 0}, nil
		}
		return nil, err
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return &dto.EligibilityResult{Score: 0}, nil
		}
		return nil, err
	}

	score, breakdown := s.EligibilityScore(user, job)
	return &dto.EligibilityResult{Score: score, Breakdown: breakdown}, nil
}

// ReadinessScore measures profile completeness. The weights are contractual
// and deliberately sum below 100; the result is clamped, never renormalized.
func (s *scoringService) ReadinessScore(user *models.User) float64 {
	score := 0.0

	// Basic info
	if user.HasName() {
		score += 10
	}
	if user.Email != "" {
		score += 10
	}
	if user.Phone != "" {
		score += 10
	}

	// Professional
	if user.ResumeURL != "" {
		score += 20
	}
	if user.ExperienceYears != nil { // 0 years still counts as set
		score += 10
	}
	if user.Location != "" {
		score += 10
	}

	// Preferences
	if len(user.Skills) > 0 {
		score += 10
	}
	if len(user.PreferredLocations) > 0 {
		score += 5
	}

	// Links
	if user.LinkedinURL != "" {
		score += 5
	}
	if user.PortfolioURL != "" {
		score += 5
	}

	return clampScore(score)
}

// SkillsMatchScore is a plain substring test over the job's combined
// requirements and description text. Substrings-of-words matching is accepted
// behavior, not something to quietly upgrade to tokenized matching.
func (s *scoringService) SkillsMatchScore(user *models.User, job *models.Job) float64 {
	if len(user.Skills) == 0 {
		return 0
	}

	haystack := strings.ToLower(job.Requirements + " " + job.Description)

	matched := 0
	for _, skill := range user.Skills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		if strings.Contains(haystack, needle) {
			matched++
		}
	}

	pct := 100 * float64(matched) / float64(len(user.Skills))
	return clampScore(math.Round(pct*100) / 100)
}

// EligibilityScore combines four independent sub-scores. Weights currently
// sum to at most 100; the final clamp is a safety net for future weight edits.
func (s *scoringService) EligibilityScore(user *models.User, job *models.Job) (float64, *dto.EligibilityBreakdown) {
	breakdown := &dto.EligibilityBreakdown{
		LocationFit:     s.locationFit(user, job),
		ExperienceBand:  experienceBand(user.ExperienceYears),
		ProfileRichness: profileRichness(user),
	}
	breakdown.SkillsPortion = math.Round(s.SkillsMatchScore(user, job) * 0.4)

	total := breakdown.LocationFit + breakdown.ExperienceBand + breakdown.SkillsPortion + breakdown.ProfileRichness
	return clampScore(total), breakdown
}

func (s *scoringService) locationFit(user *models.User, job *models.Job) float64 {
	if job.RemoteAllowed {
		return 20
	}

	jobLocation := strings.ToLower(job.Location)
	if user.Location != "" && strings.Contains(jobLocation, strings.ToLower(user.Location)) {
		return 20
	}

	for _, preferred := range user.PreferredLocations {
		p := strings.ToLower(strings.TrimSpace(preferred))
		if p != "" && strings.Contains(jobLocation, p) {
			return 15
		}
	}

	return 0
}

func experienceBand(years *int) float64 {
	if years == nil {
		return 0
	}
	switch {
	case *years >= 5:
		return 30
	case *years >= 2:
		return 20
	case *years >= 1:
		return 10
	default:
		return 0
	}
}

func profileRichness(user *models.User) float64 {
	score := 0.0
	if user.ResumeURL != "" {
		score += 3
	}
	if user.LinkedinURL != "" {
		score += 2
	}
	if user.PortfolioURL != "" {
		score += 2
	}
	if len(user.Skills) > 0 {
		score += 3
	}
	return score
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
