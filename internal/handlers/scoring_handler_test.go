package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScoringService struct {
	readiness   float64
	eligibility *dto.EligibilityResult
}

func (s *stubScoringService) CalculateReadinessScore(userID string) (float64, error) {
	return s.readiness, nil
}

func (s *stubScoringService) CalculateEligibilityScore(userID, jobID string) (*dto.EligibilityResult, error) {
	return s.eligibility, nil
}

func (s *stubScoringService) ReadinessScore(user *models.User) float64 { return s.readiness }

func (s *stubScoringService) SkillsMatchScore(user *models.User, job *models.Job) float64 { return 0 }

func (s *stubScoringService) EligibilityScore(user *models.User, job *models.Job) (float64, *dto.EligibilityBreakdown) {
	return s.eligibility.Score, s.eligibility.Breakdown
}

func newScoringRouter(stub *stubScoringService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewScoringHandler(NewBaseHandler(validator.New()), stub)
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGetReadinessScore(t *testing.T) {
	router := newScoringRouter(&stubScoringService{readiness: 75})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/readiness?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 75.0, body["score"])
}

func TestGetReadinessScoreMissingUserID(t *testing.T) {
	router := newScoringRouter(&stubScoringService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/readiness", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEligibilityScore(t *testing.T) {
	router := newScoringRouter(&stubScoringService{
		eligibility: &dto.EligibilityResult{
			Score: 62,
			Breakdown: &dto.EligibilityBreakdown{
				LocationFit:    20,
				ExperienceBand: 30,
				SkillsPortion:  12,
			},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/eligibility?user_id=user-1&job_id=job-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Score     float64                  `json:"score"`
		Breakdown *dto.EligibilityBreakdown `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 62.0, body.Score)
	require.NotNil(t, body.Breakdown)
	assert.Equal(t, 20.0, body.Breakdown.LocationFit)
}

func TestGetEligibilityScoreMissingParams(t *testing.T) {
	router := newScoringRouter(&stubScoringService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/eligibility?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
