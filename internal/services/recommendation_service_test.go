package services

import (
	"context"
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationFixture(user *models.User) (RecommendationService, *fakeJobRepo, *fakeApplicationRepo) {
	users := newFakeUserRepo()
	if user != nil {
		users.users[user.ID] = user
	}
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	svc := NewRecommendationService(users, jobs, apps, nil, time.Minute)
	return svc, jobs, apps
}

func TestRecommendationsUnknownUserIsEmpty(t *testing.T) {
	svc, jobs, _ := newRecommendationFixture(nil)

	result, err := svc.GetRecommendedJobs(context.Background(), "missing", 10)
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Nil(t, jobs.lastRecommendation, "no query should run for an unknown user")
}

func TestRecommendationsSkillsBranchWins(t *testing.T) {
	user := &models.User{
		Location:           "Berlin",
		Skills:             []string{"go", "postgres"},
		PreferredLocations: []string{"Amsterdam"},
	}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.Equal(t, []string{"go", "postgres"}, []string(jobs.lastRecommendation.SkillTerms))
	assert.Empty(t, jobs.lastRecommendation.LocationTerms)
	assert.False(t, jobs.lastRecommendation.RemoteOnly)
}

func TestRecommendationsPreferredLocationsBranch(t *testing.T) {
	user := &models.User{
		Location:           "Berlin",
		PreferredLocations: []string{"Amsterdam", "Oslo"},
	}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.Empty(t, jobs.lastRecommendation.SkillTerms)
	assert.Equal(t, []string{"Amsterdam", "Oslo"}, []string(jobs.lastRecommendation.LocationTerms))
}

func TestRecommendationsCurrentLocationBranch(t *testing.T) {
	user := &models.User{Location: "Berlin"}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.Equal(t, []string{"Berlin"}, []string(jobs.lastRecommendation.LocationTerms))
}

func TestRecommendationsRemoteFallback(t *testing.T) {
	user := &models.User{}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.True(t, jobs.lastRecommendation.RemoteOnly)
	assert.Empty(t, jobs.lastRecommendation.SkillTerms)
	assert.Empty(t, jobs.lastRecommendation.LocationTerms)
}

func TestRecommendationsExcludeAppliedJobs(t *testing.T) {
	user := &models.User{Skills: []string{"go"}}
	user.ID = "user-1"
	svc, jobs, apps := newRecommendationFixture(user)

	require.NoError(t, apps.Create(&models.Application{JobID: "job-7", UserID: user.ID}))
	require.NoError(t, apps.Create(&models.Application{JobID: "job-9", UserID: user.ID}))

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.ElementsMatch(t, []string{"job-7", "job-9"}, jobs.lastRecommendation.ExcludeJobIDs)
}

func TestRecommendationsDefaultLimit(t *testing.T) {
	user := &models.User{Skills: []string{"go"}}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)

	_, err := svc.GetRecommendedJobs(context.Background(), user.ID, 0)
	require.NoError(t, err)

	require.NotNil(t, jobs.lastRecommendation)
	assert.Equal(t, defaultRecommendationLimit, jobs.lastRecommendation.Limit)
}

func TestRecommendationsNilResultNormalized(t *testing.T) {
	user := &models.User{Skills: []string{"go"}}
	user.ID = "user-1"
	svc, jobs, _ := newRecommendationFixture(user)
	jobs.recommendResult = nil

	result, err := svc.GetRecommendedJobs(context.Background(), user.ID, 10)
	require.NoError(t, err)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
