package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture(t *testing.T) (JobService, *fakeJobRepo, *models.Organization) {
	t.Helper()

	org := &models.Organization{Name: "Acme"}
	org.ID = "org-1"

	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, newFakeOrgRepo(org))
	return svc, jobs, org
}

func completeDraft(t *testing.T, svc JobService, orgID string) *models.Job {
	t.Helper()

	job, err := svc.CreateJob(&dto.CreateJobRequest{
		OrganizationID:   orgID,
		Title:            "Backend Engineer",
		Description:      "Own the API",
		Requirements:     "go postgres",
		Responsibilities: "Ship features",
		Location:         "Berlin",
	})
	require.NoError(t, err)
	return job
}

func TestCreateJobDefaults(t *testing.T) {
	svc, _, org := newJobFixture(t)

	job := completeDraft(t, svc, org.ID)

	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Equal(t, models.VisibilityPublic, job.VisibilityLevel)
	assert.Equal(t, []string{"direct"}, []string(job.AllowedPaths))
	assert.Nil(t, job.PublishedAt)
}

func TestCreateJobUnknownOrganization(t *testing.T) {
	svc, _, _ := newJobFixture(t)

	_, err := svc.CreateJob(&dto.CreateJobRequest{OrganizationID: "missing", Title: "x"})
	require.Error(t, err)
}

func TestCreateJobRejectsUnknownPath(t *testing.T) {
	svc, _, org := newJobFixture(t)

	_, err := svc.CreateJob(&dto.CreateJobRequest{
		OrganizationID: org.ID,
		Title:          "x",
		AllowedPaths:   []string{"direct", "carrier_pigeon"},
	})
	require.Error(t, err)
}

func TestCreateJobRejectsInvertedSalaryRange(t *testing.T) {
	svc, _, org := newJobFixture(t)

	_, err := svc.CreateJob(&dto.CreateJobRequest{
		OrganizationID: org.ID,
		Title:          "x",
		SalaryMin:      int64Ptr(9_000_000),
		SalaryMax:      int64Ptr(6_000_000),
	})
	require.Error(t, err)
}

func TestPublishJob(t *testing.T) {
	svc, _, org := newJobFixture(t)
	job := completeDraft(t, svc, org.ID)

	published, err := svc.PublishJob(job.ID)
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusActive, published.Status)
	require.NotNil(t, published.PublishedAt)
}

func TestPublishJobIncompleteDraftFails(t *testing.T) {
	svc, _, org := newJobFixture(t)

	job, err := svc.CreateJob(&dto.CreateJobRequest{
		OrganizationID:   org.ID,
		Title:            "Backend Engineer",
		Requirements:     "go",
		Responsibilities: "Ship",
		// Description missing.
	})
	require.NoError(t, err)

	_, err = svc.PublishJob(job.ID)
	require.Error(t, err)

	// Still a draft after the failed publish.
	reloaded, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusDraft, reloaded.Status)
	assert.Nil(t, reloaded.PublishedAt)
}

func TestPublishJobTwiceFails(t *testing.T) {
	svc, _, org := newJobFixture(t)
	job := completeDraft(t, svc, org.ID)

	published, err := svc.PublishJob(job.ID)
	require.NoError(t, err)
	firstPublishedAt := *published.PublishedAt

	_, err = svc.PublishJob(job.ID)
	require.Error(t, err)

	reloaded, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, reloaded.Status)
	assert.Equal(t, firstPublishedAt, *reloaded.PublishedAt)
}

func TestLifecycleTransitions(t *testing.T) {
	svc, _, org := newJobFixture(t)
	job := completeDraft(t, svc, org.ID)

	_, err := svc.PublishJob(job.ID)
	require.NoError(t, err)

	paused, err := svc.PauseJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPaused, paused.Status)

	// Paused jobs can close but not archive.
	_, err = svc.ArchiveJob(job.ID)
	require.Error(t, err)

	closed, err := svc.CloseJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, closed.Status)

	archived, err := svc.ArchiveJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusArchived, archived.Status)
}

func TestPauseRequiresActive(t *testing.T) {
	svc, _, org := newJobFixture(t)
	job := completeDraft(t, svc, org.ID)

	_, err := svc.PauseJob(job.ID)
	require.Error(t, err)
}

func TestUpdateJobPatchesOnlyProvidedFields(t *testing.T) {
	svc, _, org := newJobFixture(t)
	job := completeDraft(t, svc, org.ID)

	updated, err := svc.UpdateJob(job.ID, &dto.UpdateJobRequest{
		Title:     strPtr("Senior Backend Engineer"),
		SalaryMin: int64Ptr(7_500_000),
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	require.NotNil(t, updated.SalaryMin)
	assert.Equal(t, int64(7_500_000), *updated.SalaryMin)
	assert.Equal(t, "Own the API", updated.Description)
	assert.Equal(t, "Berlin", updated.Location)
}
