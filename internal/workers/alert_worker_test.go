package workers

import (
	"context"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAlertRepo struct {
	alerts  []models.JobAlert
	touched map[string]time.Time
}

func (r *stubAlertRepo) Create(alert *models.JobAlert) error { return nil }

func (r *stubAlertRepo) FindByID(id string) (*models.JobAlert, error) {
	return nil, repositories.ErrJobAlertNotFound
}

func (r *stubAlertRepo) FindActive() ([]models.JobAlert, error) { return r.alerts, nil }

func (r *stubAlertRepo) ListByUser(userID string) ([]models.JobAlert, error) { return nil, nil }

func (r *stubAlertRepo) Update(alert *models.JobAlert) error { return nil }

func (r *stubAlertRepo) Delete(id string) error { return nil }

func (r *stubAlertRepo) TouchLastRun(id string, at time.Time) error {
	if r.touched == nil {
		r.touched = map[string]time.Time{}
	}
	r.touched[id] = at
	return nil
}

type stubJobRepo struct {
	repositories.JobRepository

	lastSince    time.Time
	lastKeyword  string
	lastLocation string
	matches      []models.Job
}

func (r *stubJobRepo) FindPublishedMatching(since time.Time, keyword, location string, limit int) ([]models.Job, error) {
	r.lastSince = since
	r.lastKeyword = keyword
	r.lastLocation = location
	return r.matches, nil
}

type stubNotificationRepo struct {
	repositories.NotificationRepository

	created []*models.Notification
}

func (r *stubNotificationRepo) Create(notification *models.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

func TestProcessAlertsRecordsNotification(t *testing.T) {
	alert := models.JobAlert{UserID: "user-1", Keyword: "golang"}
	alert.ID = "alert-1"

	match := models.Job{Title: "Go Engineer"}
	match.ID = "job-1"

	alerts := &stubAlertRepo{alerts: []models.JobAlert{alert}}
	jobs := &stubJobRepo{matches: []models.Job{match}}
	notes := &stubNotificationRepo{}

	w := NewAlertWorker(alerts, jobs, notes, "@every 10m")
	w.ProcessAlerts(context.Background())

	require.Len(t, notes.created, 1)
	assert.Equal(t, "user-1", notes.created[0].UserID)
	assert.Equal(t, repositories.NotificationTypeJobAlert, notes.created[0].Type)
	assert.Equal(t, "golang", jobs.lastKeyword)

	// Watermark advanced.
	_, ok := alerts.touched["alert-1"]
	assert.True(t, ok)
}

func TestProcessAlertsNoMatchesStillAdvancesWatermark(t *testing.T) {
	alert := models.JobAlert{UserID: "user-1", Location: "berlin"}
	alert.ID = "alert-1"

	alerts := &stubAlertRepo{alerts: []models.JobAlert{alert}}
	jobs := &stubJobRepo{}
	notes := &stubNotificationRepo{}

	w := NewAlertWorker(alerts, jobs, notes, "@every 10m")
	w.ProcessAlerts(context.Background())

	assert.Empty(t, notes.created)
	_, ok := alerts.touched["alert-1"]
	assert.True(t, ok)
}

func TestProcessAlertsUsesLastRunAsWatermark(t *testing.T) {
	lastRun := time.Now().Add(-time.Hour)
	alert := models.JobAlert{UserID: "user-1", Keyword: "go", LastRunAt: &lastRun}
	alert.ID = "alert-1"

	alerts := &stubAlertRepo{alerts: []models.JobAlert{alert}}
	jobs := &stubJobRepo{}
	notes := &stubNotificationRepo{}

	w := NewAlertWorker(alerts, jobs, notes, "@every 10m")
	w.ProcessAlerts(context.Background())

	assert.Equal(t, lastRun.Unix(), jobs.lastSince.Unix())
}
