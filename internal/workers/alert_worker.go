// Package workers holds the background loops that run alongside the HTTP
// server. The alert worker periodically matches saved job alerts against
// newly published jobs and records job_alert notifications; it never delivers
// anything itself.
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

const alertMatchLimit = 50

type AlertWorker struct {
	cron             *cron.Cron
	alertRepo        repositories.JobAlertRepository
	jobRepo          repositories.JobRepository
	notificationRepo repositories.NotificationRepository
	spec             string // cron spec, e.g. "@every 10m"
}

func NewAlertWorker(
	alertRepo repositories.JobAlertRepository,
	jobRepo repositories.JobRepository,
	notificationRepo repositories.NotificationRepository,
	spec string,
) *AlertWorker {
	return &AlertWorker{
		cron:             cron.New(),
		alertRepo:        alertRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		spec:             spec,
	}
}

// Start registers the cron entry and begins firing on schedule.
func (w *AlertWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() {
		w.ProcessAlerts(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	w.cron.Start()
	logger.Info("alert worker started", "schedule", w.spec)
	return nil
}

func (w *AlertWorker) Stop() {
	w.cron.Stop()
	logger.Info("alert worker stopped")
}

// ProcessAlerts runs one full cycle. Errors on a single alert are logged and
// skipped so the rest of the cycle still completes.
func (w *AlertWorker) ProcessAlerts(ctx context.Context) {
	alerts, err := w.alertRepo.FindActive()
	if err != nil {
		logger.Error("alert cycle failed to load alerts", "error", err)
		return
	}

	now := time.Now()
	for _, alert := range alerts {
		if ctx.Err() != nil {
			return
		}
		if err := w.processOne(&alert, now); err != nil {
			logger.Warn("alert processing skipped one alert", "alert_id", alert.ID, "error", err)
		}
	}
}

func (w *AlertWorker) processOne(alert *models.JobAlert, now time.Time) error {
	since := alert.CreatedAt
	if alert.LastRunAt != nil {
		since = *alert.LastRunAt
	}

	jobs, err := w.jobRepo.FindPublishedMatching(since, alert.Keyword, alert.Location, alertMatchLimit)
	if err != nil {
		return err
	}

	if len(jobs) > 0 {
		jobIDs := make([]string, 0, len(jobs))
		for _, job := range jobs {
			jobIDs = append(jobIDs, job.ID)
		}
		data, _ := json.Marshal(map[string]interface{}{
			"alert_id": alert.ID,
			"job_ids":  jobIDs,
		})

		err := w.notificationRepo.Create(&models.Notification{
			UserID:  alert.UserID,
			Type:    repositories.NotificationTypeJobAlert,
			Title:   "New jobs match your alert",
			Message: fmt.Sprintf("%d new job(s) match your saved alert", len(jobs)),
			Data:    datatypes.JSON(data),
		})
		if err != nil {
			return err
		}
	}

	// Advance the watermark even when nothing matched, so the next cycle
	// does not rescan the same window.
	return w.alertRepo.TouchLastRun(alert.ID, now)
}
