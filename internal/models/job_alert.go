package models

import "time"

// JobAlert is a saved search a candidate wants checked on a schedule. The
// alert worker matches newly published jobs against Keyword/Location and
// produces job_alert notifications; delivery is someone else's problem.
type JobAlert struct {
	BaseModel
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Keyword   string     `json:"keyword"`
	Location  string     `json:"location"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastRunAt *time.Time `json:"last_run_at"`
}
