package services

import (
	"fmt"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// In-memory repository fakes. Maps are keyed by id; no locking because each
// test owns its fixtures.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

type fakeOrgRepo struct {
	orgs map[string]*models.Organization
}

func newFakeOrgRepo(orgs ...*models.Organization) *fakeOrgRepo {
	r := &fakeOrgRepo{orgs: map[string]*models.Organization{}}
	for _, o := range orgs {
		r.orgs[o.ID] = o
	}
	return r
}

func (r *fakeOrgRepo) FindByID(id string) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	return o, nil
}

func (r *fakeOrgRepo) Create(org *models.Organization) error {
	if org.ID == "" {
		org.ID = "org-" + org.Name
	}
	r.orgs[org.ID] = org
	return nil
}

func (r *fakeOrgRepo) Update(org *models.Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func (r *fakeOrgRepo) Delete(id string) error {
	delete(r.orgs, id)
	return nil
}

func (r *fakeOrgRepo) FindAll(limit, offset int) ([]models.Organization, int64, error) {
	out := make([]models.Organization, 0, len(r.orgs))
	for _, o := range r.orgs {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job

	// Captured criteria from the most recent calls, for assertions.
	lastSearch         *repositories.JobSearchCriteria
	lastRecommendation *repositories.RecommendationCriteria

	searchResult []models.Job
	searchTotal  int64

	recommendResult []models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[string]*models.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = "job-" + job.Title
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListByOrganization(organizationID string, limit, offset int) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.OrganizationID == organizationID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(criteria repositories.JobSearchCriteria) ([]models.Job, int64, error) {
	r.lastSearch = &criteria
	return r.searchResult, r.searchTotal, nil
}

func (r *fakeJobRepo) FindRecommended(criteria repositories.RecommendationCriteria) ([]models.Job, error) {
	r.lastRecommendation = &criteria
	return r.recommendResult, nil
}

func (r *fakeJobRepo) FindPublishedMatching(since time.Time, keyword, location string, limit int) ([]models.Job, error) {
	return nil, nil
}

type fakeVendorRepo struct {
	vendors map[string]*models.Vendor
}

func newFakeVendorRepo(vendors ...*models.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: map[string]*models.Vendor{}}
	for _, v := range vendors {
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) FindByID(id string) (*models.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, repositories.ErrVendorNotFound
	}
	return v, nil
}

func (r *fakeVendorRepo) Create(vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = "vendor-" + vendor.Name
	}
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Update(vendor *models.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) SetActive(id string, active bool) error {
	v, ok := r.vendors[id]
	if !ok {
		return repositories.ErrVendorNotFound
	}
	v.IsActive = active
	return nil
}

func (r *fakeVendorRepo) FindAll(limit, offset int) ([]models.Vendor, int64, error) {
	out := make([]models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.UserID == application.UserID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		r.nextID++
		application.ID = fmt.Sprintf("app-%d", r.nextID)
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return a, nil
}

func (r *fakeApplicationRepo) ExistsForJobAndUser(jobID, userID string) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) AppliedJobIDs(userID string) ([]string, error) {
	var ids []string
	for _, a := range r.applications {
		if a.UserID == userID {
			ids = append(ids, a.JobID)
		}
	}
	return ids, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string, limit, offset int) ([]models.Application, int64, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) ListByUser(userID string, limit, offset int) ([]models.Application, int64, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepo) CreateBulk(notifications []*models.Notification) error {
	r.created = append(r.created, notifications...)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	for _, n := range r.created {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(id string) error {
	for _, n := range r.created {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	for _, n := range r.created {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range r.created {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	for i, n := range r.created {
		if n.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }
