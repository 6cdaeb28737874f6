package services

import (
	"context"
	"sort"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/pkg/errors"
)

var errStoreDown = errors.New("store is down")

type fakeUserRepo struct {
	users       map[uint]*models.User
	failUpdates bool
	updates     int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*models.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (m *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *fakeUserRepo) GetByIDs(_ context.Context, ids []uint) (map[uint]models.User, error) {
	byID := make(map[uint]models.User)
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			byID[id] = *user
		}
	}
	return byID, nil
}

func (m *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *fakeUserRepo) UpdatePostedJobs(_ context.Context, id uint, list models.IDList) (int64, error) {
	if m.failUpdates {
		return 0, errStoreDown
	}
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.PostedJobs = list
	m.updates++
	return 1, nil
}

func (m *fakeUserRepo) UpdateApplications(_ context.Context, id uint, list models.IDList) (int64, error) {
	if m.failUpdates {
		return 0, errStoreDown
	}
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.Applications = list
	m.updates++
	return 1, nil
}

type fakeJobRepo struct {
	jobs                 map[uint]*models.Job
	nextID               uint
	failUpdateApplicants bool
	updates              int
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[uint]*models.Job{}}
	for _, job := range jobs {
		repo.jobs[job.ID] = job
		if job.ID > repo.nextID {
			repo.nextID = job.ID
		}
	}
	return repo
}

func (m *fakeJobRepo) Add(_ context.Context, job *models.Job) error {
	m.nextID++
	job.ID = m.nextID
	copied := *job
	m.jobs[job.ID] = &copied
	return nil
}

func (m *fakeJobRepo) GetByID(_ context.Context, id uint) (*models.Job, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (m *fakeJobRepo) GetAll(_ context.Context) ([]models.Job, error) {
	jobs := make([]models.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs, nil
}

func (m *fakeJobRepo) Find(ctx context.Context, filter repositories.JobFilter) ([]models.Job, error) {
	jobs, _ := m.GetAll(ctx)
	if filter.PostedBy == 0 {
		return jobs, nil
	}
	matched := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.PostedBy == filter.PostedBy {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (m *fakeJobRepo) Update(_ context.Context, id uint, fields map[string]any) error {
	job, ok := m.jobs[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "title":
			job.Title = value.(string)
		case "company_name":
			job.CompanyName = value.(string)
		case "logo_url":
			job.LogoURL = value.(string)
		case "company_size":
			job.CompanySize = value.(string)
		case "location":
			job.Location = value.(string)
		case "monthly_salary":
			job.MonthlySalary = value.(float64)
		case "job_type":
			job.JobType = value.(models.JobType)
		case "remote_office":
			job.RemoteOffice = value.(models.WorkMode)
		case "is_remote":
			job.IsRemote = value.(bool)
		case "description":
			job.Description = value.(string)
		case "about_company":
			job.AboutCompany = value.(string)
		case "additional_info":
			job.AdditionalInfo = value.(string)
		case "skills_required":
			job.SkillsRequired = value.(string)
		}
	}
	return nil
}

func (m *fakeJobRepo) Remove(_ context.Context, id uint) error {
	delete(m.jobs, id)
	return nil
}

func (m *fakeJobRepo) UpdateApplicants(_ context.Context, id uint, list models.IDList) (int64, error) {
	if m.failUpdateApplicants {
		return 0, errStoreDown
	}
	job, ok := m.jobs[id]
	if !ok {
		return 0, nil
	}
	job.Applicants = list
	m.updates++
	return 1, nil
}

type fakeApplicationRepo struct {
	applications map[uint]*models.Application
	nextID       uint
}

func newFakeApplicationRepo(applications ...*models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{applications: map[uint]*models.Application{}}
	for _, application := range applications {
		repo.applications[application.ID] = application
		if application.ID > repo.nextID {
			repo.nextID = application.ID
		}
	}
	return repo
}

func (m *fakeApplicationRepo) Add(_ context.Context, application *models.Application) error {
	m.nextID++
	application.ID = m.nextID
	copied := *application
	m.applications[application.ID] = &copied
	return nil
}

func (m *fakeApplicationRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	application, ok := m.applications[id]
	if !ok {
		return nil, nil
	}
	copied := *application
	return &copied, nil
}

func (m *fakeApplicationRepo) GetByJobAndCandidate(_ context.Context, jobID, candidateID uint) (*models.Application, error) {
	for _, application := range m.applications {
		if application.JobID == jobID && application.CandidateID == candidateID {
			copied := *application
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *fakeApplicationRepo) GetByCandidate(_ context.Context, candidateID uint) ([]models.Application, error) {
	matched := make([]models.Application, 0)
	for _, application := range m.applications {
		if application.CandidateID == candidateID {
			matched = append(matched, *application)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return matched, nil
}

func (m *fakeApplicationRepo) GetByIDs(_ context.Context, ids []uint) ([]models.Application, error) {
	matched := make([]models.Application, 0, len(ids))
	for _, id := range ids {
		if application, ok := m.applications[id]; ok {
			matched = append(matched, *application)
		}
	}
	return matched, nil
}

func (m *fakeApplicationRepo) GetAll(_ context.Context) ([]models.Application, error) {
	applications := make([]models.Application, 0, len(m.applications))
	for _, application := range m.applications {
		applications = append(applications, *application)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
	return applications, nil
}

func (m *fakeApplicationRepo) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) error {
	if application, ok := m.applications[id]; ok {
		application.Status = status
	}
	return nil
}
