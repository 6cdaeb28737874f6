package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/events"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/repositories"
	log "github.com/sirupsen/logrus"
)

type jobRepository interface {
	Add(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	Find(ctx context.Context, filter repositories.JobFilter) ([]models.Job, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Remove(ctx context.Context, id uint) error
}

type userRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error)
	UpdatePostedJobs(ctx context.Context, id uint, list models.IDList) (int64, error)
}

type applicationReader interface {
	GetByIDs(ctx context.Context, ids []uint) ([]models.Application, error)
}

// JobWithPoster pairs a job with its owner record for responses that
// populate owner name and email. Poster is nil when the owner record is
// missing, which can only happen after an unrepaired partial failure.
type JobWithPoster struct {
	Job    models.Job
	Poster *models.User
}

type JobDetails struct {
	JobWithPoster
	Applications []models.Application
}

// JobUpdate lists the fields a caller may change. PostedBy and the creation
// timestamp are immutable and deliberately have no slot here.
type JobUpdate struct {
	Title          *string
	CompanyName    *string
	LogoURL        *string
	CompanySize    *string
	Location       *string
	MonthlySalary  *float64
	JobType        *models.JobType
	RemoteOffice   *models.WorkMode
	Description    *string
	AboutCompany   *string
	AdditionalInfo *string
	SkillsRequired []string
}

type JobService struct {
	bus          EventBus.Bus
	jobs         jobRepository
	users        userRepository
	applications applicationReader
}

func NewJobService(bus EventBus.Bus, jobs jobRepository, users userRepository,
	applications applicationReader) *JobService {

	return &JobService{bus: bus, jobs: jobs, users: users, applications: applications}
}

// Create inserts the job, then appends its id to the owner's postedJobs
// list. The second write is best-effort: a failure there leaves the job
// reachable by query but absent from the owner's list until the reconciler
// runs, and the create still succeeds.
func (s *JobService) Create(ctx context.Context, callerID uint, job *models.Job) (*models.Job, error) {

	job.PostedBy = callerID

	if err := s.jobs.Add(ctx, job); err != nil {
		return nil, err
	}

	s.appendToPostedJobs(ctx, callerID, job.ID)

	s.bus.Publish(events.JobPostedTopic, events.JobPosted{
		JobID:   job.ID,
		OwnerID: callerID,
		Title:   job.Title,
		Company: job.CompanyName,
	})
	return job, nil
}

func (s *JobService) List(ctx context.Context, filter repositories.JobFilter) ([]JobWithPoster, error) {

	jobs, err := s.jobs.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.withPosters(ctx, jobs)
}

func (s *JobService) ListByOwner(ctx context.Context, callerID uint, filter repositories.JobFilter) ([]JobWithPoster, error) {
	filter.PostedBy = callerID
	return s.List(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id uint) (*JobDetails, error) {

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("Job")
	}

	poster, err := s.users.GetByID(ctx, job.PostedBy)
	if err != nil {
		return nil, err
	}

	applications, err := s.applications.GetByIDs(ctx, job.Applicants.AsArray())
	if err != nil {
		return nil, err
	}

	return &JobDetails{
		JobWithPoster: JobWithPoster{Job: *job, Poster: poster},
		Applications:  applications,
	}, nil
}

// Update applies a partial merge on behalf of the job's owner. Only fields
// present in the update change; RemoteOffice updates also rewrite IsRemote.
func (s *JobService) Update(ctx context.Context, callerID, id uint, update JobUpdate) (*models.Job, error) {

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("Job")
	}
	if job.PostedBy != callerID {
		return nil, models.NewForbiddenError("Not authorized")
	}

	fields := map[string]any{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setIfPresent("title", update.Title)
	setIfPresent("company_name", update.CompanyName)
	setIfPresent("logo_url", update.LogoURL)
	setIfPresent("company_size", update.CompanySize)
	setIfPresent("location", update.Location)
	setIfPresent("description", update.Description)
	setIfPresent("about_company", update.AboutCompany)
	setIfPresent("additional_info", update.AdditionalInfo)

	if update.MonthlySalary != nil {
		fields["monthly_salary"] = *update.MonthlySalary
	}
	if update.JobType != nil {
		fields["job_type"] = *update.JobType
	}
	if update.RemoteOffice != nil {
		fields["remote_office"] = *update.RemoteOffice
		fields["is_remote"] = *update.RemoteOffice == models.Remote
	}
	if update.SkillsRequired != nil {
		fields["skills_required"] = models.JoinTags(update.SkillsRequired)
	}

	if len(fields) > 0 {
		if err = s.jobs.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.jobs.GetByID(ctx, id)
}

// Delete removes the job, then pulls its id from the owner's postedJobs
// list. Applications referencing the job are left in place.
func (s *JobService) Delete(ctx context.Context, callerID, id uint) error {

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return models.NewNotFoundError("Job")
	}
	if job.PostedBy != callerID {
		return models.NewForbiddenError("Not authorized")
	}

	if err = s.jobs.Remove(ctx, id); err != nil {
		return err
	}

	owner, err := s.users.GetByID(ctx, job.PostedBy)
	if err != nil || owner == nil {
		reportPropagationFailure("remove job from owner's posted jobs", err)
	} else if _, err = s.users.UpdatePostedJobs(ctx, owner.ID, owner.PostedJobs.Remove(id)); err != nil {
		reportPropagationFailure("remove job from owner's posted jobs", err)
	}

	s.bus.Publish(events.JobDeletedTopic, events.JobDeleted{JobID: id, OwnerID: callerID})
	return nil
}

func (s *JobService) appendToPostedJobs(ctx context.Context, ownerID, jobID uint) {

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil || owner == nil {
		reportPropagationFailure("append job to owner's posted jobs", err)
		return
	}

	rows, err := s.users.UpdatePostedJobs(ctx, ownerID, owner.PostedJobs.Append(jobID))
	if err != nil {
		reportPropagationFailure("append job to owner's posted jobs", err)
	} else if rows == 0 {
		reportPropagationFailure("append job to owner's posted jobs", nil)
	}
}

func (s *JobService) withPosters(ctx context.Context, jobs []models.Job) ([]JobWithPoster, error) {

	ownerIDs := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		ownerIDs = append(ownerIDs, job.PostedBy)
	}

	posters, err := s.users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	result := make([]JobWithPoster, 0, len(jobs))
	for _, job := range jobs {
		entry := JobWithPoster{Job: job}
		if poster, ok := posters[job.PostedBy]; ok {
			entry.Poster = &poster
		}
		result = append(result, entry)
	}
	return result, nil
}

// reportPropagationFailure records a failed or skipped back-reference write.
// The primary write already succeeded, so this is an anomaly report, not a
// request failure; the reconciler repairs the lists later.
func reportPropagationFailure(step string, err error) {
	metrics.PropagationFailuresCounter.Inc()
	entry := log.WithField(logger.ErrorTypeField, logger.ErrorTypePropagation)
	if err != nil {
		entry.Errorf("reference propagation failure: %v: %v", step, err)
	} else {
		entry.Errorf("reference propagation failure: %v: parent record not found", step)
	}
}
