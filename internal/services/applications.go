package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/events"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/metrics"
)

type applicationRepository interface {
	Add(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID uint) (*models.Application, error)
	GetByCandidate(ctx context.Context, candidateID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error
}

type applicantJobRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	UpdateApplicants(ctx context.Context, id uint, list models.IDList) (int64, error)
}

type applicantUserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdateApplications(ctx context.Context, id uint, list models.IDList) (int64, error)
}

type ApplicationWithJob struct {
	Application models.Application
	Job         *models.Job
}

type ApplicationDetails struct {
	Application models.Application
	Job         *models.Job
	Candidate   *models.User
}

type ApplicationService struct {
	bus             EventBus.Bus
	applications    applicationRepository
	jobs            applicantJobRepository
	users           applicantUserRepository
	blockOwnerApply bool
}

func NewApplicationService(bus EventBus.Bus, applications applicationRepository,
	jobs applicantJobRepository, users applicantUserRepository, blockOwnerApply bool) *ApplicationService {

	return &ApplicationService{
		bus:             bus,
		applications:    applications,
		jobs:            jobs,
		users:           users,
		blockOwnerApply: blockOwnerApply,
	}
}

// Apply inserts the application, then mirrors its id into the job's
// applicants list and the candidate's applications list. The two mirror
// writes are best-effort; a failed one is reported and repaired later by the
// reconciler while the application itself stands.
func (s *ApplicationService) Apply(ctx context.Context, callerID, jobID uint, resumeURL string) (*models.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("Job")
	}

	if s.blockOwnerApply && job.PostedBy == callerID {
		return nil, models.NewForbiddenError("Job owners cannot apply to their own job")
	}

	existing, err := s.applications.GetByJobAndCandidate(ctx, jobID, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Already applied to this job")
	}

	application := models.NewApplication(jobID, callerID, resumeURL)
	if err = s.applications.Add(ctx, application); err != nil {
		return nil, err
	}
	metrics.ApplicationsCounter.WithLabelValues(string(models.StatusPending)).Inc()

	s.appendToApplicants(ctx, jobID, application.ID)
	s.appendToCandidateApplications(ctx, callerID, application.ID)

	s.bus.Publish(events.ApplicationReceivedTopic, events.ApplicationReceived{
		ApplicationID: application.ID,
		JobID:         jobID,
		CandidateID:   callerID,
	})
	return application, nil
}

// ListForCandidate returns the caller's applications newest-first, each with
// its job populated. Jobs deleted since the application was filed come back
// nil.
func (s *ApplicationService) ListForCandidate(ctx context.Context, callerID uint) ([]ApplicationWithJob, error) {

	applications, err := s.applications.GetByCandidate(ctx, callerID)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationWithJob, 0, len(applications))
	for _, application := range applications {
		job, err := s.jobs.GetByID(ctx, application.JobID)
		if err != nil {
			return nil, err
		}
		result = append(result, ApplicationWithJob{Application: application, Job: job})
	}
	return result, nil
}

// Get is visible to the candidate and to the owner of the referenced job.
func (s *ApplicationService) Get(ctx context.Context, callerID, id uint) (*ApplicationDetails, error) {

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, models.NewNotFoundError("Application")
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	isCandidate := application.CandidateID == callerID
	isJobOwner := job != nil && job.PostedBy == callerID
	if !isCandidate && !isJobOwner {
		return nil, models.NewForbiddenError("Not authorized")
	}

	candidate, err := s.users.GetByID(ctx, application.CandidateID)
	if err != nil {
		return nil, err
	}

	return &ApplicationDetails{Application: *application, Job: job, Candidate: candidate}, nil
}

// SetStatus lets the job owner move an application to Accepted or Rejected
// (or back to Pending). Out-of-enum values are rejected before any write.
func (s *ApplicationService) SetStatus(ctx context.Context, callerID, id uint, status string) (*models.Application, error) {

	canonical, err := models.ToApplicationStatus(status)
	if err != nil {
		return nil, models.NewValidationError("status", "status must be one of Pending, Accepted, Rejected")
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, models.NewNotFoundError("Application")
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.PostedBy != callerID {
		return nil, models.NewForbiddenError("Not authorized")
	}

	if err = s.applications.UpdateStatus(ctx, id, canonical); err != nil {
		return nil, err
	}
	application.Status = canonical
	metrics.ApplicationsCounter.WithLabelValues(string(canonical)).Inc()

	s.bus.Publish(events.ApplicationDecidedTopic, events.ApplicationDecided{
		ApplicationID: id,
		JobID:         job.ID,
		OwnerID:       callerID,
		Status:        string(canonical),
	})
	return application, nil
}

func (s *ApplicationService) appendToApplicants(ctx context.Context, jobID, applicationID uint) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil || job == nil {
		reportPropagationFailure("append application to job's applicants", err)
		return
	}

	rows, err := s.jobs.UpdateApplicants(ctx, jobID, job.Applicants.Append(applicationID))
	if err != nil {
		reportPropagationFailure("append application to job's applicants", err)
	} else if rows == 0 {
		reportPropagationFailure("append application to job's applicants", nil)
	}
}

func (s *ApplicationService) appendToCandidateApplications(ctx context.Context, candidateID, applicationID uint) {

	candidate, err := s.users.GetByID(ctx, candidateID)
	if err != nil || candidate == nil {
		reportPropagationFailure("append application to candidate's applications", err)
		return
	}

	rows, err := s.users.UpdateApplications(ctx, candidateID, candidate.Applications.Append(applicationID))
	if err != nil {
		reportPropagationFailure("append application to candidate's applications", err)
	} else if rows == 0 {
		reportPropagationFailure("append application to candidate's applications", nil)
	}
}
