package services

import (
	"context"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type reconcilerUserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	UpdatePostedJobs(ctx context.Context, id uint, list models.IDList) (int64, error)
	UpdateApplications(ctx context.Context, id uint, list models.IDList) (int64, error)
}

type reconcilerJobRepository interface {
	GetAll(ctx context.Context) ([]models.Job, error)
	UpdateApplicants(ctx context.Context, id uint, list models.IDList) (int64, error)
}

type reconcilerApplicationRepository interface {
	GetAll(ctx context.Context) ([]models.Application, error)
}

// Reconciler recomputes every back-reference list from the canonical
// ownership fields and rewrites the lists that drifted. It closes the gap
// left by failed propagation writes, which are best-effort by design.
type Reconciler struct {
	users        reconcilerUserRepository
	jobs         reconcilerJobRepository
	applications reconcilerApplicationRepository
	cron         *cron.Cron
}

func NewReconciler(users reconcilerUserRepository, jobs reconcilerJobRepository,
	applications reconcilerApplicationRepository, schedule string) (*Reconciler, error) {

	if schedule == "" {
		return nil, errors.New("reconciler schedule must not be empty")
	}

	r := &Reconciler{
		users:        users,
		jobs:         jobs,
		applications: applications,
		cron:         cron.New(),
	}

	_, err := r.cron.AddFunc(schedule, r.runScheduled)
	if err != nil {
		return nil, err
	}

	r.cron.Start()
	log.Infof("reference reconciler started, schedule: %v", schedule)
	return r, nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
}

func (r *Reconciler) runScheduled() {
	if err := r.RunOnce(context.Background()); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("reconciliation pass failed: %v", err)
	}
}

// RunOnce rebuilds postedJobs, applications and applicants lists in one
// pass. Insertion order can differ from the original append order after a
// repair; the lists are sets, so only membership matters.
func (r *Reconciler) RunOnce(ctx context.Context) error {

	users, err := r.users.GetAll(ctx)
	if err != nil {
		return err
	}
	jobs, err := r.jobs.GetAll(ctx)
	if err != nil {
		return err
	}
	applications, err := r.applications.GetAll(ctx)
	if err != nil {
		return err
	}

	jobIDs := make(map[uint]bool, len(jobs))
	postedJobs := make(map[uint][]uint)
	for _, job := range jobs {
		jobIDs[job.ID] = true
		postedJobs[job.PostedBy] = append(postedJobs[job.PostedBy], job.ID)
	}

	applicants := make(map[uint][]uint)
	candidateApplications := make(map[uint][]uint)
	for _, application := range applications {
		if jobIDs[application.JobID] {
			applicants[application.JobID] = append(applicants[application.JobID], application.ID)
		}
		candidateApplications[application.CandidateID] = append(candidateApplications[application.CandidateID], application.ID)
	}

	repaired := 0

	for _, user := range users {
		if wanted := models.JoinIDs(postedJobs[user.ID]); !sameSet(user.PostedJobs, wanted) {
			if _, err = r.users.UpdatePostedJobs(ctx, user.ID, wanted); err != nil {
				return err
			}
			log.Infof("repaired postedJobs list for user %v", user.ID)
			repaired++
		}
		if wanted := models.JoinIDs(candidateApplications[user.ID]); !sameSet(user.Applications, wanted) {
			if _, err = r.users.UpdateApplications(ctx, user.ID, wanted); err != nil {
				return err
			}
			log.Infof("repaired applications list for user %v", user.ID)
			repaired++
		}
	}

	for _, job := range jobs {
		if wanted := models.JoinIDs(applicants[job.ID]); !sameSet(job.Applicants, wanted) {
			if _, err = r.jobs.UpdateApplicants(ctx, job.ID, wanted); err != nil {
				return err
			}
			log.Infof("repaired applicants list for job %v", job.ID)
			repaired++
		}
	}

	if repaired > 0 {
		metrics.ReferenceRepairsCounter.Add(float64(repaired))
		log.Infof("reconciliation pass repaired %v back-reference lists", repaired)
	}
	return nil
}

func sameSet(a, b models.IDList) bool {
	left, right := a.AsArray(), b.AsArray()
	if len(left) != len(right) {
		return false
	}
	members := make(map[uint]bool, len(left))
	for _, id := range left {
		members[id] = true
	}
	for _, id := range right {
		if !members[id] {
			return false
		}
	}
	return true
}
