package services

import (
	"context"
	"testing"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func newTestReconciler(users *fakeUserRepo, jobs *fakeJobRepo, applications *fakeApplicationRepo) *Reconciler {
	return &Reconciler{users: users, jobs: jobs, applications: applications}
}

func Test_NewReconciler_WhenScheduleEmpty_ShouldFail(t *testing.T) {
	_, err := NewReconciler(newFakeUserRepo(), newFakeJobRepo(), newFakeApplicationRepo(), "")

	assert.Error(t, err)
}

func Test_NewReconciler_WhenScheduleInvalid_ShouldFail(t *testing.T) {
	_, err := NewReconciler(newFakeUserRepo(), newFakeJobRepo(), newFakeApplicationRepo(), "not a schedule")

	assert.Error(t, err)
}

func Test_Reconcile_ShouldRepairMissingPostedJobsEntry(t *testing.T) {
	users := newFakeUserRepo(testUser(1, "ada"))
	jobs := newFakeJobRepo(&models.Job{ID: 5, Title: "Backend Engineer", PostedBy: 1})

	r := newTestReconciler(users, jobs, newFakeApplicationRepo())
	assert.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, []uint{5}, users.users[1].PostedJobs.AsArray())
}

func Test_Reconcile_ShouldRepairMissingApplicantAndApplicationEntries(t *testing.T) {
	users := newFakeUserRepo(testUser(1, "owner"), testUser(2, "candidate"))
	users.users[1].PostedJobs = models.JoinIDs([]uint{5})
	jobs := newFakeJobRepo(&models.Job{ID: 5, Title: "Backend Engineer", PostedBy: 1})
	applications := newFakeApplicationRepo(
		&models.Application{ID: 9, JobID: 5, CandidateID: 2, Status: models.StatusPending})

	r := newTestReconciler(users, jobs, applications)
	assert.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, []uint{9}, jobs.jobs[5].Applicants.AsArray())
	assert.Equal(t, []uint{9}, users.users[2].Applications.AsArray())
}

func Test_Reconcile_ShouldDropApplicantEntriesOfDeletedJobs(t *testing.T) {
	users := newFakeUserRepo(testUser(1, "owner"), testUser(2, "candidate"))
	users.users[1].PostedJobs = models.JoinIDs([]uint{5})
	users.users[2].Applications = models.JoinIDs([]uint{9})
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(
		&models.Application{ID: 9, JobID: 5, CandidateID: 2, Status: models.StatusPending})

	r := newTestReconciler(users, jobs, applications)
	assert.NoError(t, r.RunOnce(context.Background()))

	// The job is gone, so the owner's list empties while the candidate's
	// application record keeps its history.
	assert.Equal(t, 0, users.users[1].PostedJobs.Len())
	assert.Equal(t, []uint{9}, users.users[2].Applications.AsArray())
}

func Test_Reconcile_WhenNothingDrifted_ShouldNotWrite(t *testing.T) {
	users := newFakeUserRepo(testUser(1, "owner"), testUser(2, "candidate"))
	users.users[1].PostedJobs = models.JoinIDs([]uint{5})
	users.users[2].Applications = models.JoinIDs([]uint{9})
	jobs := newFakeJobRepo(&models.Job{ID: 5, PostedBy: 1, Applicants: models.JoinIDs([]uint{9})})
	applications := newFakeApplicationRepo(
		&models.Application{ID: 9, JobID: 5, CandidateID: 2, Status: models.StatusPending})

	r := newTestReconciler(users, jobs, applications)
	assert.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, 0, users.updates)
	assert.Equal(t, 0, jobs.updates)
}

func Test_Reconcile_ShouldIgnoreOrderWhenComparingLists(t *testing.T) {
	users := newFakeUserRepo(testUser(1, "owner"))
	users.users[1].PostedJobs = models.JoinIDs([]uint{7, 5})
	jobs := newFakeJobRepo(
		&models.Job{ID: 5, PostedBy: 1},
		&models.Job{ID: 7, PostedBy: 1})

	r := newTestReconciler(users, jobs, newFakeApplicationRepo())
	assert.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, 0, users.updates)
	assert.Equal(t, []uint{7, 5}, users.users[1].PostedJobs.AsArray())
}
