package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *DbContext {
	dbContext, err := NewDbContext(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, dbContext.Migrate())

	t.Cleanup(func() { _ = dbContext.Close() })
	return dbContext
}

func seedJobs(t *testing.T, repo *Jobs) {
	jobs := []*models.Job{
		models.NewJob(1, "Backend Engineer", "Acme", "Berlin", 4000, models.FullTime, models.Remote, "Go services", []string{"Go", "Docker"}),
		models.NewJob(1, "Frontend Developer", "Acme", "Hamburg", 3000, models.PartTime, models.Office, "React work", []string{"React", "CSS"}),
		models.NewJob(2, "Fullstack Engineer", "Globex", "berlin", 5000, models.FullTime, models.Hybrid, "Everything", []string{"Node.js", "React"}),
	}

	for i, job := range jobs {
		job.CreatedAt = time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, repo.Add(context.Background(), job))
	}
}

func Test_JobsFind_WhenNoFilter_ShouldReturnAllNewestFirst(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	jobs, err := repo.Find(context.Background(), JobFilter{})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Fullstack Engineer", "Frontend Developer", "Backend Engineer"},
		lo.Map(jobs, func(job models.Job, _ int) string { return job.Title }))
}

func Test_JobsFind_WhenTitleFilter_ShouldMatchSubstringCaseInsensitive(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	jobs, err := repo.Find(context.Background(), JobFilter{Title: "engineer"})

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func Test_JobsFind_WhenLocationFilter_ShouldMatchCaseInsensitive(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	jobs, err := repo.Find(context.Background(), JobFilter{Location: "BERLIN"})

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func Test_JobsFind_WhenSkillsFilter_ShouldMatchAnyOf(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	jobs, err := repo.Find(context.Background(), JobFilter{Skills: []string{"React", "Node.js"}})

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.NotEmpty(t, lo.Intersect(job.SkillsAsArray(), []string{"React", "Node.js"}))
	}
}

func Test_JobsFind_WhenSalaryRangeInverted_ShouldReturnEmptySet(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	minSalary, maxSalary := 5000.0, 3000.0
	jobs, err := repo.Find(context.Background(), JobFilter{MinSalary: &minSalary, MaxSalary: &maxSalary})

	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func Test_JobsFind_WhenSalaryBounds_ShouldBeInclusive(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	minSalary, maxSalary := 3000.0, 4000.0
	jobs, err := repo.Find(context.Background(), JobFilter{MinSalary: &minSalary, MaxSalary: &maxSalary})

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func Test_JobsFind_WhenPostedByFilter_ShouldOnlyReturnOwnersJobs(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	jobs, err := repo.Find(context.Background(), JobFilter{PostedBy: 2, JobType: models.FullTime})

	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Fullstack Engineer", jobs[0].Title)
}

func Test_JobsGetByID_WhenMissing_ShouldReturnNil(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)

	job, err := repo.GetByID(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, job)
}

func Test_JobsRemove_ShouldMakeJobUnretrievable(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)
	seedJobs(t, repo)

	assert.NoError(t, repo.Remove(context.Background(), 1))

	job, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func Test_JobsUpdateApplicants_WhenJobMissing_ShouldAffectNoRows(t *testing.T) {
	repo := NewJobRepository(newTestContext(t).DB)

	rows, err := repo.UpdateApplicants(context.Background(), 42, models.JoinIDs([]uint{1}))

	assert.NoError(t, err)
	assert.Zero(t, rows)
}
