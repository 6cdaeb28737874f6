package repositories

import (
	"context"
	"strings"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// JobFilter is a conjunction of optional criteria. Zero values mean
// "unconstrained" for every dimension.
type JobFilter struct {
	Title        string
	Location     string
	JobType      models.JobType
	RemoteOffice models.WorkMode
	Skills       []string
	MinSalary    *float64
	MaxSalary    *float64
	PostedBy     uint
}

type Jobs struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Create(job).Error)
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*models.Job, error) {

	var job models.Job
	err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(ctx, err)
	}
	return &job, nil
}

func (repo *Jobs) GetAll(ctx context.Context) ([]models.Job, error) {

	var jobs []models.Job
	if err := repo.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, wrapStoreError(ctx, err)
	}
	return jobs, nil
}

// Find returns matching jobs newest-first with an id tie-break. The skills
// dimension is matched in memory: sqlite has no set-overlap operator and the
// skill tags live comma-joined in one column.
func (repo *Jobs) Find(ctx context.Context, filter JobFilter) ([]models.Job, error) {

	query := repo.db.WithContext(ctx).Model(&models.Job{})

	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.RemoteOffice != "" {
		query = query.Where("remote_office = ?", filter.RemoteOffice)
	}
	if filter.MinSalary != nil {
		query = query.Where("monthly_salary >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("monthly_salary <= ?", *filter.MaxSalary)
	}
	if filter.PostedBy != 0 {
		query = query.Where("posted_by = ?", filter.PostedBy)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, wrapStoreError(ctx, err)
	}

	if len(filter.Skills) == 0 {
		return jobs, nil
	}

	wanted := lo.Map(filter.Skills, func(skill string, _ int) string {
		return strings.TrimSpace(skill)
	})
	return lo.Filter(jobs, func(job models.Job, _ int) bool {
		return len(lo.Intersect(job.SkillsAsArray(), wanted)) > 0
	}), nil
}

func (repo *Jobs) Update(ctx context.Context, id uint, fields map[string]any) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).Updates(fields).Error)
}

func (repo *Jobs) Remove(ctx context.Context, id uint) error {
	return wrapStoreError(ctx, repo.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error)
}

func (repo *Jobs) UpdateApplicants(ctx context.Context, id uint, list models.IDList) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).
		Update("applicants", list)
	return res.RowsAffected, wrapStoreError(ctx, res.Error)
}
